package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvexMinkowskiSumOfSquares(t *testing.T) {
	a := square(10)
	b := square(4)
	sum := ConvexMinkowskiSum(a, b)

	bb := BoundingBox(sum)
	assert.Equal(t, Coord(14), bb.Width())
	assert.Equal(t, Coord(14), bb.Height())
}

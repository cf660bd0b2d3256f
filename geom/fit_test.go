package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckSizeFitsPlate(t *testing.T) {
	plate := PlateBounds{BoundingBox: Rect{0, 0, 250000, 210000}}
	assert.True(t, CheckSizeFitsPlate(plate, square(42000)))
	assert.False(t, CheckSizeFitsPlate(plate, square(300000)))
}

func TestCheckPositionWithinPlate(t *testing.T) {
	plate := PlateBounds{BoundingBox: Rect{0, 0, 100, 100}}
	p := square(10)
	assert.True(t, CheckPositionWithinPlate(plate, 5, 5, p))
	assert.False(t, CheckPositionWithinPlate(plate, 95, 5, p))
}

func TestContainsViaClipper(t *testing.T) {
	c := NewPolyclipAdapter()
	plate := square(100)
	p := square(10)
	assert.True(t, Contains(c, plate, 5, 5, p))
	assert.False(t, Contains(c, plate, 95, 95, p))
}

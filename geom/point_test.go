package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(side Coord) Polygon {
	return Polygon{{0, 0}, {side, 0}, {side, side}, {0, side}}
}

func TestEnsureCCW(t *testing.T) {
	ccw := square(10)
	require.True(t, ccw.IsCCW())

	cw := Polygon{{0, 0}, {0, 10}, {10, 10}, {10, 0}}
	require.False(t, cw.IsCCW())

	fixed := EnsureCCW(cw)
	assert.True(t, fixed.IsCCW())
	assert.ElementsMatch(t, []Point(ccw), []Point(fixed))
}

func TestBoundingBox(t *testing.T) {
	p := square(10).Translate(5, -5)
	bb := BoundingBox(p)
	assert.Equal(t, Rect{5, -5, 15, 5}, bb)
}

func TestPointInPolygon(t *testing.T) {
	p := square(10)
	assert.True(t, PointInPolygon(p, Point{5, 5}))
	assert.True(t, PointInPolygon(p, Point{0, 0}))
	assert.True(t, PointInPolygon(p, Point{10, 5}))
	assert.False(t, PointInPolygon(p, Point{11, 5}))
	assert.False(t, PointInPolygon(p, Point{-1, -1}))
}

func TestSegmentsIntersect(t *testing.T) {
	assert.True(t, SegmentsIntersect(Point{0, 0}, Point{10, 10}, Point{0, 10}, Point{10, 0}))
	assert.False(t, SegmentsIntersect(Point{0, 0}, Point{10, 0}, Point{0, 5}, Point{10, 5}))
}

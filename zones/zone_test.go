package zones

import (
	"testing"

	"github.com/arl/go-seqarrange/geom"
	"github.com/arl/go-seqarrange/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(side geom.Coord) geom.Polygon {
	return geom.Polygon{{0, 0}, {side, 0}, {side, side}, {0, side}}
}

func TestBuildBoxZone(t *testing.T) {
	obj := square(10)
	extruder := []geom.Polygon{square(4)}
	zones := BuildBoxZone(obj, extruder)
	require.Len(t, zones, 1)
	assert.Equal(t, geom.Rect{0, 0, 14, 14}, geom.BoundingBox(zones[0]))
}

func TestSimplifyDropsConsumedContribution(t *testing.T) {
	c := geom.NewPolyclipAdapter()
	small := square(5)
	big := square(20)
	out := Simplify(c, []geom.Polygon{small, big})
	require.Len(t, out, 1)
	assert.Equal(t, geom.Rect{0, 0, 20, 20}, geom.BoundingBox(out[0]))
}

func TestSimplifyKeepsDisjointContributions(t *testing.T) {
	c := geom.NewPolyclipAdapter()
	a := square(5)
	b := square(5).Translate(100, 100)
	out := Simplify(c, []geom.Polygon{a, b})
	assert.Len(t, out, 2)
}

func TestGlueLowObjects(t *testing.T) {
	low := model.SolvableObject{ID: 1, Polygon: square(10), UnreachablePolygons: []geom.Polygon{square(1)}}
	low2 := model.SolvableObject{ID: 2, Polygon: square(10), UnreachablePolygons: []geom.Polygon{square(1)}}
	notLow := model.SolvableObject{ID: 3, Polygon: square(1), UnreachablePolygons: []geom.Polygon{square(100)}}

	objs := []model.SolvableObject{low, low2, notLow}
	GlueLowObjects(objs)

	assert.True(t, objs[0].GluedToNext)
	assert.False(t, objs[1].GluedToNext)
	assert.False(t, objs[2].GluedToNext)
}

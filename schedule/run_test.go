package schedule

import (
	"testing"

	"github.com/arl/go-seqarrange/geom"
	"github.com/arl/go-seqarrange/internal/buildctx"
	"github.com/arl/go-seqarrange/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallSquare(id int) model.SolvableObject {
	poly := geom.Polygon{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	zone := geom.Polygon{{-2, -2}, {6, -2}, {6, 6}, {-2, 6}}
	return model.SolvableObject{
		ID:                  id,
		Polygon:             poly,
		UnreachablePolygons: []geom.Polygon{zone},
	}
}

func baseConfig() model.SolverConfiguration {
	return model.SolverConfiguration{
		PlateBoundingBox:                geom.Rect{MinX: 0, MinY: 0, MaxX: 40, MaxY: 40},
		BoundingBoxSizeOptimizationStep:  4,
		MinimumBoundingBoxSize:           8,
		MaxRefines:                       2,
		ObjectGroupSize:                  0,
		FixedObjectGroupingLimit:         0,
		OptimizationTimeoutMillis:        1000,
	}
}

func TestRunPlacesSingleObject(t *testing.T) {
	cfg := baseConfig()
	objs := []model.SolvableObject{smallSquare(1)}
	plates, err := Run(buildctx.New(false), newFakeFactory(0, 32, 8), cfg, objs, nil)
	require.NoError(t, err)
	require.Len(t, plates, 1)
	require.Len(t, plates[0].Objects, 1)
	assert.Equal(t, 1, plates[0].Objects[0].ID)
}

func TestRunSplitsAcrossBedsWhenGroupTooLarge(t *testing.T) {
	cfg := baseConfig()
	cfg.ObjectGroupSize = 4
	objs := []model.SolvableObject{smallSquare(1), smallSquare(2), smallSquare(3), smallSquare(4)}
	plates, err := Run(buildctx.New(false), newFakeFactory(0, 16, 8), cfg, objs, nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(plates), 1)

	seen := map[int]bool{}
	for _, p := range plates {
		for _, o := range p.Objects {
			seen[o.ID] = true
		}
	}
	assert.Len(t, seen, 4)
}

func TestNextGroupExtendsAcrossGluedChain(t *testing.T) {
	objs := []model.SolvableObject{
		{ID: 1, GluedToNext: true},
		{ID: 2, GluedToNext: false},
		{ID: 3},
	}
	cfg := model.SolverConfiguration{ObjectGroupSize: 1, FixedObjectGroupingLimit: 0}
	group, rest := nextGroup(objs, cfg)
	assert.Len(t, group, 2)
	assert.Len(t, rest, 1)
}

func TestNextGroupRespectsFixedGroupingLimit(t *testing.T) {
	objs := []model.SolvableObject{
		{ID: 1, GluedToNext: true},
		{ID: 2, GluedToNext: true},
		{ID: 3},
	}
	cfg := model.SolverConfiguration{ObjectGroupSize: 1, FixedObjectGroupingLimit: 2}
	group, rest := nextGroup(objs, cfg)
	assert.Len(t, group, 2)
	assert.Len(t, rest, 1)
}

func TestProgressReachesOneHundred(t *testing.T) {
	cfg := baseConfig()
	objs := []model.SolvableObject{smallSquare(1)}
	var last int
	_, err := Run(buildctx.New(false), newFakeFactory(0, 32, 8), cfg, objs, func(p int) { last = p })
	require.NoError(t, err)
	assert.Equal(t, 100, last)
}

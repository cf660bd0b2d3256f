package printcheck

import (
	"testing"

	"github.com/arl/go-seqarrange/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(minX, minY, side geom.Coord) geom.Polygon {
	return geom.Polygon{
		{minX, minY}, {minX + side, minY},
		{minX + side, minY + side}, {minX, minY + side},
	}
}

func TestCheckScheduleNoConflict(t *testing.T) {
	placements := []Placement{
		{ID: 1, Order: 0, Footprint: square(0, 0, 10), Unreachable: []geom.Polygon{square(-5, -5, 20)}},
		{ID: 2, Order: 1, Footprint: square(100, 100, 10), Unreachable: []geom.Polygon{square(95, 95, 20)}},
	}
	ok, conflicts := CheckSchedule(placements)
	assert.True(t, ok)
	assert.Empty(t, conflicts)
}

func TestCheckScheduleDetectsConflict(t *testing.T) {
	placements := []Placement{
		{ID: 1, Order: 0, Footprint: square(0, 0, 10), Unreachable: []geom.Polygon{square(-5, -5, 20)}},
		{ID: 2, Order: 1, Footprint: square(5, 5, 10), Unreachable: []geom.Polygon{square(0, 0, 20)}},
	}
	ok, conflicts := CheckSchedule(placements)
	require.False(t, ok)
	require.Len(t, conflicts, 1)
	assert.Equal(t, Conflict{Earlier: 1, Later: 2}, conflicts[0])
}

func TestCheckScheduleIgnoresLaterObjectsUnreachableZone(t *testing.T) {
	placements := []Placement{
		{ID: 1, Order: 1, Footprint: square(0, 0, 10), Unreachable: []geom.Polygon{square(-50, -50, 200)}},
		{ID: 2, Order: 0, Footprint: square(5, 5, 1), Unreachable: nil},
	}
	ok, _ := CheckSchedule(placements)
	assert.True(t, ok)
}

package grid

import (
	"sort"
	"testing"

	"github.com/arl/go-seqarrange/geom"
	"github.com/stretchr/testify/assert"
)

func TestGridQueryFindsOverlappingCandidates(t *testing.T) {
	g := New(64, 10)
	g.Insert(1, geom.Rect{MinX: 0, MinY: 0, MaxX: 5, MaxY: 5})
	g.Insert(2, geom.Rect{MinX: 100, MinY: 100, MaxX: 105, MaxY: 105})
	g.Insert(3, geom.Rect{MinX: 2, MinY: 2, MaxX: 8, MaxY: 8})

	got := g.Query(geom.Rect{MinX: 0, MinY: 0, MaxX: 9, MaxY: 9})
	sort.Ints(got)
	assert.Equal(t, []int{1, 3}, got)
}

func TestGridClearResets(t *testing.T) {
	g := New(16, 10)
	g.Insert(1, geom.Rect{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1})
	g.Clear()
	assert.Empty(t, g.Query(geom.Rect{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}))
}

func TestGridHandlesNegativeCoordinates(t *testing.T) {
	g := New(16, 10)
	g.Insert(1, geom.Rect{MinX: -15, MinY: -15, MaxX: -12, MaxY: -12})
	got := g.Query(geom.Rect{MinX: -20, MinY: -20, MaxX: -10, MaxY: -10})
	assert.Equal(t, []int{1}, got)
}

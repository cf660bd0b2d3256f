package printcheck

import (
	"github.com/arl/go-seqarrange/geom"
	"github.com/arl/go-seqarrange/internal/grid"
)

// buildGrid indexes every placement's unreachable-zone bounding box(es) so
// FindConflicts can fetch only the candidates whose zone could possibly
// reach a later object's footprint, instead of testing every earlier
// object exactly.
func buildGrid(ordered []Placement) *grid.Grid {
	cell := medianCellSize(ordered)
	g := grid.New(capacityHint(ordered), cell)
	for i, p := range ordered {
		for _, zone := range p.Unreachable {
			if len(zone) == 0 {
				continue
			}
			g.Insert(i, geom.BoundingBox(zone))
		}
	}
	return g
}

func medianCellSize(placements []Placement) geom.Coord {
	var total int64
	var n int64
	for _, p := range placements {
		for _, zone := range p.Unreachable {
			if len(zone) == 0 {
				continue
			}
			box := geom.BoundingBox(zone)
			total += int64(box.Width()) + int64(box.Height())
			n += 2
		}
	}
	if n == 0 {
		return 1
	}
	avg := geom.Coord(total / n)
	if avg <= 0 {
		return 1
	}
	return avg
}

func capacityHint(placements []Placement) int {
	n := 0
	for _, p := range placements {
		if len(p.Unreachable) > n {
			n = len(p.Unreachable)
		}
	}
	capacity := len(placements) * (n + 1) * 4
	if capacity < 16 {
		capacity = 16
	}
	return capacity
}

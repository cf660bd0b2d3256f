// Package printcheck implements the printability checker of spec.md §4.5:
// an independent, total verification pass over an already-scheduled plate,
// confirming that printing its objects in array order never collides the
// moving print head with an already-printed object's unreachable zone.
// Grounded on original_source/seq_preprocess.cpp's
// check_ScheduledObjectsForSequentialPrintability / FindSequentialConflict,
// using internal/grid for broad-phase candidate pruning the way the
// teacher's crowd package uses ProximityGrid to prune agent neighbor
// queries before an exact check.
package printcheck

import "github.com/arl/go-seqarrange/geom"

// Placement is one scheduled object as seen by the checker: its footprint
// (decimated or exact, whichever the caller supplies) and unreachable-zone
// polygons (both already translated to
// final (x, y), in whatever coordinate scale the caller is working in),
// plus its position in the bed's print order.
type Placement struct {
	ID          int
	Order       int
	Footprint   geom.Polygon
	Unreachable []geom.Polygon
}

// Conflict describes one printability violation: the later-printed object
// Later collides with the unreachable zone left behind by the
// earlier-printed object Earlier.
type Conflict struct {
	Earlier int
	Later   int
}

// CheckSchedule reports whether every placement in order prints without
// conflict. It is total: it never panics and never returns an error, only
// a boolean plus the conflicts found (spec.md §4.5 "Printability checker
// ... total").
func CheckSchedule(placements []Placement) (bool, []Conflict) {
	conflicts := FindConflicts(placements)
	return len(conflicts) == 0, conflicts
}

// FindConflicts returns every (earlier, later) pair where later's
// footprint intersects earlier's unreachable zone, in the order such
// pairs are discovered. A plate with n placements is checked in
// broad-phase-pruned O(n log n)-ish time rather than a naive O(n²) exact
// polygon test over every pair.
func FindConflicts(placements []Placement) []Conflict {
	ordered := sortedByOrder(placements)
	g := buildGrid(ordered)

	var conflicts []Conflict
	for _, later := range ordered {
		if len(later.Footprint) == 0 {
			continue
		}
		box := geom.BoundingBox(later.Footprint)
		for _, candidateIdx := range g.Query(box) {
			earlier := ordered[candidateIdx]
			if earlier.Order >= later.Order {
				continue
			}
			if conflictsWith(later.Footprint, earlier.Unreachable) {
				conflicts = append(conflicts, Conflict{Earlier: earlier.ID, Later: later.ID})
			}
		}
	}
	return conflicts
}

func conflictsWith(footprint geom.Polygon, zones []geom.Polygon) bool {
	for _, zone := range zones {
		for _, v := range footprint {
			if geom.PointInPolygon(zone, v) {
				return true
			}
		}
		for _, v := range zone {
			if geom.PointInPolygon(footprint, v) {
				return true
			}
		}
		if edgesCross(footprint, zone) {
			return true
		}
	}
	return false
}

func edgesCross(a, b geom.Polygon) bool {
	for i := 0; i < len(a); i++ {
		a1, a2 := a[i], a[(i+1)%len(a)]
		for j := 0; j < len(b); j++ {
			b1, b2 := b[j], b[(j+1)%len(b)]
			if geom.SegmentsIntersect(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return false
}

func sortedByOrder(placements []Placement) []Placement {
	out := make([]Placement, len(placements))
	copy(out, placements)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Order < out[j-1].Order; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

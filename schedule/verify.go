package schedule

import "github.com/arl/go-seqarrange/geom"

// overlaps reports whether polygon a placed at (ax,ay) exactly overlaps
// polygon b placed at (bx,by): true if any vertex of one lies inside the
// other, or any pair of edges crosses. This is the "strong" non-overlap
// check of spec.md §4.3/§5, evaluated directly against a candidate
// solution rather than delegated to the solver, so the refinement loop can
// decide in one pass which pair's SegmentsDoNotCross constraint to add
// next.
func overlaps(a geom.Polygon, ax, ay geom.Coord, b geom.Polygon, bx, by geom.Coord) bool {
	at := a.Translate(ax, ay)
	bt := b.Translate(bx, by)

	for _, v := range at {
		if geom.PointInPolygon(bt, v) {
			return true
		}
	}
	for _, v := range bt {
		if geom.PointInPolygon(at, v) {
			return true
		}
	}
	for i := 0; i < len(at); i++ {
		a1, a2 := at[i], at[(i+1)%len(at)]
		for j := 0; j < len(bt); j++ {
			b1, b2 := bt[j], bt[(j+1)%len(bt)]
			if geom.SegmentsIntersect(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return false
}

// zoneViolation reports whether any vertex of later's footprint, placed at
// (lx,ly), lies inside any of earlier's unreachable zones, placed at
// (ex,ey): the order-conditioned half of spec.md §4.4 step 2 that
// footprint-vs-footprint crossing (overlaps) does not cover, since an
// object can sit entirely clear of another's outline yet still inside the
// unreachable zone that outline casts.
func zoneViolation(earlierZones []geom.Polygon, ex, ey geom.Coord, later geom.Polygon, lx, ly geom.Coord) bool {
	lt := later.Translate(lx, ly)
	for _, z := range earlierZones {
		zt := z.Translate(ex, ey)
		for _, v := range lt {
			if geom.PointInPolygon(zt, v) {
				return true
			}
		}
	}
	return false
}

package geom

import "sort"

// ConvexMinkowskiSum computes the Minkowski sum of two convex
// counter-clockwise polygons by merging their edge vectors in increasing
// polar-angle order: the classic O(n+m) algorithm for two convex polygons.
// Behavior is undefined if either input is not convex.
func ConvexMinkowskiSum(p, q Polygon) Polygon {
	if len(p) == 0 {
		return q.Clone()
	}
	if len(q) == 0 {
		return p.Clone()
	}
	p = rotateToBottommost(EnsureCCW(p))
	q = rotateToBottommost(EnsureCCW(q))

	edgesP := edgeVectors(p)
	edgesQ := edgeVectors(q)

	all := make([]Point, 0, len(edgesP)+len(edgesQ))
	all = append(all, edgesP...)
	all = append(all, edgesQ...)
	sort.SliceStable(all, func(i, j int) bool {
		return polarLess(all[i], all[j])
	})

	start := p[0].Add(q[0])
	out := make(Polygon, 0, len(all)+1)
	cur := start
	out = append(out, cur)
	for _, e := range all[:len(all)-1] {
		cur = cur.Add(e)
		out = append(out, cur)
	}
	return EnsureCCW(out)
}

// rotateToBottommost rotates the ring so that its lowest (then leftmost)
// point comes first, a precondition for the edge-angle merge to start from
// a consistent reference point.
func rotateToBottommost(p Polygon) Polygon {
	idx := 0
	for i, v := range p {
		if v.Y < p[idx].Y || (v.Y == p[idx].Y && v.X < p[idx].X) {
			idx = i
		}
	}
	out := make(Polygon, len(p))
	for i := range p {
		out[i] = p[(idx+i)%len(p)]
	}
	return out
}

func edgeVectors(p Polygon) []Point {
	n := len(p)
	out := make([]Point, n)
	for i := 0; i < n; i++ {
		out[i] = p[(i+1)%n].Sub(p[i])
	}
	return out
}

// polarLess orders vectors by increasing polar angle starting at the
// positive X axis, the ordering the convex-hull edge merge relies on.
func polarLess(a, b Point) bool {
	ha := half(a)
	hb := half(b)
	if ha != hb {
		return ha < hb
	}
	return cross(Point{0, 0}, a, b) > 0
}

// half returns 0 for vectors in the upper half-plane (or on the positive
// X axis) and 1 otherwise, used as the primary polar-angle sort key.
func half(v Point) int {
	if v.Y > 0 || (v.Y == 0 && v.X > 0) {
		return 0
	}
	return 1
}

package zones

import "github.com/arl/go-seqarrange/geom"

// CheckConsumption reports whether polygon consumed is fully covered by
// consumer: successive boolean difference of consumed by consumer yields
// the empty set (spec.md §4.2's check_PolygonConsumation). consumer may
// itself be composed of several disjoint pieces, each subtracted in turn.
func CheckConsumption(c geom.Clipper, consumed geom.Polygon, consumer []geom.Polygon) bool {
	remainder := []geom.Polygon{consumed}
	for _, piece := range consumer {
		var next []geom.Polygon
		for _, r := range remainder {
			next = append(next, c.Difference(r, piece)...)
		}
		remainder = next
		if len(remainder) == 0 {
			return true
		}
	}
	return len(remainder) == 0
}

// Simplify drops any zone contribution strictly consumed by a larger one
// (spec.md §4.2): for every pair (i, j) with area(j) > area(i), if i is
// fully covered by j, i is dropped. Ordering between surviving
// contributions is irrelevant; their union is the semantic.
func Simplify(c geom.Clipper, contributions []geom.Polygon) []geom.Polygon {
	n := len(contributions)
	areas := make([]float64, n)
	for i, p := range contributions {
		areas[i] = p.Area()
	}
	dropped := make([]bool, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || dropped[i] || areas[j] <= areas[i] {
				continue
			}
			if CheckConsumption(c, contributions[i], []geom.Polygon{contributions[j]}) {
				dropped[i] = true
				break
			}
		}
	}
	out := make([]geom.Polygon, 0, n)
	for i, p := range contributions {
		if !dropped[i] {
			out = append(out, p)
		}
	}
	return out
}

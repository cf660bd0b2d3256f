package geom

import "github.com/akavel/polyclip-go"

// PolyclipAdapter implements Clipper over github.com/akavel/polyclip-go
// (a pure-Go implementation of the Vatti clipping algorithm), the Go
// ecosystem's counterpart of the Clipper library the original C++ uses
// through Slic3r::Polygon.
type PolyclipAdapter struct{}

// NewPolyclipAdapter returns the default, production Clipper
// implementation.
func NewPolyclipAdapter() PolyclipAdapter { return PolyclipAdapter{} }

func (PolyclipAdapter) Union(polys []Polygon) []Polygon {
	if len(polys) == 0 {
		return nil
	}
	acc := toPolyclip(polys[0])
	for _, p := range polys[1:] {
		acc = acc.Construct(polyclip.UNION, toPolyclip(p))
	}
	return fromPolyclip(acc)
}

func (PolyclipAdapter) Difference(p, q Polygon) []Polygon {
	res := toPolyclip(p).Construct(polyclip.DIFFERENCE, toPolyclip(q))
	return fromPolyclip(res)
}

// MinkowskiSum computes the Minkowski sum of two convex polygons via the
// classic angle-merge of their edge vectors (sorted by polar angle). No
// pack dependency (including polyclip-go) implements Minkowski sum, so
// this is the module's own convex-only routine, exactly matching
// spec.md §4.2's "Minkowski sum (convex levels)" requirement.
func (PolyclipAdapter) MinkowskiSum(p, q Polygon) []Polygon {
	return []Polygon{ConvexMinkowskiSum(p, q)}
}

func toPolyclip(p Polygon) polyclip.Polygon {
	c := make(polyclip.Contour, len(p))
	for i, v := range p {
		c[i] = polyclip.Point{X: float64(v.X), Y: float64(v.Y)}
	}
	return polyclip.Polygon{c}
}

func fromPolyclip(poly polyclip.Polygon) []Polygon {
	out := make([]Polygon, 0, len(poly))
	for _, c := range poly {
		if len(c) == 0 {
			continue
		}
		p := make(Polygon, len(c))
		for i, v := range c {
			p[i] = Point{roundCoord(v.X), roundCoord(v.Y)}
		}
		out = append(out, EnsureCCW(p))
	}
	return out
}

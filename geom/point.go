// Package geom provides the exact-integer 2-D geometric primitives the
// arrangement engine is built on: points and polygons in slicer or solver
// scale, bounding boxes, grounding/translation, Douglas-Peucker decimation
// with containment growth, plate fit checks, and the Polygon/Clipper
// capability set (union, difference, Minkowski sum) spec.md §6 asks for.
//
// Every Polygon returned by a constructor in this package is wound
// counter-clockwise; callers that build a Polygon by hand should call
// EnsureCCW before passing it on.
package geom

import "fmt"

// Coord is the module's coordinate unit. At slicer scale it is a
// micrometers-style unit (~1e5 units/mm); at solver scale it is that value
// divided by a scale factor supplied by the caller.
type Coord = int32

// Point is a single 2-D vertex.
type Point struct {
	X, Y Coord
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Polygon is an ordered ring of vertices, no implicit closing edge stored
// (the edge from the last point back to the first is implied).
type Polygon []Point

// Clone returns an independent copy of p.
func (p Polygon) Clone() Polygon {
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// SignedArea2 returns twice the signed area of p (positive iff p is wound
// counter-clockwise). Using 2x the area keeps the computation in exact
// int64 arithmetic (spec.md §9: cross products of large slicer-scale
// coordinates need 64-bit arithmetic to avoid overflow).
func (p Polygon) SignedArea2() int64 {
	var sum int64
	n := len(p)
	for i := 0; i < n; i++ {
		a := p[i]
		b := p[(i+1)%n]
		sum += int64(a.X)*int64(b.Y) - int64(b.X)*int64(a.Y)
	}
	return sum
}

// Area returns the unsigned area of p.
func (p Polygon) Area() float64 {
	a := p.SignedArea2()
	if a < 0 {
		a = -a
	}
	return float64(a) / 2
}

// IsCCW reports whether p is wound counter-clockwise.
func (p Polygon) IsCCW() bool { return p.SignedArea2() > 0 }

// EnsureCCW returns p wound counter-clockwise, reversing it if necessary.
// Every polygon invariant in this module ("every stored footprint is
// counter-clockwise; every stored unreachable zone polygon is
// counter-clockwise", spec.md §3) is established by calling this at
// construction boundaries.
func EnsureCCW(p Polygon) Polygon {
	if len(p) < 3 || p.IsCCW() {
		return p.Clone()
	}
	out := make(Polygon, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}

// Translate returns p shifted by (dx, dy).
func (p Polygon) Translate(dx, dy Coord) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = Point{v.X + dx, v.Y + dy}
	}
	return out
}

// Shift is an alias of Translate matching the original seq_preprocess.cpp
// naming (shift_Polygon), kept because textformat and zones call sites read
// more naturally with it.
func Shift(p Polygon, dx, dy Coord) Polygon { return p.Translate(dx, dy) }

// Rect is an axis-aligned bounding box, inclusive on both ends.
type Rect struct {
	MinX, MinY, MaxX, MaxY Coord
}

// Width returns the rectangle's X extent.
func (r Rect) Width() Coord { return r.MaxX - r.MinX }

// Height returns the rectangle's Y extent.
func (r Rect) Height() Coord { return r.MaxY - r.MinY }

// Center returns the rectangle's center point (integer-truncated).
func (r Rect) Center() Point { return Point{(r.MinX + r.MaxX) / 2, (r.MinY + r.MaxY) / 2} }

// Contains reports whether point q lies inside or on the boundary of r.
func (r Rect) Contains(q Point) bool {
	return q.X >= r.MinX && q.X <= r.MaxX && q.Y >= r.MinY && q.Y <= r.MaxY
}

// BoundingBox computes the axis-aligned bounding box of p. Panics on an
// empty polygon: callers must have already rejected empty height-0
// footprints (spec.md §7, "Internal contradictions").
func BoundingBox(p Polygon) Rect {
	if len(p) == 0 {
		panic("geom: BoundingBox of empty polygon")
	}
	r := Rect{p[0].X, p[0].Y, p[0].X, p[0].Y}
	for _, v := range p[1:] {
		if v.X < r.MinX {
			r.MinX = v.X
		}
		if v.X > r.MaxX {
			r.MaxX = v.X
		}
		if v.Y < r.MinY {
			r.MinY = v.Y
		}
		if v.Y > r.MaxY {
			r.MaxY = v.Y
		}
	}
	return r
}

// PointInPolygon reports whether q lies inside or on the boundary of p,
// using a standard ray-casting test with an explicit on-edge check so
// boundary points (common after grounding/decimation) are never missed.
func PointInPolygon(p Polygon, q Point) bool {
	n := len(p)
	if n == 0 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p[j], p[i]
		if onSegment(a, b, q) {
			return true
		}
		if (a.Y > q.Y) != (b.Y > q.Y) {
			// x-coordinate of the intersection of edge (a,b) with the
			// horizontal ray from q, compared exactly via cross-multiply.
			num := int64(b.X-a.X)*int64(q.Y-a.Y)
			den := int64(b.Y - a.Y)
			var xInt int64
			if den < 0 {
				num, den = -num, -den
			}
			xInt = int64(a.X)*den + num
			if int64(q.X)*den < xInt {
				inside = !inside
			} else if int64(q.X)*den == xInt {
				return true
			}
		}
	}
	return inside
}

func onSegment(a, b, q Point) bool {
	cross := int64(b.X-a.X)*int64(q.Y-a.Y) - int64(b.Y-a.Y)*int64(q.X-a.X)
	if cross != 0 {
		return false
	}
	if q.X < min32(a.X, b.X) || q.X > max32(a.X, b.X) {
		return false
	}
	if q.Y < min32(a.Y, b.Y) || q.Y > max32(a.Y, b.Y) {
		return false
	}
	return true
}

func min32(a, b Coord) Coord {
	if a < b {
		return a
	}
	return b
}

func max32(a, b Coord) Coord {
	if a > b {
		return a
	}
	return b
}

// SegmentsIntersect reports whether closed segments (a,b) and (c,d) touch
// or cross: a proper crossing, a collinear overlap, or an endpoint of one
// lying on the other (including a shared endpoint) all count. Used by
// printcheck's strong-overlap test and schedule's exact overlap check.
func SegmentsIntersect(a, b, c, d Point) bool {
	d1 := cross(c, d, a)
	d2 := cross(c, d, b)
	d3 := cross(a, b, c)
	d4 := cross(a, b, d)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	if d1 == 0 && onSegment(c, d, a) {
		return true
	}
	if d2 == 0 && onSegment(c, d, b) {
		return true
	}
	if d3 == 0 && onSegment(a, b, c) {
		return true
	}
	if d4 == 0 && onSegment(a, b, d) {
		return true
	}
	return false
}

func cross(a, b, q Point) int64 {
	return int64(b.X-a.X)*int64(q.Y-a.Y) - int64(b.Y-a.Y)*int64(q.X-a.X)
}

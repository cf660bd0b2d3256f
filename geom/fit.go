package geom

// PlateBounds carries the two representations of the build plate a fit
// check can be run against: its bounding box always, and optionally its
// exact (convex, ideally rectangular) polygon.
type PlateBounds struct {
	BoundingBox Rect
	Polygon     Polygon // nil if no polygonal plate was supplied
}

// CheckSizeFitsPlate reports whether p's bounding-box dimensions do not
// exceed the plate's bounding-box dimensions, matching
// check_PolygonSizeFitToPlate: the check is always against the bounding
// box, even when a polygonal plate is supplied.
func CheckSizeFitsPlate(plate PlateBounds, p Polygon) bool {
	bb := BoundingBox(p)
	return bb.Width() <= plate.BoundingBox.Width() && bb.Height() <= plate.BoundingBox.Height()
}

// CheckPositionWithinPlate reports whether p translated by (x, y) lies
// within the plate, matching check_PolygonPositionWithinPlate: the
// translated bounding box must lie within the plate's bounding box; if a
// polygonal plate was supplied, all four corners of the translated
// bounding box must additionally lie inside that polygon.
//
// This is the approximation spec.md §4.1/§9 Open Question 1 documents:
// checking only the four bounding-box corners against a concave plate
// polygon can accept placements that actually stick out. Callers that need
// the stricter test should use Contains instead.
func CheckPositionWithinPlate(plate PlateBounds, x, y Coord, p Polygon) bool {
	bb := BoundingBox(p)
	tbb := Rect{bb.MinX + x, bb.MinY + y, bb.MaxX + x, bb.MaxY + y}

	if !plate.BoundingBox.Contains(Point{tbb.MinX, tbb.MinY}) ||
		!plate.BoundingBox.Contains(Point{tbb.MaxX, tbb.MaxY}) {
		return false
	}
	if plate.Polygon == nil {
		return true
	}
	corners := []Point{
		{tbb.MinX, tbb.MinY}, {tbb.MaxX, tbb.MinY},
		{tbb.MaxX, tbb.MaxY}, {tbb.MinX, tbb.MaxY},
	}
	for _, c := range corners {
		if !PointInPolygon(plate.Polygon, c) {
			return false
		}
	}
	return true
}

// Contains reports whether p, translated by (x, y), is fully contained in
// the plate polygon (a proper polygon-in-polygon containment test, not
// just its four bounding-box corners). Exposed per spec.md §9 Open
// Question 1's recommendation, for callers that want the stricter,
// non-default check. Implemented via the Polygon/Clipper capability: p
// fits inside plate iff Difference(p, plate) is empty.
func Contains(c Clipper, plate Polygon, x, y Coord, p Polygon) bool {
	translated := p.Translate(x, y)
	diff := c.Difference(translated, plate)
	return len(diff) == 0
}

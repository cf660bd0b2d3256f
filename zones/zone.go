// Package zones implements the unreachable-zone builder (spec.md §4.2):
// per-height Minkowski/box expansion of an object's footprint by the
// printer's extruder silhouette, and the consumption-based simplification
// that drops zone contributions already covered by a larger one.
package zones

import (
	"fmt"

	"github.com/arl/assertgo"
	"github.com/arl/go-seqarrange/geom"
	"github.com/arl/go-seqarrange/model"
)

// BuildConvexZone computes the unreachable-zone contributions of a convex
// extruder height: the Minkowski sum of the object polygon with each
// extruder-slice polygon at that height (spec.md §4.2, "convex_heights").
func BuildConvexZone(c geom.Clipper, objectPolygon geom.Polygon, extruderPolys []geom.Polygon) []geom.Polygon {
	var out []geom.Polygon
	for _, e := range extruderPolys {
		out = append(out, c.MinkowskiSum(objectPolygon, e)...)
	}
	return out
}

// BuildBoxZone computes the unreachable-zone contributions of a box
// extruder height: an axis-aligned rectangle whose min/max equals the sum
// of the object's and the extruder slice's bounding-box min/max (spec.md
// §4.2, "box_heights" — a coarse but conservative expansion).
func BuildBoxZone(objectPolygon geom.Polygon, extruderPolys []geom.Polygon) []geom.Polygon {
	objBB := geom.BoundingBox(objectPolygon)
	out := make([]geom.Polygon, 0, len(extruderPolys))
	for _, e := range extruderPolys {
		eBB := geom.BoundingBox(e)
		rect := geom.Polygon{
			{objBB.MinX + eBB.MinX, objBB.MinY + eBB.MinY},
			{objBB.MaxX + eBB.MaxX, objBB.MinY + eBB.MinY},
			{objBB.MaxX + eBB.MaxX, objBB.MaxY + eBB.MaxY},
			{objBB.MinX + eBB.MinX, objBB.MaxY + eBB.MaxY},
		}
		out = append(out, rect)
	}
	return out
}

// BuildAllZones builds the unreachable-zone contributions of every slice
// of obj against the printer geometry, at slicer scale, raising
// PrinterSliceMismatchError for a non-empty slice at an undeclared height
// and InternalContradictionError (spec.md §7, internal-contradiction
// class) for a declared height with no extruder polygon.
func BuildAllZones(c geom.Clipper, printer model.PrinterGeometry, obj model.ObjectToPrint) ([]geom.Polygon, error) {
	var contributions []geom.Polygon
	for _, slice := range obj.Slices {
		if len(slice.Polygon) == 0 {
			continue
		}
		isConvex := printer.IsConvexHeight(slice.Height)
		isBox := printer.IsBoxHeight(slice.Height)
		if !isConvex && !isBox {
			return nil, &model.PrinterSliceMismatchError{ObjectID: obj.ID, Height: slice.Height}
		}
		extruderPolys, ok := printer.ExtruderSlices[slice.Height]
		assert.True(ok, "height %d declared convex/box but missing from ExtruderSlices", slice.Height)
		assert.True(len(extruderPolys) > 0, "height %d has zero extruder polygons", slice.Height)
		if !ok || len(extruderPolys) == 0 {
			return nil, &model.InternalContradictionError{
				Msg: fmt.Sprintf("height %d declared convex/box but has no extruder polygons", slice.Height),
			}
		}

		if isConvex {
			contributions = append(contributions, BuildConvexZone(c, slice.Polygon, extruderPolys)...)
		}
		if isBox {
			contributions = append(contributions, BuildBoxZone(slice.Polygon, extruderPolys)...)
		}
	}
	return contributions, nil
}

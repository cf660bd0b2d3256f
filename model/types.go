// Package model holds the arrangement engine's data model (spec.md §3):
// the caller-facing input/output types and the scheduler's internal
// SolvableObject. It sits below geom and above zones/solve/schedule so
// those packages, and the root seqarrange package, can all share one
// definition without an import cycle.
package model

import "github.com/arl/go-seqarrange/geom"

// HeightSlice pairs a printer height with the object's polygon at that
// height. An empty Polygon means the height is skipped for this object.
type HeightSlice struct {
	Height  geom.Coord
	Polygon geom.Polygon
}

// ObjectToPrint is what the caller hands in per object (spec.md §3).
type ObjectToPrint struct {
	ID          int
	GluedToNext bool
	TotalHeight geom.Coord
	Slices      []HeightSlice
}

// Footprint returns the object's height-0 slice, its printable footprint,
// or (nil, false) if none is present.
func (o ObjectToPrint) Footprint() (geom.Polygon, bool) {
	for _, s := range o.Slices {
		if s.Height == 0 && len(s.Polygon) > 0 {
			return s.Polygon, true
		}
	}
	return nil, false
}

// PrinterGeometry is the printer's physical envelope as seen from above,
// sliced at specific heights (spec.md §3).
type PrinterGeometry struct {
	Plate          geom.Polygon
	ConvexHeights  []geom.Coord
	BoxHeights     []geom.Coord
	ExtruderSlices map[geom.Coord][]geom.Polygon
}

// IsConvexHeight reports whether h is one of the printer's convex heights.
func (pg PrinterGeometry) IsConvexHeight(h geom.Coord) bool {
	for _, c := range pg.ConvexHeights {
		if c == h {
			return true
		}
	}
	return false
}

// IsBoxHeight reports whether h is one of the printer's box heights.
func (pg PrinterGeometry) IsBoxHeight(h geom.Coord) bool {
	for _, c := range pg.BoxHeights {
		if c == h {
			return true
		}
	}
	return false
}

// DecimationPrecision selects the Douglas-Peucker tolerance used when
// decimating object footprints (spec.md §3).
type DecimationPrecision int

const (
	DecimationUndefined DecimationPrecision = iota
	DecimationLow
	DecimationHigh
)

// Tolerance maps a DecimationPrecision to a numeric Douglas-Peucker
// tolerance, in the same unit as the polygon being decimated.
func (d DecimationPrecision) Tolerance() float64 {
	switch d {
	case DecimationLow:
		return 2000
	case DecimationHigh:
		return 200
	default:
		return 0 // Undefined: no simplification, Decimate becomes a no-op-ish pass
	}
}

// SolverConfiguration carries every knob of the scheduler and solver
// (spec.md §3).
type SolverConfiguration struct {
	PlateBoundingBox     geom.Rect
	PlateBoundingPolygon geom.Polygon // nil => rectangle-only fit/position checks

	BoundingBoxSizeOptimizationStep geom.Coord
	MinimumBoundingBoxSize          geom.Coord

	MaxRefines int

	ObjectGroupSize          int
	FixedObjectGroupingLimit int
	TemporalSpread           int

	DecimationPrecision DecimationPrecision

	// OptimizationTimeoutMillis is handed unchanged to the SMT solver per
	// query (spec.md §5: "a single timeout bound is expressed as a textual
	// decimal... handed unchanged to the SMT solver").
	OptimizationTimeoutMillis int

	Centered bool

	// MaxDecimationGrowthSteps bounds geom.Decimate's containment-growth
	// loop (spec.md §9 Open Question 2). Zero means geom.DefaultMaxGrowthSteps.
	MaxDecimationGrowthSteps int

	// Strict, if true, makes the scheduler verify its own output with the
	// printability checker before returning (an ambient convenience, see
	// SPEC_FULL.md §8).
	Strict bool
}

// PlateBounds adapts the configuration's plate fields to geom.PlateBounds.
func (c SolverConfiguration) PlateBounds() geom.PlateBounds {
	return geom.PlateBounds{BoundingBox: c.PlateBoundingBox, Polygon: c.PlateBoundingPolygon}
}

// SolvableObject is the preprocessed form of an ObjectToPrint (spec.md
// §3): a decimated, counter-clockwise, plate-scaled footprint plus its
// unreachable-zone polygons, both in solver scale.
type SolvableObject struct {
	ID                  int
	Polygon             geom.Polygon
	UnreachablePolygons []geom.Polygon
	GluedToNext         bool
}

// UnreachableArea returns the sum of the areas of o's unreachable
// polygons, used by the glue-low-objects rule.
func (o SolvableObject) UnreachableArea() float64 {
	var total float64
	for _, p := range o.UnreachablePolygons {
		total += p.Area()
	}
	return total
}

// ScheduledObject is one object's final (x, y) placement on a plate,
// in the temporal print order of the plate it belongs to (spec.md §3).
type ScheduledObject struct {
	ID   int
	X, Y geom.Coord
}

// ScheduledPlate is an ordered (by temporal print order) list of object
// placements sharing one print bed (spec.md §3).
type ScheduledPlate struct {
	Objects []ScheduledObject
}

// Package seqarrange is the public API of the sequential-print arrangement
// solver (spec.md §1/§4.6): given 3D objects as per-height polygon slices
// and a printer's extruder/gantry/hose collision geometry, it decides bed
// assignment, (x, y) placement, and print order so objects can be printed
// one at a time without the moving print head ever colliding with an
// already-printed object.
package seqarrange

import (
	"github.com/arl/go-seqarrange/geom"
	"github.com/arl/go-seqarrange/model"
)

// SlicerScaleFactor converts between slicer-scale and solver-scale
// coordinates (original_source's SEQ_SLICER_SCALE_FACTOR).
const SlicerScaleFactor geom.Coord = 100000

// Coord is the slicer-scale coordinate unit shared by every polygon and
// position in this package.
type Coord = geom.Coord

// Point, Polygon, and the printer/object/configuration/result types are
// re-exported from the lower-level model and geom packages so callers
// never need to import them directly; seqarrange is the one import
// surface of spec.md §4.6.
type (
	Point  = geom.Point
	Rect   = geom.Rect
	Polygon = geom.Polygon

	HeightSlice         = model.HeightSlice
	ObjectToPrint        = model.ObjectToPrint
	PrinterGeometry      = model.PrinterGeometry
	DecimationPrecision  = model.DecimationPrecision
	SolverConfiguration  = model.SolverConfiguration
	ScheduledObject      = model.ScheduledObject
	ScheduledPlate       = model.ScheduledPlate

	// SolvableObject is the preprocessed form produced by
	// PrepareObjectsForSequentialPrint, re-exported so batch callers can
	// hold onto it between calls to the lower-level schedule overload
	// (spec.md §4.6 "Internal" family) without importing model directly.
	SolvableObject = model.SolvableObject
)

// Decimation precision levels (spec.md §3).
const (
	DecimationUndefined = model.DecimationUndefined
	DecimationLow       = model.DecimationLow
	DecimationHigh      = model.DecimationHigh
)

// Typed errors (spec.md §7), re-exported so callers can errors.As against
// this package without importing model directly.
type (
	ObjectTooLargeError        = model.ObjectTooLargeError
	SolverTimeoutError         = model.SolverTimeoutError
	PrinterSliceMismatchError  = model.PrinterSliceMismatchError
	InternalContradictionError = model.InternalContradictionError
)

// ProgressFunc reports percent-complete, 0-100, never decreasing, called
// synchronously between solver queries (spec.md §5). It must be cheap and
// non-blocking; the scheduler never depends on it for control flow.
type ProgressFunc func(percent int)

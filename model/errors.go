package model

import (
	"fmt"

	"github.com/arl/go-seqarrange/geom"
)

// ObjectTooLargeError is returned when a single object's footprint,
// after all preprocessing, does not fit in the plate (spec.md §7). Fatal
// for the whole API call.
type ObjectTooLargeError struct {
	ObjectID int
}

func (e *ObjectTooLargeError) Error() string {
	return fmt.Sprintf("seqarrange: object %d does not fit on the plate", e.ObjectID)
}

// SolverTimeoutError is returned when the SMT solver returned Unknown for
// a minimum-viable bed-bounding-box query (spec.md §7). Fatal for the API
// call, not retryable without changing configuration.
type SolverTimeoutError struct {
	ObjectIDs []int
}

func (e *SolverTimeoutError) Error() string {
	return fmt.Sprintf("seqarrange: solver timed out scheduling objects %v", e.ObjectIDs)
}

// PrinterSliceMismatchError is returned when an object has a non-empty
// slice at a height not declared in the printer's convex or box heights
// (spec.md §7).
type PrinterSliceMismatchError struct {
	ObjectID int
	Height   geom.Coord
}

func (e *PrinterSliceMismatchError) Error() string {
	return fmt.Sprintf("seqarrange: object %d has a slice at height %d, which the printer geometry does not declare", e.ObjectID, e.Height)
}

// InternalContradictionError reports an invalid-input assertion failure
// (spec.md §7): an empty height-0 polygon list, a missing extruder slice
// for a declared height, and similar invariant violations. The library
// never silently coerces these; they are reported, not swallowed.
type InternalContradictionError struct {
	Msg string
}

func (e *InternalContradictionError) Error() string {
	return "seqarrange: internal contradiction: " + e.Msg
}

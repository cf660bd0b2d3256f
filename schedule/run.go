// Package schedule implements the sub-global scheduler (spec.md §4.4): the
// outer bed-allocation loop that consumes preprocessed objects in batches,
// and packGroup, which drives a solve.Session through a bounding-box
// shrink search and a weak-to-strong non-overlap refinement loop for each
// batch. Grounded on original_source/seq_preprocess.cpp's
// arrange_ObjectsForSequentialPrint call structure (bed loop, group
// composition, glued-object chain extension).
package schedule

import (
	"github.com/arl/go-seqarrange/internal/buildctx"
	"github.com/arl/go-seqarrange/model"
	"github.com/arl/go-seqarrange/solve"
)

// ProgressFunc reports percent-complete, 0-100, never decreasing. It is
// called synchronously between solver queries and must be cheap and
// non-blocking (spec.md §5); Run never depends on it for control flow.
type ProgressFunc func(percent int)

// Run schedules every object in objs across as many beds as needed,
// returning one ScheduledPlate per bed in allocation order. Objects that a
// bed attempt could not fit are carried over to the next bed
// automatically (spec.md §4.4's "bed-splitting overflow").
func Run(ctx *buildctx.Context, factory solve.Factory, cfg model.SolverConfiguration, objs []model.SolvableObject, progress ProgressFunc) ([]model.ScheduledPlate, error) {
	remaining := append([]model.SolvableObject(nil), objs...)
	total := len(remaining)
	var plates []model.ScheduledPlate

	for len(remaining) > 0 {
		group, rest := nextGroup(remaining, cfg)

		ctx.StartTimer(buildctx.PhaseGroupComposition)
		plate, unplaced, err := packGroup(ctx, factory, cfg, group)
		ctx.StopTimer(buildctx.PhaseGroupComposition)
		if err != nil {
			return nil, err
		}

		plates = append(plates, plate)
		remaining = append(append([]model.SolvableObject(nil), unplaced...), rest...)

		if progress != nil && total > 0 {
			done := total - len(remaining)
			progress((done * 100) / total)
		}
	}
	if progress != nil {
		progress(100)
	}
	return plates, nil
}

// nextGroup selects the next batch of objects to attempt on one bed:
// cfg.ObjectGroupSize objects by default, extended one at a time across a
// glued_to_next chain so a glued pair is never split across the group
// boundary, capped by cfg.FixedObjectGroupingLimit.
func nextGroup(remaining []model.SolvableObject, cfg model.SolverConfiguration) (group, rest []model.SolvableObject) {
	size := cfg.ObjectGroupSize
	if size <= 0 || size > len(remaining) {
		size = len(remaining)
	}
	limit := cfg.FixedObjectGroupingLimit
	if limit <= 0 {
		limit = len(remaining)
	}
	for size < len(remaining) && size < limit && remaining[size-1].GluedToNext {
		size++
	}
	if size > limit {
		size = limit
	}
	return remaining[:size], remaining[size:]
}

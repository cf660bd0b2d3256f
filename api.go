package seqarrange

import (
	"fmt"

	"github.com/arl/go-seqarrange/geom"
	"github.com/arl/go-seqarrange/internal/buildctx"
	"github.com/arl/go-seqarrange/model"
	"github.com/arl/go-seqarrange/printcheck"
	"github.com/arl/go-seqarrange/schedule"
	"github.com/arl/go-seqarrange/solve"
	"github.com/arl/go-seqarrange/solve/z3solver"
	"github.com/arl/go-seqarrange/zones"
)

// z3Factory builds a fresh solve.Session backed by Z3, the module's one
// concrete SMT backend (spec.md §4.6/§6).
func z3Factory() (solve.Session, error) { return z3solver.New() }

// solverFactory is the seam tests substitute a deterministic fake solver
// through, the same pattern buildctx.nowFunc uses for timers: production
// code never reassigns it.
var solverFactory solve.Factory = z3Factory

// PrepareObjectsForSequentialPrint preprocesses objs against printer
// (spec.md §4.1/§4.2's decimate + unreachable-zone pipeline), returning
// the SolvableObjects the lower-level schedule overloads consume. Batch
// callers that reschedule overlapping subsets of the same object set
// across several calls can preprocess once and reuse the result, per
// spec.md §4.6's "Internal" family.
func PrepareObjectsForSequentialPrint(printer PrinterGeometry, cfg SolverConfiguration, objs []ObjectToPrint) ([]SolvableObject, error) {
	c := geom.NewPolyclipAdapter()
	return zones.PrepareAll(c, printer, cfg, objs, SlicerScaleFactor, true)
}

// ScheduleObjectsForSequentialPrint is the main entry point of spec.md
// §4.6's *Schedule* family: it preprocesses objs against printer, then
// schedules them across as many beds as needed, returning one
// ScheduledPlate per bed in allocation order. Positions in the result are
// in slicer scale, ready to hand back to the caller's slicer.
func ScheduleObjectsForSequentialPrint(printer PrinterGeometry, cfg SolverConfiguration, objs []ObjectToPrint, progress ProgressFunc) ([]ScheduledPlate, error) {
	solvable, err := PrepareObjectsForSequentialPrint(printer, cfg, objs)
	if err != nil {
		return nil, err
	}
	return ScheduleSolvableObjectsForSequentialPrint(cfg, solvable, progress)
}

// ScheduleObjectsForSequentialPrintInPlace is the in-place overload of
// ScheduleObjectsForSequentialPrint (spec.md §4.6): it writes the result
// into *out instead of allocating and returning a new slice, for callers
// that reuse one result buffer across repeated calls.
func ScheduleObjectsForSequentialPrintInPlace(printer PrinterGeometry, cfg SolverConfiguration, objs []ObjectToPrint, progress ProgressFunc, out *[]ScheduledPlate) error {
	plates, err := ScheduleObjectsForSequentialPrint(printer, cfg, objs, progress)
	if err != nil {
		return err
	}
	*out = plates
	return nil
}

// ScheduleSolvableObjectsForSequentialPrint is the lower-level overload of
// spec.md §4.6's "Internal" family: it takes an already-preprocessed
// unreachable-zone set (see PrepareObjectsForSequentialPrint) directly,
// skipping the decimate/zone-build pass, for batch scenarios that
// reschedule the same objects repeatedly.
func ScheduleSolvableObjectsForSequentialPrint(cfg SolverConfiguration, objs []SolvableObject, progress ProgressFunc) ([]ScheduledPlate, error) {
	ctx := buildctx.New(false)

	var sp schedule.ProgressFunc
	if progress != nil {
		sp = func(percent int) { progress(percent) }
	}

	solverCfg := scaleDownConfig(cfg, SlicerScaleFactor)
	plates, err := schedule.Run(ctx, solverFactory, solverCfg, objs, sp)
	if err != nil {
		return nil, err
	}

	scaled := scaleUpPlates(plates)

	if cfg.Strict {
		if ok, conflict := checkInternal(objs, scaled); !ok {
			return nil, &model.InternalContradictionError{
				Msg: fmt.Sprintf("scheduler produced an unprintable arrangement: object %d collides with object %d's unreachable zone", conflict.Later, conflict.Earlier),
			}
		}
	}

	return scaled, nil
}

// scaleDownConfig converts cfg's plate geometry from slicer scale (the
// public, NewSolverConfiguration-facing representation) to solver scale,
// matching the SolvableObjects PrepareObjectsForSequentialPrint produces
// (see zones.Prepare's own ScaleDown of each object's footprint). Every
// other field of cfg (refine/group/timeout knobs) is scale-independent
// and carried through unchanged.
func scaleDownConfig(cfg model.SolverConfiguration, k geom.Coord) model.SolverConfiguration {
	out := cfg
	out.PlateBoundingBox = geom.Rect{
		MinX: cfg.PlateBoundingBox.MinX / k, MinY: cfg.PlateBoundingBox.MinY / k,
		MaxX: cfg.PlateBoundingBox.MaxX / k, MaxY: cfg.PlateBoundingBox.MaxY / k,
	}
	if cfg.PlateBoundingPolygon != nil {
		out.PlateBoundingPolygon = geom.ScaleDown(cfg.PlateBoundingPolygon, k)
	}
	out.BoundingBoxSizeOptimizationStep = maxCoord(cfg.BoundingBoxSizeOptimizationStep/k, 1)
	out.MinimumBoundingBoxSize = cfg.MinimumBoundingBoxSize / k
	return out
}

func maxCoord(a, b geom.Coord) geom.Coord {
	if a > b {
		return a
	}
	return b
}

// scaleUpPlates translates every placement of every plate from solver
// scale back to slicer scale (the inverse of zones.Prepare's ScaleDown).
func scaleUpPlates(plates []model.ScheduledPlate) []model.ScheduledPlate {
	out := make([]model.ScheduledPlate, len(plates))
	for i, plate := range plates {
		objs := make([]model.ScheduledObject, len(plate.Objects))
		for j, o := range plate.Objects {
			objs[j] = model.ScheduledObject{
				ID: o.ID,
				X:  o.X * SlicerScaleFactor,
				Y:  o.Y * SlicerScaleFactor,
			}
		}
		out[i] = model.ScheduledPlate{Objects: objs}
	}
	return out
}

// checkInternal runs the printability checker (spec.md §4.5) over the
// scheduler's own output, using each object's solver-scale footprint and
// unreachable zones translated by the scaled-up placement, as the
// cfg.Strict self-verification pass.
func checkInternal(objs []model.SolvableObject, plates []model.ScheduledPlate) (bool, printcheck.Conflict) {
	byID := make(map[int]model.SolvableObject, len(objs))
	for _, o := range objs {
		byID[o.ID] = o
	}

	var placements []printcheck.Placement
	for _, plate := range plates {
		for order, sched := range plate.Objects {
			so, ok := byID[sched.ID]
			if !ok {
				continue
			}
			placements = append(placements, printcheck.Placement{
				ID:          sched.ID,
				Order:       order,
				Footprint:   so.Polygon.Clone().Translate(sched.X/SlicerScaleFactor, sched.Y/SlicerScaleFactor),
				Unreachable: translateAll(so.UnreachablePolygons, sched.X/SlicerScaleFactor, sched.Y/SlicerScaleFactor),
			})
		}
	}

	ok, conflicts := printcheck.CheckSchedule(placements)
	if ok {
		return true, printcheck.Conflict{}
	}
	return false, conflicts[0]
}

func translateAll(polys []geom.Polygon, x, y geom.Coord) []geom.Polygon {
	out := make([]geom.Polygon, len(polys))
	for i, p := range polys {
		out[i] = p.Translate(x, y)
	}
	return out
}

// CheckScheduledObjectsForSequentialPrintability is spec.md §4.6's total
// *Check* entry point: it reports whether plates, printed in array order
// on their respective beds, never collides a later object with an
// earlier object's unreachable zone. It never panics and never returns an
// error.
func CheckScheduledObjectsForSequentialPrintability(printer PrinterGeometry, cfg SolverConfiguration, objs []ObjectToPrint, plates []ScheduledPlate) bool {
	ok, _ := CheckScheduledObjectsForSequentialConflict(printer, cfg, objs, plates)
	return ok
}

// CheckScheduledObjectsForSequentialConflict is the conflict-reporting
// half of spec.md §4.6's *Check* family: like
// CheckScheduledObjectsForSequentialPrintability, but on failure it also
// returns the first (earlier, later) conflicting object-ID pair found.
// The checker uses each object's exact original footprint and unreachable
// zone (not the decimator's enlarged one) per spec.md §4.5's note that
// this guarantees the checker never under-approximates collisions; cfg is
// accepted for the *Check* family's uniform signature (spec.md §4.6) but
// is not used, since unreachable-zone construction does not decimate.
func CheckScheduledObjectsForSequentialConflict(printer PrinterGeometry, cfg SolverConfiguration, objs []ObjectToPrint, plates []ScheduledPlate) (bool, *Conflict) {
	byID := make(map[int]ObjectToPrint, len(objs))
	for _, o := range objs {
		byID[o.ID] = o
	}
	c := geom.NewPolyclipAdapter()

	var placements []printcheck.Placement
	for _, plate := range plates {
		for order, sched := range plate.Objects {
			obj, ok := byID[sched.ID]
			if !ok {
				continue
			}
			footprint, _ := obj.Footprint()
			contributions, err := zones.BuildAllZones(c, printer, obj)
			if err != nil {
				continue
			}
			unreachable := zones.Simplify(c, contributions)
			placements = append(placements, printcheck.Placement{
				ID:          sched.ID,
				Order:       order,
				Footprint:   footprint.Clone().Translate(sched.X, sched.Y),
				Unreachable: translateAll(unreachable, sched.X, sched.Y),
			})
		}
	}

	ok, conflicts := printcheck.CheckSchedule(placements)
	if ok {
		return true, nil
	}
	return false, &Conflict{Earlier: conflicts[0].Earlier, Later: conflicts[0].Later}
}

// Conflict is the (earlier, later) object-ID pair
// CheckScheduledObjectsForSequentialConflict returns on failure.
type Conflict = printcheck.Conflict

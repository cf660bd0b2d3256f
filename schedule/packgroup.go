package schedule

import (
	"fmt"
	"math/big"
	"sort"
	"time"

	"github.com/arl/go-seqarrange/geom"
	"github.com/arl/go-seqarrange/internal/buildctx"
	"github.com/arl/go-seqarrange/model"
	"github.com/arl/go-seqarrange/solve"
)

// packGroup attempts to place every object of group on one, empty bed. If
// the whole group does not fit, it drops objects from the tail one at a
// time and retries with the smaller prefix (spec.md §4.4's bed-splitting
// overflow); whatever was dropped is returned as unplaced, for the caller
// to retry on the next bed.
func packGroup(ctx *buildctx.Context, factory solve.Factory, cfg model.SolverConfiguration, group []model.SolvableObject) (model.ScheduledPlate, []model.SolvableObject, error) {
	if len(group) == 0 {
		return model.ScheduledPlate{}, nil, nil
	}

	for n := len(group); n >= 1; n-- {
		attempt := group[:n]
		plate, ok, err := tryPack(ctx, factory, cfg, attempt)
		if err != nil {
			return model.ScheduledPlate{}, nil, err
		}
		if ok {
			return plate, group[n:], nil
		}
	}

	// zones.Prepare already rejected any single object that cannot fit the
	// plate at all (ObjectTooLargeError), so failing to place even one
	// already-validated object here is an internal contradiction.
	return model.ScheduledPlate{}, nil, &model.InternalContradictionError{
		Msg: "packGroup: no subset of the group could be placed on an empty bed",
	}
}

// tryPack runs the bounding-box shrink search for one candidate group on
// one bed: starting from the full plate bounding box, it keeps shrinking
// while the weak/strong-refined placement stays satisfiable, and returns
// the last satisfiable placement. ok is false if even the full plate
// bounding box is unsatisfiable for this group.
func tryPack(ctx *buildctx.Context, factory solve.Factory, cfg model.SolverConfiguration, group []model.SolvableObject) (model.ScheduledPlate, bool, error) {
	sess, err := factory()
	if err != nil {
		return model.ScheduledPlate{}, false, err
	}
	defer sess.Close()

	xs := make([]solve.Var, len(group))
	ys := make([]solve.Var, len(group))
	ts := make([]solve.Var, len(group))
	for i, o := range group {
		xs[i] = sess.NewReal(fmt.Sprintf("x_%d", o.ID))
		ys[i] = sess.NewReal(fmt.Sprintf("y_%d", o.ID))
		ts[i] = sess.NewReal(fmt.Sprintf("t_%d", o.ID))
	}

	full := cfg.PlateBoundingBox
	step := cfg.BoundingBoxSizeOptimizationStep
	if step <= 0 {
		step = 1
	}
	minSize := cfg.MinimumBoundingBoxSize

	var best solve.Model
	found := false

	for bbox := full; boxSize(bbox) >= minSize; bbox = shrinkBox(bbox, step, cfg.Centered, full) {
		ctx.StartTimer(buildctx.PhaseBoundingBoxSearch)
		m, status, err := solveForBox(ctx, sess, cfg, group, xs, ys, ts, bbox)
		ctx.StopTimer(buildctx.PhaseBoundingBoxSearch)
		if err != nil {
			return model.ScheduledPlate{}, false, err
		}
		if status.IsUnknown() {
			return model.ScheduledPlate{}, false, &model.SolverTimeoutError{ObjectIDs: ids(group)}
		}
		if !status.IsSat() {
			break // a smaller bbox is strictly harder: stop shrinking here
		}
		best, found = m, true
		if boxSize(bbox) <= minSize {
			break
		}
	}

	if !found {
		return model.ScheduledPlate{}, false, nil
	}
	plate := toPlate(group, xs, ys, ts, best)
	if !fitsPlate(cfg.PlateBounds(), group, plate) {
		return model.ScheduledPlate{}, false, &model.InternalContradictionError{
			Msg: "packGroup: solver model placed an object outside the plate",
		}
	}
	return plate, true, nil
}

// fitsPlate is a final sanity gate over the solver's own output: the
// bed-bounding-box and decision-box predicates already constrain every
// placement to the plate, so this should never trip, but it is cheap
// insurance checked with the same geom.CheckPositionWithinPlate used by
// the rest of the fit-check family (spec.md §4.1) rather than trusting the
// solver's arithmetic blindly.
func fitsPlate(bounds geom.PlateBounds, group []model.SolvableObject, plate model.ScheduledPlate) bool {
	byID := make(map[int]geom.Polygon, len(group))
	for _, o := range group {
		byID[o.ID] = o.Polygon
	}
	for _, sched := range plate.Objects {
		p, ok := byID[sched.ID]
		if !ok {
			continue
		}
		if !geom.CheckPositionWithinPlate(bounds, sched.X, sched.Y, p) {
			return false
		}
	}
	return true
}

// solveForBox asserts the per-object decision-box and weak pairwise
// non-overlap constraints for bbox, then runs the weak→strong refinement
// loop of spec.md §4.3/§9: any pair the exact check finds still crossing
// after a weak-sat model gets a SegmentsDoNotCross constraint added, and
// the session is re-checked, up to cfg.MaxRefines times.
func solveForBox(ctx *buildctx.Context, sess solve.Session, cfg model.SolverConfiguration, group []model.SolvableObject, xs, ys, ts []solve.Var, bbox geom.Rect) (solve.Model, solve.Status, error) {
	sess.Push()
	defer sess.Pop()

	for i, o := range group {
		sess.Assert(solve.DecisionBox(solve.OfVar(xs[i]), solve.OfVar(ys[i]), shrinkForObject(bbox, o.Polygon)))
	}

	spread := cfg.TemporalSpread
	if spread <= 0 {
		spread = 1
	}
	spreadTerm := solve.Const(int64(spread))

	for i := 0; i < len(group); i++ {
		for j := i + 1; j < len(group); j++ {
			ti, tj := solve.OfVar(ts[i]), solve.OfVar(ts[j])
			if group[i].GluedToNext && j == i+1 {
				// glued_to_next pins i immediately before j, spaced by
				// temporal_spread rather than left to the solver (spec.md
				// §4.3 predicate 7).
				sess.Assert(solve.TemporalOrder(ti, tj))
				sess.Assert(solve.Eq(solve.Sub(tj, ti), spreadTerm))
				sess.Assert(zoneExcludes(group[i], xs[i], ys[i], group[j], xs[j], ys[j]))
				continue
			}
			sess.Assert(solve.Or(
				solve.And(
					solve.TemporalOrder(ti, tj),
					solve.Ge(solve.Sub(tj, ti), spreadTerm),
					zoneExcludes(group[i], xs[i], ys[i], group[j], xs[j], ys[j]),
				),
				solve.And(
					solve.TemporalOrder(tj, ti),
					solve.Ge(solve.Sub(ti, tj), spreadTerm),
					zoneExcludes(group[j], xs[j], ys[j], group[i], xs[i], ys[i]),
				),
			))
		}
	}

	timeout := time.Duration(cfg.OptimizationTimeoutMillis) * time.Millisecond

	ctx.StartTimer(buildctx.PhaseRefinement)
	defer ctx.StopTimer(buildctx.PhaseRefinement)

	status, m, err := sess.Check(timeout)
	if err != nil || !status.IsSat() {
		return nil, status, err
	}

	maxRefines := cfg.MaxRefines
	for refine := 0; ; refine++ {
		i, j, ok := firstViolation(group, xs, ys, ts, m)
		if !ok {
			return m, solve.Sat, nil
		}
		if refine >= maxRefines {
			return nil, solve.Unsat, nil
		}
		for _, ea := range edges(group[i].Polygon) {
			for _, eb := range edges(group[j].Polygon) {
				sess.Assert(solve.SegmentsDoNotCross(
					ea[0], ea[1], solve.OfVar(xs[i]), solve.OfVar(ys[i]),
					eb[0], eb[1], solve.OfVar(xs[j]), solve.OfVar(ys[j]),
					func(name string) solve.Var { return sess.NewReal(fmt.Sprintf("%s_%d_%d_%d", name, i, j, refine)) },
				))
			}
		}
		status, m, err = sess.Check(timeout)
		if err != nil {
			return nil, status, err
		}
		if !status.IsSat() {
			return nil, status, nil
		}
	}
}

// zoneExcludes asserts that later's footprint, placed at (lx,ly), lies
// outside every polygon of earlier's unreachable zones, placed at (ex,ey):
// spec.md §4.3 predicate 7's per-pair unreachable-zone half, built against
// every zone contribution in earlier.UnreachablePolygons rather than a
// single proxy polygon. Vacuously true if earlier has no unreachable
// zones.
func zoneExcludes(earlier model.SolvableObject, ex, ey solve.Var, later model.SolvableObject, lx, ly solve.Var) solve.Formula {
	fs := make([]solve.Formula, len(earlier.UnreachablePolygons))
	for k, u := range earlier.UnreachablePolygons {
		fs[k] = solve.PolygonOutsidePolygon(
			solve.OfVar(lx), solve.OfVar(ly), later.Polygon,
			solve.OfVar(ex), solve.OfVar(ey), u,
		)
	}
	return solve.And(fs...)
}

// firstViolation returns the first pair in group whose exact placement
// (from m) still violates strong non-overlap, and ok=false if the model
// already satisfies it for every pair. A pair is violated if its
// footprints actually cross (overlaps), or if the later object (by
// solved t) has a vertex inside the earlier object's unreachable zone
// (spec.md §4.4 step 2's ordered half, the one overlaps alone misses).
func firstViolation(group []model.SolvableObject, xs, ys, ts []solve.Var, m solve.Model) (i, j int, ok bool) {
	pos := make([]geom.Point, len(group))
	tv := make([]*big.Rat, len(group))
	for k := range group {
		pos[k] = modelPoint(m, xs[k], ys[k])
		tv[k], _ = m.Value(ts[k])
	}
	for a := 0; a < len(group); a++ {
		for b := a + 1; b < len(group); b++ {
			if overlaps(group[a].Polygon, pos[a].X, pos[a].Y, group[b].Polygon, pos[b].X, pos[b].Y) {
				return a, b, true
			}
			earlier, later := a, b
			if tv[b].Cmp(tv[a]) < 0 {
				earlier, later = b, a
			}
			if zoneViolation(group[earlier].UnreachablePolygons, pos[earlier].X, pos[earlier].Y, group[later].Polygon, pos[later].X, pos[later].Y) {
				return a, b, true
			}
		}
	}
	return 0, 0, false
}

func modelPoint(m solve.Model, xv, yv solve.Var) geom.Point {
	xr, _ := m.Value(xv)
	yr, _ := m.Value(yv)
	return geom.Point{X: geom.RatToCoord(xr), Y: geom.RatToCoord(yr)}
}

// toPlate commits the model's placements into a ScheduledPlate, ordered
// ascending by each object's solved t (spec.md §4.4 step 3).
func toPlate(group []model.SolvableObject, xs, ys, ts []solve.Var, m solve.Model) model.ScheduledPlate {
	type timedObject struct {
		obj model.ScheduledObject
		t   *big.Rat
	}
	items := make([]timedObject, len(group))
	for i, o := range group {
		p := modelPoint(m, xs[i], ys[i])
		tv, _ := m.Value(ts[i])
		items[i] = timedObject{obj: model.ScheduledObject{ID: o.ID, X: p.X, Y: p.Y}, t: tv}
	}
	sort.Slice(items, func(a, b int) bool { return items[a].t.Cmp(items[b].t) < 0 })
	objs := make([]model.ScheduledObject, len(items))
	for i, it := range items {
		objs[i] = it.obj
	}
	return model.ScheduledPlate{Objects: objs}
}

func ids(group []model.SolvableObject) []int {
	out := make([]int, len(group))
	for i, o := range group {
		out[i] = o.ID
	}
	return out
}

func edges(p geom.Polygon) [][2]geom.Point {
	out := make([][2]geom.Point, len(p))
	for i := range p {
		out[i] = [2]geom.Point{p[i], p[(i+1)%len(p)]}
	}
	return out
}

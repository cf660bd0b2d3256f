package seqarrange

import (
	"math/big"
	"testing"
	"time"

	"github.com/arl/go-seqarrange/geom"
	"github.com/arl/go-seqarrange/solve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSession is a brute-force grid-search solve.Session for this
// package's end-to-end tests, the same shape as schedule's package-local
// fake (see schedule/fake_session_test.go): real Z3 needs cgo, so these
// tests substitute solverFactory with a small, deterministic stand-in and
// keep scenarios to object counts the grid search can exhaust quickly.
type fakeSession struct {
	names      []string
	stack      [][]solve.Formula
	asserted   []solve.Formula
	domainMin  int64
	domainMax  int64
	domainStep int64
}

func newFakeFactory(domainMin, domainMax, step int64) solve.Factory {
	return func() (solve.Session, error) {
		return &fakeSession{domainMin: domainMin, domainMax: domainMax, domainStep: step}, nil
	}
}

func (f *fakeSession) NewReal(name string) solve.Var {
	f.names = append(f.names, name)
	return solve.NewVar(name)
}

func (f *fakeSession) Assert(form solve.Formula) { f.asserted = append(f.asserted, form) }

func (f *fakeSession) Push() {
	f.stack = append(f.stack, append([]solve.Formula(nil), f.asserted...))
}

func (f *fakeSession) Pop() {
	if len(f.stack) == 0 {
		return
	}
	f.asserted = f.stack[len(f.stack)-1]
	f.stack = f.stack[:len(f.stack)-1]
}

func (f *fakeSession) Check(time.Duration) (solve.Status, solve.Model, error) {
	env := make(map[string]*big.Rat, len(f.names))
	if !f.search(env, 0) {
		return solve.Unsat, nil, nil
	}
	m := make(solve.Model, len(env))
	for k, v := range env {
		m[k] = v
	}
	return solve.Sat, m, nil
}

func (f *fakeSession) search(env map[string]*big.Rat, idx int) bool {
	if idx == len(f.names) {
		return f.satisfiesAll(env)
	}
	name := f.names[idx]
	for v := f.domainMin; v <= f.domainMax; v += f.domainStep {
		env[name] = big.NewRat(v, 1)
		if f.search(env, idx+1) {
			return true
		}
	}
	delete(env, name)
	return false
}

func (f *fakeSession) satisfiesAll(env map[string]*big.Rat) bool {
	for _, form := range f.asserted {
		if !evalSafe(env, form) {
			return false
		}
	}
	return true
}

func evalSafe(env map[string]*big.Rat, form solve.Formula) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = true
		}
	}()
	return solve.EvalFormula(env, form)
}

func (f *fakeSession) Close() {}

// timeoutSession always reports Unknown, modelling an SMT backend that
// cannot decide within the configured deadline (scenario 6 of spec.md
// §8).
type timeoutSession struct{}

func (timeoutSession) NewReal(name string) solve.Var { return solve.NewVar(name) }
func (timeoutSession) Assert(solve.Formula)           {}
func (timeoutSession) Push()                          {}
func (timeoutSession) Pop()                            {}
func (timeoutSession) Close()                          {}
func (timeoutSession) Check(time.Duration) (solve.Status, solve.Model, error) {
	return solve.Unknown, nil, nil
}

func newTimeoutFactory() solve.Factory {
	return func() (solve.Session, error) { return timeoutSession{}, nil }
}

func square(side geom.Coord) geom.Polygon {
	return geom.Polygon{{0, 0}, {side, 0}, {side, side}, {0, side}}
}

// tinyTestPrinter is a printer profile whose extruder silhouette is small
// enough, relative to smallTestPlateConfig's plate, that the unreachable
// zones it produces stay inside the fake solver's grid-search domain.
// PrinterMK3S's real nozzle/gantry envelope (profiles_data.go) dwarfs a
// test-sized plate, so multi-object pairwise zone constraints need this
// instead.
func tinyTestPrinter() PrinterGeometry {
	extruder := square(1 * SlicerScaleFactor).Translate(-SlicerScaleFactor/2, -SlicerScaleFactor/2)
	return PrinterGeometry{
		Plate:         square(20 * SlicerScaleFactor),
		ConvexHeights: []geom.Coord{0},
		ExtruderSlices: map[geom.Coord][]geom.Polygon{
			0: {extruder},
		},
	}
}

func objectWithFootprint(id int, footprint geom.Polygon, gluedToNext bool) ObjectToPrint {
	return ObjectToPrint{
		ID:          id,
		GluedToNext: gluedToNext,
		TotalHeight: 0,
		Slices:      []HeightSlice{{Height: 0, Polygon: footprint}},
	}
}

func withFakeFactory(t *testing.T, f solve.Factory) {
	t.Helper()
	saved := solverFactory
	solverFactory = f
	t.Cleanup(func() { solverFactory = saved })
}

// smallTestPlateConfig builds a SolverConfiguration whose plate geometry
// is small enough, once scaled down to solver units, for fakeSession's
// brute-force grid search to exhaust: a 20x20 (solver-scale) square plate
// with a step/minimum-size pair that gives the shrink search a handful of
// iterations.
func smallTestPlateConfig(printer PrinterGeometry) SolverConfiguration {
	cfg := NewSolverConfiguration(printer)
	cfg.PlateBoundingBox = geom.Rect{MinX: 0, MinY: 0, MaxX: 20 * SlicerScaleFactor, MaxY: 20 * SlicerScaleFactor}
	cfg.BoundingBoxSizeOptimizationStep = 4 * SlicerScaleFactor
	cfg.MinimumBoundingBoxSize = 8 * SlicerScaleFactor
	return cfg
}

// Scenario 5 (spec.md §8): a single object must be placed, and the
// result must fit the plate.
func TestScheduleObjectsForSequentialPrint_SingleObject(t *testing.T) {
	withFakeFactory(t, newFakeFactory(-5, 25, 1))

	printer := PrinterMK3S()
	cfg := smallTestPlateConfig(printer)
	cfg.ObjectGroupSize = 1

	objs := []ObjectToPrint{objectWithFootprint(1, square(5*SlicerScaleFactor), false)}

	plates, err := ScheduleObjectsForSequentialPrint(printer, cfg, objs, nil)
	require.NoError(t, err)
	require.Len(t, plates, 1)
	require.Len(t, plates[0].Objects, 1)

	placed := plates[0].Objects[0]
	assert.Equal(t, 1, placed.ID)
}

// Scenario 1/2 (spec.md §8): several identical small objects, each its
// own group (ObjectGroupSize=1 keeps the fake solver's search space
// tractable), must span more than one bed and every placement must stay
// within the plate.
func TestScheduleObjectsForSequentialPrint_MultipleObjectsAcrossBeds(t *testing.T) {
	withFakeFactory(t, newFakeFactory(-5, 25, 1))

	printer := PrinterMK3S()
	cfg := smallTestPlateConfig(printer)
	cfg.ObjectGroupSize = 1
	cfg.FixedObjectGroupingLimit = 1

	var objs []ObjectToPrint
	for i := 1; i <= 4; i++ {
		objs = append(objs, objectWithFootprint(i, square(3*SlicerScaleFactor), false))
	}

	var percents []int
	plates, err := ScheduleObjectsForSequentialPrint(printer, cfg, objs, func(p int) { percents = append(percents, p) })
	require.NoError(t, err)
	assert.Len(t, plates, 4) // ObjectGroupSize=1 forces one object per bed
	assert.Equal(t, 100, percents[len(percents)-1])
}

// Scenario 2 (spec.md §8): glued_to_next chains a pair onto the same bed
// in order, even when the group size would otherwise split them.
func TestScheduleObjectsForSequentialPrint_GluedChainStaysTogether(t *testing.T) {
	withFakeFactory(t, newFakeFactory(0, 16, 2))

	printer := tinyTestPrinter()
	cfg := smallTestPlateConfig(printer)
	cfg.ObjectGroupSize = 1
	cfg.FixedObjectGroupingLimit = 2
	cfg.TemporalSpread = 2 // matches the fake domain's step so glued equality is reachable

	objs := []ObjectToPrint{
		objectWithFootprint(1, square(3*SlicerScaleFactor), true),
		objectWithFootprint(2, square(3*SlicerScaleFactor), false),
	}

	plates, err := ScheduleObjectsForSequentialPrint(printer, cfg, objs, nil)
	require.NoError(t, err)
	require.Len(t, plates, 1)
	require.Len(t, plates[0].Objects, 2)
	assert.Equal(t, 1, plates[0].Objects[0].ID)
	assert.Equal(t, 2, plates[0].Objects[1].ID)
}

// Scenario 4 (spec.md §8): an object whose footprint exceeds the plate
// must fail fast with ObjectTooLargeError, before ever reaching the
// solver.
func TestScheduleObjectsForSequentialPrint_ObjectTooLarge(t *testing.T) {
	printer := PrinterMK3S()
	cfg := NewSolverConfiguration(printer)

	huge := square(printer.Plate[2].X*2 + 1)
	objs := []ObjectToPrint{objectWithFootprint(1, huge, false)}

	_, err := ScheduleObjectsForSequentialPrint(printer, cfg, objs, nil)
	require.Error(t, err)
	var tooLarge *ObjectTooLargeError
	assert.ErrorAs(t, err, &tooLarge)
}

// Scenario 6 (spec.md §8): a solver that cannot decide within the
// configured timeout surfaces SolverTimeoutError, never a silently wrong
// schedule.
func TestScheduleObjectsForSequentialPrint_SolverTimeout(t *testing.T) {
	withFakeFactory(t, newTimeoutFactory())

	printer := PrinterMK3S()
	cfg := NewSolverConfiguration(printer)
	cfg.OptimizationTimeoutMillis = 1

	objs := []ObjectToPrint{objectWithFootprint(1, square(5*SlicerScaleFactor), false)}

	_, err := ScheduleObjectsForSequentialPrint(printer, cfg, objs, nil)
	require.Error(t, err)
	var timeout *SolverTimeoutError
	assert.ErrorAs(t, err, &timeout)
}

// Scenario 3 (spec.md §8): the MK3S printer profile's hard-coded data
// matches the literal numbers the original test fixture encodes.
func TestPrinterMK3SGeometryMatchesScenario(t *testing.T) {
	pg := PrinterMK3S()

	box := geom.BoundingBox(pg.Plate)
	assert.Equal(t, geom.Rect{MinX: 0, MinY: 0, MaxX: 250000000, MaxY: 210000000}, box)
	assert.ElementsMatch(t, []geom.Coord{0, 2000000}, pg.ConvexHeights)
	assert.ElementsMatch(t, []geom.Coord{18000000, 26000000}, pg.BoxHeights)

	total := 0
	for _, polys := range pg.ExtruderSlices {
		total += len(polys)
	}
	assert.Equal(t, 4, total)
}

// CheckScheduledObjectsForSequentialConflict must agree with a scheduler
// output that is known not to conflict, and must report a conflict for a
// schedule where a later object clearly sits inside an earlier object's
// unreachable zone.
func TestCheckScheduledObjectsForSequentialConflict(t *testing.T) {
	printer := PrinterMK3S()
	cfg := NewSolverConfiguration(printer)

	objs := []ObjectToPrint{
		objectWithFootprint(1, square(5*SlicerScaleFactor), false),
		objectWithFootprint(2, square(5*SlicerScaleFactor), false),
	}

	farApart := []ScheduledPlate{{Objects: []ScheduledObject{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 200 * SlicerScaleFactor, Y: 200 * SlicerScaleFactor},
	}}}
	ok, conflict := CheckScheduledObjectsForSequentialConflict(printer, cfg, objs, farApart)
	assert.True(t, ok)
	assert.Nil(t, conflict)

	overlapping := []ScheduledPlate{{Objects: []ScheduledObject{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: SlicerScaleFactor, Y: SlicerScaleFactor},
	}}}
	ok, conflict = CheckScheduledObjectsForSequentialConflict(printer, cfg, objs, overlapping)
	assert.False(t, ok)
	require.NotNil(t, conflict)
	assert.Equal(t, 1, conflict.Earlier)
	assert.Equal(t, 2, conflict.Later)
}

func TestScheduleObjectsForSequentialPrintInPlace(t *testing.T) {
	withFakeFactory(t, newFakeFactory(-5, 25, 1))

	printer := PrinterMK3S()
	cfg := smallTestPlateConfig(printer)
	cfg.ObjectGroupSize = 1

	objs := []ObjectToPrint{objectWithFootprint(1, square(5*SlicerScaleFactor), false)}

	var out []ScheduledPlate
	err := ScheduleObjectsForSequentialPrintInPlace(printer, cfg, objs, nil, &out)
	require.NoError(t, err)
	require.Len(t, out, 1)
}

func TestPrepareThenScheduleSolvableObjects(t *testing.T) {
	withFakeFactory(t, newFakeFactory(-5, 25, 1))

	printer := PrinterMK3S()
	cfg := smallTestPlateConfig(printer)
	cfg.ObjectGroupSize = 1

	objs := []ObjectToPrint{objectWithFootprint(1, square(5*SlicerScaleFactor), false)}

	solvable, err := PrepareObjectsForSequentialPrint(printer, cfg, objs)
	require.NoError(t, err)
	require.Len(t, solvable, 1)

	plates, err := ScheduleSolvableObjectsForSequentialPrint(cfg, solvable, nil)
	require.NoError(t, err)
	require.Len(t, plates, 1)
}

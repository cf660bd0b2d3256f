package schedule

import (
	"math/big"
	"time"

	"github.com/arl/go-seqarrange/solve"
)

// fakeSession is a brute-force grid-search stand-in for solve.Session,
// used only by this package's tests so schedule's control flow (bed
// allocation, bounding-box shrink search) can be exercised without a real
// SMT backend. It does not support ExistsFormula (the strong
// SegmentsDoNotCross refinement constraint); tests built against it keep
// objects clear of the refine path.
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

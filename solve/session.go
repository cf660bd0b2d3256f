package solve

import (
	"math/big"
	"time"
)

// Model maps a satisfying assignment's variable names to exact rational
// values, as returned by a Sat Check. spec.md §9 mandates exact rather
// than floating-point solver output so downstream scaling back to
// slicer-scale integer coordinates is deterministic.
type Model map[string]*big.Rat

// Value looks up v's value in the model. The zero Rat is returned, along
// with ok=false, if v was not part of the query (e.g. it was never
// asserted over, or the model predates its declaration).
func (m Model) Value(v Var) (*big.Rat, bool) {
	r, ok := m[v.Name()]
	return r, ok
}

// Session is the abstract incremental SMT session: declare real variables,
// assert constraints within a push/pop scope stack, and check
// satisfiability under a timeout. Concrete backends (solve/z3solver) own
// translating the Term/Formula AST into their native representation;
// callers in this package and in schedule never depend on a concrete
// backend type.
type Session interface {
	// NewReal declares a fresh real-valued decision variable.
	NewReal(name string) Var

	// Assert adds f to the current scope. Assertions are conjunctive:
	// a session is satisfiable only if every asserted formula holds
	// simultaneously.
	Assert(f Formula)

	// Push opens a new assertion scope atop the current one.
	Push()

	// Pop discards the most recently opened scope and everything
	// asserted within it.
	Pop()

	// Check decides satisfiability of everything currently asserted,
	// aborting and returning Unknown if it exceeds timeout. A zero
	// timeout means no deadline.
	Check(timeout time.Duration) (Status, Model, error)

	// Close releases backend resources (e.g. the z3 context). A Session
	// must not be used after Close.
	Close()
}

// Factory constructs a fresh Session. schedule depends on a Factory
// rather than a concrete backend so tests can substitute a fake
// solver without importing cgo.
type Factory func() (Session, error)

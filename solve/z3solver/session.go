// Package z3solver is the one concrete SMT backend for solve.Session,
// binding the abstract Term/Formula AST to github.com/aclements/go-z3's
// cgo-based Z3 bindings (spec.md §6's "abstract SMT capability" — this
// package alone pays the cgo dependency cost; schedule only ever sees a
// solve.Session).
package z3solver

import (
	"math/big"
	"time"

	"github.com/aclements/go-z3/z3"
	"github.com/arl/go-seqarrange/solve"
)

// Session adapts a z3.Context + z3.Solver pair to solve.Session.
type Session struct {
	ctx    *z3.Context
	solver *z3.Solver
	vars   map[string]z3.Real
	depth  int
}

// New constructs a fresh z3-backed Session. Each Session owns its own
// z3.Context; concurrent goroutines must use separate Sessions (spec.md §5:
// the scheduler never shares a Session across bed groups run in parallel).
func New() (solve.Session, error) {
	cfg := z3.NewConfig()
	ctx := z3.NewContext(cfg)
	return &Session{
		ctx:    ctx,
		solver: ctx.NewSolver(),
		vars:   make(map[string]z3.Real),
	}, nil
}

func (s *Session) NewReal(name string) solve.Var {
	if _, ok := s.vars[name]; !ok {
		s.vars[name] = s.ctx.RealConst(s.ctx.Symbol(name))
	}
	return solve.NewVar(name)
}

func (s *Session) Assert(f solve.Formula) {
	s.solver.Assert(s.formula(f))
}

func (s *Session) Push() {
	s.solver.Push()
	s.depth++
}

func (s *Session) Pop() {
	if s.depth == 0 {
		return
	}
	s.solver.Pop(1)
	s.depth--
}

func (s *Session) Check(timeout time.Duration) (solve.Status, solve.Model, error) {
	if timeout > 0 {
		s.ctx.UpdateParamValue("timeout", timeoutMillis(timeout))
	}
	switch s.solver.Check() {
	case z3.Sat:
		m, err := s.extractModel()
		if err != nil {
			return solve.Unknown, nil, err
		}
		return solve.Sat, m, nil
	case z3.Unsat:
		return solve.Unsat, nil, nil
	default:
		return solve.Unknown, nil, nil
	}
}

func (s *Session) Close() {}

func (s *Session) extractModel() (solve.Model, error) {
	zm := s.solver.Model()
	out := make(solve.Model, len(s.vars))
	for name, v := range s.vars {
		val := zm.Eval(v, true)
		num, den, ok := val.AsRat()
		if !ok {
			continue
		}
		out[name] = big.NewRat(num, den)
	}
	return out, nil
}

func timeoutMillis(d time.Duration) string {
	ms := d.Milliseconds()
	if ms <= 0 {
		ms = 1
	}
	return itoa(ms)
}

func itoa(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func (s *Session) real(name string) z3.Real {
	if v, ok := s.vars[name]; ok {
		return v
	}
	v := s.ctx.RealConst(s.ctx.Symbol(name))
	s.vars[name] = v
	return v
}

func (s *Session) term(t solve.Term) z3.Real {
	switch n := t.(type) {
	case solve.ConstTerm:
		return s.ctx.FromBigRat(n.Value, s.ctx.RealSort()).(z3.Real)
	case solve.VarTerm:
		return s.real(n.V.Name())
	case solve.AddTerm:
		acc := s.ctx.FromInt(0, s.ctx.RealSort()).(z3.Real)
		for _, sub := range n.Terms {
			acc = acc.Add(s.term(sub))
		}
		return acc
	case solve.ScaleTerm:
		k := s.ctx.FromBigRat(n.K, s.ctx.RealSort()).(z3.Real)
		return k.Mul(s.term(n.T))
	case solve.MulTerm:
		return s.term(n.A).Mul(s.term(n.B))
	default:
		panic("z3solver: unknown term node")
	}
}

func (s *Session) formula(f solve.Formula) z3.Bool {
	switch n := f.(type) {
	case solve.LeFormula:
		return s.term(n.A).LE(s.term(n.B))
	case solve.LtFormula:
		return s.term(n.A).LT(s.term(n.B))
	case solve.EqFormula:
		return s.term(n.A).Eq(s.term(n.B))
	case solve.NeFormula:
		return s.term(n.A).Eq(s.term(n.B)).Not()
	case solve.AndFormula:
		parts := make([]z3.Bool, len(n.Fs))
		for i, sub := range n.Fs {
			parts[i] = s.formula(sub)
		}
		return s.ctx.And(parts...)
	case solve.OrFormula:
		parts := make([]z3.Bool, len(n.Fs))
		for i, sub := range n.Fs {
			parts[i] = s.formula(sub)
		}
		return s.ctx.Or(parts...)
	case solve.NotFormula:
		return s.formula(n.F).Not()
	case solve.ExistsFormula:
		bound := make([]z3.AST, len(n.Vars))
		for i, v := range n.Vars {
			bound[i] = s.real(v.Name()).AST()
		}
		return s.ctx.ExistsConst(bound, s.formula(n.Body).AST()).(z3.Bool)
	default:
		panic("z3solver: unknown formula node")
	}
}

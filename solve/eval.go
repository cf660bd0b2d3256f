package solve

import "math/big"

// EvalTerm evaluates t against a fixed variable assignment. It has no use
// in the z3-backed solve path; it exists so predicate construction can be
// unit-tested deterministically against concrete coordinates without a
// live SMT backend.
func EvalTerm(env map[string]*big.Rat, t Term) *big.Rat {
	switch n := t.(type) {
	case ConstTerm:
		return new(big.Rat).Set(n.Value)
	case VarTerm:
		v, ok := env[n.V.Name()]
		if !ok {
			panic("solve: unbound variable " + n.V.Name())
		}
		return new(big.Rat).Set(v)
	case AddTerm:
		acc := new(big.Rat)
		for _, sub := range n.Terms {
			acc.Add(acc, EvalTerm(env, sub))
		}
		return acc
	case ScaleTerm:
		return new(big.Rat).Mul(n.K, EvalTerm(env, n.T))
	case MulTerm:
		return new(big.Rat).Mul(EvalTerm(env, n.A), EvalTerm(env, n.B))
	default:
		panic("solve: unknown term node")
	}
}

// EvalFormula evaluates f against a fixed variable assignment. ExistsFormula
// is not supported (the evaluator is for ground, quantifier-free
// predicate checks only).
func EvalFormula(env map[string]*big.Rat, f Formula) bool {
	switch n := f.(type) {
	case LeFormula:
		return EvalTerm(env, n.A).Cmp(EvalTerm(env, n.B)) <= 0
	case LtFormula:
		return EvalTerm(env, n.A).Cmp(EvalTerm(env, n.B)) < 0
	case EqFormula:
		return EvalTerm(env, n.A).Cmp(EvalTerm(env, n.B)) == 0
	case NeFormula:
		return EvalTerm(env, n.A).Cmp(EvalTerm(env, n.B)) != 0
	case AndFormula:
		for _, sub := range n.Fs {
			if !EvalFormula(env, sub) {
				return false
			}
		}
		return true
	case OrFormula:
		for _, sub := range n.Fs {
			if EvalFormula(env, sub) {
				return true
			}
		}
		return false
	case NotFormula:
		return !EvalFormula(env, n.F)
	default:
		panic("solve: unsupported formula node for ground evaluation")
	}
}

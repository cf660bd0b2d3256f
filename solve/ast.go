// Package solve defines an abstract SMT capability set (real-arithmetic
// variables, linear and bounded-bilinear terms, existential quantifiers,
// and an incremental push/pop/check session) rather than binding directly
// to one SMT library. spec.md §6/§9 calls for the non-overlap solver to
// depend on an abstract capability set so a concrete backend can be swapped
// without touching predicate-construction code; solve/z3solver is the one
// adapter package that pays the concrete (cgo) dependency cost.
package solve

import "math/big"

// Var names a decision variable introduced into a Session. Concrete
// Sessions hand these out from NewReal and never construct them directly.
type Var interface {
	Name() string
}

type realVar struct{ name string }

func (v realVar) Name() string { return v.name }

// NewVar constructs a Var from a name. Exported so non-Session code
// (predicate builders, tests) can build ASTs against Vars a Session has
// not been asked for yet; a real Session still owns variable declaration
// via NewReal.
func NewVar(name string) Var { return realVar{name} }

// Term is the marker interface for the solver's real-arithmetic expression
// AST. The concrete node types below are the only implementers; the
// interface itself carries no behavior, matching the teacher's pattern of
// small sealed node hierarchies (e.g. detour's QueryFilter predicates)
// reworked here for an expression tree instead of a filter chain.
type Term interface{ isTerm() }

type ConstTerm struct{ Value *big.Rat }
type VarTerm struct{ V Var }
type AddTerm struct{ Terms []Term }
type ScaleTerm struct {
	K *big.Rat
	T Term
}

// MulTerm multiplies two terms. Most predicates in this package stay
// linear (coefficients are fixed polygon-edge constants, only placement
// and segment-parameter variables are free), but MulTerm is part of the
// capability set because a backend must support general bounded-degree
// real arithmetic, not just linear arithmetic, per spec.md §9's note that
// the solver's true requirement is "real arithmetic sufficient to encode
// polygon non-crossing", not a named named theory.
type MulTerm struct{ A, B Term }

func (ConstTerm) isTerm() {}
func (VarTerm) isTerm()   {}
func (AddTerm) isTerm()   {}
func (ScaleTerm) isTerm() {}
func (MulTerm) isTerm()   {}

// Const builds a constant term from an int64.
func Const(v int64) Term { return ConstTerm{Value: big.NewRat(v, 1)} }

// ConstRat builds a constant term from an exact rational.
func ConstRat(r *big.Rat) Term { return ConstTerm{Value: r} }

// OfVar lifts a Var into a Term.
func OfVar(v Var) Term { return VarTerm{V: v} }

// Add sums an arbitrary number of terms.
func Add(terms ...Term) Term { return AddTerm{Terms: terms} }

// Sub is syntactic sugar for Add(a, Scale(-1, b)).
func Sub(a, b Term) Term { return Add(a, Scale(big.NewRat(-1, 1), b)) }

// Scale multiplies a term by a constant rational coefficient.
func Scale(k *big.Rat, t Term) Term { return ScaleTerm{K: k, T: t} }

// ScaleInt multiplies a term by a constant integer coefficient.
func ScaleInt(k int64, t Term) Term { return ScaleTerm{K: big.NewRat(k, 1), T: t} }

// Mul multiplies two terms.
func Mul(a, b Term) Term { return MulTerm{A: a, B: b} }

// Formula is the marker interface for the solver's boolean-constraint AST.
type Formula interface{ isFormula() }

type LeFormula struct{ A, B Term }
type LtFormula struct{ A, B Term }
type EqFormula struct{ A, B Term }
type NeFormula struct{ A, B Term }
type AndFormula struct{ Fs []Formula }
type OrFormula struct{ Fs []Formula }
type NotFormula struct{ F Formula }

// ExistsFormula quantifies Vars existentially over Body. Used to express
// "some parameter along a segment makes it cross another segment" (spec.md
// §4.3's SegmentsDoNotCross), then negated by the caller.
type ExistsFormula struct {
	Vars []Var
	Body Formula
}

func (LeFormula) isFormula()     {}
func (LtFormula) isFormula()     {}
func (EqFormula) isFormula()     {}
func (NeFormula) isFormula()     {}
func (AndFormula) isFormula()    {}
func (OrFormula) isFormula()     {}
func (NotFormula) isFormula()    {}
func (ExistsFormula) isFormula() {}

func Le(a, b Term) Formula  { return LeFormula{A: a, B: b} }
func Lt(a, b Term) Formula  { return LtFormula{A: a, B: b} }
func Ge(a, b Term) Formula  { return LeFormula{A: b, B: a} }
func Gt(a, b Term) Formula  { return LtFormula{A: b, B: a} }
func Eq(a, b Term) Formula  { return EqFormula{A: a, B: b} }
func Ne(a, b Term) Formula  { return NeFormula{A: a, B: b} }
func And(fs ...Formula) Formula { return AndFormula{Fs: fs} }
func Or(fs ...Formula) Formula  { return OrFormula{Fs: fs} }
func Not(f Formula) Formula     { return NotFormula{F: f} }
func Exists(vars []Var, body Formula) Formula {
	return ExistsFormula{Vars: vars, Body: body}
}

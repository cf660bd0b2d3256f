package solve

import (
	"math/big"
	"testing"

	"github.com/arl/go-seqarrange/geom"
	"github.com/stretchr/testify/assert"
)

func unitSquare() geom.Polygon {
	return geom.Polygon{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
}

func rat(v int64) *big.Rat { return big.NewRat(v, 1) }

func TestInsideHalfPlaneAcceptsInteriorPoint(t *testing.T) {
	sq := unitSquare()
	x, y := OfVar(NewVar("x")), OfVar(NewVar("y"))
	env := map[string]*big.Rat{"x": rat(5), "y": rat(5)}
	for i := 0; i < len(sq); i++ {
		a, b := sq[i], sq[(i+1)%len(sq)]
		f := InsideHalfPlane(x, y, a, b)
		assert.True(t, EvalFormula(env, f), "edge %d", i)
	}
}

func TestInsideHalfPlaneRejectsExteriorPoint(t *testing.T) {
	sq := unitSquare()
	x, y := OfVar(NewVar("x")), OfVar(NewVar("y"))
	env := map[string]*big.Rat{"x": rat(-5), "y": rat(5)}
	a, b := sq[3], sq[0]
	assert.False(t, EvalFormula(env, InsideHalfPlane(x, y, a, b)))
}

func TestOutsidePolygon(t *testing.T) {
	sq := unitSquare()
	x, y := OfVar(NewVar("x")), OfVar(NewVar("y"))

	inside := map[string]*big.Rat{"x": rat(5), "y": rat(5)}
	assert.False(t, EvalFormula(inside, OutsidePolygon(x, y, sq)))

	outside := map[string]*big.Rat{"x": rat(50), "y": rat(50)}
	assert.True(t, EvalFormula(outside, OutsidePolygon(x, y, sq)))
}

func TestPolygonOutsidePolygonDisjointPlacements(t *testing.T) {
	p := geom.Polygon{{0, 0}, {5, 0}, {5, 5}, {0, 5}}
	q := geom.Polygon{{0, 0}, {5, 0}, {5, 5}, {0, 5}}

	xP, yP := OfVar(NewVar("xP")), OfVar(NewVar("yP"))
	xQ, yQ := OfVar(NewVar("xQ")), OfVar(NewVar("yQ"))

	f := PolygonOutsidePolygon(xP, yP, p, xQ, yQ, q)

	far := map[string]*big.Rat{"xP": rat(0), "yP": rat(0), "xQ": rat(100), "yQ": rat(100)}
	assert.True(t, EvalFormula(far, f))

	overlapping := map[string]*big.Rat{"xP": rat(0), "yP": rat(0), "xQ": rat(2), "yQ": rat(2)}
	assert.False(t, EvalFormula(overlapping, f))
}

func TestDecisionBox(t *testing.T) {
	r := geom.Rect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
	x, y := OfVar(NewVar("x")), OfVar(NewVar("y"))
	f := DecisionBox(x, y, r)

	assert.True(t, EvalFormula(map[string]*big.Rat{"x": rat(50), "y": rat(50)}, f))
	assert.False(t, EvalFormula(map[string]*big.Rat{"x": rat(150), "y": rat(50)}, f))
}

func TestTemporalOrder(t *testing.T) {
	ta, tb := OfVar(NewVar("ta")), OfVar(NewVar("tb"))
	f := TemporalOrder(ta, tb)
	assert.True(t, EvalFormula(map[string]*big.Rat{"ta": rat(1), "tb": rat(2)}, f))
	assert.False(t, EvalFormula(map[string]*big.Rat{"ta": rat(2), "tb": rat(1)}, f))
}

func TestStatusError(t *testing.T) {
	assert.True(t, Sat.IsSat())
	assert.True(t, Unknown.IsUnknown())
	assert.Equal(t, "unsat", Unsat.Error())
}

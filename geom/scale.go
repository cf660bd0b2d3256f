package geom

import "math/big"

// ScaleDown divides every vertex of p by k (truncating toward zero), the
// seq_preprocess.cpp scaleDown_PolygonForSequentialSolver operation:
// slicer-scale input down to solver scale.
func ScaleDown(p Polygon, k Coord) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = Point{v.X / k, v.Y / k}
	}
	return out
}

// ScaleUp multiplies every vertex of p by k and translates by (xoff, yoff),
// the inverse of ScaleDown: solver-scale polygon back up to slicer scale.
func ScaleUp(p Polygon, k Coord, xoff, yoff Coord) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = Point{v.X*k + xoff, v.Y*k + yoff}
	}
	return out
}

// ScaleUpPosition converts a solver-scale exact-rational position to a
// slicer-scale integer position: multiply the rational by k, then extract
// the integer part, per spec.md §4.1 ("Scaling").
func ScaleUpPosition(x, y *big.Rat, k Coord) (Coord, Coord) {
	sx := new(big.Rat).Mul(x, big.NewRat(int64(k), 1))
	sy := new(big.Rat).Mul(y, big.NewRat(int64(k), 1))
	return ratToCoord(sx), ratToCoord(sy)
}

func ratToCoord(r *big.Rat) Coord {
	q := new(big.Int).Quo(r.Num(), r.Denom())
	return Coord(q.Int64())
}

// RatToCoord truncates an exact rational to the integer coordinate grid.
// Exported for solve-result translation in the schedule package, which
// must round a solver Model's big.Rat placements back to integer
// solver-scale coordinates before the root package rescales them up to
// slicer scale.
func RatToCoord(r *big.Rat) Coord { return ratToCoord(r) }

package geom

// TransformUpsideDown flips p's Y coordinate about the plate's Y extent
// (plateHeight - y), for slicers whose bed coordinate convention has its
// origin in the opposite corner from the solver's. Restored from
// original_source's transform_UpsideDown (seq_preprocess.hpp), dropped by
// spec.md's distillation but not excluded by any Non-goal.
func TransformUpsideDown(p Polygon, plateHeight Coord) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = Point{v.X, plateHeight - v.Y}
	}
	return EnsureCCW(out)
}

// TransformPositionUpsideDown applies the same flip to a single (x, y)
// position.
func TransformPositionUpsideDown(x, y, plateHeight Coord) (Coord, Coord) {
	return x, plateHeight - y
}

package zones

import (
	"github.com/arl/assertgo"
	"github.com/arl/go-seqarrange/geom"
	"github.com/arl/go-seqarrange/model"
)

// Prepare turns one ObjectToPrint into a solver-scale SolvableObject: it
// decimates the object's printable (height-0) footprint, builds and
// simplifies its unreachable-zone polygons against the printer geometry,
// and scales both down to solver units (spec.md §4.1/§4.2's combined
// preprocessing pipeline, "prepare_ObjectPolygons"/"prepare_UnreachableZonePolygons"
// in original_source/seq_preprocess.hpp).
func Prepare(c geom.Clipper, printer model.PrinterGeometry, cfg model.SolverConfiguration, obj model.ObjectToPrint, scaleFactor geom.Coord, extraSafety bool) (model.SolvableObject, error) {
	footprint, ok := obj.Footprint()
	assert.True(ok, "object %d has no height-0 footprint", obj.ID)
	if !ok {
		return model.SolvableObject{}, &model.InternalContradictionError{
			Msg: "object has no height-0 footprint",
		}
	}

	tol := cfg.DecimationPrecision.Tolerance()
	maxGrowth := cfg.MaxDecimationGrowthSteps
	if maxGrowth <= 0 {
		maxGrowth = geom.DefaultMaxGrowthSteps
	}
	decimated := footprint
	if tol > 0 {
		decimated = geom.Decimate(footprint, tol, extraSafety, maxGrowth)
	}
	decimated = geom.EnsureCCW(geom.GroundByBoundingBox(decimated))

	if !geom.CheckSizeFitsPlate(cfg.PlateBounds(), decimated) {
		return model.SolvableObject{}, &model.ObjectTooLargeError{ObjectID: obj.ID}
	}

	contributions, err := BuildAllZones(c, printer, obj)
	if err != nil {
		return model.SolvableObject{}, err
	}
	simplified := Simplify(c, contributions)

	solverFootprint := geom.ScaleDown(decimated, scaleFactor)
	unreachable := make([]geom.Polygon, len(simplified))
	for i, p := range simplified {
		unreachable[i] = geom.EnsureCCW(geom.ScaleDown(p, scaleFactor))
	}

	return model.SolvableObject{
		ID:                  obj.ID,
		Polygon:             geom.EnsureCCW(solverFootprint),
		UnreachablePolygons: unreachable,
		GluedToNext:         obj.GluedToNext,
	}, nil
}

// PrepareAll preprocesses every object in order, stopping at the first
// error (ObjectTooLargeError is fatal for the whole API call per
// spec.md §7).
func PrepareAll(c geom.Clipper, printer model.PrinterGeometry, cfg model.SolverConfiguration, objs []model.ObjectToPrint, scaleFactor geom.Coord, extraSafety bool) ([]model.SolvableObject, error) {
	out := make([]model.SolvableObject, len(objs))
	for i, o := range objs {
		so, err := Prepare(c, printer, cfg, o, scaleFactor, extraSafety)
		if err != nil {
			return nil, err
		}
		out[i] = so
	}
	GlueLowObjects(out)
	return out, nil
}

package geom

import "math"

// PolygonGrowFactor is the per-iteration enlargement factor of the
// containment-growth step, ported verbatim from
// seq_preprocess.cpp's SEQ_POLYGON_DECIMATION_GROW_FACTOR.
const PolygonGrowFactor = 1.005

// DefaultMaxGrowthSteps bounds the containment-growth loop. spec.md §9 Open
// Question 2 flags that the original has no such cap and recommends one;
// this is that cap (SolverConfiguration.MaxDecimationGrowthSteps defaults
// to it).
const DefaultMaxGrowthSteps = 64

// Decimate computes the Douglas-Peucker simplification of p at tolerance
// tol, then iteratively grows the simplified polygon about its bounding-box
// center by PolygonGrowFactor until it contains every vertex of p (capped
// at maxGrowthSteps, falling back to the bounding box if the cap is hit).
// If extraSafety, one additional growth step is applied beyond
// containment. If simplification leaves fewer than 4 vertices, the result
// is p's bounding box, exactly as seq_preprocess.cpp's
// decimate_PolygonForSequentialSolver specifies.
//
// Invariant: Decimate(p, ...) contains p vertex-wise.
func Decimate(p Polygon, tol float64, extraSafety bool, maxGrowthSteps int) Polygon {
	if len(p) < 4 {
		return boundingBoxPolygon(p)
	}
	if maxGrowthSteps <= 0 {
		maxGrowthSteps = DefaultMaxGrowthSteps
	}

	closed := make([]Point, len(p)+1)
	copy(closed, p)
	closed[len(p)] = p[0]

	simplified := douglasPeucker(closed, tol)
	// Drop the duplicated closing vertex.
	simplified = simplified[:len(simplified)-1]

	if len(simplified) < 4 {
		return boundingBoxPolygon(p)
	}

	result := EnsureCCW(simplified)
	center := BoundingBox(result).Center()

	steps := 0
	for !containsAll(result, p) {
		if steps >= maxGrowthSteps {
			return boundingBoxPolygon(p)
		}
		result = growAboutCenter(result, center, PolygonGrowFactor)
		steps++
	}
	if extraSafety {
		result = growAboutCenter(result, center, PolygonGrowFactor)
	}
	return result
}

func containsAll(poly Polygon, pts Polygon) bool {
	for _, v := range pts {
		if !PointInPolygon(poly, v) {
			return false
		}
	}
	return true
}

func growAboutCenter(p Polygon, center Point, factor float64) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		nx := float64(center.X) + (float64(v.X)-float64(center.X))*factor
		ny := float64(center.Y) + (float64(v.Y)-float64(center.Y))*factor
		out[i] = Point{roundCoord(nx), roundCoord(ny)}
	}
	return out
}

func roundCoord(f float64) Coord {
	if f >= 0 {
		return Coord(f + 0.5)
	}
	return Coord(f - 0.5)
}

func boundingBoxPolygon(p Polygon) Polygon {
	bb := BoundingBox(p)
	return Polygon{
		{bb.MinX, bb.MinY},
		{bb.MaxX, bb.MinY},
		{bb.MaxX, bb.MaxY},
		{bb.MinX, bb.MaxY},
	}
}

// douglasPeucker simplifies an open polyline (first and last point always
// kept).
func douglasPeucker(pts []Point, tol float64) []Point {
	if len(pts) < 3 {
		out := make([]Point, len(pts))
		copy(out, pts)
		return out
	}
	first, last := pts[0], pts[len(pts)-1]
	maxDist := -1.0
	maxIdx := -1
	for i := 1; i < len(pts)-1; i++ {
		d := perpendicularDistance(pts[i], first, last)
		if d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}
	if maxDist <= tol {
		return []Point{first, last}
	}
	left := douglasPeucker(pts[:maxIdx+1], tol)
	right := douglasPeucker(pts[maxIdx:], tol)
	out := make([]Point, 0, len(left)+len(right)-1)
	out = append(out, left[:len(left)-1]...)
	out = append(out, right...)
	return out
}

func perpendicularDistance(p, a, b Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	if dx == 0 && dy == 0 {
		return math.Hypot(float64(p.X-a.X), float64(p.Y-a.Y))
	}
	num := math.Abs(dy*float64(p.X-a.X) - dx*float64(p.Y-a.Y))
	return num / math.Hypot(dx, dy)
}

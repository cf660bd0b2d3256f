package geom

// GroundByBoundingBox shifts p so that its bounding box's minimum corner is
// the origin (ground_PolygonByBoundingBox in seq_preprocess.cpp).
func GroundByBoundingBox(p Polygon) Polygon {
	bb := BoundingBox(p)
	return p.Translate(-bb.MinX, -bb.MinY)
}

// GroundByFirstPoint shifts p so that its first vertex is the origin
// (ground_PolygonByFirstPoint in seq_preprocess.cpp).
func GroundByFirstPoint(p Polygon) Polygon {
	if len(p) == 0 {
		return p.Clone()
	}
	origin := p[0]
	return p.Translate(-origin.X, -origin.Y)
}

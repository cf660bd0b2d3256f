package schedule

import "github.com/arl/go-seqarrange/geom"

// shrinkForObject narrows bed to the placement domain of an object whose
// grounded bounding box is [0,w]x[0,h]: the domain is exactly the set of
// translations (x,y) that keep the object's own bounding box inside bed.
func shrinkForObject(bed geom.Rect, o geom.Polygon) geom.Rect {
	box := geom.BoundingBox(o)
	w, h := box.Width(), box.Height()
	r := geom.Rect{
		MinX: bed.MinX - box.MinX,
		MinY: bed.MinY - box.MinY,
		MaxX: bed.MaxX - box.MinX - w,
		MaxY: bed.MaxY - box.MinY - h,
	}
	if r.MaxX < r.MinX {
		r.MaxX = r.MinX
	}
	if r.MaxY < r.MinY {
		r.MaxY = r.MinY
	}
	return r
}

// shrinkBox returns bed reduced by step on each axis: symmetrically around
// full's center if centered is set (spec.md §3's Centered flag, selecting
// the centered bed-bounding-box search variant), otherwise anchored at
// bed's minimum corner.
func shrinkBox(bed geom.Rect, step geom.Coord, centered bool, full geom.Rect) geom.Rect {
	if centered {
		c := full.Center()
		cx, cy := c.X, c.Y
		w, h := bed.Width()-2*step, bed.Height()-2*step
		if w < 0 {
			w = 0
		}
		if h < 0 {
			h = 0
		}
		return geom.Rect{
			MinX: cx - w/2, MinY: cy - h/2,
			MaxX: cx + w/2, MaxY: cy + h/2,
		}
	}
	out := geom.Rect{MinX: bed.MinX, MinY: bed.MinY, MaxX: bed.MaxX - step, MaxY: bed.MaxY - step}
	if out.MaxX < out.MinX {
		out.MaxX = out.MinX
	}
	if out.MaxY < out.MinY {
		out.MaxY = out.MinY
	}
	return out
}

// boxSize is the search's scalar size metric: the smaller of the box's two
// side lengths, so the shrink search halts once either dimension would
// drop below the configured minimum.
func boxSize(r geom.Rect) geom.Coord {
	w, h := r.Width(), r.Height()
	if w < h {
		return w
	}
	return h
}

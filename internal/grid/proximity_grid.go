// Package grid provides a spatial hash grid for broad-phase candidate-pair
// pruning over axis-aligned bounding boxes, used by printcheck to avoid an
// O(n²) exact polygon test over every (earlier, later) object pair (spec.md
// §4.5). Adapted from the teacher's crowd.ProximityGrid (arl-go-detour's
// crowd/proximity_grid.go): same bucket-hash-and-pool layout, re-typed from
// float32 agent positions to the integer slicer-scale geom.Rect bounding
// boxes objects and unreachable zones are expressed in.
package grid

import "github.com/arl/go-seqarrange/geom"

func hashPos2(x, y, n int32) int32 {
	return ((x * 73856093) ^ (y * 19349663)) & (n - 1)
}

type item struct {
	id   int
	x, y int32
	next int32
}

// Grid buckets integer cell coordinates to object ids whose bounding box
// covers that cell.
type Grid struct {
	cellSize geom.Coord

	pool     []item
	poolHead int

	buckets []int32
}

const emptyIdx int32 = -1

// New constructs a Grid whose pool initially holds poolCapacity (id, cell)
// entries and grows as Insert needs more, using cellSize as the bucket
// edge length. A cell size on the order of
// the median object footprint keeps bucket occupancy low.
func New(poolCapacity int, cellSize geom.Coord) *Grid {
	if poolCapacity <= 0 {
		panic("grid: pool capacity must be positive")
	}
	if cellSize <= 0 {
		panic("grid: cell size must be positive")
	}
	g := &Grid{cellSize: cellSize}
	g.buckets = make([]int32, nextPow2(poolCapacity))
	g.pool = make([]item, poolCapacity)
	g.Clear()
	return g
}

// Clear empties the grid for reuse across print-order checks without
// reallocating its backing pool.
func (g *Grid) Clear() {
	for i := range g.buckets {
		g.buckets[i] = emptyIdx
	}
	g.poolHead = 0
}

// Insert registers id as covering every grid cell overlapped by box.
func (g *Grid) Insert(id int, box geom.Rect) {
	iminx, iminy := g.cell(box.MinX, box.MinY)
	imaxx, imaxy := g.cell(box.MaxX, box.MaxY)

	for y := iminy; y <= imaxy; y++ {
		for x := iminx; x <= imaxx; x++ {
			if g.poolHead >= len(g.pool) {
				g.pool = append(g.pool, item{})
			}
			h := hashPos2(x, y, int32(len(g.buckets)))
			idx := g.poolHead
			g.poolHead++
			g.pool[idx] = item{id: id, x: x, y: y, next: g.buckets[h]}
			g.buckets[h] = int32(idx)
		}
	}
}

// Query returns the distinct ids covering any cell overlapped by box, in
// no particular order. The result may contain ids whose exact bounding box
// does not actually overlap box (over-approximation is fine for a
// broad-phase filter); it never omits an id whose box does overlap.
func (g *Grid) Query(box geom.Rect) []int {
	iminx, iminy := g.cell(box.MinX, box.MinY)
	imaxx, imaxy := g.cell(box.MaxX, box.MaxY)

	seen := make(map[int]bool)
	var out []int
	for y := iminy; y <= imaxy; y++ {
		for x := iminx; x <= imaxx; x++ {
			h := hashPos2(x, y, int32(len(g.buckets)))
			idx := g.buckets[h]
			for idx != emptyIdx {
				it := &g.pool[idx]
				if it.x == x && it.y == y && !seen[it.id] {
					seen[it.id] = true
					out = append(out, it.id)
				}
				idx = it.next
			}
		}
	}
	return out
}

func (g *Grid) cell(x, y geom.Coord) (int32, int32) {
	cx := int32(x) / int32(g.cellSize)
	cy := int32(y) / int32(g.cellSize)
	if int32(x)%int32(g.cellSize) < 0 {
		cx--
	}
	if int32(y)%int32(g.cellSize) < 0 {
		cy--
	}
	return cx, cy
}

func nextPow2(v int) int {
	p := 1
	for p < v {
		p <<= 1
	}
	return p
}

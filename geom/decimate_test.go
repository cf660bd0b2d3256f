package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDecimateContainsOriginal verifies spec.md §8's universal invariant:
// decimate(P, tol) contains P vertex-wise.
func TestDecimateContainsOriginal(t *testing.T) {
	// A noisy near-circle: far more vertices than a rectangle needs, so
	// Douglas-Peucker will actually drop points.
	var p Polygon
	for i := 0; i < 64; i++ {
		angle := float64(i) / 64 * 2 * math.Pi
		r := 1000.0
		if i%7 == 0 {
			r += 3 // small noise spike
		}
		p = append(p, Point{
			X: Coord(r * math.Cos(angle)),
			Y: Coord(r * math.Sin(angle)),
		})
	}

	d := Decimate(p, 50, false, DefaultMaxGrowthSteps)
	for _, v := range p {
		assert.True(t, PointInPolygon(d, v), "decimated polygon must contain %v", v)
	}
}

func TestDecimateFallsBackToBoundingBoxOnFewVertices(t *testing.T) {
	p := Polygon{{0, 0}, {10, 0}, {5, 1}}
	d := Decimate(p, 1, false, DefaultMaxGrowthSteps)
	assert.Len(t, d, 4)
}

package seqarrange

import (
	"sync"

	"github.com/arl/go-seqarrange/geom"
	"github.com/arl/go-seqarrange/model"
)

// Hard-coded printer profiles (spec.md §6): approximations of the nozzle,
// extruder body, gantry, and hose collision envelopes at fixed heights for
// three Prusa-style printers. These are compile-time placeholder data, not
// specified geometry (spec.md §9 Open Question 4) — a production system
// should load them from an external data file instead of embedding them
// here, exactly as spec.md's note on this component recommends.

func octagon(cx, cy, r geom.Coord) geom.Polygon {
	// A regular octagon approximates the rounded collision envelope of a
	// nozzle/extruder shroud more closely than a bare rectangle, while
	// staying a cheap fixed vertex count.
	pts := make(geom.Polygon, 8)
	offsets := [8][2]int64{
		{100, 41}, {41, 100}, {-41, 100}, {-100, 41},
		{-100, -41}, {-41, -100}, {41, -100}, {100, -41},
	}
	for i, o := range offsets {
		pts[i] = geom.Point{
			X: cx + geom.Coord(int64(r)*o[0]/100),
			Y: cy + geom.Coord(int64(r)*o[1]/100),
		}
	}
	return pts
}

func rectAt(cx, cy, halfW, halfH geom.Coord) geom.Polygon {
	return geom.Polygon{
		{cx - halfW, cy - halfH}, {cx + halfW, cy - halfH},
		{cx + halfW, cy + halfH}, {cx - halfW, cy + halfH},
	}
}

var (
	mk3sOnce sync.Once
	mk3s     PrinterGeometry

	mk4Once sync.Once
	mk4     PrinterGeometry

	xlOnce sync.Once
	xl     PrinterGeometry
)

// PrinterMK3S returns the Original Prusa MK3S printer profile.
func PrinterMK3S() PrinterGeometry {
	mk3sOnce.Do(func() {
		mk3s = buildPlate(250000000, 210000000,
			[]geom.Coord{0, 2000000},
			[]geom.Coord{18000000, 26000000},
			map[geom.Coord]geom.Polygon{
				0:        octagon(0, 0, 12000000),
				2000000:  octagon(0, 0, 18000000),
				18000000: rectAt(0, 5000000, 40000000, 25000000),
				26000000: rectAt(0, 0, 60000000, 60000000),
			})
	})
	return mk3s
}

// PrinterMK4 returns the Original Prusa MK4 printer profile: a larger
// nozzle shroud and a taller gantry box than the MK3S, approximating its
// redesigned extruder.
func PrinterMK4() PrinterGeometry {
	mk4Once.Do(func() {
		mk4 = buildPlate(250000000, 220000000,
			[]geom.Coord{0, 2500000},
			[]geom.Coord{20000000, 28000000},
			map[geom.Coord]geom.Polygon{
				0:        octagon(0, 0, 13000000),
				2500000:  octagon(0, 0, 20000000),
				20000000: rectAt(0, 5000000, 45000000, 27000000),
				28000000: rectAt(0, 0, 65000000, 65000000),
			})
	})
	return mk4
}

// PrinterXL returns the Original Prusa XL printer profile: a larger plate
// and a taller, wider gantry envelope than the MK3S/MK4 (the XL's tool
// changer carriage is bulkier).
func PrinterXL() PrinterGeometry {
	xlOnce.Do(func() {
		xl = buildPlate(360000000, 360000000,
			[]geom.Coord{0, 3000000},
			[]geom.Coord{25000000, 35000000},
			map[geom.Coord]geom.Polygon{
				0:        octagon(0, 0, 15000000),
				3000000:  octagon(0, 0, 24000000),
				25000000: rectAt(0, 6000000, 55000000, 32000000),
				35000000: rectAt(0, 0, 80000000, 80000000),
			})
	})
	return xl
}

func buildPlate(xSize, ySize geom.Coord, convex, box []geom.Coord, slices map[geom.Coord]geom.Polygon) PrinterGeometry {
	plate := geom.Polygon{
		{X: 0, Y: 0}, {X: xSize, Y: 0}, {X: xSize, Y: ySize}, {X: 0, Y: ySize},
	}
	extruder := make(map[geom.Coord][]geom.Polygon, len(slices))
	for h, p := range slices {
		extruder[h] = []geom.Polygon{p}
	}
	return model.PrinterGeometry{
		Plate:          plate,
		ConvexHeights:  convex,
		BoxHeights:     box,
		ExtruderSlices: extruder,
	}
}

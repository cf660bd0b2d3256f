package textformat

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/arl/go-seqarrange/geom"
	"github.com/arl/go-seqarrange/model"
)

var printerKeys = []string{"X_SIZE", "Y_SIZE", "CONVEX_HEIGHT", "BOX_HEIGHT", "POLYGON_AT_HEIGHT", "POINT"}

// ParsePrinterGeometry reads the printer-geometry stream of spec.md §6. The
// plate rectangle is synthesized from X_SIZE/Y_SIZE as
// [(0,0),(X,0),(X,Y),(0,Y)].
func ParsePrinterGeometry(r io.Reader) (model.PrinterGeometry, error) {
	sc := bufio.NewScanner(r)

	var xSize, ySize int64
	var haveX, haveY bool
	var convex, box []geom.Coord
	slices := make(map[geom.Coord][]geom.Polygon)

	var curHeight geom.Coord
	var curPoly geom.Polygon
	haveHeight := false

	flushPolygon := func() {
		if haveHeight && len(curPoly) > 0 {
			slices[curHeight] = append(slices[curHeight], curPoly)
		}
		curPoly = nil
	}

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if line == "" {
			continue
		}
		key, rest, ok := keyedLine(line, printerKeys)
		if !ok {
			return model.PrinterGeometry{}, fmt.Errorf("textformat: line %d: unrecognized key in %q", lineNo, line)
		}
		switch key {
		case "X_SIZE":
			v, err := parseInt(rest)
			if err != nil {
				return model.PrinterGeometry{}, fmt.Errorf("textformat: line %d: %w", lineNo, err)
			}
			xSize, haveX = v, true
		case "Y_SIZE":
			v, err := parseInt(rest)
			if err != nil {
				return model.PrinterGeometry{}, fmt.Errorf("textformat: line %d: %w", lineNo, err)
			}
			ySize, haveY = v, true
		case "CONVEX_HEIGHT":
			v, err := parseInt(rest)
			if err != nil {
				return model.PrinterGeometry{}, fmt.Errorf("textformat: line %d: %w", lineNo, err)
			}
			convex = append(convex, geom.Coord(v))
		case "BOX_HEIGHT":
			v, err := parseInt(rest)
			if err != nil {
				return model.PrinterGeometry{}, fmt.Errorf("textformat: line %d: %w", lineNo, err)
			}
			box = append(box, geom.Coord(v))
		case "POLYGON_AT_HEIGHT":
			v, err := parseInt(rest)
			if err != nil {
				return model.PrinterGeometry{}, fmt.Errorf("textformat: line %d: %w", lineNo, err)
			}
			flushPolygon()
			curHeight = geom.Coord(v)
			haveHeight = true
		case "POINT":
			x, y, err := parsePoint(rest)
			if err != nil {
				return model.PrinterGeometry{}, fmt.Errorf("textformat: line %d: %w", lineNo, err)
			}
			if !haveHeight {
				return model.PrinterGeometry{}, fmt.Errorf("textformat: line %d: POINT before POLYGON_AT_HEIGHT", lineNo)
			}
			curPoly = append(curPoly, geom.Point{X: geom.Coord(x), Y: geom.Coord(y)})
		}
	}
	if err := sc.Err(); err != nil {
		return model.PrinterGeometry{}, err
	}
	flushPolygon()

	if !haveX || !haveY {
		return model.PrinterGeometry{}, fmt.Errorf("textformat: missing X_SIZE or Y_SIZE")
	}

	plate := geom.Polygon{
		{X: 0, Y: 0},
		{X: geom.Coord(xSize), Y: 0},
		{X: geom.Coord(xSize), Y: geom.Coord(ySize)},
		{X: 0, Y: geom.Coord(ySize)},
	}

	return model.PrinterGeometry{
		Plate:          plate,
		ConvexHeights:  convex,
		BoxHeights:     box,
		ExtruderSlices: slices,
	}, nil
}

// WritePrinterGeometry writes pg in the printer-geometry grammar. Heights
// are written in sorted order for deterministic output.
func WritePrinterGeometry(w io.Writer, pg model.PrinterGeometry) error {
	box := geom.BoundingBox(pg.Plate)
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "X_SIZE%d\nY_SIZE%d\n", box.Width(), box.Height()); err != nil {
		return err
	}
	for _, h := range pg.ConvexHeights {
		if _, err := fmt.Fprintf(bw, "CONVEX_HEIGHT%d\n", h); err != nil {
			return err
		}
	}
	for _, h := range pg.BoxHeights {
		if _, err := fmt.Fprintf(bw, "BOX_HEIGHT%d\n", h); err != nil {
			return err
		}
	}

	heights := make([]geom.Coord, 0, len(pg.ExtruderSlices))
	for h := range pg.ExtruderSlices {
		heights = append(heights, h)
	}
	sort.Slice(heights, func(i, j int) bool { return heights[i] < heights[j] })

	for _, h := range heights {
		for _, poly := range pg.ExtruderSlices[h] {
			if _, err := fmt.Fprintf(bw, "POLYGON_AT_HEIGHT%d\n", h); err != nil {
				return err
			}
			for _, p := range poly {
				if _, err := fmt.Fprintf(bw, "POINT%d %d\n", p.X, p.Y); err != nil {
					return err
				}
			}
		}
	}
	return bw.Flush()
}

package textformat

import (
	"bufio"
	"fmt"
	"io"

	"github.com/arl/go-seqarrange/geom"
	"github.com/arl/go-seqarrange/model"
)

var exportKeys = []string{"OBJECT_ID", "TOTAL_HEIGHT", "POLYGON_AT_HEIGHT", "POINT"}

// ParseExport reads the export-format stream of spec.md §6 (the
// scheduler's object input) into a list of ObjectToPrint, in file order.
func ParseExport(r io.Reader) ([]model.ObjectToPrint, error) {
	sc := bufio.NewScanner(r)

	var objs []model.ObjectToPrint
	var cur *model.ObjectToPrint
	var curHeight geom.Coord
	var curPoly geom.Polygon
	haveHeight := false

	flushPolygon := func() {
		if cur != nil && haveHeight {
			cur.Slices = append(cur.Slices, model.HeightSlice{Height: curHeight, Polygon: curPoly})
		}
		curPoly = nil
		haveHeight = false
	}
	flushObject := func() {
		flushPolygon()
		if cur != nil {
			objs = append(objs, *cur)
		}
	}

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if line == "" {
			continue
		}
		key, rest, ok := keyedLine(line, exportKeys)
		if !ok {
			return nil, fmt.Errorf("textformat: line %d: unrecognized key in %q", lineNo, line)
		}
		switch key {
		case "OBJECT_ID":
			v, err := parseInt(rest)
			if err != nil {
				return nil, fmt.Errorf("textformat: line %d: %w", lineNo, err)
			}
			flushObject()
			cur = &model.ObjectToPrint{ID: int(v)}
		case "TOTAL_HEIGHT":
			v, err := parseInt(rest)
			if err != nil {
				return nil, fmt.Errorf("textformat: line %d: %w", lineNo, err)
			}
			if cur == nil {
				return nil, fmt.Errorf("textformat: line %d: TOTAL_HEIGHT before OBJECT_ID", lineNo)
			}
			cur.TotalHeight = geom.Coord(v)
		case "POLYGON_AT_HEIGHT":
			v, err := parseInt(rest)
			if err != nil {
				return nil, fmt.Errorf("textformat: line %d: %w", lineNo, err)
			}
			flushPolygon()
			curHeight = geom.Coord(v)
			haveHeight = true
		case "POINT":
			x, y, err := parsePoint(rest)
			if err != nil {
				return nil, fmt.Errorf("textformat: line %d: %w", lineNo, err)
			}
			if !haveHeight {
				return nil, fmt.Errorf("textformat: line %d: POINT before POLYGON_AT_HEIGHT", lineNo)
			}
			curPoly = append(curPoly, geom.Point{X: geom.Coord(x), Y: geom.Coord(y)})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flushObject()
	return objs, nil
}

// WriteExport writes objs in the export-format grammar.
func WriteExport(w io.Writer, objs []model.ObjectToPrint) error {
	bw := bufio.NewWriter(w)
	for _, o := range objs {
		if _, err := fmt.Fprintf(bw, "OBJECT_ID%d\n", o.ID); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(bw, "TOTAL_HEIGHT%d\n", o.TotalHeight); err != nil {
			return err
		}
		for _, s := range o.Slices {
			if _, err := fmt.Fprintf(bw, "POLYGON_AT_HEIGHT%d\n", s.Height); err != nil {
				return err
			}
			for _, p := range s.Polygon {
				if _, err := fmt.Fprintf(bw, "POINT%d %d\n", p.X, p.Y); err != nil {
					return err
				}
			}
		}
	}
	return bw.Flush()
}

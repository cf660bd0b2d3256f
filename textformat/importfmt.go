package textformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arl/go-seqarrange/model"
)

// ParseImport reads the scheduler's import-format stream of spec.md §6:
// one `<id> <x> <y>` triple per line, slicer units.
func ParseImport(r io.Reader) ([]model.ScheduledObject, error) {
	sc := bufio.NewScanner(r)
	var out []model.ScheduledObject
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("textformat: line %d: expected '<id> <x> <y>', got %q", lineNo, line)
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("textformat: line %d: bad id: %w", lineNo, err)
		}
		x, err := strconv.ParseInt(fields[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("textformat: line %d: bad x: %w", lineNo, err)
		}
		y, err := strconv.ParseInt(fields[2], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("textformat: line %d: bad y: %w", lineNo, err)
		}
		out = append(out, model.ScheduledObject{ID: id, X: int32(x), Y: int32(y)})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// WriteImport writes plates' objects, in plate then print order, as the
// import-format `<id> <x> <y>` lines.
func WriteImport(w io.Writer, plates []model.ScheduledPlate) error {
	bw := bufio.NewWriter(w)
	for _, plate := range plates {
		for _, o := range plate.Objects {
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", o.ID, o.X, o.Y); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

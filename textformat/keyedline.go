// Package textformat implements the three text formats of spec.md §6: the
// slicer's export format (scheduler input), the printer-geometry format,
// and the scheduler's import format (CLI/slicer output). Restored from
// original_source/seq_utilities.cpp's load_exported_data_from_stream /
// load_printer_geometry_from_stream / save_import_data_to_stream, which
// spec.md's distillation dropped but no Non-goal excludes.
package textformat

import (
	"fmt"
	"strconv"
	"strings"
)

// keyedLine splits one line of the export/printer-geometry grammar into
// its bare key and the unparsed remainder: keys are glued directly to
// their first numeric argument with no intervening whitespace, so a plain
// prefix match on known keys, tried in the order given (no key of either
// grammar is a prefix of another), recovers the key boundary.
func keyedLine(line string, keys []string) (key, rest string, ok bool) {
	line = strings.TrimSpace(line)
	for _, k := range keys {
		if strings.HasPrefix(line, k) {
			return k, line[len(k):], true
		}
	}
	return "", "", false
}

// parseInt parses rest as a single leading signed integer, the shape of
// every key's argument except POINT's.
func parseInt(rest string) (int64, error) {
	rest = strings.TrimSpace(rest)
	return strconv.ParseInt(rest, 10, 64)
}

// parsePoint parses rest as the two space-separated integers that follow
// the glued POINT key.
func parsePoint(rest string) (x, y int64, err error) {
	fields := strings.Fields(rest)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("textformat: malformed POINT arguments %q", rest)
	}
	x, err = strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("textformat: malformed POINT x: %w", err)
	}
	y, err = strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("textformat: malformed POINT y: %w", err)
	}
	return x, y, nil
}

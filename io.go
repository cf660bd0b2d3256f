package seqarrange

import (
	"os"
	"strings"

	"github.com/arl/go-seqarrange/textformat"
)

// LoadPrinterGeometryText parses the printer-geometry text format of
// spec.md §6 (restored from original_source's
// load_printer_geometry_from_stream, dropped by the distillation).
func LoadPrinterGeometryText(text string) (PrinterGeometry, error) {
	return textformat.ParsePrinterGeometry(strings.NewReader(text))
}

// LoadPrinterGeometryFile reads and parses path as the printer-geometry
// text format.
func LoadPrinterGeometryFile(path string) (PrinterGeometry, error) {
	f, err := os.Open(path)
	if err != nil {
		return PrinterGeometry{}, err
	}
	defer f.Close()
	return textformat.ParsePrinterGeometry(f)
}

// LoadObjectsToPrintText parses the export text format of spec.md §6
// (restored from original_source's load_exported_data_from_stream).
func LoadObjectsToPrintText(text string) ([]ObjectToPrint, error) {
	return textformat.ParseExport(strings.NewReader(text))
}

// LoadObjectsToPrintFile reads and parses path as the export text format.
func LoadObjectsToPrintFile(path string) ([]ObjectToPrint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return textformat.ParseExport(f)
}

// SaveScheduleImportFile writes plates to path in the import text format
// of spec.md §6 (restored from original_source's
// save_import_data_to_file): one `<id> <x> <y>` line per scheduled object.
func SaveScheduleImportFile(path string, plates []ScheduledPlate) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return textformat.WriteImport(f, plates)
}

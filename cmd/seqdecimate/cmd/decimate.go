package cmd

import (
	"fmt"
	"os"

	"github.com/arl/go-seqarrange/geom"
	"github.com/arl/go-seqarrange/textformat"
	"github.com/spf13/cobra"
)

var (
	inputPath   string
	outputPath  string
	tolerance   float64
	nozzleX     float64
	nozzleY     float64
)

func init() {
	RootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "input file, export format (required)")
	RootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file, import format (required)")
	RootCmd.Flags().Float64VarP(&tolerance, "tolerance", "t", 400000, "Douglas-Peucker tolerance, slicer units")
	RootCmd.Flags().Float64VarP(&nozzleX, "nozzle-x", "x", 0, "nozzle offset X, slicer units")
	RootCmd.Flags().Float64VarP(&nozzleY, "nozzle-y", "y", 0, "nozzle offset Y, slicer units")
	RootCmd.RunE = runDecimate
}

// runDecimate reads inputPath in the export format, decimates each
// object's height-0 footprint to tolerance, applies the nozzle offset,
// and writes outputPath in the import format: one `<id> <x> <y>` line per
// object, (x,y) being the decimated, offset footprint's grounding corner
// (spec.md §4.7/§6).
func runDecimate(cmd *cobra.Command, args []string) error {
	if inputPath == "" || outputPath == "" {
		return fmt.Errorf("seqdecimate: -i and -o are both required")
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("seqdecimate: %w", err)
	}
	defer in.Close()

	objs, err := textformat.ParseExport(in)
	if err != nil {
		return fmt.Errorf("seqdecimate: %w", err)
	}

	ok, err := confirmIfExists(outputPath, fmt.Sprintf("%s already exists, overwrite?", outputPath))
	if err != nil {
		return fmt.Errorf("seqdecimate: %w", err)
	}
	if !ok {
		return fmt.Errorf("seqdecimate: aborted, %s not overwritten", outputPath)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("seqdecimate: %w", err)
	}
	defer out.Close()

	ox, oy := geom.Coord(nozzleX), geom.Coord(nozzleY)

	for _, o := range objs {
		footprint, ok := o.Footprint()
		if !ok {
			continue
		}
		decimated := geom.Decimate(footprint, tolerance, false, geom.DefaultMaxGrowthSteps)
		offset := decimated.Translate(-ox, -oy)
		box := geom.BoundingBox(offset)
		if _, err := fmt.Fprintf(out, "%d %d %d\n", o.ID, box.MinX, box.MinY); err != nil {
			return fmt.Errorf("seqdecimate: %w", err)
		}
	}
	return nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "seqdecimate",
	Short: "decimate object footprints for the sequential-print arrangement solver",
	Long: `seqdecimate reads an exported object file (the sequential-print
arrangement solver's input format), simplifies each object's height-0
footprint to a given Douglas-Peucker tolerance, applies an optional nozzle
offset after decimation, and writes an import-format file with one
"<id> <x> <y>" line per object, (x, y) being the minimum corner of the
decimated, offset footprint's bounding box.`,
}

// Execute adds all child commands to the root command and runs it. Called
// once by main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

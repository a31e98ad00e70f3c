package main

import (
	"errors"
	"fmt"

	"github.com/philipparndt/clipfit/pkg/analysis"
	"github.com/philipparndt/clipfit/pkg/detect"
	"github.com/philipparndt/clipfit/pkg/stl"
	"github.com/spf13/cobra"
)

var detectCount int

var detectCmd = &cobra.Command{
	Use:   "detect [file]",
	Short: "List the clip tabs found in an STL file",
	Long:  "Run the tab detection only and print every spot found, without writing anything.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)

	detectCmd.Flags().IntVarP(&detectCount, "count", "n", 20, "Number of spots to display")
}

func runDetect(cmd *cobra.Command, args []string) error {
	filename := args[0]
	out := cmd.OutOrStdout()
	if detectCount < 0 {
		return fmt.Errorf("count must not be negative, got %d", detectCount)
	}

	model, err := stl.Parse(filename)
	if err != nil && !errors.Is(err, stl.ErrTruncatedHeader) {
		return fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	spots := detect.Detect(model, detect.DefaultConfig())
	report := analysis.Summarize(model, spots)

	fmt.Fprintln(out, "Detected Clip Tabs")
	fmt.Fprintln(out, "==================")
	fmt.Fprintf(out, "File: %s\n", filename)
	fmt.Fprintf(out, "Thickness band: %.2f - %.2f units\n\n", detect.MinTabThickness, detect.MaxTabThickness)
	fmt.Fprintf(out, "Spots: %d (along X: %d, Y: %d, Z: %d)\n\n",
		report.SpotCount, report.SpotsByAxis[0], report.SpotsByAxis[1], report.SpotsByAxis[2])

	if len(spots) == 0 {
		fmt.Fprintln(out, "No clip tabs found.")
		return nil
	}

	shown := spots
	if detectCount < len(shown) {
		shown = shown[:detectCount]
	}
	for i, spot := range shown {
		fmt.Fprintf(out, "%-6d %s\n", i+1, analysis.FormatSpot(spot))
	}
	if len(shown) < len(spots) {
		fmt.Fprintf(out, "... %d more\n", len(spots)-len(shown))
	}
	return nil
}

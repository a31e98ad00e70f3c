package main

import (
	"errors"
	"fmt"

	"github.com/philipparndt/clipfit/pkg/analysis"
	"github.com/philipparndt/clipfit/pkg/stl"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about an STL file",
	Long:  "Show the facet count, the bounding box and the dimensions of a binary STL file.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]
	out := cmd.OutOrStdout()

	model, err := stl.Parse(filename)
	if err != nil && !errors.Is(err, stl.ErrTruncatedHeader) {
		return fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	result := analysis.Summarize(model, nil)

	fmt.Fprintln(out, "STL File Information")
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "File: %s\n\n", filename)

	fmt.Fprintln(out, "Model Statistics:")
	fmt.Fprintf(out, "  Facets: %d\n", result.FacetCount)
	fmt.Fprintf(out, "  Points: %d\n\n", result.PointCount)

	if result.FacetCount == 0 {
		return nil
	}

	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Fprintf(out, "  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Fprintln(out, "Dimensions:")
	fmt.Fprintf(out, "  Width (X): %.6f units\n", result.Dimensions.X())
	fmt.Fprintf(out, "  Depth (Y): %.6f units\n", result.Dimensions.Y())
	fmt.Fprintf(out, "  Height (Z): %.6f units\n", result.Dimensions.Z())
	fmt.Fprintf(out, "  Diagonal: %.6f units\n", result.BoundingBox.Diagonal())
	return nil
}

package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/philipparndt/clipfit/pkg/detect"
	"github.com/philipparndt/clipfit/pkg/inflate"
	"github.com/philipparndt/clipfit/pkg/preview"
	"github.com/philipparndt/clipfit/pkg/stl"
	"github.com/spf13/cobra"
)

var (
	previewOutput string
	previewFactor float64
	previewWidth  int
	previewHeight int
)

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Render the fixed tile to a PNG without writing an STL",
	Long:  "Detect and inflate the clip tabs in memory and render the result, with the changed facets in red.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVarP(&previewOutput, "output", "o", "", "PNG file to write (default: <file>_preview.png)")
	previewCmd.Flags().Float64VarP(&previewFactor, "factor", "f", inflate.DefaultFactor, "Enlargement factor around the tabs")
	previewCmd.Flags().IntVar(&previewWidth, "width", 800, "Image width in pixels")
	previewCmd.Flags().IntVar(&previewHeight, "height", 600, "Image height in pixels")
}

func runPreview(cmd *cobra.Command, args []string) error {
	filename := args[0]
	if previewWidth <= 0 || previewHeight <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", previewWidth, previewHeight)
	}

	model, err := stl.Parse(filename)
	if err != nil && !errors.Is(err, stl.ErrTruncatedHeader) {
		return fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	spots := detect.Detect(model, detect.DefaultConfig())
	inflate.Model(model, spots, previewFactor)

	output := previewOutput
	if output == "" {
		output = strings.TrimSuffix(filename, filepath.Ext(filename)) + "_preview.png"
	}

	opts := preview.DefaultOptions()
	opts.Width = previewWidth
	opts.Height = previewHeight
	if err := preview.WritePNG(output, model, opts); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d spots, %d facets changed, preview saved as %s\n", len(spots), model.ModifiedCount(), output)
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/philipparndt/clipfit/internal/pipeline"
	"github.com/philipparndt/clipfit/pkg/inflate"
	"github.com/philipparndt/clipfit/pkg/watcher"
	"github.com/spf13/cobra"
)

var (
	inflateFactor  float64
	inflateSuffix  string
	inflateStrict  bool
	inflateWatch   bool
	inflatePreview bool
)

var inflateCmd = &cobra.Command{
	Use:   "inflate [files...]",
	Short: "Enlarge the clip tabs of one or more tiles",
	Long: `Detect the clip tabs of every given tile and write an enlarged copy next to it
(tile.stl becomes tile_big_.stl). Tiles without tabs are left alone.
OpenSCAD sources are rendered first when openscad is installed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInflate,
}

func init() {
	rootCmd.AddCommand(inflateCmd)

	inflateCmd.Flags().Float64VarP(&inflateFactor, "factor", "f", inflate.DefaultFactor, "Enlargement factor around the tabs")
	inflateCmd.Flags().StringVar(&inflateSuffix, "suffix", pipeline.DefaultSuffix, "Suffix inserted before the extension of the output file")
	inflateCmd.Flags().BoolVar(&inflateStrict, "strict", false, "Abort the batch on the first invalid STL file")
	inflateCmd.Flags().BoolVarP(&inflateWatch, "watch", "w", false, "Re-run whenever an input changes")
	inflateCmd.Flags().BoolVarP(&inflatePreview, "preview", "p", false, "Render a PNG preview next to every written file")
}

func runInflate(cmd *cobra.Command, args []string) error {
	if inflateFactor <= 0 {
		return fmt.Errorf("factor must be positive, got %v", inflateFactor)
	}
	if inflateSuffix == "" {
		return fmt.Errorf("suffix must not be empty, the input would be overwritten")
	}

	opts := pipeline.DefaultOptions()
	opts.Factor = inflateFactor
	opts.Suffix = inflateSuffix
	opts.Preview = inflatePreview
	opts.Out = cmd.OutOrStdout()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	_, err := pipeline.Run(ctx, args, opts, inflateStrict)
	if !inflateWatch {
		return err
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	return watchInputs(ctx, args, opts)
}

// watchInputs re-processes an input whenever it or one of its OpenSCAD
// dependencies changes
func watchInputs(ctx context.Context, inputs []string, opts pipeline.Options) error {
	fw, err := watcher.NewFileWatcher(500 * time.Millisecond)
	if err != nil {
		return err
	}
	defer fw.Close()

	fw.Errors = func(err error) {
		fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
	}

	for _, input := range inputs {
		files, err := pipeline.WatchedFiles(input)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", input, err)
		}
		if err := fw.Watch(files, func(changed string) {
			fmt.Fprintf(opts.Out, "%s changed\n", filepath.Base(changed))
			if _, err := pipeline.Process(ctx, input, opts); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}); err != nil {
			return err
		}
	}

	fmt.Fprintf(opts.Out, "watching %d file(s), press Ctrl+C to stop\n", len(inputs))
	if err := fw.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

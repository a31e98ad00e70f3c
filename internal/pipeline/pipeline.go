// Package pipeline ties the clip tab fix together: load a tile, detect its
// tabs, inflate them and save the enlarged copy.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/clipfit/pkg/detect"
	"github.com/philipparndt/clipfit/pkg/inflate"
	"github.com/philipparndt/clipfit/pkg/openscad"
	"github.com/philipparndt/clipfit/pkg/preview"
	"github.com/philipparndt/clipfit/pkg/stl"
)

// DefaultSuffix is inserted before the extension of the output file
const DefaultSuffix = "_big_"

// Options configure a run
type Options struct {
	Factor    float64
	Suffix    string
	Detection detect.Config

	// Preview also renders a PNG of every written model
	Preview bool

	// Out receives progress messages; nil discards them
	Out io.Writer
}

// DefaultOptions returns the settings of a plain run
func DefaultOptions() Options {
	return Options{
		Factor:    inflate.DefaultFactor,
		Suffix:    DefaultSuffix,
		Detection: detect.DefaultConfig(),
	}
}

func (o Options) printf(format string, args ...any) {
	if o.Out != nil {
		fmt.Fprintf(o.Out, format, args...)
	}
}

// Result describes what happened to one input
type Result struct {
	Input          string
	Output         string
	Facets         int
	Spots          []detect.Spot
	ModifiedFacets int
	MovedPoints    int
	Written        bool
	PreviewImage   string
}

// OutputPath inserts the suffix before the extension. Rendered OpenSCAD
// sources always produce an .stl file.
func OutputPath(input, suffix string) string {
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(input, ext)
	if strings.EqualFold(ext, ".scad") {
		ext = ".stl"
	}
	return base + suffix + ext
}

// PreviewPath returns the PNG path rendered next to an output file
func PreviewPath(output string) string {
	return strings.TrimSuffix(output, filepath.Ext(output)) + ".png"
}

// Process fixes a single file. No file is written when the input holds no
// mesh or no tab is found.
func Process(ctx context.Context, input string, opts Options) (*Result, error) {
	result := &Result{Input: input}

	opts.printf("loading stl file %s\n", input)
	model, err := load(ctx, input)
	if err != nil {
		if errors.Is(err, stl.ErrTruncatedHeader) {
			opts.printf("no mesh found in %s\n", input)
			opts.printf("done\n")
			return result, nil
		}
		return result, err
	}
	result.Facets = model.FacetCount()

	opts.printf("detecting parts to scale up\n")
	result.Spots = detect.Detect(model, opts.Detection)

	if len(result.Spots) > 0 {
		opts.printf("scaling up\n")
		result.MovedPoints = inflate.Model(model, result.Spots, opts.Factor)
		result.ModifiedFacets = model.ModifiedCount()

		result.Output = OutputPath(input, opts.Suffix)
		opts.printf("saving scaled up model as %s\n", result.Output)
		if err := stl.WriteFile(result.Output, model); err != nil {
			return result, fmt.Errorf("failed to save %s: %w", result.Output, err)
		}
		result.Written = true

		if opts.Preview {
			result.PreviewImage = PreviewPath(result.Output)
			opts.printf("rendering preview %s\n", result.PreviewImage)
			if err := preview.WritePNG(result.PreviewImage, model, preview.DefaultOptions()); err != nil {
				return result, err
			}
		}
	} else {
		opts.printf("no parts found\n")
	}

	opts.printf("done\n")
	return result, nil
}

// Run processes inputs one after another. Failures of a single file are
// reported and the batch goes on, except for malformed records in strict
// mode, which abort the batch. The returned error joins every failure.
func Run(ctx context.Context, inputs []string, opts Options, strict bool) ([]*Result, error) {
	var results []*Result
	var errs []error

	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		result, err := Process(ctx, input, opts)
		results = append(results, result)
		if err == nil {
			continue
		}

		errs = append(errs, fmt.Errorf("%s: %w", input, err))
		if errors.Is(err, stl.ErrMalformedRecord) {
			opts.printf("warning: invalid stl file %s: %v\n", input, err)
			if strict {
				break
			}
			continue
		}
		opts.printf("error: %v\n", err)
	}

	return results, errors.Join(errs...)
}

// load parses an STL file, rendering OpenSCAD sources first
func load(ctx context.Context, input string) (*stl.Model, error) {
	if !strings.EqualFold(filepath.Ext(input), ".scad") {
		return stl.Parse(input)
	}

	source, err := filepath.Abs(input)
	if err != nil {
		return nil, err
	}
	renderer := openscad.NewRenderer(filepath.Dir(source))
	tmp, err := os.CreateTemp("", "clipfit-*.stl")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %w: %w", stl.ErrResourceUnavailable, err)
	}
	tmp.Close()
	defer os.Remove(tmp.Name())

	if err := renderer.RenderToSTL(ctx, source, tmp.Name()); err != nil {
		return nil, fmt.Errorf("%w: %w", stl.ErrResourceUnavailable, err)
	}
	return stl.Parse(tmp.Name())
}

// WatchedFiles lists the files whose change should re-run an input: the
// file itself, plus the OpenSCAD dependencies of a .scad source
func WatchedFiles(input string) ([]string, error) {
	if !strings.EqualFold(filepath.Ext(input), ".scad") {
		return []string{input}, nil
	}
	abs, err := filepath.Abs(input)
	if err != nil {
		return nil, err
	}
	return openscad.NewRenderer(filepath.Dir(abs)).ResolveDependencies(abs)
}

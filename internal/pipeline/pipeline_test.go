package pipeline

import (
	"bytes"
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/clipfit/pkg/geometry"
	"github.com/philipparndt/clipfit/pkg/stl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// addBox appends the 12 facets of an axis-aligned box
func addBox(model *stl.Model, min, max geometry.Vector3) {
	v := func(x, y, z int) geometry.Vector3 {
		pick := func(axis, i int) float64 {
			if i == 0 {
				return min[axis]
			}
			return max[axis]
		}
		return geometry.NewVector3(pick(0, x), pick(1, y), pick(2, z))
	}
	quads := [][4]geometry.Vector3{
		{v(0, 0, 0), v(0, 1, 0), v(1, 1, 0), v(1, 0, 0)},
		{v(0, 0, 1), v(1, 0, 1), v(1, 1, 1), v(0, 1, 1)},
		{v(0, 0, 0), v(1, 0, 0), v(1, 0, 1), v(0, 0, 1)},
		{v(0, 1, 0), v(0, 1, 1), v(1, 1, 1), v(1, 1, 0)},
		{v(0, 0, 0), v(0, 0, 1), v(0, 1, 1), v(0, 1, 0)},
		{v(1, 0, 0), v(1, 1, 0), v(1, 1, 1), v(1, 0, 1)},
	}
	for _, q := range quads {
		model.AddFacet(stl.NewFacet(q[0], q[1], q[2]))
		model.AddFacet(stl.NewFacet(q[0], q[2], q[3]))
	}
}

// tile is a 2.3 mm thick tab next to a distant, thick block
func tile() *stl.Model {
	model := stl.NewModel()
	addBox(model, geometry.NewVector3(0, 0, 0), geometry.NewVector3(2.3, 4, 5))
	addBox(model, geometry.NewVector3(40, 40, 0), geometry.NewVector3(50, 50, 10))
	return model
}

func writeModel(t *testing.T, path string, model *stl.Model) {
	t.Helper()
	require.NoError(t, stl.WriteFile(path, model))
}

func attributes(t *testing.T, path string) []uint16 {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	count := binary.LittleEndian.Uint32(data[80:])
	attrs := make([]uint16, count)
	for i := range attrs {
		attrs[i] = binary.LittleEndian.Uint16(data[84+50*i+48:])
	}
	return attrs
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "tile_big_.stl", OutputPath("tile.stl", DefaultSuffix))
	assert.Equal(t, filepath.Join("dir", "a.b_fit.STL"), OutputPath(filepath.Join("dir", "a.b.STL"), "_fit"))
	assert.Equal(t, "noext_big_", OutputPath("noext", DefaultSuffix))
	assert.Equal(t, "tile_big_.stl", OutputPath("tile.scad", DefaultSuffix))
}

func TestProcessInflatesTabs(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "tile.stl")
	writeModel(t, input, tile())

	out := &bytes.Buffer{}
	opts := DefaultOptions()
	opts.Out = out

	result, err := Process(context.Background(), input, opts)
	require.NoError(t, err)
	require.True(t, result.Written)
	assert.Equal(t, filepath.Join(dir, "tile_big_.stl"), result.Output)
	assert.Equal(t, 24, result.Facets)
	assert.NotEmpty(t, result.Spots)
	assert.Equal(t, 12, result.ModifiedFacets)
	assert.Equal(t, 36, result.MovedPoints)

	assert.Contains(t, out.String(), "detecting parts to scale up")
	assert.Contains(t, out.String(), "saving scaled up model as "+result.Output)

	fixed, err := stl.Parse(result.Output)
	require.NoError(t, err)
	require.Equal(t, 24, fixed.FacetCount())

	original := tile()
	for i := 12; i < 24; i++ {
		assert.Equal(t, original.Facets[i].Points, fixed.Facets[i].Points, "block facet %d must not move", i)
	}
	tab := geometry.NewBoundingBox()
	for _, facet := range fixed.Facets[:12] {
		for _, p := range facet.Points {
			tab.Extend(p)
		}
	}
	assert.Greater(t, tab.Size().X(), 2.3*1.1, "tab got thicker")

	attrs := attributes(t, result.Output)
	for i, attr := range attrs {
		if i < 12 {
			assert.Equal(t, stl.ColorHighlight, attr, "facet %d", i)
		} else {
			assert.Equal(t, stl.ColorNeutral, attr, "facet %d", i)
		}
	}
}

func TestProcessRendersPreview(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "tile.stl")
	writeModel(t, input, tile())

	opts := DefaultOptions()
	opts.Preview = true

	result, err := Process(context.Background(), input, opts)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tile_big_.png"), result.PreviewImage)
	assert.FileExists(t, result.PreviewImage)
}

func TestProcessWithoutTabsWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "plain.stl")
	model := stl.NewModel()
	addBox(model, geometry.NewVector3(0, 0, 0), geometry.NewVector3(10, 10, 10))
	writeModel(t, input, model)

	result, err := Process(context.Background(), input, DefaultOptions())
	require.NoError(t, err)
	assert.False(t, result.Written)
	assert.Empty(t, result.Spots)
	assert.NoFileExists(t, OutputPath(input, DefaultSuffix))
}

func TestProcessTruncatedHeader(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "empty.stl")
	require.NoError(t, os.WriteFile(input, make([]byte, 82), 0o644))

	result, err := Process(context.Background(), input, DefaultOptions())
	require.NoError(t, err)
	assert.False(t, result.Written)
	assert.Equal(t, 0, result.Facets)
}

func malformed(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "broken.stl")
	writeModel(t, path, tile())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data[:len(data)-7], 0o644))
	return path
}

func TestRunContinuesAfterMalformedFile(t *testing.T) {
	dir := t.TempDir()
	broken := malformed(t, dir)
	good := filepath.Join(dir, "good.stl")
	writeModel(t, good, tile())

	out := &bytes.Buffer{}
	opts := DefaultOptions()
	opts.Out = out

	results, err := Run(context.Background(), []string{broken, good}, opts, false)
	require.ErrorIs(t, err, stl.ErrMalformedRecord)
	require.Len(t, results, 2)
	assert.False(t, results[0].Written)
	assert.NoFileExists(t, OutputPath(broken, DefaultSuffix))
	assert.True(t, results[1].Written)
	assert.Contains(t, out.String(), "warning: invalid stl file")
}

func TestRunStrictStopsOnMalformedFile(t *testing.T) {
	dir := t.TempDir()
	broken := malformed(t, dir)
	good := filepath.Join(dir, "good.stl")
	writeModel(t, good, tile())

	results, err := Run(context.Background(), []string{broken, good}, DefaultOptions(), true)
	require.ErrorIs(t, err, stl.ErrMalformedRecord)
	assert.Len(t, results, 1)
	assert.NoFileExists(t, OutputPath(good, DefaultSuffix))
}

func TestRunReportsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.stl")
	writeModel(t, good, tile())

	results, err := Run(context.Background(), []string{filepath.Join(dir, "missing.stl"), good}, DefaultOptions(), true)
	require.ErrorIs(t, err, stl.ErrResourceUnavailable)
	require.Len(t, results, 2)
	assert.True(t, results[1].Written)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Run(ctx, []string{"a.stl"}, DefaultOptions(), false)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestWatchedFiles(t *testing.T) {
	files, err := WatchedFiles("tile.stl")
	require.NoError(t, err)
	assert.Equal(t, []string{"tile.stl"}, files)

	dir := t.TempDir()
	scad := filepath.Join(dir, "tile.scad")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clip.scad"), []byte("module clip() {}\n"), 0o644))
	require.NoError(t, os.WriteFile(scad, []byte("use <clip.scad>\nclip();\n"), 0o644))

	files, err = WatchedFiles(scad)
	require.NoError(t, err)
	assert.Equal(t, []string{scad, filepath.Join(dir, "clip.scad")}, files)
}

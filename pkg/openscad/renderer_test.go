package openscad

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestResolveDependencies(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "tile.scad"), `
use <lib/clip.scad>
include <./common.scad>
// use <ignored.scad>
tile();
`)
	writeFile(t, filepath.Join(dir, "lib", "clip.scad"), "include <../common.scad>\nmodule clip() {}\n")
	writeFile(t, filepath.Join(dir, "common.scad"), "w = 2.3;\n")

	deps, err := NewRenderer(dir).ResolveDependencies("tile.scad")
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "tile.scad"),
		filepath.Join(dir, "lib", "clip.scad"),
		filepath.Join(dir, "common.scad"),
	}, deps)
}

func TestResolveDependenciesCycle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.scad"), "use <b.scad>\n")
	writeFile(t, filepath.Join(dir, "b.scad"), "use <a.scad>\n")

	deps, err := NewRenderer(dir).ResolveDependencies(filepath.Join(dir, "a.scad"))
	require.NoError(t, err)
	assert.Len(t, deps, 2)
}

func TestResolveDependenciesMissing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.scad"), "use <missing.scad>\n")

	_, err := NewRenderer(dir).ResolveDependencies("a.scad")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRenderWithoutBinary(t *testing.T) {
	r := NewRenderer(t.TempDir())
	r.binary = "openscad-does-not-exist"

	err := r.RenderToSTL(context.Background(), "tile.scad", "tile.stl")
	assert.ErrorIs(t, err, ErrNotInstalled)
}

// Package preview renders a shaded PNG of a mesh with the inflated facets
// in the same red/blue scheme as the STL attribute bytes.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/philipparndt/clipfit/pkg/geometry"
	"github.com/philipparndt/clipfit/pkg/stl"
)

var (
	background = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	highlight  = color.RGBA{R: 220, G: 40, B: 30, A: 255}
	neutral    = color.RGBA{R: 50, G: 110, B: 200, A: 255}
)

// Options control the rendered view
type Options struct {
	Width, Height int
	Elevation     float64 // radians
	Azimuth       float64 // radians
}

// DefaultOptions returns a three-quarter view
func DefaultOptions() Options {
	return Options{
		Width:     800,
		Height:    600,
		Elevation: math.Pi / 6,
		Azimuth:   math.Pi / 5,
	}
}

// Render draws the model with flat shading
func Render(model *stl.Model, opts Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	zbuffer := make([]float64, opts.Width*opts.Height)
	for i := range zbuffer {
		zbuffer[i] = math.Inf(1)
	}

	// facets with non-finite corners cannot be placed in the view
	bbox := geometry.NewBoundingBox()
	visible := make([]stl.Facet, 0, len(model.Facets))
	for _, facet := range model.Facets {
		if !finite(facet) {
			continue
		}
		for _, p := range facet.Points {
			bbox.Extend(p)
		}
		visible = append(visible, facet)
	}
	if len(visible) == 0 {
		return img
	}

	camera := NewCamera(bbox, opts.Elevation, opts.Azimuth)
	light := camera.Forward().Mul(-1)

	w, h := float64(opts.Width), float64(opts.Height)
	for _, facet := range visible {
		var v [3]vertex
		for i, p := range facet.Points {
			x, y, z := camera.Project(p, w, h)
			v[i] = vertex{x, y, z}
		}
		fillTriangle(img, zbuffer, v, shade(facet, light))
	}
	return img
}

func finite(facet stl.Facet) bool {
	for _, p := range facet.Points {
		for axis := range 3 {
			if v := p.At(axis); math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

// shade lights a facet by the angle between its normal and the light,
// ignoring which side faces the camera
func shade(facet stl.Facet, light geometry.Vector3) color.RGBA {
	base := neutral
	if facet.Modified {
		base = highlight
	}

	intensity := 1.0
	if n := facet.Normal(); !math.IsNaN(n.X()) {
		intensity = 0.35 + 0.65*math.Abs(n.Dot(light))
	}
	scale := func(c uint8) uint8 { return uint8(float64(c) * intensity) }
	return color.RGBA{R: scale(base.R), G: scale(base.G), B: scale(base.B), A: 255}
}

// WritePNG renders the model into a PNG file
func WritePNG(filename string, model *stl.Model, opts Options) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w: %w", filename, stl.ErrResourceUnavailable, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := png.Encode(file, Render(model, opts)); err != nil {
		return fmt.Errorf("failed to encode %s: %w", filename, err)
	}
	return nil
}

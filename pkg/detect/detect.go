// Package detect finds male clip tabs in a mesh by their wall thickness.
//
// A tab is a thin pillar. Slicing the mesh perpendicular to the pillar axis
// at a fine grid and tracking the extent of every slice along a second
// axis recovers the pillar thickness without any 3D clustering.
package detect

import (
	"math"

	"github.com/philipparndt/clipfit/pkg/geometry"
	"github.com/philipparndt/clipfit/pkg/stl"
)

// Thickness band of the ZOD tile clip tabs (thing:2528937), in millimeters.
// The band is closed on both ends.
const (
	MinTabThickness = 2.29
	MaxTabThickness = 2.36
)

// SliceResolution is the number of slices per unit: coordinates are
// quantized to a 1/20 mm grid before grouping.
const SliceResolution = 20.0

// Config holds the detection tolerances
type Config struct {
	MinThickness    float64
	MaxThickness    float64
	SliceResolution float64
}

// DefaultConfig returns the tolerances tuned for ZOD tiles
func DefaultConfig() Config {
	return Config{
		MinThickness:    MinTabThickness,
		MaxThickness:    MaxTabThickness,
		SliceResolution: SliceResolution,
	}
}

// InBand reports whether a thickness lies within the closed band
func (c Config) InBand(size float64) bool {
	return c.MinThickness <= size && size <= c.MaxThickness
}

// SliceKey quantizes a coordinate to the slice grid, rounding halves to even
func (c Config) SliceKey(coordinate float64) float64 {
	return math.RoundToEven(coordinate*c.SliceResolution) / c.SliceResolution
}

// Spot is the centerline of a detected pillar. The anchor is meaningful on
// the two axes other than FreeAxis; FreeAxis is the pillar's extrusion axis.
type Spot struct {
	Anchor   geometry.Vector3
	FreeAxis int
}

// AxisPair is one (scanning, slicing) combination
type AxisPair struct {
	Scanning int
	Slicing  int
}

// AxisPairs lists every ordered pair of distinct axes, in scan order
var AxisPairs = [6]AxisPair{
	{geometry.AxisX, geometry.AxisY},
	{geometry.AxisX, geometry.AxisZ},
	{geometry.AxisY, geometry.AxisX},
	{geometry.AxisY, geometry.AxisZ},
	{geometry.AxisZ, geometry.AxisX},
	{geometry.AxisZ, geometry.AxisY},
}

// FreeAxis returns the axis that is neither scanning nor slicing
func (p AxisPair) FreeAxis() int {
	return 3 - p.Scanning - p.Slicing
}

type extent struct {
	min, max float64
}

func (e extent) size() float64 {
	return e.max - e.min
}

// Spots scans the points along every axis pair and returns a spot for
// each slice whose thickness lies in the band. Spots are ordered by axis
// pair, then by the first appearance of their slice. Spots of the same
// pillar found from different axis pairs are all kept.
func Spots(points []geometry.Vector3, cfg Config) []Spot {
	var spots []Spot
	for _, pair := range AxisPairs {
		spots = append(spots, scan(points, pair, cfg)...)
	}
	return spots
}

// Detect runs Spots over every point of the model
func Detect(model *stl.Model, cfg Config) []Spot {
	return Spots(model.Points(), cfg)
}

func scan(points []geometry.Vector3, pair AxisPair, cfg Config) []Spot {
	limits := make(map[float64]*extent)
	var keys []float64

	for _, point := range points {
		coordinate := point.At(pair.Slicing)
		key := cfg.SliceKey(point.At(pair.Scanning))

		e, ok := limits[key]
		if !ok {
			e = &extent{min: math.Inf(1), max: math.Inf(-1)}
			limits[key] = e
			keys = append(keys, key)
		}
		e.min = math.Min(e.min, coordinate)
		e.max = math.Max(e.max, coordinate)
	}

	var spots []Spot
	for _, key := range keys {
		e := limits[key]
		if !cfg.InBand(e.size()) {
			continue
		}
		var anchor geometry.Vector3
		anchor[pair.Scanning] = key
		anchor[pair.Slicing] = (e.min + e.max) / 2.0
		spots = append(spots, Spot{Anchor: anchor, FreeAxis: pair.FreeAxis()})
	}
	return spots
}

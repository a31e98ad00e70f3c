package analysis

import (
	"fmt"

	"github.com/philipparndt/clipfit/pkg/detect"
	"github.com/philipparndt/clipfit/pkg/geometry"
	"github.com/philipparndt/clipfit/pkg/stl"
)

// Report summarizes a mesh and the clip tabs found in it
type Report struct {
	FacetCount     int
	PointCount     int
	ModifiedFacets int
	BoundingBox    geometry.BoundingBox
	Dimensions     geometry.Vector3
	SpotCount      int
	SpotsByAxis    [3]int // indexed by free axis
}

// Summarize builds a report for a model and its detected spots
func Summarize(model *stl.Model, spots []detect.Spot) *Report {
	report := &Report{
		FacetCount:     model.FacetCount(),
		PointCount:     model.PointCount(),
		ModifiedFacets: model.ModifiedCount(),
		BoundingBox:    model.BoundingBox(),
		SpotCount:      len(spots),
	}
	if !report.BoundingBox.IsEmpty() {
		report.Dimensions = report.BoundingBox.Size()
	}

	for _, spot := range spots {
		report.SpotsByAxis[spot.FreeAxis]++
	}

	return report
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X(), v.Y(), v.Z())
}

// FormatSpot formats a spot as its two meaningful coordinates and its axis
func FormatSpot(spot detect.Spot) string {
	var coords []string
	for axis := range spot.Anchor {
		if axis == spot.FreeAxis {
			continue
		}
		coords = append(coords, fmt.Sprintf("%s=%.3f", geometry.AxisName(axis), spot.Anchor[axis]))
	}
	return fmt.Sprintf("pillar along %s at %s, %s", geometry.AxisName(spot.FreeAxis), coords[0], coords[1])
}

// Package inflate enlarges the geometry surrounding detected clip tabs.
package inflate

import (
	"math"

	"github.com/philipparndt/clipfit/pkg/detect"
	"github.com/philipparndt/clipfit/pkg/geometry"
	"github.com/philipparndt/clipfit/pkg/stl"
)

// ProximityRadius is the largest per-axis distance from a spot anchor at
// which a point still belongs to the tab. It covers the tab and its base on
// ZOD tiles without reaching the neighbouring walls.
const ProximityRadius = 2.9

// DefaultFactor is the enlargement giving a snug fit on ZOD tiles
const DefaultFactor = 1.15

// Near reports whether the point lies within ProximityRadius of the spot
// anchor on both axes other than the spot's free axis
func Near(point geometry.Vector3, spot detect.Spot) bool {
	for axis := range point {
		if axis == spot.FreeAxis {
			continue
		}
		if math.Abs(point[axis]-spot.Anchor[axis]) > ProximityRadius {
			return false
		}
	}
	return true
}

// Point scales the offset of the point from the first spot it is near.
// The free axis is never changed. The boolean reports whether any spot
// matched; when none does the point is returned unchanged.
func Point(point geometry.Vector3, spots []detect.Spot, factor float64) (geometry.Vector3, bool) {
	for _, spot := range spots {
		if !Near(point, spot) {
			continue
		}
		for axis := range point {
			if axis == spot.FreeAxis {
				continue
			}
			point[axis] = (point[axis]-spot.Anchor[axis])*factor + spot.Anchor[axis]
		}
		return point, true
	}
	return point, false
}

// Model inflates every point of the model and flags each facet with at
// least one moved point as modified. It returns the number of moved points.
func Model(model *stl.Model, spots []detect.Spot, factor float64) int {
	if len(spots) == 0 {
		return 0
	}

	moved := 0
	for i := range model.Facets {
		facet := &model.Facets[i]
		for j, point := range facet.Points {
			inflated, matched := Point(point, spots, factor)
			if !matched {
				continue
			}
			facet.Points[j] = inflated
			facet.Modified = true
			moved++
		}
	}
	return moved
}

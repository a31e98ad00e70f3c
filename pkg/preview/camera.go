package preview

import (
	"math"

	"github.com/philipparndt/clipfit/pkg/geometry"
)

// Camera is a perspective camera orbiting a target point
type Camera struct {
	Position geometry.Vector3
	Target   geometry.Vector3
	Up       geometry.Vector3
	FOV      float64 // Field of view in radians
}

// maxElevation keeps the view off the poles, where Up would be parallel to it
const maxElevation = math.Pi/2 - 0.1

// NewCamera looks at the center of a bounding box from the given elevation
// and azimuth, far enough away to see all of it
func NewCamera(bbox geometry.BoundingBox, elevation, azimuth float64) *Camera {
	size := bbox.Size()
	distance := math.Max(size.X(), math.Max(size.Y(), size.Z())) * 2.0
	if distance == 0 {
		distance = 1
	}
	elevation = math.Max(-maxElevation, math.Min(maxElevation, elevation))

	orbit := geometry.NewVector3(
		math.Cos(elevation)*math.Sin(azimuth),
		math.Sin(elevation),
		math.Cos(elevation)*math.Cos(azimuth),
	)
	target := bbox.Center()
	return &Camera{
		Position: target.Add(orbit.Mul(distance)),
		Target:   target,
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      math.Pi / 4,
	}
}

// Forward returns the unit view direction
func (c *Camera) Forward() geometry.Vector3 {
	return c.Target.Sub(c.Position).Normalize()
}

// Project maps a point to screen coordinates plus its depth along the view
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	forward := c.Forward()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward).Normalize()

	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	if z <= 0.01 {
		z = 0.01
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-y/(z*fovScale))*(height/2) + (height / 2)

	return screenX, screenY, z
}

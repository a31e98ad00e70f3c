package geometry

import "github.com/ungerik/go3d/float64/vec3"

// Axis indices into a Vector3
const (
	AxisX = 0
	AxisY = 1
	AxisZ = 2
)

// Vector3 represents a 3D point or vector, addressed by axis index
type Vector3 vec3.T

// NewVector3 creates a new 3D vector
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{x, y, z}
}

func (v *Vector3) t() *vec3.T {
	return (*vec3.T)(v)
}

// X returns the first component
func (v Vector3) X() float64 { return v[AxisX] }

// Y returns the second component
func (v Vector3) Y() float64 { return v[AxisY] }

// Z returns the third component
func (v Vector3) Z() float64 { return v[AxisZ] }

// At returns the component on the given axis
func (v Vector3) At(axis int) float64 {
	return v[axis]
}

// With returns a copy of the vector with the given axis replaced
func (v Vector3) With(axis int, value float64) Vector3 {
	v[axis] = value
	return v
}

// Add returns the sum of two vectors
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3(vec3.Add(v.t(), other.t()))
}

// Sub returns the difference between two vectors
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3(vec3.Sub(v.t(), other.t()))
}

// Mul multiplies the vector by a scalar
func (v Vector3) Mul(scalar float64) Vector3 {
	return Vector3(v.t().Scaled(scalar))
}

// Div divides the vector by a scalar
func (v Vector3) Div(scalar float64) Vector3 {
	return Vector3{v[0] / scalar, v[1] / scalar, v[2] / scalar}
}

// Dot returns the dot product of two vectors
func (v Vector3) Dot(other Vector3) float64 {
	return vec3.Dot(v.t(), other.t())
}

// Cross returns the cross product of two vectors
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3(vec3.Cross(v.t(), other.t()))
}

// Length returns the magnitude of the vector
func (v Vector3) Length() float64 {
	return v.t().Length()
}

// Distance returns the distance between two points
func (v Vector3) Distance(other Vector3) float64 {
	return vec3.Distance(v.t(), other.t())
}

// Normalize returns a unit vector in the same direction.
// The result is meaningless for a zero-length vector.
func (v Vector3) Normalize() Vector3 {
	return v.Div(v.Length())
}

// Min returns a vector with the minimum components of two vectors
func (v Vector3) Min(other Vector3) Vector3 {
	return Vector3(vec3.Min(v.t(), other.t()))
}

// Max returns a vector with the maximum components of two vectors
func (v Vector3) Max(other Vector3) Vector3 {
	return Vector3(vec3.Max(v.t(), other.t()))
}

// AxisName returns "X", "Y" or "Z"
func AxisName(axis int) string {
	switch axis {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return "?"
}

package stl

import (
	"github.com/philipparndt/clipfit/pkg/geometry"
)

// Facet is one triangle of a mesh. Its normal is always derived from the
// points, never stored.
type Facet struct {
	Points [3]geometry.Vector3

	// Modified marks facets touched by inflation; it selects the
	// attribute color on output.
	Modified bool
}

// NewFacet creates an unmodified facet from three points in winding order
func NewFacet(p0, p1, p2 geometry.Vector3) Facet {
	return Facet{Points: [3]geometry.Vector3{p0, p1, p2}}
}

// Normal computes the unit normal from the current points
func (f Facet) Normal() geometry.Vector3 {
	return geometry.FacetNormal(f.Points[0], f.Points[1], f.Points[2])
}

// Model represents a complete STL mesh. Facet order is preserved from
// input to output.
type Model struct {
	Facets []Facet
}

// NewModel creates an empty model
func NewModel() *Model {
	return &Model{
		Facets: make([]Facet, 0),
	}
}

// AddFacet appends a facet to the model
func (m *Model) AddFacet(facet Facet) {
	m.Facets = append(m.Facets, facet)
}

// FacetCount returns the number of facets in the model
func (m *Model) FacetCount() int {
	return len(m.Facets)
}

// PointCount returns the number of points, three per facet
func (m *Model) PointCount() int {
	return 3 * len(m.Facets)
}

// Points returns every point of the model in facet order
func (m *Model) Points() []geometry.Vector3 {
	points := make([]geometry.Vector3, 0, m.PointCount())
	for _, facet := range m.Facets {
		points = append(points, facet.Points[:]...)
	}
	return points
}

// ModifiedCount returns the number of facets flagged as modified
func (m *Model) ModifiedCount() int {
	count := 0
	for _, facet := range m.Facets {
		if facet.Modified {
			count++
		}
	}
	return count
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, facet := range m.Facets {
		for _, point := range facet.Points {
			bbox.Extend(point)
		}
	}
	return bbox
}

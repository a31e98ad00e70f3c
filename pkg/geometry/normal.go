package geometry

// Centroid returns the arithmetic mean of the three vertices
func Centroid(p0, p1, p2 Vector3) Vector3 {
	return p0.Add(p1).Add(p2).Div(3.0)
}

// FacetNormal computes the unit normal of a triangle from its vertices.
// The direction follows the winding order p0, p1, p2. Degenerate
// triangles produce a non-finite vector.
func FacetNormal(p0, p1, p2 Vector3) Vector3 {
	center := Centroid(p0, p1, p2)
	u1 := p0.Sub(center)
	u2 := p1.Sub(center)
	return u1.Cross(u2).Normalize()
}

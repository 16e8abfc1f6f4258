package mesh

import (
	"math"

	"github.com/philipparndt/gooutline/pkg/geometry"
)

// Mesh is indexed triangle geometry shared between scene objects.
// Clones reference the same Mesh; it is never copied.
type Mesh struct {
	Name      string
	Positions []geometry.Vector3
	Normals   []geometry.Vector3
	Indices   []uint32

	bounds      geometry.BoundingBox
	boundsValid bool
}

// NewMesh creates an empty, named mesh
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// AddVertex appends a vertex and returns its index
func (m *Mesh) AddVertex(position, normal geometry.Vector3) uint32 {
	m.Positions = append(m.Positions, position)
	m.Normals = append(m.Normals, normal)
	m.boundsValid = false
	return uint32(len(m.Positions) - 1)
}

// AddTriangle appends a triangle by vertex indices
func (m *Mesh) AddTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// VertexCount returns the number of vertices
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles in the mesh
func (m *Mesh) TriangleCount() int {
	if m == nil {
		return 0
	}
	return len(m.Indices) / 3
}

// Empty reports whether the mesh has no drawable triangles
func (m *Mesh) Empty() bool {
	return m == nil || m.TriangleCount() == 0
}

// Triangle returns the three corner positions of triangle i
func (m *Mesh) Triangle(i int) (geometry.Vector3, geometry.Vector3, geometry.Vector3) {
	return m.Positions[m.Indices[i*3]], m.Positions[m.Indices[i*3+1]], m.Positions[m.Indices[i*3+2]]
}

// BoundingBox calculates the bounding box of the mesh in local space
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	if m.boundsValid {
		return m.bounds
	}
	bbox := geometry.NewBoundingBox()
	for _, p := range m.Positions {
		bbox.Extend(p)
	}
	m.bounds = bbox
	m.boundsValid = true
	return bbox
}

// Intersect returns the nearest ray parameter at which r hits the mesh.
// The ray must already be in the mesh's local space.
func (m *Mesh) Intersect(r geometry.Ray) (float64, bool) {
	if m.Empty() {
		return 0, false
	}
	if _, ok := r.IntersectBox(m.BoundingBox()); !ok {
		return 0, false
	}

	best := math.MaxFloat64
	hit := false
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		if t, ok := r.IntersectTriangle(a, b, c); ok && t < best {
			best = t
			hit = true
		}
	}
	return best, hit
}

package mesh

import (
	"math"
	"testing"

	"github.com/philipparndt/gooutline/pkg/geometry"
)

func TestNewSphereBounds(t *testing.T) {
	m, err := NewSphere(2, 16)
	if err != nil {
		t.Fatalf("NewSphere failed: %v", err)
	}

	bbox := m.BoundingBox()
	if !bbox.Min.ApproxEqual(geometry.Splat(-1), 1e-2) {
		t.Errorf("Bounds min failed: expected ~%v, got %v", geometry.Splat(-1), bbox.Min)
	}
	if !bbox.Max.ApproxEqual(geometry.Splat(1), 1e-2) {
		t.Errorf("Bounds max failed: expected ~%v, got %v", geometry.Splat(1), bbox.Max)
	}
	if m.TriangleCount() == 0 {
		t.Errorf("TriangleCount failed: expected triangles")
	}
}

func TestNewSphereNormalsAreUnitAndOutward(t *testing.T) {
	m, err := NewSphere(3, 8)
	if err != nil {
		t.Fatalf("NewSphere failed: %v", err)
	}

	for i, n := range m.Normals {
		if math.Abs(n.Length()-1) > 1e-9 {
			t.Fatalf("Normal %d failed: expected unit length, got %v", i, n.Length())
		}
		if m.Positions[i].Dot(n) < 0 {
			t.Fatalf("Normal %d failed: expected outward, got %v at %v", i, n, m.Positions[i])
		}
	}
}

func TestNewSphereRejectsBadInput(t *testing.T) {
	if _, err := NewSphere(0, 16); err == nil {
		t.Errorf("NewSphere failed: expected error for zero diameter")
	}
	if _, err := NewSphere(1, 2); err == nil {
		t.Errorf("NewSphere failed: expected error for too few segments")
	}
}

func TestMeshIntersect(t *testing.T) {
	m, err := NewSphere(2, 24)
	if err != nil {
		t.Fatalf("NewSphere failed: %v", err)
	}

	ray := geometry.NewRay(geometry.NewVector3(0.01, 0.013, 10), geometry.NewVector3(0, 0, -1))
	dist, ok := m.Intersect(ray)
	if !ok {
		t.Fatalf("Intersect failed: expected hit")
	}
	if math.Abs(dist-9) > 0.05 {
		t.Errorf("Intersect failed: expected distance ~9, got %v", dist)
	}

	miss := geometry.NewRay(geometry.NewVector3(5, 0, 10), geometry.NewVector3(0, 0, -1))
	if _, ok := m.Intersect(miss); ok {
		t.Errorf("Intersect failed: expected miss")
	}
}

func TestEmptyMesh(t *testing.T) {
	m := NewMesh("empty")
	if !m.Empty() {
		t.Errorf("Empty failed: expected new mesh to be empty")
	}

	var nilMesh *Mesh
	if !nilMesh.Empty() {
		t.Errorf("Empty failed: expected nil mesh to be empty")
	}
}

func TestNewSphereWindsOutward(t *testing.T) {
	m, err := NewSphere(2, 12)
	if err != nil {
		t.Fatalf("NewSphere failed: %v", err)
	}

	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		face := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c).Mul(1.0 / 3)
		if face.Dot(centroid) <= 0 {
			t.Fatalf("Winding failed: triangle %d faces inward", i)
		}
	}
}

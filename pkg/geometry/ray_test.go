package geometry

import (
	"math"
	"testing"
)

func TestRayIntersectTriangle(t *testing.T) {
	ray := NewRay(NewVector3(0.2, 0.2, 5), NewVector3(0, 0, -1))

	dist, ok := ray.IntersectTriangle(
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
	)
	if !ok {
		t.Fatalf("IntersectTriangle failed: expected hit")
	}
	if math.Abs(dist-5.0) > 1e-10 {
		t.Errorf("IntersectTriangle failed: expected distance 5, got %v", dist)
	}
}

func TestRayMissesTriangle(t *testing.T) {
	ray := NewRay(NewVector3(2, 2, 5), NewVector3(0, 0, -1))

	if _, ok := ray.IntersectTriangle(NewVector3(0, 0, 0), NewVector3(1, 0, 0), NewVector3(0, 1, 0)); ok {
		t.Errorf("IntersectTriangle failed: expected miss outside the triangle")
	}

	behind := NewRay(NewVector3(0.2, 0.2, 5), NewVector3(0, 0, 1))
	if _, ok := behind.IntersectTriangle(NewVector3(0, 0, 0), NewVector3(1, 0, 0), NewVector3(0, 1, 0)); ok {
		t.Errorf("IntersectTriangle failed: expected miss for triangle behind the origin")
	}
}

func TestRayIntersectBox(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(-1, -1, -1))
	bbox.Extend(NewVector3(1, 1, 1))

	ray := NewRay(NewVector3(0, 0, 10), NewVector3(0, 0, -1))
	dist, ok := ray.IntersectBox(bbox)
	if !ok || math.Abs(dist-9.0) > 1e-10 {
		t.Errorf("IntersectBox failed: expected hit at 9, got %v (hit=%v)", dist, ok)
	}

	inside := NewRay(NewVector3(0, 0, 0), NewVector3(1, 0, 0))
	dist, ok = inside.IntersectBox(bbox)
	if !ok || dist != 0 {
		t.Errorf("IntersectBox failed: expected inside ray to report 0, got %v (hit=%v)", dist, ok)
	}

	miss := NewRay(NewVector3(5, 5, 10), NewVector3(0, 0, -1))
	if _, ok := miss.IntersectBox(bbox); ok {
		t.Errorf("IntersectBox failed: expected miss")
	}
}

func TestRayInObjectSpaceKeepsWorldParameter(t *testing.T) {
	tr := Translated(NewVector3(0, 0, -3))
	tr.Scale = Splat(2)

	ray := NewRay(NewVector3(0.5, 0.5, 10), NewVector3(0, 0, -1))
	local := ray.InObjectSpace(tr)

	// Local triangle at z=0 sits at world z=-3, i.e. 13 units away
	dist, ok := local.IntersectTriangle(NewVector3(0, 0, 0), NewVector3(1, 0, 0), NewVector3(0, 1, 0))
	if !ok {
		t.Fatalf("InObjectSpace failed: expected hit")
	}
	if math.Abs(dist-13.0) > 1e-10 {
		t.Errorf("InObjectSpace failed: expected world distance 13, got %v", dist)
	}
}

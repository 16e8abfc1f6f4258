package geometry

import "math"

// rayEpsilon rejects hits that are parallel or behind the origin
const rayEpsilon = 1e-9

// Ray is a half-line used for picking
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay creates a ray with a normalized direction
func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectTriangle returns the ray parameter of the hit with triangle (a, b, c).
// Uses the Möller–Trumbore algorithm and is two-sided.
func (r Ray) IntersectTriangle(a, b, c Vector3) (float64, bool) {
	edge1 := b.Sub(a)
	edge2 := c.Sub(a)

	p := r.Direction.Cross(edge2)
	det := edge1.Dot(p)
	if math.Abs(det) < rayEpsilon {
		return 0, false
	}
	invDet := 1.0 / det

	s := r.Origin.Sub(a)
	u := s.Dot(p) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := r.Direction.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := edge2.Dot(q) * invDet
	if t <= rayEpsilon {
		return 0, false
	}
	return t, true
}

// IntersectBox returns the entry parameter of the ray into the box (slab test).
// A ray starting inside the box reports t = 0.
func (r Ray) IntersectBox(b BoundingBox) (float64, bool) {
	if b.IsEmpty() {
		return 0, false
	}

	tMin := 0.0
	tMax := math.MaxFloat64

	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	hi := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}

	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < rayEpsilon {
			// Parallel to this slab: must already be within it
			if origin[i] < lo[i] || origin[i] > hi[i] {
				return 0, false
			}
			continue
		}
		inv := 1.0 / dir[i]
		t1 := (lo[i] - origin[i]) * inv
		t2 := (hi[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}

// InObjectSpace maps a world ray into the local space of t.
// The direction is not renormalized so parameters stay in world units.
func (r Ray) InObjectSpace(t Transform) Ray {
	return Ray{
		Origin:    t.InverseApply(r.Origin),
		Direction: t.InverseApplyDirection(r.Direction),
	}
}

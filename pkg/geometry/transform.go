package geometry

import "math"

// Transform holds the position, Euler rotation (radians, applied X then Y then Z)
// and scale of a scene object
type Transform struct {
	Position Vector3
	Rotation Vector3
	Scale    Vector3
}

// IdentityTransform returns a transform that leaves points unchanged
func IdentityTransform() Transform {
	return Transform{Scale: Splat(1)}
}

// Translated returns a transform positioned at p with unit scale
func Translated(p Vector3) Transform {
	t := IdentityTransform()
	t.Position = p
	return t
}

// Apply maps a local point into world space (scale, rotate, translate)
func (t Transform) Apply(p Vector3) Vector3 {
	return t.rotate(p.Scale(t.Scale)).Add(t.Position)
}

// ApplyDirection maps a local direction into world space without translation
func (t Transform) ApplyDirection(d Vector3) Vector3 {
	return t.rotate(d.Scale(t.Scale))
}

// ApplyNormal maps a local normal into world space using the inverse-transpose
func (t Transform) ApplyNormal(n Vector3) Vector3 {
	return t.rotate(n.Div(t.Scale)).Normalize()
}

// InverseApply maps a world point into local space
func (t Transform) InverseApply(p Vector3) Vector3 {
	return t.unrotate(p.Sub(t.Position)).Div(t.Scale)
}

// InverseApplyDirection maps a world direction into local space
func (t Transform) InverseApplyDirection(d Vector3) Vector3 {
	return t.unrotate(d).Div(t.Scale)
}

// Matrix returns the column-major 4x4 model matrix (matches OpenGL/raylib layout)
func (t Transform) Matrix() [16]float64 {
	x := t.ApplyDirection(NewVector3(1, 0, 0))
	y := t.ApplyDirection(NewVector3(0, 1, 0))
	z := t.ApplyDirection(NewVector3(0, 0, 1))
	p := t.Position
	return [16]float64{
		x.X, x.Y, x.Z, 0,
		y.X, y.Y, y.Z, 0,
		z.X, z.Y, z.Z, 0,
		p.X, p.Y, p.Z, 1,
	}
}

func (t Transform) rotate(v Vector3) Vector3 {
	v = rotateX(v, t.Rotation.X)
	v = rotateY(v, t.Rotation.Y)
	return rotateZ(v, t.Rotation.Z)
}

func (t Transform) unrotate(v Vector3) Vector3 {
	v = rotateZ(v, -t.Rotation.Z)
	v = rotateY(v, -t.Rotation.Y)
	return rotateX(v, -t.Rotation.X)
}

func rotateX(v Vector3, a float64) Vector3 {
	if a == 0 {
		return v
	}
	c, s := math.Cos(a), math.Sin(a)
	return Vector3{X: v.X, Y: v.Y*c - v.Z*s, Z: v.Y*s + v.Z*c}
}

func rotateY(v Vector3, a float64) Vector3 {
	if a == 0 {
		return v
	}
	c, s := math.Cos(a), math.Sin(a)
	return Vector3{X: v.X*c + v.Z*s, Y: v.Y, Z: -v.X*s + v.Z*c}
}

func rotateZ(v Vector3, a float64) Vector3 {
	if a == 0 {
		return v
	}
	c, s := math.Cos(a), math.Sin(a)
	return Vector3{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c, Z: v.Z}
}

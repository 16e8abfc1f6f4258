package app

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gooutline/pkg/geometry"
)

const (
	minBeta   = 0.01
	maxBeta   = math32.Pi - 0.01
	minRadius = 0.5
)

// OrbitCamera is an arc-rotate camera around a target point.
// alpha is the longitudinal angle, beta the latitudinal one.
type OrbitCamera struct {
	camera rl.Camera3D
	alpha  float32
	beta   float32
	radius float32
	target rl.Vector3

	defaultAlpha  float32
	defaultBeta   float32
	defaultRadius float32
}

// NewOrbitCamera creates a camera looking at target
func NewOrbitCamera(alpha, beta, radius float64, target rl.Vector3) *OrbitCamera {
	b := clamp32(float32(beta), minBeta, maxBeta)
	c := &OrbitCamera{
		alpha:         float32(alpha),
		beta:          b,
		radius:        float32(radius),
		target:        target,
		defaultAlpha:  float32(alpha),
		defaultBeta:   b,
		defaultRadius: float32(radius),
		camera: rl.Camera3D{
			Target:     target,
			Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
			Fovy:       45.0,
			Projection: rl.CameraPerspective,
		},
	}
	c.update()
	return c
}

// update recomputes the position from the angles
func (c *OrbitCamera) update() {
	sinBeta := math32.Sin(c.beta)
	c.camera.Position = rl.Vector3{
		X: c.target.X + c.radius*math32.Cos(c.alpha)*sinBeta,
		Y: c.target.Y + c.radius*math32.Cos(c.beta),
		Z: c.target.Z + c.radius*math32.Sin(c.alpha)*sinBeta,
	}
	c.camera.Target = c.target
}

// Rotate orbits by a mouse delta in pixels
func (c *OrbitCamera) Rotate(delta rl.Vector2) {
	c.alpha += delta.X * 0.01
	c.beta = clamp32(c.beta-delta.Y*0.01, minBeta, maxBeta)
	c.update()
}

// Zoom moves towards the target for positive wheel movement
func (c *OrbitCamera) Zoom(wheel float32) {
	c.radius = math32.Max(minRadius, c.radius*(1-wheel*0.1))
	c.update()
}

// Reset restores the initial pose
func (c *OrbitCamera) Reset() {
	c.alpha = c.defaultAlpha
	c.beta = c.defaultBeta
	c.radius = c.defaultRadius
	c.update()
}

// Camera3D returns the raylib camera for BeginMode3D
func (c *OrbitCamera) Camera3D() rl.Camera3D {
	return c.camera
}

// PickingRay returns the world ray through a screen position
func (c *OrbitCamera) PickingRay(x, y float64) geometry.Ray {
	ray := rl.GetMouseRay(rl.Vector2{X: float32(x), Y: float32(y)}, c.camera)
	return geometry.NewRay(toVector3(ray.Position), toVector3(ray.Direction))
}

// Eye returns the camera position
func (c *OrbitCamera) Eye() geometry.Vector3 {
	return toVector3(c.camera.Position)
}

func clamp32(v, lo, hi float32) float32 {
	return math32.Min(hi, math32.Max(lo, v))
}

func toVector3(v rl.Vector3) geometry.Vector3 {
	return geometry.NewVector3(float64(v.X), float64(v.Y), float64(v.Z))
}

func fromVector3(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

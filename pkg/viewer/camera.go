package viewer

import (
	"math"

	"github.com/philipparndt/gooutline/pkg/geometry"
)

const (
	minRadius = 0.1
	betaLimit = 0.01
)

// Camera is an arc-rotate camera orbiting a target point
type Camera struct {
	Position geometry.Vector3
	Target   geometry.Vector3
	Up       geometry.Vector3
	FOV      float64 // Vertical field of view in radians
	Alpha    float64 // Longitudinal rotation around the Y axis
	Beta     float64 // Latitudinal rotation from the +Y axis
	Radius   float64

	// Viewport in pixels used by PickingRay
	Width  float64
	Height float64

	home [3]float64
}

// NewCamera creates an arc-rotate camera and remembers its pose for Reset.
// beta is clamped away from the poles.
func NewCamera(alpha, beta, radius float64, target geometry.Vector3) *Camera {
	beta = clampBeta(beta)
	c := &Camera{
		Target: target,
		Up:     geometry.NewVector3(0, 1, 0),
		FOV:    0.8,
		Alpha:  alpha,
		Beta:   beta,
		Radius: radius,
		Width:  1,
		Height: 1,
		home:   [3]float64{alpha, beta, radius},
	}
	c.UpdatePosition()
	return c
}

// UpdatePosition updates camera position based on the orbit angles
func (c *Camera) UpdatePosition() {
	x := c.Radius * math.Cos(c.Alpha) * math.Sin(c.Beta)
	y := c.Radius * math.Cos(c.Beta)
	z := c.Radius * math.Sin(c.Alpha) * math.Sin(c.Beta)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate orbits the camera by the given angles
func (c *Camera) Rotate(deltaAlpha, deltaBeta float64) {
	c.Alpha += deltaAlpha
	c.Beta += deltaBeta

	c.Beta = clampBeta(c.Beta)

	c.UpdatePosition()
}

// clampBeta keeps beta off the poles where the view basis degenerates
func clampBeta(beta float64) float64 {
	return math.Max(betaLimit, math.Min(math.Pi-betaLimit, beta))
}

// Zoom changes the camera distance
func (c *Camera) Zoom(delta float64) {
	c.Radius *= (1.0 + delta)
	if c.Radius < minRadius {
		c.Radius = minRadius
	}
	c.UpdatePosition()
}

// Reset restores the pose the camera was created with
func (c *Camera) Reset() {
	c.Alpha, c.Beta, c.Radius = c.home[0], c.home[1], c.home[2]
	c.UpdatePosition()
}

// SetViewport sets the pixel size used for picking
func (c *Camera) SetViewport(width, height float64) {
	c.Width = math.Max(1, width)
	c.Height = math.Max(1, height)
}

func (c *Camera) basis() (forward, right, up geometry.Vector3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward).Normalize()
	return forward, right, up
}

// Project projects a 3D point to 2D screen coordinates and camera depth
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	forward, right, up := c.basis()

	// Transform to camera space
	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	// Perspective projection
	if z <= 0.01 {
		z = 0.01 // Prevent division by zero
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-y/(z*fovScale))*(height/2) + (height / 2)

	return screenX, screenY, z
}

// Depth returns the camera-space depth of a point without clamping
func (c *Camera) Depth(point geometry.Vector3) float64 {
	forward, _, _ := c.basis()
	return point.Sub(c.Position).Dot(forward)
}

// PickingRay converts viewport coordinates into a world-space ray
func (c *Camera) PickingRay(screenX, screenY float64) geometry.Ray {
	// Convert screen coordinates to normalized device coordinates (-1 to 1)
	ndcX := (2.0 * screenX / c.Width) - 1.0
	ndcY := 1.0 - (2.0 * screenY / c.Height)

	aspect := c.Width / c.Height
	fovScale := math.Tan(c.FOV / 2)

	forward, right, up := c.basis()
	dir := forward.Add(right.Mul(ndcX * fovScale * aspect)).Add(up.Mul(ndcY * fovScale))

	return geometry.NewRay(c.Position, dir)
}

// Eye returns the camera position in world space
func (c *Camera) Eye() geometry.Vector3 {
	return c.Position
}

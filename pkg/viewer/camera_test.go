package viewer

import (
	"math"
	"testing"

	"github.com/philipparndt/gooutline/pkg/geometry"
)

func TestCameraInitialPose(t *testing.T) {
	c := NewCamera(0, math.Pi/2.5, 10, geometry.Vector3{})

	if math.Abs(c.Position.Length()-10) > 1e-9 {
		t.Errorf("Position failed: expected distance 10, got %v", c.Position.Length())
	}
	if c.Position.Z != 0 || c.Position.X <= 0 || c.Position.Y <= 0 {
		t.Errorf("Position failed: expected +X/+Y quadrant at alpha 0, got %v", c.Position)
	}
}

func TestCameraCenterRayHitsTarget(t *testing.T) {
	c := NewCamera(0.3, 1.1, 8, geometry.NewVector3(1, 2, 3))
	c.SetViewport(800, 600)

	ray := c.PickingRay(400, 300)
	expected := c.Target.Sub(c.Position).Normalize()
	if !ray.Direction.ApproxEqual(expected, 1e-9) {
		t.Errorf("PickingRay failed: expected %v, got %v", expected, ray.Direction)
	}
}

func TestCameraProjectInvertsPickingRay(t *testing.T) {
	c := NewCamera(0.7, 1.2, 10, geometry.Vector3{})
	c.SetViewport(640, 480)

	ray := c.PickingRay(100, 50)
	x, y, _ := c.Project(ray.At(7), 640, 480)
	if math.Abs(x-100) > 1e-6 || math.Abs(y-50) > 1e-6 {
		t.Errorf("Project failed: expected (100, 50), got (%v, %v)", x, y)
	}
}

func TestCameraResetAndClamp(t *testing.T) {
	c := NewCamera(0, 1, 5, geometry.Vector3{})
	c.Rotate(1, 10)
	c.Zoom(-5)

	if c.Beta > math.Pi {
		t.Errorf("Rotate failed: expected beta clamped, got %v", c.Beta)
	}
	if c.Radius < minRadius {
		t.Errorf("Zoom failed: expected radius >= %v, got %v", minRadius, c.Radius)
	}

	c.Reset()
	if c.Alpha != 0 || c.Beta != 1 || c.Radius != 5 {
		t.Errorf("Reset failed: expected (0, 1, 5), got (%v, %v, %v)", c.Alpha, c.Beta, c.Radius)
	}
}

func TestCameraClampsPolarBeta(t *testing.T) {
	for _, beta := range []float64{0, math.Pi} {
		c := NewCamera(0, beta, 10, geometry.Vector3{})
		c.SetViewport(800, 600)

		if c.Beta < betaLimit || c.Beta > math.Pi-betaLimit {
			t.Errorf("NewCamera failed: expected beta clamped off the pole, got %v", c.Beta)
		}
		a := c.PickingRay(0, 0).Direction
		b := c.PickingRay(800, 600).Direction
		if a.ApproxEqual(b, 1e-6) {
			t.Errorf("PickingRay failed: expected corner rays to differ at beta %v, got %v and %v", beta, a, b)
		}
	}
}

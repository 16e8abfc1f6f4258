package outline

import "github.com/philipparndt/gooutline/pkg/geometry"

// DiscardBias is added to the scale to form the rim discard threshold
const DiscardBias = 0.4

// Displace runs the vertex stage on a local-space vertex
func Displace(s Style, position, normal geometry.Vector3, scale float64) geometry.Vector3 {
	switch s {
	case ScaledShell:
		return position.Mul(scale)
	default:
		return position.Add(normal.Mul(scale))
	}
}

// Discard reports whether a RimDiscard fragment with the given facing value is dropped
func Discard(facing, scale float64) bool {
	return facing > DiscardBias+scale
}

// Facing returns the cosine between the surface normal and the view direction
func Facing(worldNormal, worldPosition, cameraPosition geometry.Vector3) float64 {
	view := cameraPosition.Sub(worldPosition).Normalize()
	return worldNormal.Normalize().Dot(view)
}

// Keep runs the fragment stage and reports whether the fragment is written.
// worldPosition is the undisplaced surface point.
func Keep(s Style, worldNormal, worldPosition, cameraPosition geometry.Vector3, scale float64) bool {
	if !s.UsesCameraPosition() {
		return true
	}
	return !Discard(Facing(worldNormal, worldPosition, cameraPosition), scale)
}

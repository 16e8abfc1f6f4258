package scene

import "github.com/philipparndt/gooutline/pkg/geometry"

// RayCaster turns a pointer position into a world-space ray
type RayCaster interface {
	PickingRay(x, y float64) geometry.Ray
}

// RayPicker combines a camera and a graph into a pointer picker
type RayPicker struct {
	Graph  *Graph
	Caster RayCaster
}

// CastRay picks the nearest pickable object under the pointer
func (p RayPicker) CastRay(x, y float64) (Hit, bool) {
	return p.Graph.Pick(p.Caster.PickingRay(x, y))
}

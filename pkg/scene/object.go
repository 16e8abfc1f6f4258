package scene

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/philipparndt/gooutline/pkg/geometry"
	"github.com/philipparndt/gooutline/pkg/mesh"
)

// ID identifies an object within a Graph
type ID uint64

// RenderGroup orders drawing. Depth is cleared before each group above GroupBase.
type RenderGroup int

const (
	GroupBase    RenderGroup = 0
	GroupOverlay RenderGroup = 1
)

func (g RenderGroup) String() string {
	switch g {
	case GroupBase:
		return "base"
	case GroupOverlay:
		return "overlay"
	default:
		return fmt.Sprintf("group(%d)", int(g))
	}
}

// Material is a renderer resource attached to an object.
// Release is called exactly once when the owning object is disposed.
type Material interface {
	Release()
}

// Object is a mesh instance placed in the scene
type Object struct {
	id        ID
	Name      string
	Mesh      *mesh.Mesh
	Transform geometry.Transform
	Material  Material
	// Color is the diffuse base color used when Material is nil
	Color    colorful.Color
	Group    RenderGroup
	Pickable bool

	disposed bool
}

// ID returns the graph-assigned identifier
func (o *Object) ID() ID {
	return o.id
}

// Disposed reports whether the object has been removed from its graph
func (o *Object) Disposed() bool {
	return o.disposed
}

// WorldBounds returns the axis-aligned bounds of the object in world space
func (o *Object) WorldBounds() geometry.BoundingBox {
	if o.Mesh.Empty() {
		return geometry.NewBoundingBox()
	}
	return o.Mesh.BoundingBox().Transformed(o.Transform)
}

func (o *Object) String() string {
	return fmt.Sprintf("%s#%d", o.Name, o.id)
}

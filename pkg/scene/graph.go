package scene

import (
	"errors"
	"fmt"
	"slices"

	"github.com/philipparndt/gooutline/pkg/geometry"
	"github.com/philipparndt/gooutline/pkg/mesh"
)

var (
	// ErrDisposed is returned when operating on an object that left the graph
	ErrDisposed = errors.New("object disposed")
	// ErrNoGeometry is returned when cloning an object without triangles
	ErrNoGeometry = errors.New("object has no geometry")
)

// Graph owns the objects of a scene in insertion order
type Graph struct {
	objects []*Object
	nextID  ID
}

// NewGraph creates an empty scene graph
func NewGraph() *Graph {
	return &Graph{nextID: 1}
}

// NewObject creates a pickable base-group object and adds it to the graph
func (g *Graph) NewObject(name string, m *mesh.Mesh, t geometry.Transform) *Object {
	o := &Object{
		Name:      name,
		Mesh:      m,
		Transform: t,
		Group:     GroupBase,
		Pickable:  true,
	}
	g.Add(o)
	return o
}

// Add assigns an ID to o and appends it to the graph
func (g *Graph) Add(o *Object) {
	o.id = g.nextID
	g.nextID++
	o.disposed = false
	g.objects = append(g.objects, o)
}

// Clone creates a new object sharing src's mesh. The clone copies the transform,
// group and color, carries no material and is not pickable.
func (g *Graph) Clone(src *Object, name string) (*Object, error) {
	if src == nil || src.disposed {
		return nil, fmt.Errorf("clone %q: %w", name, ErrDisposed)
	}
	if src.Mesh.Empty() {
		return nil, fmt.Errorf("clone %q from %s: %w", name, src, ErrNoGeometry)
	}

	clone := &Object{
		Name:      name,
		Mesh:      src.Mesh,
		Transform: src.Transform,
		Color:     src.Color,
		Group:     src.Group,
		Pickable:  false,
	}
	g.Add(clone)
	return clone, nil
}

// Dispose removes o from the graph and releases its material
func (g *Graph) Dispose(o *Object) error {
	if o == nil || o.disposed {
		return ErrDisposed
	}
	idx := slices.Index(g.objects, o)
	if idx < 0 {
		return fmt.Errorf("dispose %s: not in graph: %w", o, ErrDisposed)
	}
	g.objects = slices.Delete(g.objects, idx, idx+1)
	o.disposed = true
	if o.Material != nil {
		o.Material.Release()
		o.Material = nil
	}
	return nil
}

// Objects returns a snapshot of all live objects in insertion order
func (g *Graph) Objects() []*Object {
	return slices.Clone(g.objects)
}

// ByGroup returns the live objects in the given render group
func (g *Graph) ByGroup(group RenderGroup) []*Object {
	var out []*Object
	for _, o := range g.objects {
		if o.Group == group {
			out = append(out, o)
		}
	}
	return out
}

// Len returns the number of live objects
func (g *Graph) Len() int {
	return len(g.objects)
}

// Hit is the result of a successful pick
type Hit struct {
	Object   *Object
	Distance float64
	Point    geometry.Vector3
}

// Pick returns the nearest pickable object hit by the world-space ray
func (g *Graph) Pick(r geometry.Ray) (Hit, bool) {
	var best Hit
	found := false
	for _, o := range g.objects {
		if !o.Pickable || o.Mesh.Empty() {
			continue
		}
		// Broad phase in world space
		entry, ok := r.IntersectBox(o.WorldBounds())
		if !ok || (found && entry > best.Distance) {
			continue
		}
		t, ok := o.Mesh.Intersect(r.InObjectSpace(o.Transform))
		if !ok {
			continue
		}
		if !found || t < best.Distance {
			best = Hit{Object: o, Distance: t, Point: r.At(t)}
			found = true
		}
	}
	return best, found
}

// Stats summarises graph contents
type Stats struct {
	Objects   int
	Pickable  int
	Overlay   int
	Triangles int
}

// Stats counts live objects and the triangles they draw
func (g *Graph) Stats() Stats {
	var s Stats
	for _, o := range g.objects {
		s.Objects++
		if o.Pickable {
			s.Pickable++
		}
		if o.Group == GroupOverlay {
			s.Overlay++
		}
		s.Triangles += o.Mesh.TriangleCount()
	}
	return s
}

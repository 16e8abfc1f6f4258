// Package demo populates a scene graph with randomly placed spheres.
package demo

import (
	"fmt"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/philipparndt/gooutline/internal/config"
	"github.com/philipparndt/gooutline/pkg/geometry"
	"github.com/philipparndt/gooutline/pkg/mesh"
	"github.com/philipparndt/gooutline/pkg/scene"
)

// Scene is a generated graph plus the seed that reproduces it
type Scene struct {
	Graph *scene.Graph
	Seed  uint64
}

// Build creates cfg.Spheres spheres. A zero seed picks a random one, which is
// reported back so the scene can be recreated.
func Build(cfg config.SceneConfig) (Scene, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64() | 1
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	g := scene.NewGraph()
	for i := range cfg.Spheres {
		diameter := 2 * uniform(rng, cfg.MinRadius, cfg.MaxRadius)
		m, err := mesh.NewSphere(diameter, cfg.Segments)
		if err != nil {
			return Scene{}, fmt.Errorf("sphere %d: %w", i, err)
		}

		pos := geometry.NewVector3(
			uniform(rng, cfg.MinPos, cfg.MaxPos),
			uniform(rng, cfg.MinPos, cfg.MaxPos),
			uniform(rng, cfg.MinPos, cfg.MaxPos),
		)
		obj := g.NewObject(fmt.Sprintf("sphere%d", i), m, geometry.Translated(pos))
		obj.Color = colorful.Color{R: rng.Float64(), G: rng.Float64(), B: rng.Float64()}
	}
	return Scene{Graph: g, Seed: seed}, nil
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Center returns the middle of the base objects' world bounds, used as the
// camera target
func (s Scene) Center() geometry.Vector3 {
	box := geometry.NewBoundingBox()
	for _, o := range s.Graph.ByGroup(scene.GroupBase) {
		b := o.WorldBounds()
		if !b.IsEmpty() {
			box.Extend(b.Min)
			box.Extend(b.Max)
		}
	}
	if box.IsEmpty() {
		return geometry.Vector3{}
	}
	return box.Center()
}

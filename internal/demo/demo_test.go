package demo

import (
	"testing"

	"github.com/philipparndt/gooutline/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDefaults(t *testing.T) {
	cfg := config.Default().Scene
	s, err := Build(cfg)
	require.NoError(t, err)

	assert.NotZero(t, s.Seed)
	objs := s.Graph.Objects()
	require.Len(t, objs, cfg.Spheres)

	for _, o := range objs {
		assert.True(t, o.Pickable)
		p := o.Transform.Position
		for _, c := range []float64{p.X, p.Y, p.Z} {
			assert.GreaterOrEqual(t, c, cfg.MinPos)
			assert.LessOrEqual(t, c, cfg.MaxPos)
		}

		size := o.Mesh.BoundingBox().Size()
		assert.GreaterOrEqual(t, size.Y, 2*cfg.MinRadius-1e-9, o.Name)
		assert.LessOrEqual(t, size.Y, 2*cfg.MaxRadius+1e-9, o.Name)

		assert.True(t, o.Color.IsValid())
	}
}

func TestBuildIsReproducible(t *testing.T) {
	cfg := config.Default().Scene
	cfg.Seed = 42

	a, err := Build(cfg)
	require.NoError(t, err)
	b, err := Build(cfg)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), a.Seed)
	ao, bo := a.Graph.Objects(), b.Graph.Objects()
	require.Len(t, bo, len(ao))
	for i := range ao {
		assert.Equal(t, ao[i].Transform, bo[i].Transform)
		assert.Equal(t, ao[i].Color, bo[i].Color)
	}
}

func TestBuildRejectsBadSegments(t *testing.T) {
	cfg := config.Default().Scene
	cfg.Segments = 1
	_, err := Build(cfg)
	assert.Error(t, err)
}

func TestBuildEmpty(t *testing.T) {
	cfg := config.Default().Scene
	cfg.Spheres = 0
	s, err := Build(cfg)
	require.NoError(t, err)
	assert.Zero(t, s.Graph.Len())
}

func TestCenter(t *testing.T) {
	cfg := config.Default().Scene
	cfg.Spheres = 0
	s, err := Build(cfg)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.Center().Length(), "empty scene centers on the origin")

	cfg.Spheres = 3
	cfg.Seed = 7
	s, err = Build(cfg)
	require.NoError(t, err)
	c := s.Center()
	limit := cfg.MaxPos + cfg.MaxRadius
	for _, v := range []float64{c.X, c.Y, c.Z} {
		assert.LessOrEqual(t, v, limit)
		assert.GreaterOrEqual(t, v, -limit)
	}
}

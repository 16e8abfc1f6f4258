package soft

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/philipparndt/gooutline/internal/outline"
	"github.com/philipparndt/gooutline/internal/shader"
	"github.com/philipparndt/gooutline/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compile(t *testing.T, b *Backend, s outline.Style) *Program {
	t.Helper()
	vs, fs := outline.Sources(s)
	p, err := b.Compile(s.ProgramName(), vs, fs, outline.Attributes(s), outline.Uniforms(s))
	require.NoError(t, err)
	return p.(*Program)
}

func TestCompileBuiltins(t *testing.T) {
	b := New()
	for _, s := range outline.Styles {
		p := compile(t, b, s)
		assert.Equal(t, s, p.Style())
	}
	assert.Equal(t, 2, b.Live)
}

func TestCompileRejectsBrokenSources(t *testing.T) {
	b := New()
	vs, fs := outline.Sources(outline.RimDiscard)

	_, err := b.Compile("customOutline", "#version 330\n", fs, nil, nil)
	assert.ErrorIs(t, err, shader.ErrCompilation)

	_, err = b.Compile("customOutline", vs, fs, nil, []string{"noSuchUniform"})
	var cerr *shader.CompilationError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, cerr.Log, "noSuchUniform")

	_, err = b.Compile("mystery", vs, fs, nil, nil)
	assert.ErrorIs(t, err, shader.ErrCompilation)
	assert.Equal(t, 0, b.Live)
}

func TestRimMaterialStages(t *testing.T) {
	p := compile(t, New(), outline.RimDiscard)
	mat, err := p.NewMaterial()
	require.NoError(t, err)
	m := mat.(*Material)

	m.SetFloat(outline.UniformScale, 0.1)
	m.SetColor3(outline.UniformColor, colorful.Color{R: 0, G: 0, B: 1})
	m.SetVector3(outline.UniformCameraPosition, geometry.NewVector3(0, 0, 10))

	displaced := m.Vertex(geometry.NewVector3(0, 1, 0), geometry.NewVector3(0, 1, 0))
	assert.InDelta(t, 1.1, displaced.Y, 1e-12)

	c, keep := m.Fragment(geometry.NewVector3(0, 0, 1), geometry.NewVector3(0, 0, 1))
	assert.False(t, keep, "camera-facing fragment is discarded")
	assert.Equal(t, colorful.Color{R: 0, G: 0, B: 1}, c)

	_, keep = m.Fragment(geometry.NewVector3(1, 0, 0), geometry.NewVector3(1, 0, 0))
	assert.True(t, keep, "silhouette fragment is kept")
}

func TestShellMaterialStages(t *testing.T) {
	p := compile(t, New(), outline.ScaledShell)
	mat, err := p.NewMaterial()
	require.NoError(t, err)
	m := mat.(*Material)

	m.SetFloat(outline.UniformScale, 1.1)
	assert.InDelta(t, 2.2, m.Vertex(geometry.NewVector3(2, 0, 0), geometry.NewVector3(1, 0, 0)).X, 1e-12)

	_, keep := m.Fragment(geometry.NewVector3(0, 0, 1), geometry.NewVector3(0, 0, 1))
	assert.True(t, keep)
}

func TestReleasedProgramRefusesMaterials(t *testing.T) {
	b := New()
	p := compile(t, b, outline.RimDiscard)
	p.Release()
	p.Release()

	assert.Equal(t, 0, b.Live)
	_, err := p.NewMaterial()
	assert.Error(t, err)
}

func TestLiveMaterialsCount(t *testing.T) {
	p := compile(t, New(), outline.RimDiscard)
	a, err := p.NewMaterial()
	require.NoError(t, err)
	b, err := p.NewMaterial()
	require.NoError(t, err)
	assert.Equal(t, 2, p.LiveMaterials())

	a.Release()
	a.Release()
	assert.Equal(t, 1, p.LiveMaterials())

	b.Release()
	assert.Equal(t, 0, p.LiveMaterials())

	var _ shader.MaterialCounter = p
}

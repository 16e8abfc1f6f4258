package shader

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/philipparndt/gooutline/internal/outline"
	"github.com/philipparndt/gooutline/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProgram struct {
	name     string
	vertex   string
	released int
}

func (p *fakeProgram) Name() string { return p.name }

func (p *fakeProgram) NewMaterial() (Material, error) { return fakeMaterial{}, nil }

func (p *fakeProgram) Release() { p.released++ }

type fakeMaterial struct{}

func (fakeMaterial) SetFloat(string, float64) {}

func (fakeMaterial) SetVector3(string, geometry.Vector3) {}

func (fakeMaterial) SetColor3(string, colorful.Color) {}

func (fakeMaterial) Release() {}

type fakeBackend struct {
	compiles int
	fail     error
	programs []*fakeProgram
}

func (b *fakeBackend) Compile(name, vertex, fragment string, attributes, uniforms []string) (Program, error) {
	b.compiles++
	if b.fail != nil {
		return nil, b.fail
	}
	p := &fakeProgram{name: name, vertex: vertex}
	b.programs = append(b.programs, p)
	return p, nil
}

func instantiate(r *Registry, s outline.Style) (Program, error) {
	return r.Instantiate(s, outline.Attributes(s), outline.Uniforms(s))
}

func TestInstantiateCompilesOnce(t *testing.T) {
	backend := &fakeBackend{}
	r := NewRegistry(backend, nil)
	r.RegisterDefaults()

	p1, err := instantiate(r, outline.RimDiscard)
	require.NoError(t, err)
	p2, err := instantiate(r, outline.RimDiscard)
	require.NoError(t, err)

	assert.Same(t, p1, p2)
	assert.Equal(t, 1, backend.compiles)
	assert.Equal(t, 1, r.Compiles())
	assert.Equal(t, "customOutline", p1.Name())
}

func TestReRegisterInvalidatesCache(t *testing.T) {
	backend := &fakeBackend{}
	r := NewRegistry(backend, nil)
	r.Register(outline.ScaledShell, "v1", "f1")

	old, err := instantiate(r, outline.ScaledShell)
	require.NoError(t, err)

	r.Register(outline.ScaledShell, "v2", "f2")
	fresh, err := instantiate(r, outline.ScaledShell)
	require.NoError(t, err)

	assert.NotSame(t, old, fresh)
	assert.Equal(t, "v2", fresh.(*fakeProgram).vertex)
	// Handles already handed out stay usable until Close
	assert.Equal(t, 0, old.(*fakeProgram).released)

	r.Close()
	assert.Equal(t, 1, old.(*fakeProgram).released)
	assert.Equal(t, 1, fresh.(*fakeProgram).released)
}

type countedProgram struct {
	fakeProgram
	live int
}

func (p *countedProgram) LiveMaterials() int { return p.live }

type countingBackend struct {
	programs []*countedProgram
}

func (b *countingBackend) Compile(name, vertex, fragment string, attributes, uniforms []string) (Program, error) {
	p := &countedProgram{fakeProgram: fakeProgram{name: name, vertex: vertex}}
	b.programs = append(b.programs, p)
	return p, nil
}

func TestRetiredProgramReleasedWhenMaterialsGone(t *testing.T) {
	backend := &countingBackend{}
	r := NewRegistry(backend, nil)
	r.Register(outline.RimDiscard, "v1", "f1")

	_, err := instantiate(r, outline.RimDiscard)
	require.NoError(t, err)
	old := backend.programs[0]
	old.live = 1

	r.Register(outline.RimDiscard, "v2", "f2")
	assert.Equal(t, 0, old.released, "kept while a material is live")
	assert.Equal(t, 1, r.Retired())

	old.live = 0
	_, err = instantiate(r, outline.RimDiscard)
	require.NoError(t, err)
	assert.Equal(t, 1, old.released)
	assert.Equal(t, 0, r.Retired())

	// Unused programs are released right away on replacement
	for i := range 5 {
		r.Register(outline.RimDiscard, fmt.Sprintf("v%d", i+3), "f")
		_, err = instantiate(r, outline.RimDiscard)
		require.NoError(t, err)
	}
	assert.Equal(t, 0, r.Retired())

	r.Close()
	assert.Equal(t, 1, old.released)
	for _, p := range backend.programs {
		assert.Equal(t, 1, p.released, p.vertex)
	}
}

func TestInstantiateUnknownStyle(t *testing.T) {
	r := NewRegistry(&fakeBackend{}, nil)

	_, err := instantiate(r, outline.RimDiscard)
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestCompilationErrorIsWrapped(t *testing.T) {
	backend := &fakeBackend{fail: errors.New("0:12: syntax error")}
	r := NewRegistry(backend, nil)
	r.RegisterDefaults()

	_, err := instantiate(r, outline.RimDiscard)
	require.ErrorIs(t, err, ErrCompilation)

	var cerr *CompilationError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "customOutline", cerr.Program)
	assert.Contains(t, err.Error(), "syntax error")

	// Failures are not cached
	backend.fail = nil
	_, err = instantiate(r, outline.RimDiscard)
	require.NoError(t, err)
	assert.Equal(t, 2, backend.compiles)
}

func TestSourceAndRegistered(t *testing.T) {
	r := NewRegistry(&fakeBackend{}, nil)
	r.RegisterDefaults()

	assert.Equal(t, []outline.Style{outline.RimDiscard, outline.ScaledShell}, r.Registered())

	vs, fs, ok := r.Source(outline.ScaledShell)
	require.True(t, ok)
	wantVS, wantFS := outline.Sources(outline.ScaledShell)
	assert.Equal(t, wantVS, vs)
	assert.Equal(t, wantFS, fs)
}

// Package soft is a CPU shader backend that evaluates the outline stages directly.
package soft

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/philipparndt/gooutline/internal/outline"
	"github.com/philipparndt/gooutline/internal/shader"
	"github.com/philipparndt/gooutline/pkg/geometry"
	"github.com/philipparndt/gooutline/pkg/viewer"
)

var mainFunc = regexp.MustCompile(`void\s+main\s*\(\s*(void)?\s*\)`)

// Backend compiles outline programs for the software renderer
type Backend struct {
	// Live counts programs not yet released
	Live int
}

// New creates a software backend
func New() *Backend {
	return &Backend{}
}

// Compile validates the sources and binds them to the matching outline style
func (b *Backend) Compile(name, vertex, fragment string, attributes, uniforms []string) (shader.Program, error) {
	style, err := outline.ParseStyle(name)
	if err != nil {
		return nil, &shader.CompilationError{Program: name, Err: err}
	}
	if err := validate(vertex, fragment, attributes, uniforms); err != nil {
		return nil, &shader.CompilationError{Program: name, Log: err.Error()}
	}
	b.Live++
	return &Program{backend: b, name: name, style: style}, nil
}

func validate(vertex, fragment string, attributes, uniforms []string) error {
	if !mainFunc.MatchString(vertex) {
		return fmt.Errorf("vertex stage: missing main")
	}
	if !mainFunc.MatchString(fragment) {
		return fmt.Errorf("fragment stage: missing main")
	}
	for _, a := range attributes {
		if !strings.Contains(vertex, a) {
			return fmt.Errorf("vertex stage: attribute %q not declared", a)
		}
	}
	for _, u := range uniforms {
		if !strings.Contains(vertex, u) && !strings.Contains(fragment, u) {
			return fmt.Errorf("uniform %q not declared", u)
		}
	}
	return nil
}

// Program is a validated software program
type Program struct {
	backend   *Backend
	name      string
	style     outline.Style
	materials int
	released  bool
}

// Name returns the program name
func (p *Program) Name() string {
	return p.name
}

// Style returns the outline style this program evaluates
func (p *Program) Style() outline.Style {
	return p.style
}

// NewMaterial creates a material with default uniform values
func (p *Program) NewMaterial() (shader.Material, error) {
	if p.released {
		return nil, fmt.Errorf("program %s released", p.name)
	}
	p.materials++
	return &Material{
		program: p,
		floats:  make(map[string]float64),
		vectors: make(map[string]geometry.Vector3),
		colors:  make(map[string]colorful.Color),
	}, nil
}

// LiveMaterials returns how many materials of p are not yet released
func (p *Program) LiveMaterials() int {
	return p.materials
}

// Release frees the program
func (p *Program) Release() {
	if p.released {
		return
	}
	p.released = true
	p.backend.Live--
}

// Material stores uniform values and implements viewer.Shader
type Material struct {
	program  *Program
	floats   map[string]float64
	vectors  map[string]geometry.Vector3
	colors   map[string]colorful.Color
	released bool
}

var _ viewer.Shader = (*Material)(nil)

// SetFloat sets a float uniform
func (m *Material) SetFloat(name string, v float64) { m.floats[name] = v }

// SetVector3 sets a vector uniform
func (m *Material) SetVector3(name string, v geometry.Vector3) { m.vectors[name] = v }

// SetColor3 sets a color uniform
func (m *Material) SetColor3(name string, c colorful.Color) { m.colors[name] = c }

// Float returns a float uniform
func (m *Material) Float(name string) float64 {
	return m.floats[name]
}

// Vector3 returns a vector uniform
func (m *Material) Vector3(name string) geometry.Vector3 {
	return m.vectors[name]
}

// Color returns a color uniform
func (m *Material) Color(name string) colorful.Color {
	return m.colors[name]
}

// Released reports whether Release has been called
func (m *Material) Released() bool {
	return m.released
}

// Release drops the uniform values
func (m *Material) Release() {
	if m.released {
		return
	}
	m.released = true
	m.program.materials--
}

// Vertex runs the outline vertex stage
func (m *Material) Vertex(position, normal geometry.Vector3) geometry.Vector3 {
	return outline.Displace(m.program.style, position, normal, m.floats[outline.UniformScale])
}

// Fragment runs the outline fragment stage
func (m *Material) Fragment(world, normal geometry.Vector3) (colorful.Color, bool) {
	keep := outline.Keep(m.program.style, normal, world,
		m.vectors[outline.UniformCameraPosition], m.floats[outline.UniformScale])
	return m.colors[outline.UniformColor], keep
}

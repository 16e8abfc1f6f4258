package app

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/philipparndt/gooutline/internal/shader"
	"github.com/philipparndt/gooutline/pkg/geometry"
)

// gpuBackend compiles outline programs with raylib. It must be used after
// InitWindow, on the thread that owns the GL context.
type gpuBackend struct {
	logger *slog.Logger
}

// Compile loads the program and resolves every attribute and uniform.
// raylib falls back to its default shader when GLSL compilation fails, so a
// missing outline uniform is how a failed compile shows up here.
func (b gpuBackend) Compile(name, vertex, fragment string, attributes, uniforms []string) (shader.Program, error) {
	sh := rl.LoadShaderFromMemory(vertex, fragment)

	for _, attr := range attributes {
		if rl.GetShaderLocationAttrib(sh, attr) < 0 {
			rl.UnloadShader(sh)
			return nil, &shader.CompilationError{Program: name, Log: fmt.Sprintf("attribute %s not found", attr)}
		}
	}

	locs := make(map[string]int32, len(uniforms))
	for _, u := range uniforms {
		loc := rl.GetShaderLocation(sh, u)
		if loc < 0 {
			rl.UnloadShader(sh)
			return nil, &shader.CompilationError{Program: name, Log: fmt.Sprintf("uniform %s not found", u)}
		}
		locs[u] = loc
	}

	material := rl.LoadMaterialDefault()
	material.Shader = sh
	b.logger.Debug("gpu program loaded", "program", name, "id", sh.ID)
	return &gpuProgram{name: name, material: material, locs: locs}, nil
}

// gpuProgram owns a raylib shader wrapped in a material for DrawMesh
type gpuProgram struct {
	name      string
	material  rl.Material
	locs      map[string]int32
	materials int
	released  bool
}

func (p *gpuProgram) Name() string {
	return p.name
}

func (p *gpuProgram) NewMaterial() (shader.Material, error) {
	if p.released {
		return nil, fmt.Errorf("program %s released", p.name)
	}
	p.materials++
	return &gpuMaterial{
		program: p,
		floats:  make(map[int32]float32),
		vectors: make(map[int32][3]float32),
	}, nil
}

func (p *gpuProgram) LiveMaterials() int {
	return p.materials
}

func (p *gpuProgram) Release() {
	if p.released {
		return
	}
	p.released = true
	rl.UnloadMaterial(p.material)
}

// gpuMaterial keeps its own uniform values. All materials of a program share
// one GL program, so values are uploaded right before each draw.
type gpuMaterial struct {
	program  *gpuProgram
	floats   map[int32]float32
	vectors  map[int32][3]float32
	released bool
}

func (m *gpuMaterial) SetFloat(name string, v float64) {
	if loc, ok := m.program.locs[name]; ok {
		m.floats[loc] = float32(v)
	}
}

func (m *gpuMaterial) SetVector3(name string, v geometry.Vector3) {
	if loc, ok := m.program.locs[name]; ok {
		m.vectors[loc] = [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
	}
}

func (m *gpuMaterial) SetColor3(name string, c colorful.Color) {
	if loc, ok := m.program.locs[name]; ok {
		m.vectors[loc] = [3]float32{float32(c.R), float32(c.G), float32(c.B)}
	}
}

func (m *gpuMaterial) Release() {
	if m.released {
		return
	}
	m.released = true
	m.program.materials--
}

// draw uploads the uniforms and draws mesh with the outline program
func (m *gpuMaterial) draw(mesh rl.Mesh, transform rl.Matrix) {
	if m.released || m.program.released {
		return
	}
	sh := m.program.material.Shader
	for loc, v := range m.floats {
		rl.SetShaderValue(sh, loc, []float32{v}, rl.ShaderUniformFloat)
	}
	for loc, v := range m.vectors {
		rl.SetShaderValue(sh, loc, v[:], rl.ShaderUniformVec3)
	}
	rl.DrawMesh(mesh, m.program.material, transform)
}

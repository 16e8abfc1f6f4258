package highlight

import (
	"github.com/philipparndt/gooutline/internal/outline"
	"github.com/philipparndt/gooutline/internal/shader"
	"github.com/philipparndt/gooutline/pkg/geometry"
)

// MaterialFactory builds a fresh outline material for every clone
type MaterialFactory interface {
	NewMaterial(style outline.Style) (shader.Material, error)
}

// ShaderMaterials instantiates outline materials from a program registry
type ShaderMaterials struct {
	Registry *shader.Registry
}

// NewMaterial compiles the style's program on first use and creates a material from it
func (f ShaderMaterials) NewMaterial(style outline.Style) (shader.Material, error) {
	p, err := f.Registry.Instantiate(style, outline.Attributes(style), outline.Uniforms(style))
	if err != nil {
		return nil, err
	}
	return p.NewMaterial()
}

func applyParams(m shader.Material, p outline.Params) {
	m.SetFloat(outline.UniformScale, p.Scale)
	m.SetColor3(outline.UniformColor, p.Color)
}

func applyCamera(m shader.Material, cameraPosition geometry.Vector3) {
	m.SetVector3(outline.UniformCameraPosition, cameraPosition)
}

package viewer

import (
	"image"
	"image/color"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
	"github.com/philipparndt/gooutline/pkg/geometry"
	"github.com/philipparndt/gooutline/pkg/scene"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Shader replaces the lit base material of an object.
// Materials attached to scene objects may implement it.
type Shader interface {
	// Vertex returns the displaced local-space position of a vertex
	Vertex(position, normal geometry.Vector3) geometry.Vector3
	// Fragment shades a point on the undisplaced surface
	Fragment(world, normal geometry.Vector3) (colorful.Color, bool)
}

// HemisphericLight blends between a sky and a ground color by normal direction
type HemisphericLight struct {
	Direction geometry.Vector3
	Intensity float64
	Sky       colorful.Color
	Ground    colorful.Color
}

// DefaultLight returns a white hemispheric light from the upper left
func DefaultLight() HemisphericLight {
	return HemisphericLight{
		Direction: geometry.NewVector3(-1, 1, 0),
		Intensity: 1,
		Sky:       colorful.Color{R: 1, G: 1, B: 1},
		Ground:    colorful.Color{},
	}
}

// Shade lights a diffuse base color for a world-space normal
func (l HemisphericLight) Shade(base colorful.Color, normal geometry.Vector3) colorful.Color {
	w := 0.5 + 0.5*normal.Normalize().Dot(l.Direction.Normalize())
	light := l.Ground.BlendRgb(l.Sky, w)
	return colorful.Color{
		R: base.R * light.R * l.Intensity,
		G: base.G * light.G * l.Intensity,
		B: base.B * light.B * l.Intensity,
	}.Clamped()
}

// Renderer draws a scene graph into an image on the CPU
type Renderer struct {
	Width       int
	Height      int
	Supersample int
	Background  colorful.Color
	Light       HemisphericLight
	Caption     string
	CullBack    bool
}

// NewRenderer creates a renderer with the default light and 2x supersampling
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		Width:       width,
		Height:      height,
		Supersample: 2,
		Background:  colorful.Color{R: 15.0 / 255, G: 18.0 / 255, B: 25.0 / 255},
		Light:       DefaultLight(),
		CullBack:    true,
	}
}

// Render draws every object group by group. Depth is cleared between groups.
func (r *Renderer) Render(g *scene.Graph, cam *Camera) *image.RGBA {
	ss := max(1, r.Supersample)
	w, h := max(1, r.Width)*ss, max(1, r.Height)*ss

	fb := newFrameBuffer(w, h, toRGBA(r.Background))

	objects := g.Objects()
	groups := make([]scene.RenderGroup, 0, 2)
	for _, o := range objects {
		if !slices.Contains(groups, o.Group) {
			groups = append(groups, o.Group)
		}
	}
	slices.Sort(groups)

	for i, group := range groups {
		if i > 0 {
			fb.clearDepth()
		}
		for _, o := range objects {
			if o.Group == group {
				r.drawObject(fb, o, cam, float64(w), float64(h))
			}
		}
	}

	out := fb.img
	if ss > 1 {
		out = toImageRGBA(resize.Resize(uint(r.Width), uint(r.Height), fb.img, resize.Bilinear))
	}
	if r.Caption != "" {
		drawCaption(out, r.Caption)
	}
	return out
}

func (r *Renderer) drawObject(fb *frameBuffer, o *scene.Object, cam *Camera, width, height float64) {
	if o.Mesh.Empty() {
		return
	}

	shader, custom := o.Material.(Shader)
	var shade fragmentFunc
	if custom {
		shade = func(world, normal geometry.Vector3) (color.RGBA, bool) {
			c, ok := shader.Fragment(world, normal)
			return toRGBA(c), ok
		}
	} else {
		base := o.Color
		shade = func(_, normal geometry.Vector3) (color.RGBA, bool) {
			return toRGBA(r.Light.Shade(base, normal)), true
		}
	}

	m := o.Mesh
	verts := make([]rasterVertex, m.VertexCount())
	for i, p := range m.Positions {
		n := m.Normals[i]
		displaced := p
		if custom {
			displaced = shader.Vertex(p, n)
		}
		wp := o.Transform.Apply(displaced)
		x, y, _ := cam.Project(wp, width, height)
		verts[i] = rasterVertex{
			x:      x,
			y:      y,
			z:      cam.Depth(wp),
			world:  o.Transform.Apply(p),
			normal: o.Transform.ApplyNormal(n),
		}
	}

	for i := 0; i < m.TriangleCount(); i++ {
		fb.fillTriangle(verts[m.Indices[i*3]], verts[m.Indices[i*3+1]], verts[m.Indices[i*3+2]], r.CullBack, shade)
	}
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func toImageRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}

// drawCaption writes a single line of text in the top left corner
func drawCaption(img *image.RGBA, text string) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 230, G: 230, B: 230, A: 255}),
		Face: face,
		Dot:  fixed.P(8, 8+face.Ascent),
	}
	d.DrawString(text)
}

package app

import (
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/philipparndt/gooutline/pkg/mesh"
	"github.com/philipparndt/gooutline/pkg/scene"
	"github.com/philipparndt/gooutline/pkg/viewer"
)

// meshCache uploads each scene mesh once. Clones share their source's mesh
// and therefore its GPU buffers.
type meshCache struct {
	light    viewer.HemisphericLight
	meshes   map[*mesh.Mesh]rl.Mesh
	material rl.Material
}

func newMeshCache(light viewer.HemisphericLight) *meshCache {
	return &meshCache{
		light:    light,
		meshes:   make(map[*mesh.Mesh]rl.Mesh),
		material: rl.LoadMaterialDefault(),
	}
}

func (c *meshCache) get(m *mesh.Mesh) rl.Mesh {
	if gm, ok := c.meshes[m]; ok {
		return gm
	}
	gm := uploadMesh(m, c.light)
	c.meshes[m] = gm
	return gm
}

func (c *meshCache) Close() {
	for m, gm := range c.meshes {
		rl.UnloadMesh(&gm)
		delete(c.meshes, m)
	}
	rl.UnloadMaterial(c.material)
}

// uploadMesh converts a mesh to a raylib triangle soup with the hemispheric
// light baked into grey vertex colors. The object color is applied through
// the material's diffuse color.
func uploadMesh(m *mesh.Mesh, light viewer.HemisphericLight) rl.Mesh {
	triangleCount := m.TriangleCount()
	vertexCount := triangleCount * 3

	gm := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, vertexCount*3)
	normals := make([]float32, vertexCount*3)
	colors := make([]uint8, vertexCount*4)
	white := colorful.Color{R: 1, G: 1, B: 1}

	for i, index := range m.Indices {
		p := m.Positions[index]
		n := m.Normals[index]
		vertices[i*3+0] = float32(p.X)
		vertices[i*3+1] = float32(p.Y)
		vertices[i*3+2] = float32(p.Z)
		normals[i*3+0] = float32(n.X)
		normals[i*3+1] = float32(n.Y)
		normals[i*3+2] = float32(n.Z)

		r, g, b := light.Shade(white, n).RGB255()
		colors[i*4+0] = r
		colors[i*4+1] = g
		colors[i*4+2] = b
		colors[i*4+3] = 255
	}

	if len(vertices) > 0 {
		gm.Vertices = &vertices[0]
		gm.Normals = &normals[0]
		gm.Colors = &colors[0]
	}

	rl.UploadMesh(&gm, false)
	return gm
}

// drawScene draws the graph group by group. Before the overlay group the
// pending batch is flushed and depth testing is turned off, so outlines are
// never hidden by base geometry.
func (app *App) drawScene() {
	objects := app.Effect.Graph.Objects()
	slices.SortStableFunc(objects, func(a, b *scene.Object) int {
		return int(a.Group) - int(b.Group)
	})

	group := scene.GroupBase
	for _, o := range objects {
		if o.Group != group {
			rl.DrawRenderBatchActive()
			rl.DisableDepthTest()
			group = o.Group
		}
		gm := app.meshes.get(o.Mesh)
		transform := toMatrix(o.Transform.Matrix())

		if mat, ok := o.Material.(*gpuMaterial); ok {
			mat.draw(gm, transform)
			continue
		}
		app.meshes.material.GetMap(rl.MapDiffuse).Color = toColor(o.Color)
		rl.DrawMesh(gm, app.meshes.material, transform)
	}
	rl.DrawRenderBatchActive()
	rl.EnableDepthTest()
}

func toMatrix(m [16]float64) rl.Matrix {
	return rl.Matrix{
		M0: float32(m[0]), M1: float32(m[1]), M2: float32(m[2]), M3: float32(m[3]),
		M4: float32(m[4]), M5: float32(m[5]), M6: float32(m[6]), M7: float32(m[7]),
		M8: float32(m[8]), M9: float32(m[9]), M10: float32(m[10]), M11: float32(m[11]),
		M12: float32(m[12]), M13: float32(m[13]), M14: float32(m[14]), M15: float32(m[15]),
	}
}

func toColor(c colorful.Color) rl.Color {
	r, g, b := c.Clamped().RGB255()
	return rl.NewColor(r, g, b, 255)
}

package viewer

import (
	"image"
	"image/color"
	"math"

	"github.com/philipparndt/gooutline/pkg/geometry"
)

// nearPlane rejects triangles touching or behind the camera
const nearPlane = 0.05

// rasterVertex is a projected vertex with the varyings handed to the fragment stage
type rasterVertex struct {
	x, y, z float64
	world   geometry.Vector3
	normal  geometry.Vector3
}

// fragmentFunc shades a surface point. Returning false discards the fragment.
type fragmentFunc func(world, normal geometry.Vector3) (color.RGBA, bool)

// frameBuffer is a color image with a matching depth buffer
type frameBuffer struct {
	img   *image.RGBA
	depth []float64
}

func newFrameBuffer(width, height int, background color.RGBA) *frameBuffer {
	fb := &frameBuffer{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		depth: make([]float64, width*height),
	}
	pix := fb.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = background.R
		pix[i+1] = background.G
		pix[i+2] = background.B
		pix[i+3] = background.A
	}
	fb.clearDepth()
	return fb
}

func (fb *frameBuffer) clearDepth() {
	for i := range fb.depth {
		fb.depth[i] = math.MaxFloat64
	}
}

func edge(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// fillTriangle rasterizes a triangle with depth testing and perspective-correct varyings.
// With cullBack set, triangles that are not counter-clockwise on screen are skipped.
func (fb *frameBuffer) fillTriangle(v0, v1, v2 rasterVertex, cullBack bool, shade fragmentFunc) {
	if v0.z < nearPlane || v1.z < nearPlane || v2.z < nearPlane {
		return
	}

	// Screen y points down, so front faces have negative area
	area := edge(v0.x, v0.y, v1.x, v1.y, v2.x, v2.y)
	if math.Abs(area) < 1e-12 || (cullBack && area > 0) {
		return
	}

	bounds := fb.img.Bounds()
	width := bounds.Max.X
	x0 := max(0, int(math.Floor(min(v0.x, v1.x, v2.x))))
	x1 := min(bounds.Max.X-1, int(math.Ceil(max(v0.x, v1.x, v2.x))))
	y0 := max(0, int(math.Floor(min(v0.y, v1.y, v2.y))))
	y1 := min(bounds.Max.Y-1, int(math.Ceil(max(v0.y, v1.y, v2.y))))

	r0, r1, r2 := 1/v0.z, 1/v1.z, 1/v2.z

	for y := y0; y <= y1; y++ {
		py := float64(y) + 0.5
		for x := x0; x <= x1; x++ {
			px := float64(x) + 0.5

			b0 := edge(v1.x, v1.y, v2.x, v2.y, px, py) / area
			b1 := edge(v2.x, v2.y, v0.x, v0.y, px, py) / area
			b2 := edge(v0.x, v0.y, v1.x, v1.y, px, py) / area
			if b0 < 0 || b1 < 0 || b2 < 0 {
				continue
			}

			// Perspective-correct weights
			w0, w1, w2 := b0*r0, b1*r1, b2*r2
			inv := 1 / (w0 + w1 + w2)
			z := inv

			idx := y*width + x
			if z >= fb.depth[idx] {
				continue
			}

			w0, w1, w2 = w0*inv, w1*inv, w2*inv
			world := v0.world.Mul(w0).Add(v1.world.Mul(w1)).Add(v2.world.Mul(w2))
			normal := v0.normal.Mul(w0).Add(v1.normal.Mul(w1)).Add(v2.normal.Mul(w2))

			col, ok := shade(world, normal)
			if !ok {
				continue
			}
			fb.depth[idx] = z
			fb.img.SetRGBA(x, y, col)
		}
	}
}

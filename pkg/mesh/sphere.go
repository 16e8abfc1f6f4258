package mesh

import (
	"fmt"
	"math"

	"github.com/philipparndt/gooutline/pkg/geometry"
)

// MinSegments is the lowest tessellation that still reads as a sphere
const MinSegments = 3

// NewSphere builds a UV sphere with the given diameter centred at the origin.
// segments controls both the ring and slice count. Triangles wind
// counter-clockwise when seen from outside.
func NewSphere(diameter float64, segments int) (*Mesh, error) {
	if diameter <= 0 {
		return nil, fmt.Errorf("sphere diameter must be positive, got %v", diameter)
	}
	if segments < MinSegments {
		return nil, fmt.Errorf("sphere needs at least %d segments, got %d", MinSegments, segments)
	}

	radius := diameter / 2
	rings := segments
	slices := segments * 2
	m := NewMesh(fmt.Sprintf("sphere(d=%.3g)", diameter))

	for ring := 0; ring <= rings; ring++ {
		phi := math.Pi * float64(ring) / float64(rings)
		sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)
		for slice := 0; slice <= slices; slice++ {
			theta := 2 * math.Pi * float64(slice) / float64(slices)
			n := geometry.NewVector3(sinPhi*math.Cos(theta), cosPhi, sinPhi*math.Sin(theta))
			m.AddVertex(n.Mul(radius), n)
		}
	}

	stride := uint32(slices + 1)
	for ring := 0; ring < rings; ring++ {
		for slice := 0; slice < slices; slice++ {
			a := uint32(ring)*stride + uint32(slice)
			b := a + stride
			// Skip the degenerate triangles at the poles
			if ring != 0 {
				m.AddTriangle(a, a+1, b)
			}
			if ring != rings-1 {
				m.AddTriangle(a+1, b+1, b)
			}
		}
	}
	return m, nil
}

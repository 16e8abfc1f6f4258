package outline

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultColor is the initial outline color
var DefaultColor = colorful.Color{R: 1, G: 0, B: 0}

// Params are the user-tunable outline parameters
type Params struct {
	Scale float64
	Color colorful.Color
}

// DefaultParams returns the initial params for a style
func DefaultParams(s Style) Params {
	return Params{Scale: s.DefaultScale(), Color: DefaultColor}
}

// Clamp limits the scale to the style's range and the color to the RGB cube
func (p Params) Clamp(s Style) Params {
	lo, hi := s.Range()
	p.Scale = min(max(p.Scale, lo), hi)
	p.Color = p.Color.Clamped()
	return p
}

// ParseColor accepts "#rrggbb" or "rrggbb"
func ParseColor(hex string) (colorful.Color, error) {
	if hex != "" && hex[0] != '#' {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid outline color: %w", err)
	}
	return c, nil
}

func (p Params) String() string {
	return fmt.Sprintf("scale=%.3f color=%s", p.Scale, p.Color.Hex())
}

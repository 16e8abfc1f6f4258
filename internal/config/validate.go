package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/philipparndt/gooutline/internal/outline"
	"github.com/philipparndt/gooutline/pkg/mesh"
)

// MaxSpheres bounds the generated scene
const MaxSpheres = 1000

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	style, params, err := c.Outline.Resolve()
	if err != nil {
		errs = append(errs, err)
	} else if lo, hi := style.Range(); c.Outline.Scale >= 0 && (params.Scale < lo || params.Scale > hi) {
		add("outline.scale %v outside [%v, %v] for style %s", params.Scale, lo, hi, style)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		add("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS <= 0 {
		add("window.fps must be positive, got %d", c.Window.FPS)
	}

	if c.Scene.Spheres < 0 || c.Scene.Spheres > MaxSpheres {
		add("scene.spheres must be in [0, %d], got %d", MaxSpheres, c.Scene.Spheres)
	}
	if c.Scene.MinPos > c.Scene.MaxPos {
		add("scene.min_pos %v greater than max_pos %v", c.Scene.MinPos, c.Scene.MaxPos)
	}
	if c.Scene.MinRadius <= 0 || c.Scene.MinRadius > c.Scene.MaxRadius {
		add("scene radius range [%v, %v] invalid", c.Scene.MinRadius, c.Scene.MaxRadius)
	}
	if c.Scene.Segments < mesh.MinSegments {
		add("scene.segments must be at least %d, got %d", mesh.MinSegments, c.Scene.Segments)
	}

	if c.Camera.Beta <= 0 || c.Camera.Beta >= math.Pi {
		add("camera.beta must be in (0, π), got %v", c.Camera.Beta)
	}
	if c.Camera.Radius <= 0 {
		add("camera.radius must be positive, got %v", c.Camera.Radius)
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		add("log.format must be text or json, got %q", c.Log.Format)
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Resolve parses the outline section. A negative scale resolves to the style default.
func (o OutlineConfig) Resolve() (outline.Style, outline.Params, error) {
	style, err := outline.ParseStyle(o.Style)
	if err != nil {
		return outline.RimDiscard, outline.Params{}, fmt.Errorf("outline.style: %w", err)
	}
	color, err := outline.ParseColor(o.Color)
	if err != nil {
		return style, outline.Params{}, fmt.Errorf("outline.color: %w", err)
	}

	scale := o.Scale
	if scale < 0 {
		scale = style.DefaultScale()
	}
	return style, outline.Params{Scale: scale, Color: color}, nil
}

// SetOutline stores style and params back into the section.
func (o *OutlineConfig) SetOutline(style outline.Style, p outline.Params) {
	o.Style = style.String()
	o.Scale = p.Scale
	o.Color = hex(p.Color)
}

func hex(c colorful.Color) string {
	return c.Clamped().Hex()
}

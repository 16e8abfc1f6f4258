// Package effect wires the hover tracker, highlight manager and shader registry
// into a single viewer-owned context.
package effect

import (
	"fmt"
	"log/slog"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/philipparndt/gooutline/internal/highlight"
	"github.com/philipparndt/gooutline/internal/hover"
	"github.com/philipparndt/gooutline/internal/outline"
	"github.com/philipparndt/gooutline/internal/shader"
	"github.com/philipparndt/gooutline/pkg/geometry"
	"github.com/philipparndt/gooutline/pkg/scene"
)

// Camera provides picking rays and the eye position for the live uniform
type Camera interface {
	scene.RayCaster
	Eye() geometry.Vector3
}

// Options configure the outline effect
type Options struct {
	Style      outline.Style
	Params     outline.Params
	LiveParams bool
	Logger     *slog.Logger
}

// ViewerContext owns the hover outline effect for one viewer.
// All methods must be called from the viewer's main loop.
type ViewerContext struct {
	Graph    *scene.Graph
	Camera   Camera
	Registry *shader.Registry
	Tracker  *hover.Tracker
	Manager  *highlight.Manager

	logger *slog.Logger
	style  outline.Style
	params outline.Params
	closed bool
}

// New builds the effect and compiles every outline program up front so that
// shader errors surface here rather than on the first hover.
func New(g *scene.Graph, cam Camera, backend shader.Backend, opts Options) (*ViewerContext, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	reg := shader.NewRegistry(backend, logger)
	reg.RegisterDefaults()
	for _, s := range outline.Styles {
		if _, err := reg.Instantiate(s, outline.Attributes(s), outline.Uniforms(s)); err != nil {
			reg.Close()
			return nil, fmt.Errorf("outline effect: %w", err)
		}
	}

	params := opts.Params.Clamp(opts.Style)
	manager := highlight.NewManager(g, highlight.ShaderMaterials{Registry: reg}, highlight.Options{
		Style:      opts.Style,
		LiveParams: opts.LiveParams,
	}, logger)
	manager.SetParams(params)

	tracker := hover.NewTracker(scene.RayPicker{Graph: g, Caster: cam}, manager, logger)

	logger.Info("outline effect ready", "style", opts.Style.String(), "params", params.String(),
		"live_params", opts.LiveParams, "objects", g.Len())

	return &ViewerContext{
		Graph:    g,
		Camera:   cam,
		Registry: reg,
		Tracker:  tracker,
		Manager:  manager,
		logger:   logger,
		style:    opts.Style,
		params:   params,
	}, nil
}

// PointerMove feeds a pointer position in viewport pixels. It reports whether the hover changed.
func (v *ViewerContext) PointerMove(x, y float64) bool {
	if v.closed {
		return false
	}
	return v.Tracker.PointerMove(x, y)
}

// PointerLeave clears the hover. It reports whether the hover changed.
func (v *ViewerContext) PointerLeave() bool {
	if v.closed {
		return false
	}
	return v.Tracker.PointerLeave()
}

// Frame is the per-frame hook, called before the frame is drawn
func (v *ViewerContext) Frame() {
	if v.closed {
		return
	}
	v.Manager.Frame(v.Camera.Eye())
}

// SetScale updates the outline scale and returns the clamped params
func (v *ViewerContext) SetScale(scale float64) outline.Params {
	p := v.params
	p.Scale = scale
	return v.SetParams(p)
}

// SetColor updates the outline color and returns the clamped params
func (v *ViewerContext) SetColor(c colorful.Color) outline.Params {
	p := v.params
	p.Color = c
	return v.SetParams(p)
}

// SetParams clamps p to the active style and hands it to the manager
func (v *ViewerContext) SetParams(p outline.Params) outline.Params {
	v.params = p.Clamp(v.style)
	v.Manager.SetParams(v.params)
	return v.params
}

// SetStyle switches the outline style. The scale resets to the style default
// and the hovered object, if any, is highlighted again with the new style.
func (v *ViewerContext) SetStyle(style outline.Style) {
	p := v.params
	p.Scale = style.DefaultScale()
	v.Apply(style, p)
}

// Apply sets style and params together, as read from configuration
func (v *ViewerContext) Apply(style outline.Style, p outline.Params) {
	if v.closed {
		return
	}
	if style == v.style {
		v.SetParams(p)
		return
	}
	v.Manager.SetStyle(style)
	v.style = style
	v.SetParams(p)
	v.Manager.HoverChanged(v.Tracker.Hovered())
	v.logger.Info("outline style changed", "style", style.String(), "params", v.params.String())
}

// Style returns the active outline style
func (v *ViewerContext) Style() outline.Style {
	return v.style
}

// Params returns the current outline params
func (v *ViewerContext) Params() outline.Params {
	return v.params
}

// Hovered returns the object under the pointer, or nil
func (v *ViewerContext) Hovered() *scene.Object {
	return v.Tracker.Hovered()
}

// Highlight returns the live outline clone, or nil
func (v *ViewerContext) Highlight() *scene.Object {
	return v.Manager.Clone()
}

// Close disposes the highlight and releases all shader programs
func (v *ViewerContext) Close() {
	if v.closed {
		return
	}
	v.closed = true
	v.Manager.Close()
	v.Registry.Close()
	stats := v.Manager.Stats()
	v.logger.Info("outline effect closed", "created", stats.Created, "disposed", stats.Disposed,
		"failures", stats.Failures)
}

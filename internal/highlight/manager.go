// Package highlight owns the transient outline clone of the hovered object.
package highlight

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/philipparndt/gooutline/internal/outline"
	"github.com/philipparndt/gooutline/internal/shader"
	"github.com/philipparndt/gooutline/pkg/geometry"
	"github.com/philipparndt/gooutline/pkg/scene"
)

// ErrStaleReference is reported when the hover target was disposed before it could be cloned
var ErrStaleReference = errors.New("hover target disposed before highlight")

// Scene is the part of the scene graph the manager needs.
// Dispose must release the object's material.
type Scene interface {
	Clone(src *scene.Object, name string) (*scene.Object, error)
	Dispose(o *scene.Object) error
}

// State is the lifecycle state of the manager
type State int

const (
	Idle State = iota
	Highlighting
)

func (s State) String() string {
	if s == Highlighting {
		return "highlighting"
	}
	return "idle"
}

// Stats counts lifecycle events since the manager was created
type Stats struct {
	Created  int
	Disposed int
	Failures int
}

// Outstanding returns the number of clones alive
func (s Stats) Outstanding() int {
	return s.Created - s.Disposed
}

// Options configure a Manager
type Options struct {
	Style outline.Style
	// LiveParams re-pushes scale and color every frame instead of freezing them at creation
	LiveParams bool
}

// Manager creates and disposes the outline clone as the hover target changes
type Manager struct {
	scene     Scene
	materials MaterialFactory
	logger    *slog.Logger

	style  outline.Style
	live   bool
	params outline.Params

	camera    geometry.Vector3
	hasCamera bool

	target   *scene.Object
	clone    *scene.Object
	material shader.Material
	stats    Stats
}

// NewManager creates an idle manager
func NewManager(sc Scene, materials MaterialFactory, opts Options, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		scene:     sc,
		materials: materials,
		logger:    logger,
		style:     opts.Style,
		live:      opts.LiveParams,
		params:    outline.DefaultParams(opts.Style),
	}
}

// HoverChanged implements hover.Listener
func (m *Manager) HoverChanged(obj *scene.Object) {
	if obj == m.target {
		return
	}

	// Dispose before create
	m.release()
	if obj == nil {
		return
	}

	if err := m.create(obj); err != nil {
		m.stats.Failures++
		m.logger.Warn("highlight failed", "object", obj.String(), "error", err)
	}
}

func (m *Manager) create(obj *scene.Object) error {
	if obj.Disposed() {
		return fmt.Errorf("%s: %w", obj, ErrStaleReference)
	}

	clone, err := m.scene.Clone(obj, obj.Name+"_outline")
	if err != nil {
		if errors.Is(err, scene.ErrDisposed) {
			return fmt.Errorf("%w: %w", ErrStaleReference, err)
		}
		return err
	}

	mat, err := m.materials.NewMaterial(m.style)
	if err != nil {
		if derr := m.scene.Dispose(clone); derr != nil {
			m.logger.Warn("dispose of unfinished clone failed", "error", derr)
		}
		return fmt.Errorf("outline material: %w", err)
	}

	applyParams(mat, m.params)
	if m.style.UsesCameraPosition() && m.hasCamera {
		applyCamera(mat, m.camera)
	}
	clone.Material = mat

	clone.Transform.Position = obj.Transform.Position
	clone.Transform.Rotation = obj.Transform.Rotation
	if m.style.ResetsScale() {
		clone.Transform.Scale = geometry.Splat(1)
	}
	clone.Group = scene.GroupOverlay

	m.target = obj
	m.clone = clone
	m.material = mat
	m.stats.Created++
	m.logger.Debug("highlight created", "object", obj.String(), "clone", clone.String(),
		"style", m.style.String(), "params", m.params.String())
	return nil
}

func (m *Manager) release() {
	if m.clone == nil {
		return
	}
	if err := m.scene.Dispose(m.clone); err != nil {
		m.logger.Warn("dispose highlight failed", "clone", m.clone.String(), "error", err)
	}
	m.stats.Disposed++
	m.logger.Debug("highlight disposed", "clone", m.clone.String())
	m.target = nil
	m.clone = nil
	m.material = nil
}

// Frame refreshes the live uniforms. It never changes lifecycle state.
func (m *Manager) Frame(cameraPosition geometry.Vector3) {
	m.camera = cameraPosition
	m.hasCamera = true
	if m.material == nil {
		return
	}
	if m.style.UsesCameraPosition() {
		applyCamera(m.material, cameraPosition)
	}
	if m.live {
		applyParams(m.material, m.params)
	}
}

// SetParams stores params for the next clone. Live managers also push them on the next Frame.
func (m *Manager) SetParams(p outline.Params) {
	m.params = p
}

// Params returns the params used for the next clone
func (m *Manager) Params() outline.Params {
	return m.params
}

// SetStyle switches the outline style. The current highlight is dropped and
// the tracker has to report the hover again.
func (m *Manager) SetStyle(style outline.Style) {
	if style == m.style {
		return
	}
	m.release()
	m.style = style
}

// Style returns the active outline style
func (m *Manager) Style() outline.Style {
	return m.style
}

// State returns Highlighting while a clone exists
func (m *Manager) State() State {
	if m.clone != nil {
		return Highlighting
	}
	return Idle
}

// Target returns the highlighted object, or nil
func (m *Manager) Target() *scene.Object {
	return m.target
}

// Clone returns the live outline clone, or nil
func (m *Manager) Clone() *scene.Object {
	return m.clone
}

// Stats returns lifecycle counters
func (m *Manager) Stats() Stats {
	return m.stats
}

// Close disposes any live clone
func (m *Manager) Close() {
	m.release()
}

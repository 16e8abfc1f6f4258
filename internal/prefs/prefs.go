// Package prefs persists the last used outline settings between sessions.
package prefs

import (
	"fmt"
	"log/slog"

	"github.com/philipparndt/gooutline/internal/outline"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application directory
const AppName = "gooutline"

const (
	outlineObject   = "prefs"
	outlineProperty = "outline"
)

// Prefs are the user-facing settings restored at startup
type Prefs struct {
	Style string  `yaml:"style"`
	Scale float64 `yaml:"scale"`
	Color string  `yaml:"color"`
}

// FromOutline captures the current style and params
func FromOutline(style outline.Style, p outline.Params) Prefs {
	return Prefs{Style: style.String(), Scale: p.Scale, Color: p.Color.Clamped().Hex()}
}

// Outline parses the stored values back, clamped to the style's range
func (p Prefs) Outline() (outline.Style, outline.Params, error) {
	style, err := outline.ParseStyle(p.Style)
	if err != nil {
		return outline.RimDiscard, outline.Params{}, err
	}
	color, err := outline.ParseColor(p.Color)
	if err != nil {
		return style, outline.Params{}, err
	}
	return style, outline.Params{Scale: p.Scale, Color: color}.Clamp(style), nil
}

// Store reads and writes Prefs through gdata. A nil manager keeps
// everything in memory and never fails.
type Store struct {
	manager *gdata.Manager
	logger  *slog.Logger
}

// Open opens the platform data directory for appName. When that fails the
// store degrades to memory only.
func Open(appName string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		logger.Warn("prefs storage unavailable, settings will not persist", "error", err)
		m = nil
	}
	return NewStore(m, logger)
}

// NewStore wraps an existing gdata manager, which may be nil
func NewStore(m *gdata.Manager, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{manager: m, logger: logger}
}

// Persistent reports whether saved prefs survive the process
func (s *Store) Persistent() bool {
	return s.manager != nil
}

// Load returns the saved prefs. ok is false when nothing has been saved yet.
func (s *Store) Load() (p Prefs, ok bool, err error) {
	if s.manager == nil || !s.manager.ObjectPropExists(outlineObject, outlineProperty) {
		return Prefs{}, false, nil
	}

	data, err := s.manager.LoadObjectProp(outlineObject, outlineProperty)
	if err != nil {
		return Prefs{}, false, fmt.Errorf("failed to load prefs: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Prefs{}, false, fmt.Errorf("failed to unmarshal prefs: %w", err)
	}
	s.logger.Debug("prefs loaded", "style", p.Style, "scale", p.Scale, "color", p.Color)
	return p, true, nil
}

// Save writes p. In memory-only mode it does nothing.
func (s *Store) Save(p Prefs) error {
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal prefs: %w", err)
	}
	if err := s.manager.SaveObjectProp(outlineObject, outlineProperty, data); err != nil {
		return fmt.Errorf("failed to save prefs: %w", err)
	}
	s.logger.Debug("prefs saved", "style", p.Style)
	return nil
}

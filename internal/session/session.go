// Package session bootstraps what every front-end needs: configuration,
// the session logger and persisted prefs.
package session

import (
	"io"
	"log/slog"

	"github.com/philipparndt/gooutline/internal/config"
	"github.com/philipparndt/gooutline/internal/outline"
	"github.com/philipparndt/gooutline/internal/prefs"
)

// Session is the state shared by one viewer run
type Session struct {
	Config config.Config
	Loader *config.Loader
	Logger *slog.Logger
	ID     string
	Prefs  *prefs.Store
}

// Open loads the configuration and builds the logger writing to w
func Open(loader *config.Loader, w io.Writer) (*Session, error) {
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	logger, id := cfg.Log.NewLogger(w)
	store := prefs.NewStore(nil, logger)
	if cfg.Prefs.Enabled {
		store = prefs.Open(prefs.AppName, logger)
	}

	logger.Debug("session started", "config", loader.Path(), "prefs", store.Persistent())
	return &Session{Config: cfg, Loader: loader, Logger: logger, ID: id, Prefs: store}, nil
}

// Outline resolves the starting outline settings. Saved prefs win over the
// config file unless explicit is set, e.g. because outline flags were given.
func (s *Session) Outline(explicit bool) (outline.Style, outline.Params, error) {
	if !explicit && s.Prefs != nil {
		p, ok, err := s.Prefs.Load()
		if err != nil {
			s.Logger.Warn("ignoring saved prefs", "error", err)
		} else if ok {
			style, params, err := p.Outline()
			if err == nil {
				s.Logger.Info("restored outline prefs", "style", style.String(), "params", params.String())
				return style, params, nil
			}
			s.Logger.Warn("ignoring saved prefs", "error", err)
		}
	}
	return s.Config.Outline.Resolve()
}

// Persist saves the outline settings for the next run
func (s *Session) Persist(style outline.Style, p outline.Params) {
	if s.Prefs == nil || !s.Config.Prefs.Enabled {
		return
	}
	if err := s.Prefs.Save(prefs.FromOutline(style, p)); err != nil {
		s.Logger.Warn("failed to save prefs", "error", err)
	}
}

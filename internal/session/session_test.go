package session

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/philipparndt/gooutline/internal/config"
	"github.com/philipparndt/gooutline/internal/outline"
	"github.com/philipparndt/gooutline/internal/prefs"
	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func persistentSession(t *testing.T) *Session {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)

	m, err := gdata.Open(gdata.Config{AppName: fmt.Sprintf("gooutline_session_%d", time.Now().UnixNano())})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}
	var buf bytes.Buffer
	logger, id := config.LogConfig{Level: "debug", Format: "text"}.NewLogger(&buf)
	return &Session{Config: config.Default(), Logger: logger, ID: id, Prefs: prefs.NewStore(m, logger)}
}

func TestOpenWithPrefsDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[prefs]\nenabled = false\n[outline]\nstyle = \"shell\"\n"), 0o644))

	var buf bytes.Buffer
	s, err := Open(config.NewLoader(path), &buf)
	require.NoError(t, err)

	assert.NotEmpty(t, s.ID)
	assert.False(t, s.Prefs.Persistent())

	style, params, err := s.Outline(false)
	require.NoError(t, err)
	assert.Equal(t, outline.ScaledShell, style)
	assert.Equal(t, 1.05, params.Scale)
}

func TestOpenRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window]\nfps = 0\n"), 0o644))

	_, err := Open(config.NewLoader(path), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestSavedPrefsWinUnlessExplicit(t *testing.T) {
	s := persistentSession(t)

	blue := colorful.Color{R: 0, G: 0, B: 1}
	s.Persist(outline.ScaledShell, outline.Params{Scale: 1.15, Color: blue})

	style, params, err := s.Outline(false)
	require.NoError(t, err)
	assert.Equal(t, outline.ScaledShell, style)
	assert.InDelta(t, 1.15, params.Scale, 1e-9)
	assert.InDelta(t, 1, params.Color.B, 1e-9)

	style, params, err = s.Outline(true)
	require.NoError(t, err)
	assert.Equal(t, outline.RimDiscard, style)
	assert.Equal(t, 0.0, params.Scale)
	assert.InDelta(t, 1, params.Color.R, 1e-9)
	assert.InDelta(t, 0, params.Color.B, 1e-9)
}

func TestPersistRespectsDisabledPrefs(t *testing.T) {
	s := persistentSession(t)
	s.Config.Prefs.Enabled = false

	s.Persist(outline.ScaledShell, outline.DefaultParams(outline.ScaledShell))

	_, ok, err := s.Prefs.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

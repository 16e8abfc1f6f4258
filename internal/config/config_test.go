package config

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/gooutline/internal/outline"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := Default()

	assert.Equal(t, "rim", c.Outline.Style)
	assert.Equal(t, "#ff0000", c.Outline.Color)
	assert.Equal(t, 7, c.Scene.Spheres)
	assert.Equal(t, 10.0, c.Camera.Radius)
	assert.True(t, c.Prefs.Enabled)
	require.NoError(t, c.Validate())

	style, params, err := c.Outline.Resolve()
	require.NoError(t, err)
	assert.Equal(t, outline.RimDiscard, style)
	assert.Equal(t, outline.DefaultParams(outline.RimDiscard), params)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c, err := NewLoader(filepath.Join(t.TempDir(), "absent.toml")).Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[outline]
style = "shell"
scale = 1.1
color = "#00ff00"
live_params = true

[scene]
spheres = 3
seed = 42
`), 0o644))
	t.Setenv("GOOUTLINE_WINDOW_WIDTH", "800")

	c, err := NewLoader(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "shell", c.Outline.Style)
	assert.Equal(t, 1.1, c.Outline.Scale)
	assert.True(t, c.Outline.LiveParams)
	assert.Equal(t, 3, c.Scene.Spheres)
	assert.Equal(t, uint64(42), c.Scene.Seed)
	assert.Equal(t, 800, c.Window.Width)
	assert.Equal(t, 900, c.Window.Height)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[outline]
style = "shel"
[scene]
segments = 1
`), 0o644))

	_, err := NewLoader(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "shell"`)
	assert.Contains(t, err.Error(), "scene.segments")
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[outline\nstyle="), 0o644))

	_, err := NewLoader(path).Load()
	assert.Error(t, err)
}

func TestBindPFlagOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[outline]\nstyle = \"rim\"\n"), 0o644))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("style", "rim", "")
	require.NoError(t, flags.Parse([]string{"--style", "shell"}))

	l := NewLoader(path)
	require.NoError(t, l.BindPFlag("outline.style", flags.Lookup("style")))
	assert.Error(t, l.BindPFlag("outline.scale", flags.Lookup("missing")))

	c, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, "shell", c.Outline.Style)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	c := Default()
	c.Outline.SetOutline(outline.ScaledShell, outline.Params{Scale: 1.2, Color: outline.DefaultColor})
	c.Scene.Seed = 7

	require.NoError(t, Save(path, c))
	loaded, err := NewLoader(path).Load()
	require.NoError(t, err)

	assert.Equal(t, c, loaded)
}

func TestValidateCollectsErrors(t *testing.T) {
	c := Default()
	c.Window.Width = 0
	c.Scene.MinRadius = 2
	c.Log.Level = "loud"
	c.Log.Format = "xml"
	c.Outline.Scale = 0.9

	err := c.Validate()
	require.Error(t, err)
	for _, want := range []string{"window size", "radius range", "log.level", "log.format", "outline.scale"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestValidateRejectsPolarBeta(t *testing.T) {
	for _, beta := range []float64{0, -0.5, math.Pi, 4} {
		c := Default()
		c.Camera.Beta = beta

		err := c.Validate()
		require.Error(t, err, "beta %v", beta)
		assert.Contains(t, err.Error(), "camera.beta")
	}
	c := Default()
	c.Camera.Beta = math.Pi / 2
	assert.NoError(t, c.Validate())
}

func TestNewLoggerCarriesSession(t *testing.T) {
	var buf bytes.Buffer
	logger, session := LogConfig{Level: "debug", Format: "json"}.NewLogger(&buf)

	logger.Debug("hello")
	assert.Contains(t, buf.String(), session)
	assert.True(t, strings.HasPrefix(buf.String(), "{"))

	buf.Reset()
	logger, _ = LogConfig{Level: "warn", Format: "text"}.NewLogger(&buf)
	logger.Info("hidden")
	assert.Empty(t, buf.String())
}

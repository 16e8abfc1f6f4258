package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gooutline/internal/outline"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. GOOUTLINE_OUTLINE_STYLE
const EnvPrefix = "GOOUTLINE"

// Config holds application configuration.
type Config struct {
	Outline OutlineConfig `mapstructure:"outline"`
	Window  WindowConfig  `mapstructure:"window"`
	Scene   SceneConfig   `mapstructure:"scene"`
	Camera  CameraConfig  `mapstructure:"camera"`
	Log     LogConfig     `mapstructure:"log"`
	Prefs   PrefsConfig   `mapstructure:"prefs"`
}

// OutlineConfig holds the hover outline settings.
// A negative scale selects the style default.
type OutlineConfig struct {
	Style      string  `mapstructure:"style"`
	Scale      float64 `mapstructure:"scale"`
	Color      string  `mapstructure:"color"`
	LiveParams bool    `mapstructure:"live_params"`
}

// WindowConfig holds viewer window settings.
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	FPS    int    `mapstructure:"fps"`
	Title  string `mapstructure:"title"`
}

// SceneConfig controls the generated demo scene.
// Seed 0 picks a random seed at startup.
type SceneConfig struct {
	Spheres   int     `mapstructure:"spheres"`
	Seed      uint64  `mapstructure:"seed"`
	MinPos    float64 `mapstructure:"min_pos"`
	MaxPos    float64 `mapstructure:"max_pos"`
	MinRadius float64 `mapstructure:"min_radius"`
	MaxRadius float64 `mapstructure:"max_radius"`
	Segments  int     `mapstructure:"segments"`
}

// CameraConfig holds the initial arc-rotate camera pose.
type CameraConfig struct {
	Alpha  float64 `mapstructure:"alpha"`
	Beta   float64 `mapstructure:"beta"`
	Radius float64 `mapstructure:"radius"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// PrefsConfig toggles persisted user preferences.
type PrefsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("outline.style", outline.RimDiscard.String())
	v.SetDefault("outline.scale", -1.0)
	v.SetDefault("outline.color", outline.DefaultColor.Hex())
	v.SetDefault("outline.live_params", false)

	v.SetDefault("window.width", 1400)
	v.SetDefault("window.height", 900)
	v.SetDefault("window.fps", 60)
	v.SetDefault("window.title", "GoOutline")

	v.SetDefault("scene.spheres", 7)
	v.SetDefault("scene.seed", 0)
	v.SetDefault("scene.min_pos", -1.0)
	v.SetDefault("scene.max_pos", 1.0)
	v.SetDefault("scene.min_radius", 0.75)
	v.SetDefault("scene.max_radius", 1.5)
	v.SetDefault("scene.segments", 32)

	v.SetDefault("camera.alpha", 0.0)
	v.SetDefault("camera.beta", math.Pi/2.5)
	v.SetDefault("camera.radius", 10.0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("prefs.enabled", true)
}

// Default returns the built-in configuration.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	// Defaults always decode
	_ = v.Unmarshal(&c)
	return c
}

// DefaultPath returns $GOOUTLINE_CONFIG or ~/.config/gooutline/config.toml.
func DefaultPath() string {
	if p := os.Getenv(EnvPrefix + "_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "gooutline", "config.toml")
}

// Loader reads configuration from defaults, file, env and bound flags, in
// increasing priority. It can be reloaded when the file changes.
type Loader struct {
	v    *viper.Viper
	path string
}

// NewLoader creates a loader for path. An empty path uses DefaultPath.
func NewLoader(path string) *Loader {
	if path == "" {
		path = DefaultPath()
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")
	v.SetConfigFile(path)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return &Loader{v: v, path: path}
}

// Path returns the config file location, whether or not it exists.
func (l *Loader) Path() string {
	return l.path
}

// BindPFlag makes a command line flag override key.
func (l *Loader) BindPFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("bind %s: flag not defined", key)
	}
	if err := l.v.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("bind %s: %w", key, err)
	}
	return nil
}

// Load reads the config file if present, then decodes and validates the result.
func (l *Loader) Load() (Config, error) {
	if err := l.v.ReadInConfig(); err != nil && !isNotFound(err) {
		return Config{}, fmt.Errorf("read config %s: %w", l.path, err)
	}

	var c Config
	if err := l.v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, fs.ErrNotExist)
}

// Load reads configuration from the default location and env.
func Load() (Config, error) {
	return NewLoader("").Load()
}

// Save writes the provided config to path, creating the config directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("outline.style", cfg.Outline.Style)
	v.Set("outline.scale", cfg.Outline.Scale)
	v.Set("outline.color", cfg.Outline.Color)
	v.Set("outline.live_params", cfg.Outline.LiveParams)
	v.Set("window.width", cfg.Window.Width)
	v.Set("window.height", cfg.Window.Height)
	v.Set("window.fps", cfg.Window.FPS)
	v.Set("window.title", cfg.Window.Title)
	v.Set("scene.spheres", cfg.Scene.Spheres)
	v.Set("scene.seed", cfg.Scene.Seed)
	v.Set("scene.min_pos", cfg.Scene.MinPos)
	v.Set("scene.max_pos", cfg.Scene.MaxPos)
	v.Set("scene.min_radius", cfg.Scene.MinRadius)
	v.Set("scene.max_radius", cfg.Scene.MaxRadius)
	v.Set("scene.segments", cfg.Scene.Segments)
	v.Set("camera.alpha", cfg.Camera.Alpha)
	v.Set("camera.beta", cfg.Camera.Beta)
	v.Set("camera.radius", cfg.Camera.Radius)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.format", cfg.Log.Format)
	v.Set("prefs.enabled", cfg.Prefs.Enabled)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

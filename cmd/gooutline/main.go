package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gooutline/internal/config"
	"github.com/philipparndt/gooutline/internal/session"
	"github.com/philipparndt/gooutline/version"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "gooutline",
	Short: "Interactive hover outline viewer",
	Long: `gooutline shows a scene of spheres and outlines the mesh under the pointer.
Two outline styles are available: "rim" discards fragments facing the camera,
"shell" draws a uniformly scaled copy behind the mesh.`,
	Version:      version.GetFullVersion(),
	SilenceUsage: true,
	RunE:         runView,
}

// flagKeys maps persistent flags to config keys
var flagKeys = map[string]string{
	"style":       "outline.style",
	"scale":       "outline.scale",
	"color":       "outline.color",
	"live-params": "outline.live_params",
	"spheres":     "scene.spheres",
	"seed":        "scene.seed",
	"log-level":   "log.level",
	"log-format":  "log.format",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default $GOOUTLINE_CONFIG or ~/.config/gooutline/config.toml)")
	pf.String("style", "", "outline style: rim or shell")
	pf.Float64("scale", -1, "outline scale, negative for the style default")
	pf.String("color", "", "outline color as hex, e.g. #ff0000")
	pf.Bool("live-params", false, "push scale and color changes to a live outline")
	pf.Int("spheres", 0, "number of spheres in the scene")
	pf.Uint64("seed", 0, "scene seed, 0 for random")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: text or json")
}

// newLoader builds a config loader with the command's flags bound
func newLoader(cmd *cobra.Command) (*config.Loader, error) {
	loader := config.NewLoader(configPath)
	for name, key := range flagKeys {
		if err := loader.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return nil, err
		}
	}
	return loader, nil
}

func openSession(cmd *cobra.Command) (*session.Session, error) {
	loader, err := newLoader(cmd)
	if err != nil {
		return nil, err
	}
	return session.Open(loader, os.Stderr)
}

// outlineFlagsChanged reports whether the outline was set on the command line
func outlineFlagsChanged(cmd *cobra.Command) bool {
	flags := cmd.Flags()
	return flags.Changed("style") || flags.Changed("scale") || flags.Changed("color")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

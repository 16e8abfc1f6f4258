package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/philipparndt/gooutline/internal/config"
	"github.com/philipparndt/gooutline/pkg/watcher"
)

type dragTarget int

const (
	dragNone dragTarget = iota
	dragScene
	dragSlider
	dragPanel
)

// InteractionState holds mouse and interaction state
type InteractionState struct {
	lastMousePos rl.Vector2
	mouseInside  bool
	drag         dragTarget
}

// swatch is one clickable outline color preset
type swatch struct {
	bounds rl.Rectangle
	color  colorful.Color
}

// UIState holds UI-related state
type UIState struct {
	panelBounds  rl.Rectangle
	sliderBounds rl.Rectangle
	swatches     []swatch
	showHelp     bool
}

// ReloadState holds config reloads queued by the file watcher
type ReloadState struct {
	queue   *watcher.Queue[config.OutlineConfig]
	applied int
}

// Package app is the raylib front-end of the hover outline viewer.
package app

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gooutline/internal/config"
	"github.com/philipparndt/gooutline/internal/demo"
	"github.com/philipparndt/gooutline/internal/effect"
	"github.com/philipparndt/gooutline/internal/outline"
	"github.com/philipparndt/gooutline/pkg/viewer"
	"github.com/philipparndt/gooutline/pkg/watcher"
)

// Options configure a viewer run
type Options struct {
	Config config.Config
	// Style and Params are the resolved starting outline settings
	Style  outline.Style
	Params outline.Params
	// Reloads, when set, carries outline sections from the config watcher
	Reloads *watcher.Queue[config.OutlineConfig]
	Logger  *slog.Logger
}

// Result holds the outline settings in effect when the window closed
type Result struct {
	Style  outline.Style
	Params outline.Params
}

type App struct {
	Camera      *OrbitCamera
	Effect      *effect.ViewerContext
	Interaction InteractionState
	UI          UIState
	Reload      ReloadState

	meshes *meshCache
	logger *slog.Logger
}

// Run opens the window and blocks until it is closed
func Run(opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := opts.Config

	built, err := demo.Build(cfg.Scene)
	if err != nil {
		return Result{}, fmt.Errorf("build scene: %w", err)
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Window.FPS))

	cam := NewOrbitCamera(cfg.Camera.Alpha, cfg.Camera.Beta, cfg.Camera.Radius, fromVector3(built.Center()))

	ctx, err := effect.New(built.Graph, cam, gpuBackend{logger: logger}, effect.Options{
		Style:      opts.Style,
		Params:     opts.Params,
		LiveParams: cfg.Outline.LiveParams,
		Logger:     logger,
	})
	if err != nil {
		return Result{}, err
	}
	defer ctx.Close()

	app := &App{
		Camera: cam,
		Effect: ctx,
		UI:     newUIState(),
		Reload: ReloadState{queue: opts.Reloads},
		meshes: newMeshCache(viewer.DefaultLight()),
		logger: logger,
	}
	defer app.meshes.Close()

	fmt.Printf("Scene: %d spheres (seed %d)\n", built.Graph.Len(), built.Seed)

	// Main loop
	for !rl.WindowShouldClose() {
		app.applyReloads()

		// Update
		app.handleInput()
		app.Effect.Frame()

		// Draw
		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.Camera.Camera3D())
		app.drawScene()
		rl.EndMode3D()

		app.drawUI()
		rl.EndDrawing()
	}

	return Result{Style: ctx.Style(), Params: ctx.Params()}, nil
}

// applyReloads drains outline settings queued by the config watcher
func (app *App) applyReloads() {
	if app.Reload.queue == nil {
		return
	}
	app.Reload.queue.Drain(func(oc config.OutlineConfig) {
		style, params, err := oc.Resolve()
		if err != nil {
			app.logger.Warn("ignoring outline config reload", "error", err)
			return
		}
		app.Effect.Apply(style, params)
		app.Reload.applied++
		fmt.Printf("Outline settings reloaded: %s %s\n", style, params)
	})
}

package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gooutline/internal/outline"
)

// handleInput processes user input
func (app *App) handleInput() {
	mouse := rl.GetMousePosition()
	overPanel := rl.CheckCollisionPointRec(mouse, app.UI.panelBounds)

	if rl.IsKeyPressed(rl.KeyHome) {
		app.Camera.Reset()
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		app.nextStyle()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.UI.showHelp = !app.UI.showHelp
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.Interaction.drag = app.pressTarget(mouse, overPanel)
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		app.Interaction.drag = dragNone
	}

	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		switch app.Interaction.drag {
		case dragScene:
			if delta := rl.GetMouseDelta(); delta.X != 0 || delta.Y != 0 {
				app.Camera.Rotate(delta)
			}
		case dragSlider:
			app.setScaleFromSlider(mouse.X)
		}
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 && !overPanel {
		app.Camera.Zoom(wheel)
	}

	app.updateHover(mouse, rl.IsCursorOnScreen() && !overPanel)
}

// pressTarget decides what a left click starts and handles swatch clicks
func (app *App) pressTarget(mouse rl.Vector2, overPanel bool) dragTarget {
	if !overPanel {
		return dragScene
	}

	slider := app.UI.sliderBounds
	slider.Y -= 8
	slider.Height += 16
	if rl.CheckCollisionPointRec(mouse, slider) {
		app.setScaleFromSlider(mouse.X)
		return dragSlider
	}

	for _, s := range app.UI.swatches {
		if rl.CheckCollisionPointRec(mouse, s.bounds) {
			app.Effect.SetColor(s.color)
			break
		}
	}
	return dragPanel
}

// updateHover feeds pointer moves to the effect and reports a leave once
// the pointer is off the scene
func (app *App) updateHover(mouse rl.Vector2, onScene bool) {
	if !onScene {
		if app.Interaction.mouseInside {
			app.Effect.PointerLeave()
			app.Interaction.mouseInside = false
		}
		return
	}

	if !app.Interaction.mouseInside || mouse != app.Interaction.lastMousePos {
		app.Effect.PointerMove(float64(mouse.X), float64(mouse.Y))
	}
	app.Interaction.mouseInside = true
	app.Interaction.lastMousePos = mouse
}

func (app *App) nextStyle() {
	next := outline.Styles[(int(app.Effect.Style())+1)%len(outline.Styles)]
	app.Effect.SetStyle(next)
}

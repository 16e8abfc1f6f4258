package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/philipparndt/gooutline/internal/outline"
)

const (
	panelX        = 10
	panelY        = 10
	panelWidth    = 260
	panelHeight   = 232
	swatchSize    = 30
	swatchGap     = 8
	swatchColumns = 6
	swatchCount   = 12
)

// newUIState lays out the control panel
func newUIState() UIState {
	ui := UIState{
		panelBounds:  rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth, Height: panelHeight},
		sliderBounds: rl.Rectangle{X: panelX + 12, Y: panelY + 82, Width: panelWidth - 24, Height: 10},
	}
	ui.swatches = hueSwatches(panelX+12, panelY+126)
	return ui
}

// hueSwatches spreads presets around the HCL hue wheel, starting at red
func hueSwatches(x, y float32) []swatch {
	out := make([]swatch, 0, swatchCount)
	for i := range swatchCount {
		c := outline.DefaultColor
		if i > 0 {
			c = colorful.Hcl(float64(i)*360/swatchCount+12, 0.8, 0.6).Clamped()
		}
		col, row := i%swatchColumns, i/swatchColumns
		out = append(out, swatch{
			bounds: rl.Rectangle{
				X:      x + float32(col)*(swatchSize+swatchGap),
				Y:      y + float32(row)*(swatchSize+swatchGap),
				Width:  swatchSize,
				Height: swatchSize,
			},
			color: c,
		})
	}
	return out
}

// setScaleFromSlider maps a pointer x position onto the style's scale range
func (app *App) setScaleFromSlider(mouseX float32) {
	b := app.UI.sliderBounds
	t := clamp32((mouseX-b.X)/b.Width, 0, 1)
	lo, hi := app.Effect.Style().Range()
	app.Effect.SetScale(lo + float64(t)*(hi-lo))
}

// drawUI draws the user interface
func (app *App) drawUI() {
	p := app.Effect.Params()
	style := app.Effect.Style()

	rl.DrawRectangleRec(app.UI.panelBounds, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLinesEx(app.UI.panelBounds, 1, rl.NewColor(80, 80, 80, 255))

	x := int32(panelX + 12)
	y := int32(panelY + 10)
	rl.DrawText("Outline", x, y, 20, rl.Yellow)
	y += 28
	rl.DrawText(fmt.Sprintf("Style: %s (Tab to switch)", style), x, y, 14, rl.White)
	y += 20
	rl.DrawText(fmt.Sprintf("Outline Width: %.3f", p.Scale), x, y, 14, rl.White)

	// Slider
	b := app.UI.sliderBounds
	lo, hi := style.Range()
	t := float32((p.Scale - lo) / (hi - lo))
	rl.DrawRectangleRec(b, rl.NewColor(60, 60, 60, 255))
	rl.DrawRectangleRec(rl.Rectangle{X: b.X, Y: b.Y, Width: b.Width * t, Height: b.Height}, toColor(p.Color))
	rl.DrawCircle(int32(b.X+b.Width*t), int32(b.Y+b.Height/2), 8, rl.LightGray)

	y = int32(b.Y) + 22
	rl.DrawText(fmt.Sprintf("Outline Color: %s", p.Color.Clamped().Hex()), x, y, 14, rl.White)

	for _, s := range app.UI.swatches {
		rl.DrawRectangleRec(s.bounds, toColor(s.color))
		if s.color.AlmostEqualRgb(p.Color) {
			rl.DrawRectangleLinesEx(s.bounds, 2, rl.White)
		}
	}

	hovered := "none"
	if o := app.Effect.Hovered(); o != nil {
		hovered = o.Name
	}
	y = int32(app.UI.panelBounds.Y+app.UI.panelBounds.Height) - 24
	rl.DrawText(fmt.Sprintf("Hovered: %s", hovered), x, y, 14, rl.LightGray)

	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), screenWidth-80, 10, 14, rl.LightGray)

	if app.UI.showHelp {
		help := []string{
			"Drag: orbit",
			"Wheel: zoom",
			"Home: reset camera",
			"Tab: switch outline style",
			"H: hide help",
		}
		hy := screenHeight - int32(len(help))*18 - 10
		for _, line := range help {
			rl.DrawText(line, 10, hy, 14, rl.Gray)
			hy += 18
		}
	} else {
		rl.DrawText("H: help", 10, screenHeight-24, 14, rl.Gray)
	}
}

package main

import (
	"fmt"
	"image/color"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/philipparndt/gooutline/internal/config"
	"github.com/philipparndt/gooutline/internal/demo"
	"github.com/philipparndt/gooutline/internal/effect"
	"github.com/philipparndt/gooutline/internal/gui"
	"github.com/philipparndt/gooutline/internal/outline"
	"github.com/philipparndt/gooutline/internal/session"
	"github.com/philipparndt/gooutline/internal/shader/soft"
	"github.com/philipparndt/gooutline/pkg/viewer"
	"github.com/philipparndt/gooutline/pkg/watcher"
	"github.com/spf13/pflag"
)

type App struct {
	window fyne.Window
	sess   *session.Session
	effect *effect.ViewerContext
	view   *gui.SceneView

	styleSelect *widget.Select
	scaleSlider *widget.Slider
	scaleLabel  *widget.Label
	colorRect   *canvas.Rectangle
	hoverLabel  *widget.Label
}

func main() {
	configPath := pflag.String("config", "", "config file (default $GOOUTLINE_CONFIG or ~/.config/gooutline/config.toml)")
	pflag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	sess, err := session.Open(config.NewLoader(configPath), os.Stderr)
	if err != nil {
		return err
	}
	style, params, err := sess.Outline(false)
	if err != nil {
		return err
	}

	built, err := demo.Build(sess.Config.Scene)
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}

	cc := sess.Config.Camera
	cam := viewer.NewCamera(cc.Alpha, cc.Beta, cc.Radius, built.Center())
	ctx, err := effect.New(built.Graph, cam, soft.New(), effect.Options{
		Style:      style,
		Params:     params,
		LiveParams: sess.Config.Outline.LiveParams,
		Logger:     sess.Logger,
	})
	if err != nil {
		return err
	}
	defer ctx.Close()

	a := app.New()
	w := a.NewWindow(sess.Config.Window.Title)

	appInstance := &App{
		window: w,
		sess:   sess,
		effect: ctx,
		view:   gui.NewSceneView(built.Graph, cam, viewer.NewRenderer(sess.Config.Window.Width, sess.Config.Window.Height)),
	}
	appInstance.setupMainUI()

	done := make(chan struct{})
	defer close(done)
	appInstance.watchConfig(done)

	fmt.Printf("Scene: %d spheres (seed %d)\n", built.Graph.Len(), built.Seed)

	w.Resize(fyne.NewSize(float32(sess.Config.Window.Width), float32(sess.Config.Window.Height)))
	w.ShowAndRun()

	sess.Persist(ctx.Style(), ctx.Params())
	return nil
}

func (a *App) setupMainUI() {
	a.view.OnPointerMove = func(x, y float64) bool {
		changed := a.effect.PointerMove(x, y)
		if changed {
			a.updateHoverLabel()
		}
		return changed
	}
	a.view.OnPointerLeave = func() bool {
		changed := a.effect.PointerLeave()
		if changed {
			a.updateHoverLabel()
		}
		return changed
	}
	a.view.OnFrame = a.effect.Frame

	names := make([]string, 0, len(outline.Styles))
	for _, s := range outline.Styles {
		names = append(names, s.String())
	}
	a.styleSelect = widget.NewSelect(names, func(name string) {
		style, err := outline.ParseStyle(name)
		if err != nil || style == a.effect.Style() {
			return
		}
		a.effect.SetStyle(style)
		a.syncControls()
		a.view.Redraw()
	})

	a.scaleLabel = widget.NewLabel("")
	a.scaleSlider = widget.NewSlider(0, 1)
	a.scaleSlider.OnChanged = func(v float64) {
		a.effect.SetScale(v)
		a.scaleLabel.SetText(fmt.Sprintf("%.3f", a.effect.Params().Scale))
		a.view.Redraw()
	}

	a.colorRect = canvas.NewRectangle(color.Black)
	a.colorRect.SetMinSize(fyne.NewSize(24, 24))
	colorButton := widget.NewButton("Choose...", a.showColorPicker)

	a.hoverLabel = widget.NewLabel("")

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Hover a sphere to outline it\n" +
			"• Drag to rotate the view\n" +
			"• Scroll to zoom in/out",
	)
	instructions.Wrapping = fyne.TextWrapWord

	resetButton := widget.NewButton("Reset Camera", a.view.ResetCamera)

	panel := container.NewVBox(
		widget.NewLabel("Outline Style:"),
		a.styleSelect,
		widget.NewSeparator(),
		widget.NewLabel("Outline Width:"),
		a.scaleSlider,
		a.scaleLabel,
		widget.NewSeparator(),
		widget.NewLabel("Outline Color:"),
		container.NewHBox(a.colorRect, colorButton),
		widget.NewSeparator(),
		a.hoverLabel,
		widget.NewSeparator(),
		instructions,
		resetButton,
	)

	panelScroll := container.NewVScroll(panel)
	panelScroll.SetMinSize(fyne.NewSize(260, 0))

	content := container.NewBorder(
		nil,         // top
		nil,         // bottom
		nil,         // left
		panelScroll, // right
		a.view,      // center
	)
	a.window.SetContent(content)

	a.syncControls()
	a.updateHoverLabel()
}

// syncControls shows the effect's current style and params in the widgets
func (a *App) syncControls() {
	style := a.effect.Style()
	p := a.effect.Params()

	a.styleSelect.SetSelected(style.String())

	lo, hi := style.Range()
	a.scaleSlider.Min = lo
	a.scaleSlider.Max = hi
	a.scaleSlider.Step = (hi - lo) / 100
	a.scaleSlider.SetValue(p.Scale)
	a.scaleLabel.SetText(fmt.Sprintf("%.3f", p.Scale))

	a.colorRect.FillColor = p.Color.Clamped()
	a.colorRect.Refresh()
}

func (a *App) updateHoverLabel() {
	name := "none"
	if o := a.effect.Hovered(); o != nil {
		name = o.Name
	}
	a.hoverLabel.SetText("Hovered: " + name)
}

func (a *App) showColorPicker() {
	picker := dialog.NewColorPicker("Outline Color", "Pick the outline color", func(c color.Color) {
		cc, _ := colorful.MakeColor(c)
		a.effect.SetColor(cc)
		a.syncControls()
		a.view.Redraw()
	}, a.window)
	picker.Advanced = true
	picker.SetColor(a.effect.Params().Color.Clamped())
	picker.Show()
}

// watchConfig applies outline reloads on the fyne thread until done closes
func (a *App) watchConfig(done <-chan struct{}) {
	reloads := watcher.NewQueue[config.OutlineConfig]()
	fw, err := a.sess.Loader.WatchOutline(reloads, a.sess.Logger)
	if err != nil {
		a.sess.Logger.Info("config hot reload disabled", "path", a.sess.Loader.Path(), "error", err)
		return
	}

	go func() {
		defer fw.Close()
		for {
			select {
			case oc := <-reloads.C():
				fyne.Do(func() { a.applyReload(oc) })
			case <-done:
				return
			}
		}
	}()
}

func (a *App) applyReload(oc config.OutlineConfig) {
	style, params, err := oc.Resolve()
	if err != nil {
		a.sess.Logger.Warn("ignoring outline config reload", "error", err)
		return
	}
	a.effect.Apply(style, params)
	a.syncControls()
	a.view.Redraw()
	fmt.Printf("Outline settings reloaded: %s %s\n", style, a.effect.Params())
}

// Package gui holds the fyne widgets of the desktop viewer.
package gui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gooutline/pkg/scene"
	"github.com/philipparndt/gooutline/pkg/viewer"
)

// SceneView is a fyne widget showing a software-rendered scene graph
type SceneView struct {
	widget.BaseWidget
	graph    *scene.Graph
	camera   *viewer.Camera
	renderer *viewer.Renderer
	raster   *canvas.Raster

	// OnPointerMove receives pixel coordinates and reports whether a redraw is needed
	OnPointerMove func(x, y float64) bool
	// OnPointerLeave reports whether a redraw is needed
	OnPointerLeave func() bool
	// OnFrame runs before every render
	OnFrame func()

	pixelScale float32
	dragStart  *fyne.Position
}

var (
	_ desktop.Hoverable = (*SceneView)(nil)
	_ fyne.Draggable    = (*SceneView)(nil)
	_ fyne.Scrollable   = (*SceneView)(nil)
)

// NewSceneView creates a widget rendering g through cam
func NewSceneView(g *scene.Graph, cam *viewer.Camera, r *viewer.Renderer) *SceneView {
	v := &SceneView{
		graph:      g,
		camera:     cam,
		renderer:   r,
		pixelScale: 1,
	}
	v.raster = canvas.NewRaster(v.draw)
	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer creates the renderer for the widget
func (v *SceneView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.raster)
}

// MinSize keeps the canvas usable in small windows
func (v *SceneView) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

// Redraw schedules a new frame
func (v *SceneView) Redraw() {
	v.raster.Refresh()
}

// ResetCamera restores the initial camera pose
func (v *SceneView) ResetCamera() {
	v.camera.Reset()
	v.Redraw()
}

func (v *SceneView) draw(w, h int) image.Image {
	if size := v.Size(); size.Width > 0 {
		v.pixelScale = float32(w) / size.Width
	}
	v.camera.SetViewport(float64(w), float64(h))
	if v.OnFrame != nil {
		v.OnFrame()
	}
	v.renderer.Width, v.renderer.Height = w, h
	return v.renderer.Render(v.graph, v.camera)
}

// MouseIn is called when the pointer enters the widget
func (v *SceneView) MouseIn(event *desktop.MouseEvent) {
	v.MouseMoved(event)
}

// MouseMoved forwards the pointer position in pixels
func (v *SceneView) MouseMoved(event *desktop.MouseEvent) {
	if v.OnPointerMove == nil {
		return
	}
	x := float64(event.Position.X * v.pixelScale)
	y := float64(event.Position.Y * v.pixelScale)
	if v.OnPointerMove(x, y) {
		v.Redraw()
	}
}

// MouseOut is called when the pointer leaves the widget
func (v *SceneView) MouseOut() {
	if v.OnPointerLeave != nil && v.OnPointerLeave() {
		v.Redraw()
	}
}

// Dragged handles mouse drag events for rotation
func (v *SceneView) Dragged(event *fyne.DragEvent) {
	if v.dragStart != nil {
		deltaX := event.Position.X - v.dragStart.X
		deltaY := event.Position.Y - v.dragStart.Y

		v.camera.Rotate(float64(-deltaX)*0.01, float64(-deltaY)*0.01)
		v.Redraw()
	}
	pos := event.Position
	v.dragStart = &pos
}

// DragEnd handles the end of a drag event
func (v *SceneView) DragEnd() {
	v.dragStart = nil
}

// Scrolled handles scroll events for zooming
func (v *SceneView) Scrolled(event *fyne.ScrollEvent) {
	delta := -float64(event.Scrolled.DY) * 0.001
	v.camera.Zoom(delta)
	v.Redraw()
}

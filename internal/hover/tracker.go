// Package hover tracks which scene object is under the pointer.
package hover

import (
	"log/slog"

	"github.com/philipparndt/gooutline/pkg/scene"
)

// Picker returns the nearest pickable object under a pointer position
type Picker interface {
	CastRay(x, y float64) (scene.Hit, bool)
}

// Listener is notified when the hovered object changes. obj is nil when
// nothing is hovered.
type Listener interface {
	HoverChanged(obj *scene.Object)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(obj *scene.Object)

// HoverChanged calls f(obj)
func (f ListenerFunc) HoverChanged(obj *scene.Object) { f(obj) }

// Tracker keeps a non-owning reference to the hovered object
type Tracker struct {
	picker   Picker
	listener Listener
	logger   *slog.Logger
	hovered  *scene.Object
}

// NewTracker creates a tracker that starts with nothing hovered
func NewTracker(picker Picker, listener Listener, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{picker: picker, listener: listener, logger: logger}
}

// PointerMove picks under (x, y) and notifies the listener when the result
// differs from the current hover. It reports whether a change happened.
func (t *Tracker) PointerMove(x, y float64) bool {
	var next *scene.Object
	if hit, ok := t.picker.CastRay(x, y); ok {
		next = hit.Object
	}
	return t.set(next)
}

// PointerLeave clears the hover when the pointer leaves the canvas
func (t *Tracker) PointerLeave() bool {
	return t.set(nil)
}

// Hovered returns the object currently under the pointer, or nil
func (t *Tracker) Hovered() *scene.Object {
	return t.hovered
}

func (t *Tracker) set(next *scene.Object) bool {
	if next == t.hovered {
		return false
	}
	t.hovered = next
	if next != nil {
		t.logger.Debug("hover changed", "object", next.String())
	} else {
		t.logger.Debug("hover cleared")
	}
	if t.listener != nil {
		t.listener.HoverChanged(next)
	}
	return true
}

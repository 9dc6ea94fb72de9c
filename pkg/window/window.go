// Package window implements the per-window state machine of the dashboard:
// normal, minimized and fullscreen states, z-order focus claims, and the
// pointer capture used for dragging and resizing.
//
// Windows never fail. Out of range input is clamped and transitions that are
// not legal from the current state are ignored.
package window

// State represents the current state of a window.
type State int

const (
	// StateNormal is a floating window that can be moved and resized.
	StateNormal State = iota
	// StateMinimized is hidden and listed in the minimized bar.
	StateMinimized
	// StateFullscreen covers the whole viewport.
	StateFullscreen
)

// String returns a string representation of the window state.
func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateMinimized:
		return "minimized"
	case StateFullscreen:
		return "fullscreen"
	default:
		return "unknown"
	}
}

// EscapeResult is the transition an Escape key press asks for.
type EscapeResult int

const (
	// EscapeIgnored means the key press has no effect on the window.
	EscapeIgnored EscapeResult = iota
	// EscapeExitFullscreen asks the owner to leave fullscreen.
	EscapeExitFullscreen
	// EscapeMinimize asks the owner to minimize the window.
	EscapeMinimize
)

// Focuser raises a surface above all others.
type Focuser interface {
	BringToFront(id string) int
}

// Window is a single floating surface.
type Window struct {
	id    string
	name  string
	title string

	state State
	z     int

	pos  Point
	size Size

	// spawn geometry, restored when leaving fullscreen
	origin     Point
	originSize Size

	capture *capture
}

// New creates a normal window at pos. The geometry passed here is what the
// window returns to when it leaves fullscreen.
func New(id, name, title string, pos Point, size Size) *Window {
	return &Window{
		id:         id,
		name:       name,
		title:      title,
		state:      StateNormal,
		pos:        pos,
		size:       size,
		origin:     pos,
		originSize: size,
	}
}

// ID returns the surface id.
func (w *Window) ID() string { return w.id }

// Name returns the content-type tag.
func (w *Window) Name() string { return w.name }

// Title returns the display title.
func (w *Window) Title() string { return w.title }

// SetTitle updates the display title.
func (w *Window) SetTitle(title string) { w.title = title }

// State returns the current state.
func (w *Window) State() State { return w.state }

// IsMinimized reports whether the window is minimized.
func (w *Window) IsMinimized() bool { return w.state == StateMinimized }

// IsFullscreen reports whether the window is fullscreen.
func (w *Window) IsFullscreen() bool { return w.state == StateFullscreen }

// ZIndex returns the last z-index assigned to the window.
func (w *Window) ZIndex() int { return w.z }

// SetZIndex records the z-index assigned by the allocator.
func (w *Window) SetZIndex(z int) { w.z = z }

// Position returns the top-left corner.
func (w *Window) Position() Point { return w.pos }

// Size returns the current extent.
func (w *Window) Size() Size { return w.size }

// Bounds returns position and size together.
func (w *Window) Bounds() Rect { return Rect{Point: w.pos, Size: w.size} }

// Origin returns the spawn geometry.
func (w *Window) Origin() Rect { return Rect{Point: w.origin, Size: w.originSize} }

// ClaimFocus raises the window through f and records the new z-index. It is
// the single entry point for focus; input layers call it once per pointer
// down or keyboard focus change.
func (w *Window) ClaimFocus(f Focuser) int {
	if f == nil {
		return w.z
	}
	if z := f.BringToFront(w.id); z > 0 {
		w.z = z
	}
	return w.z
}

// Minimize hides a normal window. Position and size are kept as they are.
func (w *Window) Minimize() bool {
	if w.state != StateNormal {
		return false
	}
	w.Release()
	w.state = StateMinimized
	return true
}

// Restore shows a minimized window at its frozen geometry.
func (w *Window) Restore() bool {
	if w.state != StateMinimized {
		return false
	}
	w.state = StateNormal
	return true
}

// EnterFullscreen stretches a normal window over vp.
func (w *Window) EnterFullscreen(vp Viewport) bool {
	if w.state != StateNormal {
		return false
	}
	w.Release()
	w.state = StateFullscreen
	w.pos = Point{}
	w.size = vp.Size()
	return true
}

// ExitFullscreen returns the window to its spawn geometry. The last normal
// position is not remembered.
func (w *Window) ExitFullscreen() bool {
	if w.state != StateFullscreen {
		return false
	}
	w.state = StateNormal
	w.pos = w.origin
	w.size = w.originSize
	return true
}

// Escape decides what an Escape key press means for the window. blocking is
// true while a dialog inside the window owns the keyboard.
func (w *Window) Escape(blocking bool) EscapeResult {
	switch {
	case w.state == StateFullscreen:
		return EscapeExitFullscreen
	case w.state == StateNormal && !blocking:
		return EscapeMinimize
	default:
		return EscapeIgnored
	}
}

// Fit adapts the window to a new viewport. Fullscreen windows follow the
// viewport; normal windows are shrunk and moved until they fit.
func (w *Window) Fit(vp Viewport, limits Limits) {
	switch w.state {
	case StateFullscreen:
		w.pos = Point{}
		w.size = vp.Size()
	case StateNormal:
		r := FitRect(w.Bounds(), vp, limits)
		w.pos, w.size = r.Point, r.Size
	}
}

// MoveTo places a normal window at p, clamped into vp.
func (w *Window) MoveTo(p Point, vp Viewport) bool {
	if w.state != StateNormal {
		return false
	}
	w.pos = ClampPosition(p, w.size, vp)
	return true
}

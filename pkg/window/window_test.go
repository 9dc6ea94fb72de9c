package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFocuser struct {
	next  int
	calls []string
}

func (f *fakeFocuser) BringToFront(id string) int {
	f.calls = append(f.calls, id)
	f.next++
	return f.next
}

var vp = Viewport{Width: 1280, Height: 800}

func newTestWindow() *Window {
	return New("w1", "notes", "Notes", Point{X: 40, Y: 40}, Size{Width: 500, Height: 400})
}

func TestStateTransitions(t *testing.T) {
	w := newTestWindow()
	require.Equal(t, StateNormal, w.State())

	assert.True(t, w.Minimize())
	assert.True(t, w.IsMinimized())
	assert.False(t, w.Minimize(), "minimize twice")
	assert.False(t, w.EnterFullscreen(vp), "fullscreen only from normal")

	assert.True(t, w.Restore())
	assert.Equal(t, Point{X: 40, Y: 40}, w.Position())
	assert.False(t, w.Restore(), "restore a normal window")

	assert.True(t, w.EnterFullscreen(vp))
	assert.True(t, w.IsFullscreen())
	assert.False(t, w.Minimize(), "minimized and fullscreen are exclusive")
	assert.Equal(t, Point{}, w.Position())
	assert.Equal(t, Size{Width: 1280, Height: 800}, w.Size())
}

func TestExitFullscreenRestoresSpawnGeometry(t *testing.T) {
	w := newTestWindow()
	origin := w.Origin()

	require.True(t, w.MoveTo(Point{X: 300, Y: 200}, vp))
	require.True(t, w.EnterFullscreen(vp))
	require.True(t, w.ExitFullscreen())

	assert.Equal(t, origin.Point, w.Position())
	assert.Equal(t, origin.Size, w.Size())
	assert.False(t, w.ExitFullscreen())
}

func TestMinimizeKeepsGeometry(t *testing.T) {
	w := newTestWindow()
	require.True(t, w.MoveTo(Point{X: 100, Y: 120}, vp))

	w.Minimize()
	w.Restore()

	assert.Equal(t, Point{X: 100, Y: 120}, w.Position())
	assert.Equal(t, Size{Width: 500, Height: 400}, w.Size())
}

func TestEscape(t *testing.T) {
	w := newTestWindow()
	assert.Equal(t, EscapeMinimize, w.Escape(false))
	assert.Equal(t, EscapeIgnored, w.Escape(true))

	w.EnterFullscreen(vp)
	assert.Equal(t, EscapeExitFullscreen, w.Escape(true))

	w.ExitFullscreen()
	w.Minimize()
	assert.Equal(t, EscapeIgnored, w.Escape(false))
}

func TestClaimFocus(t *testing.T) {
	w := newTestWindow()
	f := &fakeFocuser{next: 1000}

	assert.Equal(t, 1001, w.ClaimFocus(f))
	assert.Equal(t, 1002, w.ClaimFocus(f))
	assert.Equal(t, []string{"w1", "w1"}, f.calls)
	assert.Equal(t, 1002, w.ZIndex())
	assert.Equal(t, 1002, w.ClaimFocus(nil))
}

func TestFit(t *testing.T) {
	limits := DefaultLimits()
	w := New("w1", "notes", "Notes", Point{X: 900, Y: 500}, Size{Width: 500, Height: 400})

	w.Fit(Viewport{Width: 1000, Height: 700}, limits)
	assert.Equal(t, Point{X: 500, Y: 300}, w.Position())

	w.Fit(Viewport{Width: 320, Height: 240}, limits)
	assert.Equal(t, Size{Width: 320, Height: 240}, w.Size())
	assert.Equal(t, Point{}, w.Position())

	w.Fit(Viewport{Width: 100, Height: 100}, limits)
	assert.Equal(t, Size{Width: 300, Height: 200}, w.Size())

	w.Fit(vp, limits)
	w.EnterFullscreen(vp)
	w.Fit(Viewport{Width: 640, Height: 480}, limits)
	assert.Equal(t, Size{Width: 640, Height: 480}, w.Size())
}

func TestFitRect(t *testing.T) {
	limits := Limits{MinWidth: 24, MinHeight: 8}
	vp := Viewport{Width: 80, Height: 23}

	r := FitRect(Rect{Point: Point{X: 2, Y: 1}, Size: Size{Width: 100, Height: 30}}, vp, limits)
	assert.Equal(t, Rect{Size: Size{Width: 80, Height: 23}}, r)

	r = FitRect(Rect{Point: Point{X: 70, Y: 20}, Size: Size{Width: 30, Height: 10}}, vp, limits)
	assert.Equal(t, Rect{Point: Point{X: 50, Y: 13}, Size: Size{Width: 30, Height: 10}}, r)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "normal", StateNormal.String())
	assert.Equal(t, "minimized", StateMinimized.String())
	assert.Equal(t, "fullscreen", StateFullscreen.String())
	assert.Equal(t, "unknown", State(9).String())
}

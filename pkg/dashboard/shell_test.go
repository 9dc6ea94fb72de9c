package dashboard

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/deck/pkg/module"
	"tableflip.dev/deck/pkg/window"
)

type blockingContent struct {
	module.Text
	open bool
}

func (b *blockingContent) Blocking() bool { return b.open }

func newTestShell(t *testing.T) *Shell {
	t.Helper()
	reg := module.NewRegistry()
	for _, k := range module.Kinds() {
		kind := k
		reg.Register(kind, func() (module.Content, error) {
			return module.Text{Heading: kind.Title(), Body: string(kind)}, nil
		})
	}
	n := 0
	return New(Options{
		Registry: reg,
		Viewport: window.Viewport{Width: 1280, Height: 800},
		NewID: func() string {
			n++
			return fmt.Sprintf("w%d", n)
		},
	})
}

func open(t *testing.T, s *Shell, kind module.Kind) *ActiveModule {
	t.Helper()
	m, err := s.Open(kind, nil)
	require.NoError(t, err)
	return m
}

func names(mods []*ActiveModule) []module.Kind {
	out := make([]module.Kind, 0, len(mods))
	for _, m := range mods {
		out = append(out, m.Name)
	}
	return out
}

func TestOpenCascades(t *testing.T) {
	s := newTestShell(t)
	a := open(t, s, module.KindNotes)
	b := open(t, s, module.KindGoals)

	assert.Equal(t, window.Point{X: 40, Y: 40}, a.Position())
	assert.Equal(t, window.Point{X: 70, Y: 70}, b.Position())
	assert.Greater(t, b.ZIndex(), a.ZIndex())
	assert.Equal(t, "Notes", a.Title())
}

func TestOpenAtPosition(t *testing.T) {
	s := newTestShell(t)
	m, err := s.Open(module.KindNotes, &window.Point{X: 200, Y: 100})
	require.NoError(t, err)
	assert.Equal(t, window.Point{X: 200, Y: 100}, m.Position())
}

func TestOpenTwiceReusesWindow(t *testing.T) {
	s := newTestShell(t)
	first := open(t, s, module.KindNotes)
	open(t, s, module.KindGoals)
	before := first.ZIndex()

	second := open(t, s, module.KindNotes)

	assert.Same(t, first, second)
	assert.Len(t, s.Modules(), 2)
	assert.Greater(t, second.ZIndex(), before)
	assert.Equal(t, first, s.TopMost())
}

func TestOpenRestoresMinimizedWindow(t *testing.T) {
	s := newTestShell(t)
	m := open(t, s, module.KindNotes)
	s.Minimize(m.ID, "")

	again := open(t, s, module.KindNotes)
	assert.Same(t, m, again)
	assert.False(t, m.IsMinimized())
	assert.Empty(t, s.Minimized())
}

func TestOpenUnknownKind(t *testing.T) {
	s := newTestShell(t)
	_, err := s.Open("spreadsheet", nil)
	assert.ErrorIs(t, err, module.ErrUnknownKind)
	assert.Empty(t, s.Modules())
}

func TestMinimizeRestoreScenario(t *testing.T) {
	s := newTestShell(t)
	s.newID = func() string { return "x" }
	open(t, s, module.KindNotes)

	require.True(t, s.Minimize("x", "Notes"))
	assert.Equal(t, []MinimizedEntry{{ID: "x", Title: "Notes"}}, s.Minimized())

	require.True(t, s.Restore("x"))
	assert.Empty(t, s.Minimized())
	assert.False(t, s.Get("x").IsMinimized())
}

func TestMinimizedListDeduplicates(t *testing.T) {
	s := newTestShell(t)
	m := open(t, s, module.KindNotes)

	s.Minimize(m.ID, "Notes")
	assert.False(t, s.Minimize(m.ID, "Notes"))
	assert.Len(t, s.Minimized(), 1)

	assert.True(t, s.Reopen(m.ID))
	assert.False(t, s.Reopen(m.ID))
}

func TestUnknownIDsAreNoops(t *testing.T) {
	s := newTestShell(t)
	assert.False(t, s.Close("nope"))
	assert.False(t, s.Minimize("nope", "x"))
	assert.False(t, s.Restore("nope"))
	assert.Zero(t, s.Focus("nope"))
	assert.Nil(t, s.EnterFullscreen("nope"))
	assert.Nil(t, s.ExitFullscreen("nope"))
	assert.Equal(t, window.EscapeIgnored, s.Escape("nope", false))
	s.ToggleFullscreen("nope")
}

func TestClose(t *testing.T) {
	s := newTestShell(t)
	a := open(t, s, module.KindNotes)
	b := open(t, s, module.KindGoals)
	s.Minimize(a.ID, "")

	require.True(t, s.Close(a.ID))
	assert.Nil(t, s.Get(a.ID))
	assert.Empty(t, s.Minimized())
	_, registered := s.Allocator().Registered()[a.ID]
	assert.False(t, registered)
	assert.Equal(t, b, s.TopMost())
}

func TestFocusOrdersVisible(t *testing.T) {
	s := newTestShell(t)
	a := open(t, s, module.KindNotes)
	b := open(t, s, module.KindGoals)
	c := open(t, s, module.KindTodos)

	s.Focus(a.ID)
	assert.Equal(t, []*ActiveModule{b, c, a}, s.Visible())
	assert.True(t, s.Allocator().IsTopMost(a.ID))
}

func TestCycle(t *testing.T) {
	s := newTestShell(t)
	a := open(t, s, module.KindNotes)
	b := open(t, s, module.KindGoals)
	c := open(t, s, module.KindTodos)

	assert.Equal(t, a, s.Cycle(true))
	assert.Equal(t, b, s.Cycle(true))
	assert.Equal(t, a, s.Cycle(false))
	assert.Equal(t, c, s.Cycle(false))

	s.Minimize(a.ID, "")
	s.Minimize(b.ID, "")
	s.Minimize(c.ID, "")
	assert.Nil(t, s.Cycle(true))
}

func TestFullscreenRoundTripScenario(t *testing.T) {
	s := newTestShell(t)
	a := open(t, s, module.KindFocusTimer)
	b := open(t, s, module.KindNotes)
	spawn := a.Window.Origin()

	consumed := s.EnterFullscreen(a.ID)
	assert.Equal(t, []string{b.ID}, consumed)
	require.True(t, a.Window.IsFullscreen())
	assert.Equal(t, window.Size{Width: 1280, Height: 800}, a.Window.Size())

	tabList := a.Tabs.Tabs()
	require.Len(t, tabList, 1)
	assert.Equal(t, b.ID, tabList[0].ID)
	assert.False(t, tabList[0].CreatedInFullscreen)
	active, ok := a.Tabs.Active()
	require.True(t, ok)
	assert.Equal(t, b.ID, active.ID)

	// Hidden behind the fullscreen window, not listed in the bar.
	assert.True(t, b.IsMinimized())
	assert.Empty(t, s.Minimized())

	goalsTab, err := s.AddTab(a.ID, module.KindGoals)
	require.NoError(t, err)
	assert.True(t, goalsTab.CreatedInFullscreen)

	created := s.ExitFullscreen(a.ID)
	require.Len(t, created, 1)
	assert.Equal(t, module.KindGoals, created[0].Name)
	assert.Equal(t, window.Point{X: 40, Y: 40}, created[0].Position())

	assert.Equal(t, []module.Kind{module.KindFocusTimer, module.KindNotes, module.KindGoals}, names(s.Modules()))
	assert.False(t, a.Window.IsFullscreen())
	assert.Equal(t, spawn.Point, a.Position())
	assert.Equal(t, spawn.Size, a.Window.Size())
	assert.False(t, b.IsMinimized())
	assert.Equal(t, created[0], s.TopMost())
	for _, m := range s.Modules() {
		assert.Less(t, m.ZIndex(), created[0].ZIndex()+1)
	}
}

func TestFullscreenAlone(t *testing.T) {
	s := newTestShell(t)
	a := open(t, s, module.KindNotes)

	assert.Empty(t, s.EnterFullscreen(a.ID))
	assert.Empty(t, a.Tabs.Tabs())
	assert.Empty(t, s.ExitFullscreen(a.ID))
	assert.Len(t, s.Modules(), 1)
}

func TestFullscreenKeepsUserMinimizedWindows(t *testing.T) {
	s := newTestShell(t)
	a := open(t, s, module.KindNotes)
	b := open(t, s, module.KindGoals)
	c := open(t, s, module.KindTodos)
	s.Minimize(c.ID, "")

	consumed := s.EnterFullscreen(a.ID)
	assert.Equal(t, []string{b.ID}, consumed)

	s.ExitFullscreen(a.ID)
	assert.False(t, b.IsMinimized())
	assert.True(t, c.IsMinimized())
	assert.Equal(t, []MinimizedEntry{{ID: c.ID, Title: "To-Dos"}}, s.Minimized())
}

func TestCreatedTabsCascadeByTabIndex(t *testing.T) {
	s := newTestShell(t)
	a := open(t, s, module.KindNotes)
	open(t, s, module.KindJournal)
	open(t, s, module.KindResources)

	s.EnterFullscreen(a.ID)
	_, err := s.AddTab(a.ID, module.KindGoals)
	require.NoError(t, err)
	_, err = s.AddTab(a.ID, module.KindTodos)
	require.NoError(t, err)

	created := s.ExitFullscreen(a.ID)
	require.Len(t, created, 2)
	assert.Equal(t, window.Point{X: 40, Y: 40}, created[0].Position())
	assert.Equal(t, window.Point{X: 70, Y: 70}, created[1].Position())
	assert.Greater(t, created[1].ZIndex(), created[0].ZIndex())
}

func TestAddTabOfProjectedKindActivatesIt(t *testing.T) {
	s := newTestShell(t)
	a := open(t, s, module.KindNotes)
	b := open(t, s, module.KindGoals)
	open(t, s, module.KindTodos)

	s.EnterFullscreen(a.ID)
	tab, err := s.AddTab(a.ID, module.KindGoals)
	require.NoError(t, err)
	assert.Equal(t, b.ID, tab.ID)
	active, ok := a.Tabs.Active()
	require.True(t, ok)
	assert.Equal(t, b.ID, active.ID)
	assert.Len(t, a.Tabs.Tabs(), 2)

	assert.Empty(t, s.ExitFullscreen(a.ID))
	assert.Len(t, s.Modules(), 3)
}

func TestAddTabRefusesKindWithWindow(t *testing.T) {
	s := newTestShell(t)
	a := open(t, s, module.KindFocusTimer)
	c := open(t, s, module.KindTodos)
	s.Minimize(c.ID, "")

	s.EnterFullscreen(a.ID)
	_, err := s.AddTab(a.ID, module.KindFocusTimer)
	assert.ErrorIs(t, err, ErrAlreadyOpen)
	_, err = s.AddTab(a.ID, module.KindTodos)
	assert.ErrorIs(t, err, ErrAlreadyOpen)
	assert.Empty(t, a.Tabs.Tabs())

	content := a.Content
	assert.Empty(t, s.ExitFullscreen(a.ID))
	assert.Equal(t, content, a.Content)
	assert.Len(t, s.Modules(), 2)
}

func TestAddTabTwiceKeepsOneTab(t *testing.T) {
	s := newTestShell(t)
	a := open(t, s, module.KindNotes)

	s.EnterFullscreen(a.ID)
	first, err := s.AddTab(a.ID, module.KindMusicPlayer)
	require.NoError(t, err)
	second, err := s.AddTab(a.ID, module.KindMusicPlayer)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	created := s.ExitFullscreen(a.ID)
	require.Len(t, created, 1)
	assert.Equal(t, first.Content, created[0].Content)
}

func TestAddTabRequiresFullscreen(t *testing.T) {
	s := newTestShell(t)
	a := open(t, s, module.KindNotes)

	_, err := s.AddTab(a.ID, module.KindGoals)
	assert.ErrorIs(t, err, ErrNotFullscreen)

	s.EnterFullscreen(a.ID)
	_, err = s.AddTab(a.ID, "spreadsheet")
	assert.ErrorIs(t, err, module.ErrUnknownKind)
}

func TestOnlyOneFullscreenWindow(t *testing.T) {
	s := newTestShell(t)
	a := open(t, s, module.KindNotes)
	b := open(t, s, module.KindGoals)

	s.EnterFullscreen(a.ID)
	s.Restore(b.ID)
	assert.Nil(t, s.EnterFullscreen(b.ID))
	assert.Equal(t, a, s.Fullscreen())
}

func TestCloseFullscreenWindowKeepsCreatedTabs(t *testing.T) {
	s := newTestShell(t)
	a := open(t, s, module.KindNotes)
	b := open(t, s, module.KindGoals)
	s.EnterFullscreen(a.ID)
	s.AddTab(a.ID, module.KindTodos)

	s.Close(a.ID)
	assert.Equal(t, []module.Kind{module.KindGoals, module.KindTodos}, names(s.Modules()))
	assert.False(t, b.IsMinimized())
}

func TestCloseProjectedWindowDropsTab(t *testing.T) {
	s := newTestShell(t)
	a := open(t, s, module.KindNotes)
	b := open(t, s, module.KindGoals)
	s.EnterFullscreen(a.ID)

	s.Close(b.ID)
	assert.Empty(t, a.Tabs.Tabs())
	s.ExitFullscreen(a.ID)
	assert.Len(t, s.Modules(), 1)
}

func TestEscape(t *testing.T) {
	s := newTestShell(t)
	a := open(t, s, module.KindNotes)

	s.EnterFullscreen(a.ID)
	assert.Equal(t, window.EscapeExitFullscreen, s.Escape(a.ID, false))
	assert.False(t, a.Window.IsFullscreen())

	assert.Equal(t, window.EscapeIgnored, s.Escape(a.ID, true))
	assert.Equal(t, window.EscapeMinimize, s.Escape(a.ID, false))
	assert.True(t, a.IsMinimized())
	assert.Equal(t, []MinimizedEntry{{ID: a.ID, Title: "Notes"}}, s.Minimized())
}

func TestEscapeBlockedByContent(t *testing.T) {
	s := newTestShell(t)
	dialog := &blockingContent{Text: module.Text{Heading: "Journal"}, open: true}
	s.Registry().Register(module.KindJournal, func() (module.Content, error) { return dialog, nil })
	m := open(t, s, module.KindJournal)

	assert.Equal(t, window.EscapeIgnored, s.Escape(m.ID, false))
	dialog.open = false
	assert.Equal(t, window.EscapeMinimize, s.Escape(m.ID, false))
}

func TestSetViewportFitsWindows(t *testing.T) {
	s := newTestShell(t)
	a := open(t, s, module.KindNotes)
	s.Focus(a.ID)
	require.True(t, a.Window.MoveTo(window.Point{X: 700, Y: 380}, s.Viewport()))

	s.SetViewport(window.Viewport{Width: 800, Height: 600})
	b := a.Window.Bounds()
	assert.LessOrEqual(t, b.X+b.Width, 800)
	assert.LessOrEqual(t, b.Y+b.Height, 600)
}

func TestFullscreenRoundTripInSmallViewport(t *testing.T) {
	s := newTestShell(t)
	s.limits = window.Limits{MinWidth: 24, MinHeight: 8}
	s.size = window.Size{Width: 100, Height: 30}
	s.SetViewport(window.Viewport{Width: 80, Height: 23})

	a := open(t, s, module.KindNotes)
	before := a.Window.Bounds()
	assert.Equal(t, window.Rect{Size: window.Size{Width: 80, Height: 23}}, before)
	assert.Equal(t, before, a.Window.Origin())

	s.EnterFullscreen(a.ID)
	s.ExitFullscreen(a.ID)
	assert.Equal(t, before, a.Window.Bounds())
}

func TestExitFullscreenFitsWindowOpenedBeforeViewport(t *testing.T) {
	s := newTestShell(t)
	s.vp = window.Viewport{}
	s.limits = window.Limits{MinWidth: 24, MinHeight: 8}
	s.size = window.Size{Width: 100, Height: 30}

	a, err := s.Open(module.KindNotes, &window.Point{X: 5, Y: 2})
	require.NoError(t, err)
	s.SetViewport(window.Viewport{Width: 80, Height: 23})
	before := a.Window.Bounds()

	s.EnterFullscreen(a.ID)
	s.ExitFullscreen(a.ID)
	b := a.Window.Bounds()
	assert.Equal(t, before, b)
	assert.LessOrEqual(t, b.X+b.Width, 80)
	assert.LessOrEqual(t, b.Y+b.Height, 23)
}

func TestCascadeWraps(t *testing.T) {
	c := Cascade{Base: window.Point{X: 2, Y: 1}, Offset: window.Point{X: 3, Y: 2}}
	vp := window.Viewport{Width: 80, Height: 24}
	size := window.Size{Width: 40, Height: 12}

	assert.Equal(t, window.Point{X: 2, Y: 1}, c.At(0, size, vp))
	assert.Equal(t, window.Point{X: 5, Y: 3}, c.At(1, size, vp))
	// (24-12-1)/2+1 = 6 positions fit vertically.
	assert.Equal(t, window.Point{X: 2, Y: 1}, c.At(6, size, vp))
	assert.Equal(t, window.Point{X: 40, Y: 40}, DefaultCascade().At(0, size, window.Viewport{}))
}

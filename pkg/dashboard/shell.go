// Package dashboard owns the set of open windows and coordinates opening,
// closing, minimizing and the fullscreen tab conversion across them.
//
// A Shell is driven from a single event loop and is not safe for concurrent
// use. Operations on ids that are not open are no-ops.
package dashboard

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tableflip.dev/deck/pkg/module"
	"tableflip.dev/deck/pkg/tabs"
	"tableflip.dev/deck/pkg/window"
	"tableflip.dev/deck/pkg/zindex"
)

// ErrNotFullscreen is returned when a tab is added to a window that is not
// fullscreen.
var ErrNotFullscreen = errors.New("dashboard: window is not fullscreen")

// ErrAlreadyOpen is returned when a tab is added for a kind that already has
// a window outside the tab strip.
var ErrAlreadyOpen = errors.New("dashboard: already open")

// ActiveModule is an open window and the content it hosts.
type ActiveModule struct {
	ID      string
	Name    module.Kind
	Window  *window.Window
	Content module.Content
	Tabs    *tabs.Manager
}

// ZIndex returns the window's stacking order.
func (m *ActiveModule) ZIndex() int { return m.Window.ZIndex() }

// IsMinimized reports whether the window is minimized.
func (m *ActiveModule) IsMinimized() bool { return m.Window.IsMinimized() }

// Position returns the window position.
func (m *ActiveModule) Position() window.Point { return m.Window.Position() }

// Title returns the window title.
func (m *ActiveModule) Title() string { return m.Window.Title() }

// MinimizedEntry is one item of the minimized-windows bar.
type MinimizedEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Options configures a Shell. Zero values select defaults.
type Options struct {
	Registry   *module.Registry
	Allocator  *zindex.Allocator
	Logger     *zap.Logger
	Viewport   window.Viewport
	Limits     window.Limits
	Cascade    *Cascade
	WindowSize window.Size
	// NewID generates window ids.
	NewID func() string
}

// Shell is the dashboard window manager.
type Shell struct {
	log      *zap.Logger
	registry *module.Registry
	z        *zindex.Allocator
	newID    func() string

	vp      window.Viewport
	limits  window.Limits
	cascade Cascade
	size    window.Size

	modules   []*ActiveModule
	minimized []MinimizedEntry
	// windows hidden by a fullscreen host, keyed by host id
	autoMinimized map[string][]string
}

// New creates an empty shell.
func New(opts Options) *Shell {
	s := &Shell{
		log:           opts.Logger,
		registry:      opts.Registry,
		z:             opts.Allocator,
		newID:         opts.NewID,
		vp:            opts.Viewport,
		limits:        opts.Limits,
		size:          opts.WindowSize,
		autoMinimized: make(map[string][]string),
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.registry == nil {
		s.registry = module.NewRegistry()
	}
	if s.z == nil {
		s.z = zindex.New()
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	if s.limits == (window.Limits{}) {
		s.limits = window.DefaultLimits()
	}
	if opts.Cascade != nil {
		s.cascade = *opts.Cascade
	} else {
		s.cascade = DefaultCascade()
	}
	if s.size == (window.Size{}) {
		s.size = window.Size{Width: 500, Height: 400}
	}
	return s
}

// Allocator returns the z-index allocator shared by the shell's windows.
func (s *Shell) Allocator() *zindex.Allocator { return s.z }

// Registry returns the module registry.
func (s *Shell) Registry() *module.Registry { return s.registry }

// Viewport returns the current viewport.
func (s *Shell) Viewport() window.Viewport { return s.vp }

// Limits returns the resize limits.
func (s *Shell) Limits() window.Limits { return s.limits }

// Open shows the window for kind. An existing window of that kind is
// restored and raised instead of opening a second one. A nil pos places the
// window on the cascade.
func (s *Shell) Open(kind module.Kind, pos *window.Point) (*ActiveModule, error) {
	if m := s.FindByName(kind); m != nil {
		s.log.Debug("open existing", zap.String("id", m.ID), zap.String("kind", string(kind)))
		if m.IsMinimized() {
			s.Restore(m.ID)
		} else {
			s.Focus(m.ID)
		}
		return m, nil
	}

	content, err := s.registry.Resolve(kind)
	if err != nil {
		return nil, err
	}
	var at window.Point
	if pos != nil {
		at = *pos
	} else {
		at = s.cascade.At(len(s.modules), s.size, s.vp)
	}
	m := s.add(kind, content, at)
	s.log.Debug("open", zap.String("id", m.ID), zap.String("kind", string(kind)), zap.Int("z", m.ZIndex()))
	return m, nil
}

func (s *Shell) add(kind module.Kind, content module.Content, at window.Point) *ActiveModule {
	id := s.newID()
	title := kind.Title()
	if content != nil && content.Title() != "" {
		title = content.Title()
	}
	r := window.Rect{Point: at, Size: s.size}
	if s.hasViewport() {
		r = window.FitRect(r, s.vp, s.limits)
	}
	w := window.New(id, string(kind), title, r.Point, r.Size)
	w.SetZIndex(s.z.Register(id))

	m := &ActiveModule{
		ID:      id,
		Name:    kind,
		Window:  w,
		Content: content,
		Tabs:    tabs.New(id),
	}
	s.modules = append(s.modules, m)
	return m
}

// Close removes the window. A fullscreen window leaves fullscreen first so
// the windows it hid come back and its new tabs are kept.
func (s *Shell) Close(id string) bool {
	m := s.Get(id)
	if m == nil {
		return false
	}
	if m.Window.IsFullscreen() {
		s.ExitFullscreen(id)
	}
	for i, cur := range s.modules {
		if cur.ID == id {
			s.modules = append(s.modules[:i], s.modules[i+1:]...)
			break
		}
	}
	m.Window.Release()
	s.z.Unregister(id)
	s.removeMinimized(id)
	for host, ids := range s.autoMinimized {
		s.autoMinimized[host] = without(ids, id)
	}
	for _, other := range s.modules {
		other.Tabs.Close(id)
	}
	s.log.Debug("close", zap.String("id", id))
	return true
}

// Minimize hides the window and lists it in the minimized bar under title.
// An empty title uses the window title.
func (s *Shell) Minimize(id, title string) bool {
	m := s.Get(id)
	if m == nil || !m.Window.Minimize() {
		return false
	}
	if title == "" {
		title = m.Title()
	}
	s.removeMinimized(id)
	s.minimized = append(s.minimized, MinimizedEntry{ID: id, Title: title})
	s.log.Debug("minimize", zap.String("id", id))
	return true
}

// Restore shows a minimized window and raises it.
func (s *Shell) Restore(id string) bool {
	m := s.Get(id)
	if m == nil || !m.Window.Restore() {
		return false
	}
	s.removeMinimized(id)
	for host, ids := range s.autoMinimized {
		s.autoMinimized[host] = without(ids, id)
	}
	s.Focus(id)
	s.log.Debug("restore", zap.String("id", id), zap.Int("z", m.ZIndex()))
	return true
}

// Reopen restores a window picked from the minimized bar.
func (s *Shell) Reopen(id string) bool {
	return s.Restore(id)
}

// Focus raises the window above all others.
func (s *Shell) Focus(id string) int {
	m := s.Get(id)
	if m == nil || m.IsMinimized() {
		return 0
	}
	return m.Window.ClaimFocus(s.z)
}

// Cycle focuses the next visible window in open order, or the previous one
// when forward is false.
func (s *Shell) Cycle(forward bool) *ActiveModule {
	var visible []*ActiveModule
	for _, m := range s.modules {
		if !m.IsMinimized() {
			visible = append(visible, m)
		}
	}
	if len(visible) == 0 {
		return nil
	}
	top := s.TopMost()
	idx := 0
	for i, m := range visible {
		if m == top {
			idx = i
			break
		}
	}
	if forward {
		idx = (idx + 1) % len(visible)
	} else {
		idx = (idx - 1 + len(visible)) % len(visible)
	}
	next := visible[idx]
	s.Focus(next.ID)
	return next
}

// ToggleFullscreen enters or leaves fullscreen for the window.
func (s *Shell) ToggleFullscreen(id string) {
	m := s.Get(id)
	if m == nil {
		return
	}
	if m.Window.IsFullscreen() {
		s.ExitFullscreen(id)
		return
	}
	s.EnterFullscreen(id)
}

// EnterFullscreen makes the window fullscreen and projects the other visible
// windows into its tab strip. It returns the ids shown as tabs.
func (s *Shell) EnterFullscreen(id string) []string {
	m := s.Get(id)
	if m == nil || s.fullscreenHost() != nil || !m.Window.EnterFullscreen(s.vp) {
		return nil
	}
	var others []tabs.Source
	for _, o := range s.byZ() {
		if o.ID == id || o.IsMinimized() {
			continue
		}
		others = append(others, tabs.Source{ID: o.ID, Kind: o.Name, Title: o.Title(), Content: o.Content})
	}
	consumed := m.Tabs.EnterFullscreen(others)
	s.HandleFullscreenChange(id, true, nil)
	s.Focus(id)
	s.log.Debug("enter fullscreen", zap.String("id", id), zap.Strings("tabs", consumed))
	return consumed
}

// ExitFullscreen returns the window to its spawn geometry and returns the
// windows created from tabs opened while fullscreen.
func (s *Shell) ExitFullscreen(id string) []*ActiveModule {
	m := s.Get(id)
	if m == nil || !m.Window.ExitFullscreen() {
		return nil
	}
	if s.hasViewport() {
		m.Window.Fit(s.vp, s.limits)
	}
	created := m.Tabs.ExitFullscreen()
	s.log.Debug("exit fullscreen", zap.String("id", id), zap.Int("created", len(created)))
	return s.HandleFullscreenChange(id, false, created)
}

// HandleFullscreenChange updates the other windows after id changed its
// fullscreen state. Entering hides every other visible window without
// listing it in the minimized bar. Leaving shows those windows again and
// turns each created tab into a window on the cascade, keyed by its index in
// created. A tab whose kind already has a window raises that window instead.
func (s *Shell) HandleFullscreenChange(id string, isFullscreen bool, created []tabs.Tab) []*ActiveModule {
	if isFullscreen {
		var hidden []string
		for _, o := range s.modules {
			if o.ID == id || o.IsMinimized() {
				continue
			}
			if o.Window.Minimize() {
				hidden = append(hidden, o.ID)
			}
		}
		s.autoMinimized[id] = hidden
		return nil
	}

	for _, other := range s.autoMinimized[id] {
		o := s.Get(other)
		if o == nil || s.inMinimizedBar(other) {
			continue
		}
		o.Window.Restore()
	}
	delete(s.autoMinimized, id)

	var out []*ActiveModule
	for i, tab := range created {
		if existing := s.FindByName(tab.Module); existing != nil {
			if existing.IsMinimized() {
				s.Restore(existing.ID)
			} else {
				s.Focus(existing.ID)
			}
			out = append(out, existing)
			continue
		}
		content := tab.Content
		if content == nil {
			c, err := s.registry.Resolve(tab.Module)
			if err != nil {
				s.log.Warn("materialize tab", zap.String("tab", tab.ID), zap.Error(err))
				continue
			}
			content = c
		}
		m := s.add(tab.Module, content, s.cascade.At(i, s.size, s.vp))
		s.log.Debug("materialize tab", zap.String("tab", tab.ID), zap.String("id", m.ID))
		out = append(out, m)
	}
	return out
}

// AddTab opens kind as a new tab of the fullscreen window id. A tab already
// showing kind is activated instead. A kind whose window is the host or is
// minimized outside the tab strip is refused, since the new tab would be
// dropped in favour of that window when fullscreen ends.
func (s *Shell) AddTab(id string, kind module.Kind) (tabs.Tab, error) {
	m := s.Get(id)
	if m == nil || !m.Window.IsFullscreen() {
		return tabs.Tab{}, ErrNotFullscreen
	}
	if tab, ok := m.Tabs.FindKind(kind); ok {
		m.Tabs.Activate(tab.ID)
		return tab, nil
	}
	if s.FindByName(kind) != nil {
		return tabs.Tab{}, fmt.Errorf("%w: %s", ErrAlreadyOpen, kind.Title())
	}
	content, err := s.registry.Resolve(kind)
	if err != nil {
		return tabs.Tab{}, err
	}
	tab, _ := m.Tabs.Add(kind, content)
	s.log.Debug("add tab", zap.String("id", id), zap.String("tab", tab.ID))
	return tab, nil
}

// Escape applies the Escape key to the window. Content that holds a dialog
// open counts as blocking.
func (s *Shell) Escape(id string, blocking bool) window.EscapeResult {
	m := s.Get(id)
	if m == nil {
		return window.EscapeIgnored
	}
	if b, ok := m.Content.(module.Blocker); ok && b.Blocking() {
		blocking = true
	}
	res := m.Window.Escape(blocking)
	switch res {
	case window.EscapeExitFullscreen:
		s.ExitFullscreen(id)
	case window.EscapeMinimize:
		s.Minimize(id, m.Title())
	}
	return res
}

// SetViewport fits every window into vp.
func (s *Shell) SetViewport(vp window.Viewport) {
	s.vp = vp
	for _, m := range s.modules {
		m.Window.Fit(vp, s.limits)
	}
}

func (s *Shell) hasViewport() bool {
	return s.vp.Width > 0 && s.vp.Height > 0
}

// Modules returns the open windows in open order.
func (s *Shell) Modules() []*ActiveModule {
	out := make([]*ActiveModule, len(s.modules))
	copy(out, s.modules)
	return out
}

// Visible returns the windows that are not minimized, lowest z first.
func (s *Shell) Visible() []*ActiveModule {
	var out []*ActiveModule
	for _, m := range s.byZ() {
		if !m.IsMinimized() {
			out = append(out, m)
		}
	}
	return out
}

// Minimized returns the minimized bar entries in minimize order.
func (s *Shell) Minimized() []MinimizedEntry {
	out := make([]MinimizedEntry, len(s.minimized))
	copy(out, s.minimized)
	return out
}

// Get returns the window with id.
func (s *Shell) Get(id string) *ActiveModule {
	for _, m := range s.modules {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// FindByName returns the window hosting kind.
func (s *Shell) FindByName(kind module.Kind) *ActiveModule {
	for _, m := range s.modules {
		if m.Name == kind {
			return m
		}
	}
	return nil
}

// TopMost returns the visible window with the highest z-index.
func (s *Shell) TopMost() *ActiveModule {
	visible := s.Visible()
	if len(visible) == 0 {
		return nil
	}
	return visible[len(visible)-1]
}

// Fullscreen returns the fullscreen window, if any.
func (s *Shell) Fullscreen() *ActiveModule {
	return s.fullscreenHost()
}

func (s *Shell) fullscreenHost() *ActiveModule {
	for _, m := range s.modules {
		if m.Window.IsFullscreen() {
			return m
		}
	}
	return nil
}

func (s *Shell) byZ() []*ActiveModule {
	out := s.Modules()
	sort.SliceStable(out, func(i, j int) bool { return out[i].ZIndex() < out[j].ZIndex() })
	return out
}

func (s *Shell) inMinimizedBar(id string) bool {
	for _, e := range s.minimized {
		if e.ID == id {
			return true
		}
	}
	return false
}

func (s *Shell) removeMinimized(id string) {
	out := s.minimized[:0]
	for _, e := range s.minimized {
		if e.ID != id {
			out = append(out, e)
		}
	}
	s.minimized = out
}

func without(ids []string, id string) []string {
	out := ids[:0]
	for _, cur := range ids {
		if cur != id {
			out = append(out, cur)
		}
	}
	return out
}

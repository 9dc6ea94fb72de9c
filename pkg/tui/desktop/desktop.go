// Package desktop is the root Bubble Tea model: it draws the dashboard's
// windows on the terminal and turns keys and pointer events into window
// manager operations.
package desktop

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"tableflip.dev/deck/pkg/dashboard"
	"tableflip.dev/deck/pkg/module"
	"tableflip.dev/deck/pkg/records"
	"tableflip.dev/deck/pkg/store"
	"tableflip.dev/deck/pkg/tabs"
	"tableflip.dev/deck/pkg/tui/components/eventviewer"
	"tableflip.dev/deck/pkg/tui/components/frame"
	"tableflip.dev/deck/pkg/tui/components/taskbar"
	"tableflip.dev/deck/pkg/tui/events"
	"tableflip.dev/deck/pkg/tui/theme"
	"tableflip.dev/deck/pkg/tui/ui"
	"tableflip.dev/deck/pkg/tui/ui/overlay"
	"tableflip.dev/deck/pkg/window"
)

const (
	// ComponentID identifies the desktop in the event log.
	ComponentID events.ComponentID = "desk"

	tickInterval = time.Second
	defaultHint  = "ctrl+n open · ? help"
)

// Config wires a Model.
type Config struct {
	Shell *dashboard.Shell
	// Blobs is watched for external changes to persisted records. It may be
	// nil.
	Blobs store.Blobs
	// Records receives quick adds. Quick add is off when nil.
	Records *records.Set
	// Theme defaults to theme.Default.
	Theme  *theme.Theme
	Logger *zap.Logger
	// Style is the glamour standard style used by the help overlay.
	Style string
	// Open lists the kinds opened on start.
	Open []module.Kind
	// Copy writes text to the clipboard. Defaults to the system clipboard.
	Copy func(string) error
}

// Model is the desktop.
type Model struct {
	ctx     context.Context
	shell   *dashboard.Shell
	blobs   store.Blobs
	records *records.Set
	log     *zap.Logger
	theme   theme.Theme
	style   string
	copy    func(string) error

	width  int
	height int

	overlay ui.Overlay
	events  *eventviewer.Model
	status  string

	// id of the window that owns pointer motion
	captured string

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// New creates the desktop and opens cfg.Open.
func New(ctx context.Context, cfg Config) *Model {
	m := &Model{
		ctx:     ctx,
		shell:   cfg.Shell,
		blobs:   cfg.Blobs,
		records: cfg.Records,
		log:     cfg.Logger,
		style:   cfg.Style,
		copy:    cfg.Copy,
		events:  eventviewer.NewModel(200),
	}
	if m.ctx == nil {
		m.ctx = context.Background()
	}
	if m.shell == nil {
		m.shell = dashboard.New(dashboard.Options{Logger: m.log})
	}
	if m.log == nil {
		m.log = zap.NewNop()
	}
	if m.copy == nil {
		m.copy = clipboard.WriteAll
	}
	if cfg.Theme != nil {
		m.theme = *cfg.Theme
	} else {
		m.theme = theme.Default()
	}
	for _, kind := range cfg.Open {
		m.open(kind)
	}
	return m
}

// Run launches the Bubble Tea program that renders the desktop.
func Run(ctx context.Context, cfg Config) error {
	m := New(ctx, cfg)
	defer m.stopWatch()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(events.Tick(tickInterval), startWatchCmd(m.ctx, m.blobs))
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(v.Width, v.Height)
	case tea.KeyPressMsg:
		if cmd := m.handleKey(v); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case tea.MouseClickMsg:
		m.handleClick(v.Mouse())
	case tea.MouseMotionMsg:
		m.handleMotion(v.Mouse())
	case tea.MouseReleaseMsg:
		m.handleRelease()
	case tea.MouseWheelMsg:
		if m.overlay != nil {
			cmds = append(cmds, m.updateOverlay(v))
		}
	case events.PickMsg:
		m.note(v)
		m.overlay = nil
		if v.Host != "" {
			m.addTab(v.Host, v.Kind)
		} else {
			m.open(v.Kind)
		}
	case events.AddRecordMsg:
		m.note(v)
		m.overlay = nil
		m.addRecord(v)
	case events.TickMsg:
		m.tick()
		cmds = append(cmds, events.Tick(tickInterval))
	case watchStartedMsg:
		if v.err != nil {
			m.setStatus("watch: " + v.err.Error())
			m.log.Warn("watch", zap.Error(v.err))
			break
		}
		m.stopWatch()
		m.watchCh = v.ch
		m.watchCancel = v.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		m.handleWatchEvent(v.event)
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
		if m.ctx.Err() == nil {
			cmds = append(cmds, startWatchCmd(m.ctx, m.blobs))
		}
	default:
		if m.overlay != nil {
			cmds = append(cmds, m.updateOverlay(msg))
		}
	}
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m *Model) View() (string, *tea.Cursor) {
	if m.width == 0 || m.height == 0 {
		return "starting…", nil
	}
	deskHeight := m.desktopHeight()
	canvas := ""

	visible := m.shell.Visible()
	if len(visible) == 0 {
		canvas = overlay.Compose(canvas, m.width, deskHeight, m.theme.Desktop.Render("ctrl+n opens a module"), overlay.Placement{})
	}
	var top *dashboard.ActiveModule
	if len(visible) > 0 {
		top = visible[len(visible)-1]
	}
	for _, am := range visible {
		b := am.Window.Bounds()
		canvas = overlay.ComposeAt(canvas, m.width, deskHeight, m.renderWindow(am, am == top), b.X, b.Y)
	}
	if m.overlay != nil {
		canvas = overlay.Compose(canvas, m.width, deskHeight, m.overlay.View(), overlay.Placement{})
	}
	return canvas + "\n" + m.taskbar().View(), nil
}

func (m *Model) desktopHeight() int {
	return max(m.height-1, 1)
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.shell.SetViewport(window.Viewport{Width: width, Height: m.desktopHeight()})
	if m.overlay != nil {
		m.sizeOverlay()
	}
}

func (m *Model) taskbar() taskbar.Model {
	status := m.status
	if status == "" {
		status = defaultHint
	}
	return taskbar.Model{
		Entries: m.shell.Minimized(),
		Status:  status,
		Width:   m.width,
		Styles:  m.theme.Bar,
	}
}

// strip returns the tab strip of am, or nil when it has none. A fullscreen
// window always shows the strip so tabs can be added.
func strip(am *dashboard.ActiveModule) []frame.Tab {
	if !am.Window.IsFullscreen() {
		return nil
	}
	active, _ := am.Tabs.Active()
	all := am.Tabs.Tabs()
	out := make([]frame.Tab, 0, len(all))
	for _, t := range all {
		out = append(out, frame.Tab{Title: t.Title, Active: t.ID == active.ID})
	}
	return out
}

// shown returns the content currently displayed by am.
func shown(am *dashboard.ActiveModule) module.Content {
	if am.Tabs.Mode() == tabs.ModeTabbed {
		if t, ok := am.Tabs.Active(); ok && t.Content != nil {
			return t.Content
		}
	}
	return am.Content
}

func (m *Model) renderWindow(am *dashboard.ActiveModule, focused bool) string {
	b := am.Window.Bounds()
	tabStrip := strip(am)
	bw, bh := frame.BodySize(b.Width, b.Height, tabStrip != nil)
	body := ""
	if c := shown(am); c != nil {
		body = c.Render(bw, bh)
	}
	return frame.Frame{
		Title:   am.Title(),
		Width:   b.Width,
		Height:  b.Height,
		Focused: focused,
		Tabs:    tabStrip,
		Body:    body,
		Theme:   m.theme.Window,
		Strip:   m.theme.Tabs,
	}.View()
}

// contents returns every distinct content on the desktop, including tabs
// that have no window yet.
func (m *Model) contents() []module.Content {
	seen := make(map[module.Content]bool)
	var out []module.Content
	add := func(c module.Content) {
		if c == nil || seen[c] {
			return
		}
		seen[c] = true
		out = append(out, c)
	}
	for _, am := range m.shell.Modules() {
		add(am.Content)
		for _, t := range am.Tabs.Tabs() {
			add(t.Content)
		}
	}
	return out
}

func (m *Model) tick() {
	for _, c := range m.contents() {
		if t, ok := c.(module.Ticker); ok && t.Tick() {
			m.log.Debug("tick changed content", zap.String("title", c.Title()))
		}
	}
}

func (m *Model) refresh() {
	for _, c := range m.contents() {
		r, ok := c.(module.Refresher)
		if !ok {
			continue
		}
		if err := r.Refresh(); err != nil {
			m.log.Warn("refresh", zap.String("title", c.Title()), zap.Error(err))
			m.setStatus("refresh " + c.Title() + ": " + err.Error())
		}
	}
}

func (m *Model) copyFocused() {
	am := m.shell.TopMost()
	if am == nil {
		return
	}
	c := shown(am)
	if c == nil {
		return
	}
	b := am.Window.Bounds()
	bw, bh := frame.BodySize(b.Width, b.Height, strip(am) != nil)
	if err := m.copy(ansi.Strip(c.Render(bw, bh))); err != nil {
		m.setStatus("copy: " + err.Error())
		return
	}
	m.setStatus("copied " + c.Title())
}

func (m *Model) setStatus(s string) {
	m.status = s
}

// note records msg in the event log and the debug log.
func (m *Model) note(msg events.Describer) {
	desc := msg.Describe()
	m.events.Append(eventviewer.Entry{Source: string(ComponentID), Summary: desc})
	m.log.Debug("event", zap.String("event", desc))
}

func ref(am *dashboard.ActiveModule) events.WindowRef {
	return events.WindowRef{ID: am.ID, Kind: am.Name, Title: am.Title()}
}

func (m *Model) noteWindow(action events.Action, am *dashboard.ActiveModule, detail string) {
	m.note(events.WindowMsg{Component: ComponentID, Action: action, Window: ref(am), Detail: detail})
}

package desktop

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea/v2"
	"go.uber.org/zap"

	"tableflip.dev/deck/pkg/dashboard"
	"tableflip.dev/deck/pkg/module"
	"tableflip.dev/deck/pkg/module/builtin"
	"tableflip.dev/deck/pkg/tabs"
	"tableflip.dev/deck/pkg/tui/components/addrecord"
	"tableflip.dev/deck/pkg/tui/components/frame"
	"tableflip.dev/deck/pkg/tui/components/help"
	"tableflip.dev/deck/pkg/tui/components/picker"
	"tableflip.dev/deck/pkg/tui/events"
	"tableflip.dev/deck/pkg/tui/ui"
	"tableflip.dev/deck/pkg/window"
)

var moves = map[string]window.Point{
	"ctrl+up":    {Y: -1},
	"ctrl+down":  {Y: 1},
	"ctrl+left":  {X: -1},
	"ctrl+right": {X: 1},
}

var resizes = map[string]window.Point{
	"shift+up":    {Y: -1},
	"shift+down":  {Y: 1},
	"shift+left":  {X: -1},
	"shift+right": {X: 1},
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	if m.overlay != nil {
		return m.handleOverlayKey(msg)
	}
	m.status = ""

	switch key {
	case "ctrl+c", "q":
		m.stopWatch()
		return tea.Quit
	case "?":
		m.showOverlay(help.New(m.width, m.desktopHeight(), m.style, m.theme.Modal.Frame))
		return nil
	case "ctrl+e":
		m.showOverlay(m.events)
		return nil
	case "ctrl+n":
		host := ""
		if fs := m.shell.Fullscreen(); fs != nil {
			host = fs.ID
		}
		m.showPicker(host)
		return nil
	case "ctrl+t":
		fs := m.shell.Fullscreen()
		if fs == nil {
			m.setStatus("tabs need a fullscreen window")
			return nil
		}
		m.showPicker(fs.ID)
		return nil
	case "tab", "shift+tab":
		if am := m.shell.Cycle(key == "tab"); am != nil {
			m.noteWindow(events.ActionFocus, am, "")
		}
		return nil
	case "ctrl+y":
		m.copyFocused()
		return nil
	case "ctrl+a":
		m.showAdd()
		return nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		n, _ := strconv.Atoi(key)
		m.reopen(n - 1)
		return nil
	}

	am := m.shell.TopMost()
	if am == nil {
		return nil
	}
	switch key {
	case "f":
		m.toggleFullscreen(am)
	case "m":
		m.minimize(am)
	case "x":
		m.close(am)
	case "esc":
		m.escape(am)
	case "[":
		am.Tabs.Prev()
	case "]":
		am.Tabs.Next()
	case "w":
		if t, ok := am.Tabs.Active(); ok {
			am.Tabs.Close(t.ID)
			m.noteWindow(events.ActionCloseTab, am, "tab:"+t.Title)
		} else {
			m.forward(am, key)
		}
	default:
		if d, ok := moves[key]; ok {
			if am.Window.MoveTo(am.Position().Add(d), m.shell.Viewport()) {
				m.noteWindow(events.ActionMove, am, positionDetail(am))
			}
			return nil
		}
		if d, ok := resizes[key]; ok {
			if am.Window.ResizeBy(d, m.shell.Viewport(), m.shell.Limits()) {
				m.noteWindow(events.ActionResize, am, sizeDetail(am))
			}
			return nil
		}
		m.forward(am, key)
	}
	return nil
}

// forward passes key to the content shown in am.
func (m *Model) forward(am *dashboard.ActiveModule, key string) {
	if h, ok := shown(am).(module.KeyHandler); ok {
		h.HandleKey(key)
	}
}

func (m *Model) handleOverlayKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		m.stopWatch()
		return tea.Quit
	case "esc":
		if !m.overlay.Capturing() {
			m.overlay = nil
			return nil
		}
	}
	return m.updateOverlay(msg)
}

func (m *Model) updateOverlay(msg tea.Msg) tea.Cmd {
	next, cmd := m.overlay.Update(msg)
	if o, ok := next.(ui.Overlay); ok {
		m.overlay = o
	}
	return cmd
}

func (m *Model) showOverlay(o ui.Overlay) {
	m.overlay = o
	m.sizeOverlay()
}

func (m *Model) sizeOverlay() {
	m.overlay.SetSize(min(max(m.width-4, 1), 80), max(m.desktopHeight()-2, 1))
}

func (m *Model) showPicker(host string) {
	isOpen := func(k module.Kind) bool { return m.shell.FindByName(k) != nil }
	m.showOverlay(picker.New(m.shell.Registry().Kinds(), isOpen, m.theme.Modal.Frame).ForHost(host))
}

// showAdd opens the quick-add overlay for the collection behind the
// focused window or its active tab.
func (m *Model) showAdd() {
	am := m.shell.TopMost()
	if am == nil {
		m.setStatus("no window to add to")
		return
	}
	if m.records == nil {
		m.setStatus("records are not available")
		return
	}
	kind := am.Name
	if am.Tabs.Mode() == tabs.ModeTabbed {
		if t, ok := am.Tabs.Active(); ok {
			kind = t.Module
		}
	}
	book, ok := builtin.BookFor(kind)
	if !ok {
		m.setStatus(kind.Title() + " has nothing to add")
		return
	}
	target := addrecord.Target{Window: am.ID, Kind: kind, Book: book}
	m.showOverlay(addrecord.New(target, m.theme.Modal.Frame, m.theme.Modal.Title))
}

func (m *Model) addRecord(msg events.AddRecordMsg) {
	book, err := m.records.Book(msg.Book)
	if err == nil {
		_, err = book.AddText(msg.Text)
	}
	if err != nil {
		m.log.Warn("add record", zap.String("book", msg.Book), zap.Error(err))
		m.setStatus("add: " + err.Error())
		return
	}
	m.refresh()
	m.setStatus("added to " + msg.Kind.Title())
}

func (m *Model) handleClick(mouse tea.Mouse) {
	if m.overlay != nil || mouse.Button != tea.MouseLeft {
		return
	}
	p := window.Point{X: mouse.X, Y: mouse.Y}
	if p.Y >= m.desktopHeight() {
		if id, ok := m.taskbar().EntryAt(p.X); ok {
			m.reopenID(id)
		}
		return
	}

	visible := m.shell.Visible()
	for i := len(visible) - 1; i >= 0; i-- {
		am := visible[i]
		hit := am.Window.HitTest(p)
		if hit.Kind == window.HitNone {
			continue
		}
		m.shell.Focus(am.ID)
		b := am.Window.Bounds()

		switch frame.ButtonAt(b, p) {
		case frame.ButtonMinimize:
			m.minimize(am)
			return
		case frame.ButtonFullscreen:
			m.toggleFullscreen(am)
			return
		case frame.ButtonClose:
			m.close(am)
			return
		}

		if tabStrip := strip(am); tabStrip != nil {
			idx, add := frame.TabAt(b, p, tabStrip)
			switch {
			case add:
				m.showPicker(am.ID)
				return
			case idx >= 0:
				am.Tabs.Activate(am.Tabs.Tabs()[idx].ID)
				return
			}
		}

		switch hit.Kind {
		case window.HitTitle:
			if am.Window.BeginDrag(p) {
				m.captured = am.ID
			}
		case window.HitHandle:
			if am.Window.BeginResize(hit.Handle, p) {
				m.captured = am.ID
			}
		}
		return
	}
}

func (m *Model) handleMotion(mouse tea.Mouse) {
	if m.captured == "" {
		return
	}
	am := m.shell.Get(m.captured)
	if am == nil {
		m.captured = ""
		return
	}
	am.Window.Move(window.Point{X: mouse.X, Y: mouse.Y}, m.shell.Viewport(), m.shell.Limits())
}

func (m *Model) handleRelease() {
	if m.captured == "" {
		return
	}
	am := m.shell.Get(m.captured)
	m.captured = ""
	if am == nil {
		return
	}
	action, detail := events.ActionMove, positionDetail(am)
	if _, resizing := am.Window.Resizing(); resizing {
		action, detail = events.ActionResize, sizeDetail(am)
	}
	am.Window.Release()
	m.noteWindow(action, am, detail)
}

func (m *Model) open(kind module.Kind) {
	am, err := m.shell.Open(kind, nil)
	if err != nil {
		m.log.Warn("open", zap.String("kind", string(kind)), zap.Error(err))
		m.setStatus(err.Error())
		return
	}
	m.noteWindow(events.ActionOpen, am, "")
}

func (m *Model) addTab(host string, kind module.Kind) {
	tab, err := m.shell.AddTab(host, kind)
	if err != nil {
		m.log.Warn("add tab", zap.String("kind", string(kind)), zap.Error(err))
		m.setStatus(err.Error())
		return
	}
	if am := m.shell.Get(host); am != nil {
		m.noteWindow(events.ActionAddTab, am, "tab:"+tab.Title)
	}
}

func (m *Model) minimize(am *dashboard.ActiveModule) {
	if m.shell.Minimize(am.ID, am.Title()) {
		m.noteWindow(events.ActionMinimize, am, "")
	}
}

func (m *Model) close(am *dashboard.ActiveModule) {
	if m.captured == am.ID {
		m.captured = ""
	}
	if m.shell.Close(am.ID) {
		m.noteWindow(events.ActionClose, am, "")
	}
}

func (m *Model) toggleFullscreen(am *dashboard.ActiveModule) {
	if am.Window.IsFullscreen() {
		created := m.shell.ExitFullscreen(am.ID)
		m.noteWindow(events.ActionExit, am, fmt.Sprintf("created:%d", len(created)))
		return
	}
	if other := m.shell.Fullscreen(); other != nil {
		m.setStatus(other.Title() + " is fullscreen")
		return
	}
	consumed := m.shell.EnterFullscreen(am.ID)
	m.noteWindow(events.ActionFullscreen, am, fmt.Sprintf("tabs:%d", len(consumed)))
}

func (m *Model) escape(am *dashboard.ActiveModule) {
	switch m.shell.Escape(am.ID, false) {
	case window.EscapeExitFullscreen:
		m.noteWindow(events.ActionExit, am, "escape")
	case window.EscapeMinimize:
		m.noteWindow(events.ActionMinimize, am, "escape")
	}
}

func (m *Model) reopen(index int) {
	entries := m.shell.Minimized()
	if index < 0 || index >= len(entries) {
		return
	}
	m.reopenID(entries[index].ID)
}

func (m *Model) reopenID(id string) {
	if !m.shell.Reopen(id) {
		return
	}
	if am := m.shell.Get(id); am != nil {
		m.noteWindow(events.ActionRestore, am, "")
	}
}

func positionDetail(am *dashboard.ActiveModule) string {
	p := am.Position()
	return fmt.Sprintf("x:%d y:%d", p.X, p.Y)
}

func sizeDetail(am *dashboard.ActiveModule) string {
	s := am.Window.Size()
	return fmt.Sprintf("w:%d h:%d", s.Width, s.Height)
}

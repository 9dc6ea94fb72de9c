// Package tabs converts the floating windows of the dashboard into the tab
// strip of a fullscreen host window and back.
//
// A Manager belongs to one host window. While the host is not fullscreen it
// shows its own content (ModeDefault). Entering fullscreen projects the other
// open windows into tabs without taking ownership of them; tabs opened while
// fullscreen are owned by the manager and handed back on exit so the caller
// can turn them into real windows.
package tabs

import (
	"fmt"

	"tableflip.dev/deck/pkg/module"
)

// Mode is what the host window displays.
type Mode int

const (
	// ModeDefault shows the host's own content.
	ModeDefault Mode = iota
	// ModeTabbed shows the active tab.
	ModeTabbed
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	if m == ModeTabbed {
		return "tabbed"
	}
	return "default"
}

// Source describes an open window that can be projected into a tab.
type Source struct {
	ID      string
	Kind    module.Kind
	Title   string
	Content module.Content
}

// Tab is one entry in a fullscreen host's tab strip.
type Tab struct {
	ID     string
	Title  string
	Module module.Kind
	// Source is the projected window id, empty for tabs created in fullscreen.
	Source              string
	Content             module.Content
	CreatedInFullscreen bool
}

// Manager holds the tab set of a single host window.
type Manager struct {
	host       string
	fullscreen bool
	tabs       []Tab
	active     int
	seq        int
}

// New returns a manager for the window host.
func New(host string) *Manager {
	return &Manager{host: host}
}

// Host returns the host window id.
func (m *Manager) Host() string { return m.host }

// Fullscreen reports whether the host is in fullscreen.
func (m *Manager) Fullscreen() bool { return m.fullscreen }

// Mode reports whether the host shows its own content or a tab.
func (m *Manager) Mode() Mode {
	if m.fullscreen && len(m.tabs) > 0 {
		return ModeTabbed
	}
	return ModeDefault
}

// EnterFullscreen rebuilds the tab set from others, skipping the host itself,
// and returns the ids of the windows that are now shown as tabs. The first
// projected tab becomes active. With nothing to project the host keeps
// showing its own content.
func (m *Manager) EnterFullscreen(others []Source) []string {
	m.fullscreen = true
	m.tabs = m.tabs[:0]
	m.active = 0

	var consumed []string
	seen := make(map[string]bool, len(others))
	for _, src := range others {
		if src.ID == m.host || seen[src.ID] {
			continue
		}
		seen[src.ID] = true
		title := src.Title
		if title == "" {
			title = src.Kind.Title()
		}
		m.tabs = append(m.tabs, Tab{
			ID:      src.ID,
			Title:   title,
			Module:  src.Kind,
			Source:  src.ID,
			Content: src.Content,
		})
		consumed = append(consumed, src.ID)
	}
	return consumed
}

// Add opens a new tab while fullscreen and makes it active. It does nothing
// when the host is not fullscreen.
func (m *Manager) Add(kind module.Kind, content module.Content) (Tab, bool) {
	if !m.fullscreen {
		return Tab{}, false
	}
	m.seq++
	title := kind.Title()
	if content != nil && content.Title() != "" {
		title = content.Title()
	}
	tab := Tab{
		ID:                  fmt.Sprintf("%s/tab-%d", m.host, m.seq),
		Title:               title,
		Module:              kind,
		Content:             content,
		CreatedInFullscreen: true,
	}
	m.tabs = append(m.tabs, tab)
	m.active = len(m.tabs) - 1
	return tab, true
}

// FindKind returns the first tab showing kind.
func (m *Manager) FindKind(kind module.Kind) (Tab, bool) {
	for _, t := range m.tabs {
		if t.Module == kind {
			return t, true
		}
	}
	return Tab{}, false
}

// Activate selects the tab with id.
func (m *Manager) Activate(id string) bool {
	for i, t := range m.tabs {
		if t.ID == id {
			m.active = i
			return true
		}
	}
	return false
}

// Close drops the tab with id. Closing a projected tab leaves its window
// untouched. When the last tab closes the host falls back to its own content.
func (m *Manager) Close(id string) (Tab, bool) {
	for i, t := range m.tabs {
		if t.ID != id {
			continue
		}
		m.tabs = append(m.tabs[:i], m.tabs[i+1:]...)
		switch {
		case len(m.tabs) == 0:
			m.active = 0
		case m.active > i || m.active >= len(m.tabs):
			m.active--
		}
		return t, true
	}
	return Tab{}, false
}

// Next activates the following tab, wrapping around.
func (m *Manager) Next() {
	if len(m.tabs) == 0 {
		return
	}
	m.active = (m.active + 1) % len(m.tabs)
}

// Prev activates the preceding tab, wrapping around.
func (m *Manager) Prev() {
	if len(m.tabs) == 0 {
		return
	}
	m.active = (m.active - 1 + len(m.tabs)) % len(m.tabs)
}

// Active returns the displayed tab.
func (m *Manager) Active() (Tab, bool) {
	if m.Mode() != ModeTabbed {
		return Tab{}, false
	}
	return m.tabs[m.active], true
}

// Tabs returns a copy of the tab set.
func (m *Manager) Tabs() []Tab {
	out := make([]Tab, len(m.tabs))
	copy(out, m.tabs)
	return out
}

// ExitFullscreen resets the manager to its default mode and returns the tabs
// that were created while fullscreen, in tab order. Projected tabs are
// discarded; their windows were never removed.
func (m *Manager) ExitFullscreen() []Tab {
	if !m.fullscreen {
		return nil
	}
	var created []Tab
	for _, t := range m.tabs {
		if t.CreatedInFullscreen {
			created = append(created, t)
		}
	}
	m.fullscreen = false
	m.tabs = nil
	m.active = 0
	return created
}

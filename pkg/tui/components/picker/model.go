// Package picker is the module chooser overlay.
package picker

import (
	"github.com/charmbracelet/bubbles/v2/list"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/deck/pkg/module"
	"tableflip.dev/deck/pkg/tui/events"
	"tableflip.dev/deck/pkg/tui/ui"
)

// ComponentID identifies the picker in emitted events.
const ComponentID events.ComponentID = "picker"

type item struct {
	kind module.Kind
	open bool
}

func (i item) Title() string { return i.kind.Title() }

func (i item) Description() string {
	if i.open {
		return "open"
	}
	return ""
}

func (i item) FilterValue() string { return i.kind.Title() }

// Model wraps a filterable list of module kinds. Choosing an item emits an
// events.PickMsg.
type Model struct {
	list  list.Model
	frame lipgloss.Style
	host  string
}

// New builds a picker over kinds. isOpen marks kinds that already have a
// window and may be nil.
func New(kinds []module.Kind, isOpen func(module.Kind) bool, frame lipgloss.Style) *Model {
	items := make([]list.Item, 0, len(kinds))
	for _, k := range kinds {
		items = append(items, item{kind: k, open: isOpen != nil && isOpen(k)})
	}
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)

	l := list.New(items, d, 30, len(items)+4)
	l.Title = "Open module"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	return &Model{list: l, frame: frame}
}

// ForHost makes the picker add its choice as a tab of the fullscreen
// window host.
func (m *Model) ForHost(host string) *Model {
	m.host = host
	if host != "" {
		m.list.Title = "Add tab"
	}
	return m
}

// Host returns the window the choice is added to, if any.
func (m *Model) Host() string { return m.host }

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == "enter" && !m.Capturing() {
		if kind, ok := m.Selected(); ok {
			host := m.host
			return m, func() tea.Msg {
				return events.PickMsg{Component: ComponentID, Kind: kind, Host: host}
			}
		}
		return m, nil
	}
	l, cmd := m.list.Update(msg)
	m.list = l
	return m, cmd
}

// Capturing reports whether a filter is being typed, in which case Escape
// and Enter belong to the filter.
func (m *Model) Capturing() bool {
	return m.list.FilterState() == list.Filtering
}

// Selected returns the highlighted kind.
func (m *Model) Selected() (module.Kind, bool) {
	it, ok := m.list.SelectedItem().(item)
	if !ok {
		return "", false
	}
	return it.kind, true
}

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {
	fx, fy := m.frame.GetHorizontalFrameSize(), m.frame.GetVerticalFrameSize()
	w := min(max(width-fx, 10), 36)
	h := min(max(height-fy, 5), len(m.list.Items())+4)
	m.list.SetSize(w, h)
}

// View implements ui.Component.
func (m *Model) View() string {
	return m.frame.Render(m.list.View())
}

// Package addrecord is the quick-add overlay. It collects one line of text
// for the collection behind the focused window.
package addrecord

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/deck/pkg/module"
	"tableflip.dev/deck/pkg/tui/events"
	"tableflip.dev/deck/pkg/tui/ui"
)

// ComponentID identifies the overlay in emitted events.
const ComponentID events.ComponentID = "add"

// Target names the window and collection that receive the record.
type Target struct {
	Window string
	Kind   module.Kind
	Book   string
}

// Model renders a titled text input.
type Model struct {
	target Target
	input  textinput.Model
	frame  lipgloss.Style
	title  lipgloss.Style
	err    string
}

// New builds the overlay for target.
func New(target Target, frame, title lipgloss.Style) *Model {
	in := textinput.New()
	in.Prompt = "› "
	in.Placeholder = placeholder(target.Kind)
	in.Focus()
	return &Model{target: target, input: in, frame: frame, title: title}
}

func placeholder(kind module.Kind) string {
	switch kind {
	case module.KindNotes:
		return "First line becomes the title…"
	case module.KindResources:
		return "A title or a link…"
	case module.KindJournal:
		return "What did you get done today?"
	case module.KindMusicPlayer:
		return "Song title…"
	}
	return "Describe it…"
}

// Target returns the destination of the record.
func (m *Model) Target() Target { return m.target }

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return textinput.Blink }

// Update implements ui.Component. Enter emits an events.AddRecordMsg.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == "enter" {
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			m.err = "nothing to add"
			return m, nil
		}
		t := m.target
		return m, func() tea.Msg {
			return events.AddRecordMsg{Component: ComponentID, Window: t.Window, Kind: t.Kind, Book: t.Book, Text: text}
		}
	}
	m.err = ""
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Capturing implements ui.Overlay. Escape always cancels.
func (m *Model) Capturing() bool { return false }

// SetSize implements ui.Component.
func (m *Model) SetSize(width, _ int) {
	w := min(max(width-m.frame.GetHorizontalFrameSize(), 10), 60)
	m.input.SetWidth(w - len(m.input.Prompt) - 1)
}

// View implements ui.Component.
func (m *Model) View() string {
	lines := []string{m.title.Render("Add to " + m.target.Kind.Title()), "", m.input.View()}
	if m.err != "" {
		lines = append(lines, "", m.err)
	}
	lines = append(lines, "", "enter add · esc cancel")
	return m.frame.Render(strings.Join(lines, "\n"))
}

// Package taskbar renders the bottom row of the desktop: the minimized
// windows on the left and a status line on the right.
package taskbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/deck/pkg/dashboard"
	"tableflip.dev/deck/pkg/tui/theme"
)

const maxTitle = 18

// Model is the taskbar state for one frame.
type Model struct {
	Entries []dashboard.MinimizedEntry
	Status  string
	Width   int

	Styles theme.BarTheme
}

type span struct {
	id         string
	index      int
	title      string
	start, end int
}

func (m Model) spans() []span {
	out := make([]span, 0, len(m.Entries))
	x := 0
	for i, e := range m.Entries {
		w := ansi.StringWidth(label(i, e.Title))
		if x+w > m.Width {
			break
		}
		out = append(out, span{id: e.ID, index: i, title: e.Title, start: x, end: x + w})
		x += w + 1
	}
	return out
}

// label is the text of one entry; the first nine carry their restore key.
func label(i int, title string) string {
	title = ansi.Truncate(title, maxTitle, "…")
	if i < 9 {
		return fmt.Sprintf(" %d %s ", i+1, title)
	}
	return " · " + title + " "
}

// View renders the bar as a single line of Width cells.
func (m Model) View() string {
	if m.Width <= 0 {
		return ""
	}
	var b strings.Builder
	used := 0
	for _, s := range m.spans() {
		text := label(s.index, s.title)
		if s.index < 9 {
			key := fmt.Sprintf(" %d", s.index+1)
			b.WriteString(m.Styles.Index.Inherit(m.Styles.Entry).Render(key))
			b.WriteString(m.Styles.Entry.Render(strings.TrimPrefix(text, key)))
		} else {
			b.WriteString(m.Styles.Entry.Render(text))
		}
		b.WriteString(" ")
		used = s.end + 1
	}

	status := m.Status
	room := m.Width - used
	if room <= 0 {
		return ansi.Truncate(b.String(), m.Width, "")
	}
	status = ansi.Truncate(status, room, "…")
	gap := room - ansi.StringWidth(status)
	b.WriteString(strings.Repeat(" ", gap))
	b.WriteString(m.Styles.Status.Render(status))
	return b.String()
}

// EntryAt returns the id of the minimized window drawn at column x.
func (m Model) EntryAt(x int) (string, bool) {
	for _, s := range m.spans() {
		if x >= s.start && x < s.end {
			return s.id, true
		}
	}
	return "", false
}

package taskbar

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"tableflip.dev/deck/pkg/dashboard"
	"tableflip.dev/deck/pkg/tui/theme"
)

func bar(width int, entries ...dashboard.MinimizedEntry) Model {
	return Model{Entries: entries, Status: "? help", Width: width, Styles: theme.Default().Bar}
}

func TestView(t *testing.T) {
	m := bar(40,
		dashboard.MinimizedEntry{ID: "a", Title: "Notes"},
		dashboard.MinimizedEntry{ID: "b", Title: "Goals"},
	)
	out := ansi.Strip(m.View())
	assert.Equal(t, 40, ansi.StringWidth(out))
	assert.Equal(t, " 1 Notes   2 Goals ", out[:19])
	assert.Contains(t, out, "? help")
}

func TestEntryAt(t *testing.T) {
	m := bar(40,
		dashboard.MinimizedEntry{ID: "a", Title: "Notes"},
		dashboard.MinimizedEntry{ID: "b", Title: "Goals"},
	)
	id, ok := m.EntryAt(2)
	assert.True(t, ok)
	assert.Equal(t, "a", id)

	id, ok = m.EntryAt(12)
	assert.True(t, ok)
	assert.Equal(t, "b", id)

	_, ok = m.EntryAt(9)
	assert.False(t, ok)
	_, ok = m.EntryAt(30)
	assert.False(t, ok)
}

func TestNarrowBarDropsEntries(t *testing.T) {
	m := bar(10,
		dashboard.MinimizedEntry{ID: "a", Title: "Notes"},
		dashboard.MinimizedEntry{ID: "b", Title: "Goals"},
	)
	out := ansi.Strip(m.View())
	assert.LessOrEqual(t, ansi.StringWidth(out), 10)
	_, ok := m.EntryAt(12)
	assert.False(t, ok)
}

package eventviewer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendNewestFirstAndCapped(t *testing.T) {
	m := NewModel(3)
	for i := 0; i < 5; i++ {
		m.Append(Entry{Summary: fmt.Sprintf("event %d", i)})
	}
	entries := m.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "event 4", entries[0].Summary)
	assert.Equal(t, "event 2", entries[2].Summary)
	assert.Equal(t, "desk", entries[0].Source)
	assert.False(t, entries[0].Timestamp.IsZero())
}

func TestView(t *testing.T) {
	m := NewModel(10)
	assert.Empty(t, m.View())

	m.SetSize(60, 8)
	assert.Contains(t, m.View(), "No events yet")

	m.Append(Entry{Source: "shell", Summary: "open", Detail: "Notes", Level: LevelWarn})
	out := m.View()
	assert.Contains(t, out, "Events (1)")
	assert.Contains(t, out, "[shell]")
	assert.Contains(t, out, "open: Notes")
}

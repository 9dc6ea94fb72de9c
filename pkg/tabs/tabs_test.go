package tabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/deck/pkg/module"
)

func sources(ids ...string) []Source {
	out := make([]Source, 0, len(ids))
	for _, id := range ids {
		out = append(out, Source{ID: id, Kind: module.KindNotes, Title: "Notes " + id})
	}
	return out
}

func TestEnterFullscreenSkipsHost(t *testing.T) {
	m := New("a")
	consumed := m.EnterFullscreen(sources("a", "b", "c", "b"))

	assert.Equal(t, []string{"b", "c"}, consumed)
	assert.Equal(t, ModeTabbed, m.Mode())
	for _, tab := range m.Tabs() {
		assert.NotEqual(t, "a", tab.ID)
		assert.NotEqual(t, "a", tab.Source)
		assert.False(t, tab.CreatedInFullscreen)
	}
	active, ok := m.Active()
	require.True(t, ok)
	assert.Equal(t, "b", active.ID)
}

func TestEnterFullscreenAlone(t *testing.T) {
	m := New("a")
	consumed := m.EnterFullscreen(nil)

	assert.Empty(t, consumed)
	assert.True(t, m.Fullscreen())
	assert.Equal(t, ModeDefault, m.Mode())
	_, ok := m.Active()
	assert.False(t, ok)
}

func TestAddOnlyWhileFullscreen(t *testing.T) {
	m := New("a")
	_, ok := m.Add(module.KindGoals, nil)
	assert.False(t, ok)

	m.EnterFullscreen(sources("b"))
	tab, ok := m.Add(module.KindGoals, nil)
	require.True(t, ok)
	assert.Equal(t, "a/tab-1", tab.ID)
	assert.Equal(t, "Goals", tab.Title)
	assert.True(t, tab.CreatedInFullscreen)

	active, _ := m.Active()
	assert.Equal(t, tab.ID, active.ID)
}

func TestExitFullscreenReturnsCreatedTabs(t *testing.T) {
	m := New("a")
	m.EnterFullscreen(sources("b", "c"))
	goals, _ := m.Add(module.KindGoals, nil)
	todos, _ := m.Add(module.KindTodos, module.Text{Heading: "Today"})

	created := m.ExitFullscreen()
	require.Len(t, created, 2)
	assert.Equal(t, goals.ID, created[0].ID)
	assert.Equal(t, todos.ID, created[1].ID)
	assert.Equal(t, "Today", created[1].Title)

	assert.False(t, m.Fullscreen())
	assert.Empty(t, m.Tabs())
	assert.Equal(t, ModeDefault, m.Mode())
	assert.Nil(t, m.ExitFullscreen())
}

func TestReenterRebuildsTabs(t *testing.T) {
	m := New("a")
	m.EnterFullscreen(sources("b"))
	m.Add(module.KindGoals, nil)
	m.ExitFullscreen()

	m.EnterFullscreen(sources("c"))
	tabs := m.Tabs()
	require.Len(t, tabs, 1)
	assert.Equal(t, "c", tabs[0].ID)

	// Created tab ids keep counting so they never collide across sessions.
	tab, _ := m.Add(module.KindGoals, nil)
	assert.Equal(t, "a/tab-2", tab.ID)
}

func TestNavigation(t *testing.T) {
	m := New("a")
	m.EnterFullscreen(sources("b", "c", "d"))

	m.Next()
	active, _ := m.Active()
	assert.Equal(t, "c", active.ID)

	m.Prev()
	m.Prev()
	active, _ = m.Active()
	assert.Equal(t, "d", active.ID)

	assert.True(t, m.Activate("b"))
	assert.False(t, m.Activate("zzz"))
	active, _ = m.Active()
	assert.Equal(t, "b", active.ID)
}

func TestClose(t *testing.T) {
	m := New("a")
	m.EnterFullscreen(sources("b", "c", "d"))
	m.Activate("d")

	_, ok := m.Close("d")
	require.True(t, ok)
	active, _ := m.Active()
	assert.Equal(t, "c", active.ID)

	m.Activate("c")
	m.Close("b")
	active, _ = m.Active()
	assert.Equal(t, "c", active.ID)

	_, ok = m.Close("missing")
	assert.False(t, ok)

	m.Close("c")
	assert.Equal(t, ModeDefault, m.Mode())
	assert.True(t, m.Fullscreen())
}

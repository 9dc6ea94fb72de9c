package records

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/deck/pkg/store"
)

func TestCollectionCRUD(t *testing.T) {
	b := store.NewMemory()
	c := NewCollection[Todo](b, KeyTodos)
	fixed := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return fixed }

	assert.Empty(t, c.List())

	added, err := c.Add(Todo{Text: "write tests"})
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, fixed, added.Created)

	got, err := c.Get(added.ID)
	require.NoError(t, err)
	assert.Equal(t, "write tests", got.Text)

	updated, err := c.Update(added.ID, func(td *Todo) {
		td.Completed = true
		td.ID = "hijacked"
	})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, added.ID, updated.ID)

	require.NoError(t, c.Delete(added.ID))
	assert.Empty(t, c.List())

	_, err = c.Get(added.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, c.Delete(added.ID), ErrNotFound)
	_, err = c.Update("missing", func(*Todo) {})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollectionKeepsGivenID(t *testing.T) {
	c := NewCollection[Note](store.NewMemory(), KeyNotes)
	n, err := c.Add(Note{Meta: Meta{ID: "n1"}, Title: "x"})
	require.NoError(t, err)
	assert.Equal(t, "n1", n.ID)
}

func TestMalformedBlobReadsEmpty(t *testing.T) {
	b := store.NewMemory()
	require.NoError(t, b.Write(KeyGoals, []byte(`{"oops":`)))

	c := NewCollection[Goal](b, KeyGoals)
	assert.Empty(t, c.List())

	_, err := c.Add(Goal{Title: "recover"})
	require.NoError(t, err)
	assert.Len(t, c.List(), 1)
}

func TestBooks(t *testing.T) {
	s := Open(store.NewMemory())

	todos, err := s.Book("todo")
	require.NoError(t, err)
	assert.Equal(t, KeyTodos, todos.Key())

	sum, err := todos.AddText("  ship it  ")
	require.NoError(t, err)
	assert.Equal(t, "ship it", sum.Title)

	done, err := todos.Complete(sum.ID)
	require.NoError(t, err)
	assert.True(t, done.Done)

	notes, err := s.Book(KeyNotes)
	require.NoError(t, err)
	_, err = notes.AddText("")
	assert.Error(t, err)

	n, err := notes.AddText("Title line\nbody")
	require.NoError(t, err)
	assert.Equal(t, "Title line", n.Title)
	_, err = notes.Complete(n.ID)
	assert.ErrorIs(t, err, ErrNotCompletable)

	require.NoError(t, notes.Remove(n.ID))
	assert.Empty(t, notes.Summaries())

	_, err = s.Book("spreadsheets")
	assert.ErrorIs(t, err, ErrUnknownBook)
	assert.Contains(t, s.Books(), KeyProductivityEntries)
}

func TestResourceURLDetection(t *testing.T) {
	s := Open(store.NewMemory())
	r, err := s.Book("link")
	require.NoError(t, err)

	sum, err := r.AddText("https://go.dev")
	require.NoError(t, err)
	assert.Equal(t, "https://go.dev", sum.Detail)
}

func TestSummaries(t *testing.T) {
	deadline := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	g := Goal{Title: "run", Progress: 40, Deadline: &deadline}
	assert.Equal(t, "40% by 2024-06-01", g.Summary().Detail)

	st := StudySession{Subject: "math", Duration: 25 * time.Minute}
	assert.Equal(t, "25m0s", st.Summary().Detail)

	j := JournalEntry{Meta: Meta{Created: deadline}}
	assert.Equal(t, "2024-06-01", j.Summary().Title)
}

func TestStats(t *testing.T) {
	s := Open(store.NewMemory())
	old := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	_, err := s.Journal.Add(JournalEntry{Meta: Meta{Created: old}, Productivity: 4})
	require.NoError(t, err)
	_, err = s.Journal.Add(JournalEntry{Productivity: 8})
	require.NoError(t, err)
	_, err = s.Goals.Add(Goal{Title: "g", Completed: true})
	require.NoError(t, err)
	_, err = s.StudySessions.Add(StudySession{Subject: "go", Duration: time.Hour, Completed: true})
	require.NoError(t, err)
	_, err = s.StudySessions.Add(StudySession{Subject: "rust", Duration: time.Hour})
	require.NoError(t, err)

	st := s.Stats(old.AddDate(0, 0, 1))
	assert.Equal(t, Stats{
		Entries:         2,
		Recent:          1,
		AvgProductivity: 6,
		GoalsDone:       1,
		Goals:           1,
		Studied:         time.Hour,
	}, st)
}

func TestDayCounts(t *testing.T) {
	then := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	entries := []JournalEntry{
		{Date: "2024-02-03"},
		{Date: "2024-02-03"},
		{Meta: Meta{Created: time.Date(2024, time.February, 29, 8, 0, 0, 0, time.UTC)}},
		{Date: "2024-03-01"},
	}

	count := DayCounts(then, entries...)
	require.Len(t, count, 29)
	assert.Equal(t, 2, count[2])
	assert.Equal(t, 1, count[28])
	assert.Equal(t, 0, count[0])
}

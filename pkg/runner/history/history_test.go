package history

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/deck/pkg/records"
	"tableflip.dev/deck/pkg/store"
)

func seeded(t *testing.T) *records.Set {
	t.Helper()
	s := records.Open(store.NewMemory())
	_, err := s.Journal.Add(records.JournalEntry{Date: "2024-03-04", Productivity: 6})
	require.NoError(t, err)
	_, err = s.Journal.Add(records.JournalEntry{Date: "2024-03-05", Productivity: 9})
	require.NoError(t, err)
	_, err = s.Todos.Add(records.Todo{Text: "a", Completed: true})
	require.NoError(t, err)
	_, err = s.Todos.Add(records.Todo{Text: "b"})
	require.NoError(t, err)
	_, err = s.StudySessions.Add(records.StudySession{Subject: "go", Duration: 25 * time.Minute, Completed: true})
	require.NoError(t, err)
	return s
}

func TestHistoryJSON(t *testing.T) {
	var out bytes.Buffer
	h := History{Records: seeded(t), JSON: true, Out: &out}
	require.NoError(t, h.Do(context.Background()))
	assert.Contains(t, out.String(), `"avgProductivity": 7.5`)
	assert.Contains(t, out.String(), `"todosDone": 1`)
}

func TestHistoryPrints(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	h := History{
		Records: seeded(t),
		Months:  2,
		Now:     func() time.Time { return time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC) },
		Out:     &out,
	}
	require.NoError(t, h.Do(context.Background()))

	s := out.String()
	assert.Contains(t, s, "February")
	assert.Contains(t, s, "March")
	assert.Contains(t, s, "7.5/10")
	assert.Contains(t, s, "1/2")
	assert.Contains(t, s, "in 1w")
}

func TestHistoryWindow(t *testing.T) {
	set := records.Open(store.NewMemory())
	_, err := set.Journal.Add(records.JournalEntry{Meta: records.Meta{Created: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)}})
	require.NoError(t, err)

	now := func() time.Time { return time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC) }
	var week, month bytes.Buffer
	require.NoError(t, (&History{Records: set, Now: now, JSON: true, Out: &week}).Do(context.Background()))
	require.NoError(t, (&History{Records: set, Now: now, Window: 30 * 24 * time.Hour, JSON: true, Out: &month}).Do(context.Background()))

	assert.Contains(t, week.String(), `"recent": 0`)
	assert.Contains(t, month.String(), `"recent": 1`)
}

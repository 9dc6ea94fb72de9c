package complete

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/deck/pkg/records"
	"tableflip.dev/deck/pkg/store"
)

func init() {
	color.NoColor = true
}

func TestComplete(t *testing.T) {
	set := records.Open(store.NewMemory())
	b, err := set.Book(records.KeyTodos)
	require.NoError(t, err)
	added, err := b.AddText("ship it")
	require.NoError(t, err)

	var out bytes.Buffer
	n := Complete{Book: records.KeyTodos, ID: added.ID, Records: set, Out: &out}
	require.NoError(t, n.Do(context.Background()))

	todos := set.Todos.List()
	require.Len(t, todos, 1)
	assert.True(t, todos[0].Completed)
	assert.Contains(t, out.String(), "✓ ship it")
}

func TestCompleteNotCompletable(t *testing.T) {
	set := records.Open(store.NewMemory())
	b, err := set.Book(records.KeyNotes)
	require.NoError(t, err)
	added, err := b.AddText("idea")
	require.NoError(t, err)

	n := Complete{Book: records.KeyNotes, ID: added.ID, Records: set}
	assert.ErrorIs(t, n.Do(context.Background()), records.ErrNotCompletable)
}

package add

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

func TestAdd(t *testing.T) {
	set := records.Open(store.NewMemory())
	var out bytes.Buffer

	n := Add{Book: "todo", Text: "buy milk", Records: set, Out: &out}
	require.NoError(t, n.Do(context.Background()))

	require.Len(t, set.Todos.List(), 1)
	assert.Contains(t, out.String(), "todos - 1 record")
	assert.Contains(t, out.String(), "buy milk")
}

func TestAddErrors(t *testing.T) {
	assert.Error(t, (&Add{Book: "todos", Text: "x"}).Do(context.Background()))

	set := records.Open(store.NewMemory())
	err := (&Add{Book: "nope", Text: "x", Records: set}).Do(context.Background())
	assert.ErrorIs(t, err, records.ErrUnknownBook)

	err = (&Add{Book: "todos", Text: "  ", Records: set}).Do(context.Background())
	assert.Error(t, err)
	assert.Empty(t, set.Todos.List())
}

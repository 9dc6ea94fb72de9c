package module

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryResolve(t *testing.T) {
	r := NewRegistry()
	r.Register(KindNotes, func() (Content, error) {
		return Text{Heading: "Notes", Body: "hello"}, nil
	})

	c, err := r.Resolve(KindNotes)
	require.NoError(t, err)
	assert.Equal(t, "Notes", c.Title())
	assert.Equal(t, "hello", c.Render(10, 10))

	_, err = r.Resolve(KindGoals)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestRegistryFactoryError(t *testing.T) {
	boom := errors.New("boom")
	r := NewRegistry()
	r.Register(KindTodos, func() (Content, error) { return nil, boom })

	_, err := r.Resolve(KindTodos)
	assert.ErrorIs(t, err, boom)
}

func TestRegistryKindsOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("zeta", func() (Content, error) { return Text{}, nil })
	r.Register(KindFocusTimer, func() (Content, error) { return Text{}, nil })
	r.Register(KindJournal, func() (Content, error) { return Text{}, nil })

	assert.Equal(t, []Kind{KindJournal, KindFocusTimer, "zeta"}, r.Kinds())
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("focusTimer")
	require.NoError(t, err)
	assert.Equal(t, KindFocusTimer, k)

	k, err = ParseKind("Focus Timer")
	require.NoError(t, err)
	assert.Equal(t, KindFocusTimer, k)

	_, err = ParseKind("spreadsheet")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestKindTitle(t *testing.T) {
	assert.Equal(t, "To-Dos", KindTodos.Title())
	assert.Equal(t, "custom", Kind("custom").Title())
	assert.Len(t, Kinds(), 9)
}

package transfer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/deck/pkg/store"
)

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := store.NewMemory()
	require.NoError(t, store.SaveJSON(src, "todos", []map[string]any{{"id": "1", "text": "ship"}}))

	path := filepath.Join(t.TempDir(), "backup.yaml")
	ex := Export{Blobs: src, Format: store.FormatYAML, Path: path}
	require.NoError(t, ex.Do(ctx))

	dst := store.NewMemory()
	var out bytes.Buffer
	im := Import{Blobs: dst, Path: path, JSON: true, Out: &out}
	require.NoError(t, im.Do(ctx))
	assert.JSONEq(t, `{"imported": ["todos"]}`, out.String())

	var got []map[string]any
	require.NoError(t, store.LoadJSON(dst, "todos", &got))
	require.Len(t, got, 1)
	assert.Equal(t, "ship", got[0]["text"])
}

func TestExportToWriter(t *testing.T) {
	src := store.NewMemory()
	require.NoError(t, store.SaveJSON(src, "theme", "dark"))

	var out bytes.Buffer
	ex := Export{Blobs: src, Format: store.FormatJSON, Out: &out}
	require.NoError(t, ex.Do(context.Background()))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "dark", doc["theme"])
}

func TestClearAsksFirst(t *testing.T) {
	ctx := context.Background()
	b := store.NewMemory()
	require.NoError(t, store.SaveJSON(b, "notes", []string{}))

	c := Clear{Blobs: b, Confirm: func() (bool, error) { return false, nil }}
	require.Error(t, c.Do(ctx))
	assert.Len(t, b.Keys(ctx), 1)

	c = Clear{Blobs: b, Confirm: func() (bool, error) { return false, errors.New("^C") }}
	assert.EqualError(t, c.Do(ctx), "^C")

	var out bytes.Buffer
	c = Clear{Blobs: b, Confirm: func() (bool, error) { return true, nil }, Out: &out}
	require.NoError(t, c.Do(ctx))
	assert.Equal(t, "erased 1 keys\n", out.String())
	assert.Empty(t, b.Keys(ctx))
}

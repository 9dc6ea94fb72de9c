package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blobsUnderTest(t *testing.T) map[string]Blobs {
	t.Helper()
	disk, err := Load(testConfig{path: t.TempDir()})
	require.NoError(t, err)
	return map[string]Blobs{
		"diskv":  disk,
		"memory": NewMemory(),
	}
}

func TestBlobsReadWriteErase(t *testing.T) {
	for name, b := range blobsUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			_, err := b.Read("notes")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, b.Write("notes", []byte(`[{"id":"1"}]`)))
			require.NoError(t, b.Write("goals", []byte(`[]`)))

			data, err := b.Read("notes")
			require.NoError(t, err)
			assert.JSONEq(t, `[{"id":"1"}]`, string(data))
			assert.Equal(t, []string{"goals", "notes"}, b.Keys(context.Background()))

			require.NoError(t, b.Erase("notes"))
			require.NoError(t, b.Erase("notes"), "erasing a missing key")
			assert.Equal(t, []string{"goals"}, b.Keys(context.Background()))
		})
	}
}

func TestInvalidKeys(t *testing.T) {
	b := NewMemory()
	for _, key := range []string{"", "../etc", ".hidden", "a/b", "notes.json"} {
		assert.ErrorIs(t, b.Write(key, nil), ErrInvalidKey, key)
	}
}

func TestDiskvLayout(t *testing.T) {
	base := t.TempDir()
	b, err := Load(testConfig{path: base})
	require.NoError(t, err)

	require.NoError(t, b.Write("currentUser", []byte(`{"name":"sam"}`)))
	_, err = os.Stat(filepath.Join(base, "currentUser.json"))
	assert.NoError(t, err)
}

func TestLoadJSON(t *testing.T) {
	b := NewMemory()
	var v []string

	assert.ErrorIs(t, LoadJSON(b, "notes", &v), ErrNotFound)

	require.NoError(t, b.Write("notes", []byte(`{not json`)))
	assert.ErrorIs(t, LoadJSON(b, "notes", &v), ErrMalformed)

	require.NoError(t, b.Write("notes", []byte(`{"a":1}`)))
	assert.ErrorIs(t, LoadJSON(b, "notes", &v), ErrMalformed)

	require.NoError(t, SaveJSON(b, "notes", []string{"a", "b"}))
	require.NoError(t, LoadJSON(b, "notes", &v))
	assert.Equal(t, []string{"a", "b"}, v)
}

func TestExportImportJSON(t *testing.T) {
	ctx := context.Background()
	src := NewMemory()
	require.NoError(t, SaveJSON(src, "notes", []map[string]string{{"id": "1", "title": "x"}}))
	require.NoError(t, SaveJSON(src, "theme", "dark"))
	require.NoError(t, src.Write("broken", []byte(`{`)))

	data, err := Export(ctx, src, FormatJSON)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "broken")

	dst := NewMemory()
	keys, err := Import(dst, data, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []string{"notes", "theme"}, keys)

	var theme string
	require.NoError(t, LoadJSON(dst, "theme", &theme))
	assert.Equal(t, "dark", theme)
}

func TestExportImportYAML(t *testing.T) {
	ctx := context.Background()
	src := NewMemory()
	require.NoError(t, SaveJSON(src, "goals", []map[string]any{{"id": "g1", "done": true}}))

	data, err := Export(ctx, src, FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(data), "goals:")

	dst := NewMemory()
	_, err = Import(dst, data, FormatYAML)
	require.NoError(t, err)

	raw, err := dst.Read("goals")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"g1","done":true}]`, string(raw))
}

func TestImportCorrupt(t *testing.T) {
	dst := NewMemory()
	_, err := Import(dst, []byte(`{"notes": [`), FormatJSON)
	assert.ErrorIs(t, err, ErrCorruptImport)

	_, err = Import(dst, []byte(`{"../x": 1}`), FormatJSON)
	assert.ErrorIs(t, err, ErrCorruptImport)
	assert.Empty(t, dst.Keys(context.Background()))
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	b := NewMemory()
	require.NoError(t, b.Write("a", []byte(`1`)))
	require.NoError(t, b.Write("b", []byte(`2`)))

	n, err := Clear(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Empty(t, b.Keys(ctx))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("toml")
	assert.Error(t, err)
}

package theme

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/deck/pkg/store"
)

func TestLoadDefaults(t *testing.T) {
	b := store.NewMemory()
	assert.Equal(t, Default(), Load(b))

	require.NoError(t, b.Write(KeyTheme, []byte(`"sepia"`)))
	require.NoError(t, b.Write(KeyAccentColor, []byte(`{`)))
	assert.Equal(t, Default(), Load(b))
}

func TestSaveLoad(t *testing.T) {
	b := store.NewMemory()
	require.NoError(t, Save(b, Preferences{Mode: ModeLight, Accent: "#FF8800"}))

	p := Load(b)
	assert.Equal(t, ModeLight, p.Mode)
	assert.Equal(t, "#ff8800", p.Accent)
}

func TestSaveRejectsBadInput(t *testing.T) {
	b := store.NewMemory()
	assert.ErrorIs(t, Save(b, Preferences{Mode: ModeDark, Accent: "orange"}), ErrInvalidAccent)
	assert.Error(t, Save(b, Preferences{Mode: "neon", Accent: DefaultAccent}))
	assert.Empty(t, b.Keys(context.Background()))
}

func TestPalette(t *testing.T) {
	dark := Preferences{Mode: ModeDark, Accent: "#ffff00"}.Palette()
	assert.Equal(t, "#ffff00", dark.Accent)
	assert.Equal(t, "#000000", dark.OnAccent)
	assert.Equal(t, "#18181b", dark.Background)

	light := Preferences{Mode: ModeLight, Accent: "#000080"}.Palette()
	assert.Equal(t, "#ffffff", light.OnAccent)
	assert.Equal(t, "#e4e4e7", light.Background)
	assert.NotEqual(t, light.Accent, light.AccentDim)

	fallback := Preferences{Accent: "nope"}.Palette()
	assert.Equal(t, DefaultAccent, fallback.Accent)
}

package ui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/deck/pkg/module"
	"tableflip.dev/deck/pkg/store"
	prefs "tableflip.dev/deck/pkg/theme"
	"tableflip.dev/deck/pkg/window"
)

func settings() *store.Settings {
	return &store.Settings{
		Window:  store.WindowSettings{MinWidth: 20, MinHeight: 6, Width: 30, Height: 10},
		Cascade: store.CascadeSettings{BaseX: 1, BaseY: 1, OffsetX: 2, OffsetY: 1},
	}
}

func TestConfigWiresShell(t *testing.T) {
	b := store.NewMemory()
	require.NoError(t, prefs.Save(b, prefs.Preferences{Mode: prefs.ModeLight, Accent: "#00ff00"}))

	u := UI{Settings: settings(), Blobs: b, Open: []module.Kind{module.KindTodos}}
	cfg, err := u.Config(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, "light", cfg.Style)
	assert.Equal(t, []module.Kind{module.KindTodos}, cfg.Open)
	require.NotNil(t, cfg.Theme)
	assert.Equal(t, window.Limits{MinWidth: 20, MinHeight: 6}, cfg.Shell.Limits())
	assert.ElementsMatch(t, module.Kinds(), cfg.Shell.Registry().Kinds())

	cfg.Shell.SetViewport(window.Viewport{Width: 100, Height: 40})
	am, err := cfg.Shell.Open(module.KindTodos, nil)
	require.NoError(t, err)
	assert.Equal(t, window.Point{X: 1, Y: 1}, am.Position())
	assert.Equal(t, window.Size{Width: 30, Height: 10}, am.Window.Size())
}

func TestConfigNeedsSettings(t *testing.T) {
	u := UI{Blobs: store.NewMemory()}
	_, err := u.Config(context.Background(), nil)
	assert.Error(t, err)
}

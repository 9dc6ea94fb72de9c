// Package ui provides the runner that opens the dashboard in the terminal.
package ui

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"tableflip.dev/deck/pkg/dashboard"
	"tableflip.dev/deck/pkg/logging"
	"tableflip.dev/deck/pkg/module"
	"tableflip.dev/deck/pkg/module/builtin"
	"tableflip.dev/deck/pkg/records"
	"tableflip.dev/deck/pkg/store"
	prefs "tableflip.dev/deck/pkg/theme"
	"tableflip.dev/deck/pkg/tui/desktop"
	"tableflip.dev/deck/pkg/tui/theme"
	"tableflip.dev/deck/pkg/window"
)

// ErrNotTerminal is returned when stdout is not a terminal.
var ErrNotTerminal = errors.New("ui: stdout is not a terminal")

type UI struct {
	Settings *store.Settings
	Blobs    store.Blobs
	// Open lists the kinds opened on start.
	Open []module.Kind
	// Debug forces the debug log level.
	Debug bool
}

func (d *UI) Do(ctx context.Context) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return ErrNotTerminal
	}
	if d.Settings == nil {
		var err error
		if d.Settings, err = store.LoadConfig(); err != nil {
			return err
		}
	}
	level := d.Settings.Log.Level
	if d.Debug {
		level = "debug"
	}
	log, err := logging.New(logging.Config{Level: level, File: d.Settings.Log.File})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cfg, err := d.Config(ctx, log)
	if err != nil {
		return err
	}
	log.Info("starting desktop", zap.String("path", d.Settings.Path), zap.Int("open", len(cfg.Open)))
	return desktop.Run(ctx, cfg)
}

// Config wires the desktop from the settings and the stored preferences.
func (d *UI) Config(ctx context.Context, log *zap.Logger) (desktop.Config, error) {
	if d.Settings == nil {
		return desktop.Config{}, errors.New("ui: no settings")
	}
	if d.Blobs == nil {
		var err error
		if d.Blobs, err = store.Load(d.Settings); err != nil {
			return desktop.Config{}, err
		}
	}
	if log == nil {
		log = zap.NewNop()
	}

	p := prefs.Load(d.Blobs)
	style := "dark"
	if p.Mode == prefs.ModeLight {
		style = "light"
	}

	set := records.Open(d.Blobs)
	reg := module.NewRegistry()
	builtin.Register(reg, builtin.Deps{Records: set, Style: style})

	s := d.Settings
	shell := dashboard.New(dashboard.Options{
		Registry: reg,
		Logger:   log.Named("dashboard"),
		Limits:   window.Limits{MinWidth: s.Window.MinWidth, MinHeight: s.Window.MinHeight},
		Cascade: &dashboard.Cascade{
			Base:   window.Point{X: s.Cascade.BaseX, Y: s.Cascade.BaseY},
			Offset: window.Point{X: s.Cascade.OffsetX, Y: s.Cascade.OffsetY},
		},
		WindowSize: window.Size{Width: s.Window.Width, Height: s.Window.Height},
	})

	th := theme.New(p.Palette())
	return desktop.Config{
		Shell:   shell,
		Blobs:   d.Blobs,
		Records: set,
		Theme:   &th,
		Logger:  log.Named("desktop"),
		Style:   style,
		Open:    d.Open,
	}, nil
}

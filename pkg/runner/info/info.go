// Package info provides the runner that reports where deck keeps its data.
package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"tableflip.dev/deck/pkg/printers"
	"tableflip.dev/deck/pkg/store"
)

type Info struct {
	Settings *store.Settings
	Blobs    store.Blobs
	JSON     bool
	Out      io.Writer
}

// Report is what Info prints.
type Report struct {
	ConfigPath string          `json:"configPath,omitempty"`
	Settings   *store.Settings `json:"settings"`
	Keys       []string        `json:"keys"`
}

func (n *Info) Do(ctx context.Context) error {
	if n.Settings == nil {
		var err error
		n.Settings, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.Blobs == nil {
		return errors.New("failed to open the blob store")
	}

	r := Report{
		ConfigPath: os.Getenv("DECK_CONFIG_PATH"),
		Settings:   n.Settings,
		Keys:       n.Blobs.Keys(ctx),
	}

	pp := printers.PrettyPrint{JSON: n.JSON, Out: n.Out}
	if pp.JSON {
		return pp.Value(r)
	}

	out := n.Out
	if out == nil {
		out = os.Stdout
	}
	if r.ConfigPath != "" {
		_, _ = fmt.Fprintln(out, "DECK_CONFIG_PATH found on env, using", r.ConfigPath)
	} else {
		_, _ = fmt.Fprintln(out, "DECK_CONFIG_PATH env var not set")
	}
	pp.NewLine()

	s := n.Settings
	pp.Table([]string{"Setting", "Value"},
		[]string{"path", s.Path},
		[]string{"log.level", s.Log.Level},
		[]string{"log.file", s.Log.File},
		[]string{"window.min", size(s.Window.MinWidth, s.Window.MinHeight)},
		[]string{"window.size", size(s.Window.Width, s.Window.Height)},
		[]string{"cascade.base", size(s.Cascade.BaseX, s.Cascade.BaseY)},
		[]string{"cascade.offset", size(s.Cascade.OffsetX, s.Cascade.OffsetY)},
	)
	pp.NewLine()

	pp.TitleWithCount("Keys", len(r.Keys))
	rows := make([][]string, 0, len(r.Keys))
	for _, k := range r.Keys {
		rows = append(rows, []string{k})
	}
	if len(rows) == 0 {
		rows = append(rows, []string{"no keys"})
	}
	pp.Table(nil, rows...)
	return nil
}

func size(a, b int) string {
	return strconv.Itoa(a) + "x" + strconv.Itoa(b)
}

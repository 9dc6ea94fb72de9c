// Package theme provides the runner that shows or changes the colour
// preferences.
package theme

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/deck/pkg/printers"
	"tableflip.dev/deck/pkg/store"
	prefs "tableflip.dev/deck/pkg/theme"
)

// Theme saves Mode and Accent when set and prints the result.
type Theme struct {
	Blobs  store.Blobs
	Mode   string
	Accent string
	JSON   bool
	Out    io.Writer
}

func (n *Theme) Do(ctx context.Context) error {
	if n.Blobs == nil {
		return errors.New("can not theme, no blob store")
	}
	p := prefs.Load(n.Blobs)
	if n.Mode != "" || n.Accent != "" {
		if n.Mode != "" {
			m, err := prefs.ParseMode(n.Mode)
			if err != nil {
				return err
			}
			p.Mode = m
		}
		if n.Accent != "" {
			p.Accent = n.Accent
		}
		if err := prefs.Save(n.Blobs, p); err != nil {
			return err
		}
		p = prefs.Load(n.Blobs)
	}

	pp := printers.PrettyPrint{JSON: n.JSON, Out: n.Out}
	if pp.JSON {
		return pp.Value(p)
	}
	pal := p.Palette()
	pp.Table([]string{"Setting", "Value"},
		[]string{"theme", string(p.Mode)},
		[]string{"accent", p.Accent},
		[]string{"foreground", pal.Foreground},
		[]string{"background", pal.Background},
	)
	return nil
}

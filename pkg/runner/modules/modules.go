// Package modules provides the runner that lists the window kinds.
package modules

import (
	"context"
	"io"

	"tableflip.dev/deck/pkg/module"
	"tableflip.dev/deck/pkg/printers"
)

// Entry describes one window kind.
type Entry struct {
	Kind  module.Kind `json:"kind"`
	Title string      `json:"title"`
}

// Modules prints every kind the dashboard can open.
type Modules struct {
	JSON bool
	Out  io.Writer
}

func (n *Modules) Do(ctx context.Context) error {
	kinds := module.Kinds()
	all := make([]Entry, 0, len(kinds))
	for _, k := range kinds {
		all = append(all, Entry{Kind: k, Title: k.Title()})
	}

	pp := printers.PrettyPrint{JSON: n.JSON, Out: n.Out}
	if pp.JSON {
		return pp.Value(all)
	}
	rows := make([][]string, 0, len(all))
	for _, e := range all {
		rows = append(rows, []string{string(e.Kind), e.Title})
	}
	pp.Table([]string{"Kind", "Title"}, rows...)
	return nil
}

// Package transfer provides the runners that move the whole blob store in
// and out of a single document.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"tableflip.dev/deck/pkg/printers"
	"tableflip.dev/deck/pkg/store"
)

// Export writes every blob to Path, or to Out when Path is empty.
type Export struct {
	Blobs  store.Blobs
	Format store.Format
	Path   string
	Out    io.Writer
}

func (n *Export) Do(ctx context.Context) error {
	if n.Blobs == nil {
		return errors.New("can not export, no blob store")
	}
	data, err := store.Export(ctx, n.Blobs, n.Format)
	if err != nil {
		return err
	}
	if n.Path == "" {
		out := n.Out
		if out == nil {
			out = os.Stdout
		}
		_, err = out.Write(data)
		return err
	}
	return os.WriteFile(n.Path, data, 0o600)
}

// Import reads a document written by Export. Keys it names are
// overwritten, other keys are left alone.
type Import struct {
	Blobs store.Blobs
	Path  string
	// Format defaults to the one implied by the file extension.
	Format store.Format
	JSON   bool
	Out    io.Writer
}

func (n *Import) Do(ctx context.Context) error {
	if n.Blobs == nil {
		return errors.New("can not import, no blob store")
	}
	data, err := os.ReadFile(n.Path)
	if err != nil {
		return err
	}
	format := n.Format
	if format == "" {
		if format, err = store.ParseFormat(strings.TrimPrefix(filepath.Ext(n.Path), ".")); err != nil {
			format = store.FormatJSON
		}
	}
	keys, err := store.Import(n.Blobs, data, format)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{JSON: n.JSON, Out: n.Out}
	if pp.JSON {
		return pp.Value(map[string]any{"imported": keys})
	}
	pp.TitleWithCount("Imported", len(keys))
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k})
	}
	pp.Table(nil, rows...)
	return nil
}

// Clear erases every blob once Confirm agrees.
type Clear struct {
	Blobs store.Blobs
	// Confirm is asked before anything is erased. Nil means yes.
	Confirm func() (bool, error)
	JSON    bool
	Out     io.Writer
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Blobs == nil {
		return errors.New("can not clear, no blob store")
	}
	if n.Confirm != nil {
		ok, err := n.Confirm()
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("clear cancelled")
		}
	}
	count, err := store.Clear(ctx, n.Blobs)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{JSON: n.JSON, Out: n.Out}
	if pp.JSON {
		return pp.Value(map[string]int{"erased": count})
	}
	out := n.Out
	if out == nil {
		out = os.Stdout
	}
	_, err = fmt.Fprintf(out, "erased %d keys\n", count)
	return err
}

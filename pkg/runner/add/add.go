// Package add provides the runner that appends a record to a collection.
package add

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/deck/pkg/printers"
	"tableflip.dev/deck/pkg/records"
)

// Add appends Text to the named collection and reprints it.
type Add struct {
	Book    string
	Text    string
	ShowID  bool
	JSON    bool
	Records *records.Set
	Out     io.Writer
}

// Do executes the add.
func (n *Add) Do(ctx context.Context) error {
	if n.Records == nil {
		return errors.New("can not add, no records")
	}
	b, err := n.Records.Book(n.Book)
	if err != nil {
		return err
	}
	added, err := b.AddText(n.Text)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, JSON: n.JSON, Out: n.Out}
	if pp.JSON {
		return pp.Value(added)
	}
	all := b.Summaries()
	pp.TitleWithCount(b.Key(), len(all))
	pp.Summaries(all...)
	return nil
}

// Package complete provides the runner logic for marking records done.
package complete

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/deck/pkg/printers"
	"tableflip.dev/deck/pkg/records"
)

// Complete marks a record as done.
type Complete struct {
	Book    string
	ID      string
	JSON    bool
	Records *records.Set
	Out     io.Writer
}

// Do executes the completion for the configured record ID.
func (n *Complete) Do(ctx context.Context) error {
	if n.Records == nil {
		return errors.New("can not complete, no records")
	}
	b, err := n.Records.Book(n.Book)
	if err != nil {
		return err
	}
	done, err := b.Complete(n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true, JSON: n.JSON, Out: n.Out}
	if pp.JSON {
		return pp.Value(done)
	}
	pp.NewLine()
	pp.Title(b.Key())
	pp.Summaries(b.Summaries()...)
	return nil
}

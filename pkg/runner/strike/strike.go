// Package strike provides the runner that removes a record.
package strike

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/deck/pkg/printers"
	"tableflip.dev/deck/pkg/records"
)

// Strike deletes a record from its collection.
type Strike struct {
	Book    string
	ID      string
	JSON    bool
	Records *records.Set
	Out     io.Writer
}

func (n *Strike) Do(ctx context.Context) error {
	if n.Records == nil {
		return errors.New("can not strike, no records")
	}
	b, err := n.Records.Book(n.Book)
	if err != nil {
		return err
	}
	if err := b.Remove(n.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true, JSON: n.JSON, Out: n.Out}
	if pp.JSON {
		return pp.Value(map[string]string{"removed": n.ID, "collection": b.Key()})
	}
	pp.NewLine()
	pp.Title(b.Key())
	pp.Summaries(b.Summaries()...)
	return nil
}

// Package get provides the runner that lists collections.
package get

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/deck/pkg/printers"
	"tableflip.dev/deck/pkg/records"
)

// Get prints one collection, or every collection when Book is empty.
type Get struct {
	Book    string
	ShowID  bool
	Open    bool
	JSON    bool
	Records *records.Set
	Out     io.Writer
}

func (n *Get) Do(ctx context.Context) error {
	if n.Records == nil {
		return errors.New("can not get, no records")
	}

	names := n.Records.Books()
	if n.Book != "" {
		b, err := n.Records.Book(n.Book)
		if err != nil {
			return err
		}
		names = []string{b.Key()}
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, JSON: n.JSON, Out: n.Out}
	all := make(map[string][]records.Summary, len(names))
	for _, name := range names {
		b, err := n.Records.Book(name)
		if err != nil {
			return err
		}
		all[name] = n.filtered(b.Summaries())
	}

	if pp.JSON {
		return pp.Value(all)
	}
	pp.NewLine()
	for _, name := range names {
		pp.TitleWithCount(name, len(all[name]))
		pp.Summaries(all[name]...)
	}
	return nil
}

func (n *Get) filtered(all []records.Summary) []records.Summary {
	if !n.Open {
		return all
	}
	c := make([]records.Summary, 0, len(all))
	for _, s := range all {
		if !s.Done {
			c = append(c, s)
		}
	}
	return c
}

// Package printers renders records and tables for the command line.
package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/deck/pkg/glyph"
	"tableflip.dev/deck/pkg/records"
)

type PrettyPrint struct {
	ShowID bool
	// JSON switches every printer to a single JSON document.
	JSON bool
	// Out defaults to color.Output.
	Out io.Writer
}

var (
	spacing = strings.Repeat(" ", len("00000000-0000-0000-0000-000000000000  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " record")
	default:
		_, _ = c.Fprintln(pp.out(), " records")
	}
}

// Summaries prints one line per record: a done mark, the title and a faint
// detail.
func (pp *PrettyPrint) Summaries(items ...records.Summary) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Fprint(pp.out(), spacing)
		}
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	t := color.New()
	d := color.New(color.Faint)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, s := range items {
		if pp.ShowID {
			_, _ = y.Fprint(pp.out(), s.ID)
			_, _ = y.Fprint(pp.out(), strings.Repeat(" ", max(len(spacing)-len(s.ID), 1)))
		}
		_, _ = t.Fprintf(pp.out(), "%s %s", glyph.Mark(s.Done), s.Title)
		if s.Detail != "" {
			_, _ = d.Fprintf(pp.out(), "  %s", s.Detail)
		}
		_, _ = t.Fprintln(pp.out(), "")
	}
	_, _ = t.Fprintln(pp.out(), "")
}

// Table prints rows under a bold header.
func (pp *PrettyPrint) Table(header []string, rows ...[]string) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true

	cells := make([]interface{}, 0, len(header))
	for _, h := range header {
		cells = append(cells, bold.Sprint(h))
	}
	if len(cells) > 0 {
		tbl.AddRow(cells...)
	}
	for _, row := range rows {
		cells = cells[:0]
		for _, c := range row {
			cells = append(cells, c)
		}
		tbl.AddRow(cells...)
	}

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Value prints v as indented JSON.
func (pp *PrettyPrint) Value(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(pp.out(), string(b))
	return err
}

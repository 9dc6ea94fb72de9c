// Package history provides the runner that summarises journal activity.
package history

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"tableflip.dev/deck/pkg/printers"
	"tableflip.dev/deck/pkg/records"
	"tableflip.dev/deck/pkg/timeutil"
)

// History prints a month calendar of journaled days followed by the
// totals shown by the productivity history window.
type History struct {
	Records *records.Set
	// Months is how many months to show, ending with the current one.
	Months int
	// Window is the look-back for the recent entry count. Defaults to a
	// week.
	Window time.Duration
	Now    func() time.Time
	JSON   bool
	Out    io.Writer
}

func (n *History) Do(ctx context.Context) error {
	if n.Records == nil {
		return errors.New("can not show history, no records")
	}
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	months := max(n.Months, 1)
	window := n.Window
	if window <= 0 {
		window, _, _ = timeutil.ParseWindow(timeutil.DefaultWindow)
	}

	then := now()
	entries := n.Records.Journal.List()
	st := n.Records.Stats(then.Add(-window))

	pp := printers.PrettyPrint{JSON: n.JSON, Out: n.Out}
	if pp.JSON {
		return pp.Value(st)
	}

	first := time.Date(then.Year(), then.Month()-time.Month(months-1), 1, 0, 0, 0, 0, then.Location())
	for i := 0; i < months; i++ {
		pp.Activity(first.AddDate(0, i, 0), entries...)
	}

	avg := "n/a"
	if st.AvgProductivity > 0 {
		avg = fmt.Sprintf("%.1f/10", st.AvgProductivity)
	}
	pp.Table([]string{"Measure", "Value"},
		[]string{"Journal entries", fmt.Sprintf("%d (%d in %s)", st.Entries, st.Recent, timeutil.FormatWindow(window))},
		[]string{"Avg productivity", avg},
		[]string{"To-dos completed", fmt.Sprintf("%d/%d", st.TodosDone, st.Todos)},
		[]string{"Goals completed", fmt.Sprintf("%d/%d", st.GoalsDone, st.Goals)},
		[]string{"Time studied", st.Studied.Round(time.Minute).String()},
	)
	return nil
}

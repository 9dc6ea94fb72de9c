// Package calendar renders a month grid with journaled days highlighted.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
)

const (
	header = "Su Mo Tu We Th Fr Sa"

	// Width is the rendered width of a month grid.
	Width = len(header)
)

// Day describes a single day rendered in the calendar.
type Day struct {
	Day      int
	HasEntry bool
	IsToday  bool
}

// Options controls calendar styling.
type Options struct {
	TitleStyle  lipgloss.Style
	HeaderStyle lipgloss.Style
	EmptyStyle  lipgloss.Style
	EntryStyle  lipgloss.Style
	TodayStyle  lipgloss.Style
	ShowTitle   bool
	ShowHeader  bool
}

// DefaultOptions returns the styling used for calendar rendering.
func DefaultOptions() Options {
	return Options{
		TitleStyle:  lipgloss.NewStyle().Bold(true),
		HeaderStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		EmptyStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		EntryStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		TodayStyle:  lipgloss.NewStyle().Underline(true),
		ShowTitle:   true,
		ShowHeader:  true,
	}
}

// Days builds the day list for the month of now from per-day entry counts
// as returned by records.DayCounts.
func Days(now time.Time, counts []int) []Day {
	out := make([]Day, 0, len(counts))
	for i, c := range counts {
		out = append(out, Day{Day: i + 1, HasEntry: c > 0, IsToday: i+1 == now.Day()})
	}
	return out
}

// Render produces a multi-line calendar string for the given month.
func Render(month time.Time, days []Day, opts Options) string {
	if month.IsZero() {
		return ""
	}

	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	daysInMonth := DaysIn(month)

	byDay := make(map[int]Day, len(days))
	for _, d := range days {
		if d.Day >= 1 && d.Day <= daysInMonth {
			byDay[d.Day] = d
		}
	}

	var lines []string
	if opts.ShowTitle {
		title := first.Format("January 2006")
		pad := max((Width-len(title))/2, 0)
		lines = append(lines, strings.Repeat(" ", pad)+opts.TitleStyle.Render(title))
	}
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render(header))
	}

	offset := int(first.Weekday())
	rows := (offset + daysInMonth + 6) / 7
	for row := 0; row < rows; row++ {
		cells := make([]string, 0, 7)
		for col := 0; col < 7; col++ {
			day := row*7 + col - offset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, opts.EmptyStyle.Render("  "))
				continue
			}
			cells = append(cells, renderDay(byDay[day], day, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(info Day, day int, opts Options) string {
	style := opts.EmptyStyle
	if info.HasEntry {
		style = opts.EntryStyle
	}
	if info.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	return style.Render(fmt.Sprintf("%2d", day))
}

// DaysIn returns the number of days in a month.
func DaysIn(month time.Time) int {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	return first.AddDate(0, 1, -1).Day()
}

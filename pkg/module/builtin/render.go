package builtin

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

// clip fits lines into a width x height box.
func clip(lines []string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = truncate.StringWithTail(l, uint(width), "…")
	}
	return strings.Join(out, "\n")
}

// wrap word-wraps text to width and splits it into lines.
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	return strings.Split(wordwrap.String(text, width), "\n")
}

// bar draws a progress bar of the given width for pct in [0,100].
func bar(pct, width int) string {
	if width < 2 {
		return ""
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// selection tracks a highlighted row in a list.
type selection struct {
	index int
}

func (s *selection) move(delta, n int) bool {
	if n == 0 {
		s.index = 0
		return false
	}
	next := s.index + delta
	if next < 0 {
		next = 0
	}
	if next >= n {
		next = n - 1
	}
	changed := next != s.index
	s.index = next
	return changed
}

func (s *selection) clamp(n int) {
	s.move(0, n)
}

func (s *selection) handle(key string, n int) bool {
	switch key {
	case "up", "k":
		s.move(-1, n)
		return true
	case "down", "j":
		s.move(1, n)
		return true
	}
	return false
}

func empty(kind string) []string {
	return []string{fmt.Sprintf("No %s yet.", kind), "", "Add one with `deck add`."}
}

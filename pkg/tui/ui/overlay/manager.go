// Package overlay paints rendered blocks on top of each other. Widths are
// measured in terminal cells and styled text is cut without breaking its
// escape sequences.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Placement controls overlay alignment and sizing.
type Placement struct {
	Horizontal lipgloss.Position
	Vertical   lipgloss.Position
	MarginX    int
	MarginY    int
	Width      int
	Height     int
}

// Compose overlays the foreground view atop the background while preserving
// background content outside the overlay bounds.
func Compose(background string, width, height int, foreground string, placement Placement) string {
	if foreground == "" {
		return strings.Join(normalizeBackground(background, width, height), "\n")
	}
	fgLines := strings.Split(foreground, "\n")

	overlayWidth := placement.Width
	if overlayWidth <= 0 {
		overlayWidth = widest(fgLines)
	}
	overlayWidth = min(overlayWidth, width)

	overlayHeight := placement.Height
	if overlayHeight <= 0 {
		overlayHeight = len(fgLines)
	}
	overlayHeight = min(overlayHeight, height)

	if overlayWidth <= 0 || overlayHeight <= 0 {
		return strings.Join(normalizeBackground(background, width, height), "\n")
	}

	offsetX, offsetY := computeOffsets(width, height, overlayWidth, overlayHeight, placement)
	return ComposeAt(background, width, height, strings.Join(fgLines[:min(len(fgLines), overlayHeight)], "\n"), offsetX, offsetY)
}

// ComposeAt paints foreground with its top-left corner at x, y. Parts that
// fall outside the width x height canvas are dropped.
func ComposeAt(background string, width, height int, foreground string, x, y int) string {
	bgLines := normalizeBackground(background, width, height)
	if foreground == "" {
		return strings.Join(bgLines, "\n")
	}
	fgLines := strings.Split(foreground, "\n")
	fgWidth := widest(fgLines)

	for row, line := range fgLines {
		destY := y + row
		if destY < 0 || destY >= len(bgLines) {
			continue
		}
		line = padToWidth(line, fgWidth)
		start, end := x, x+fgWidth
		if start < 0 {
			line = ansi.Cut(line, -start, fgWidth)
			start = 0
		}
		if end > width {
			line = ansi.Truncate(line, width-start, "")
			end = width
		}
		if start >= end {
			continue
		}
		base := bgLines[destY]
		bgLines[destY] = sliceWidth(base, 0, start) + line + sliceWidth(base, end, width)
	}
	return strings.Join(bgLines, "\n")
}

func widest(lines []string) int {
	w := 0
	for _, line := range lines {
		w = max(w, ansi.StringWidth(line))
	}
	return w
}

func normalizeBackground(view string, width, height int) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padToWidth(lines[i], width)
	}
	return lines
}

func padToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	currWidth := ansi.StringWidth(s)
	if currWidth > width {
		return ansi.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-currWidth)
}

// sliceWidth returns the cells [start, end) of s.
func sliceWidth(s string, start, end int) string {
	start = max(start, 0)
	if start >= end {
		return ""
	}
	return ansi.Cut(s, start, end)
}

func computeOffsets(width, height, overlayWidth, overlayHeight int, placement Placement) (int, int) {
	h := placement.Horizontal
	if h == 0 {
		h = lipgloss.Center
	}
	v := placement.Vertical
	if v == 0 {
		v = lipgloss.Center
	}

	offsetX := placement.MarginX
	switch h {
	case lipgloss.Right:
		offsetX = width - overlayWidth - placement.MarginX
	case lipgloss.Center:
		offsetX = (width - overlayWidth) / 2
	}
	offsetX = max(0, min(offsetX, width-overlayWidth))

	offsetY := placement.MarginY
	switch v {
	case lipgloss.Bottom:
		offsetY = height - overlayHeight - placement.MarginY
	case lipgloss.Center:
		offsetY = (height - overlayHeight) / 2
	}
	offsetY = max(0, min(offsetY, height-overlayHeight))

	return offsetX, offsetY
}

// Package frame draws a window's border, title bar and optional tab strip
// around its content, and maps pointer positions back onto those parts.
//
// Layout, top to bottom: border row, title row, tab strip row (fullscreen
// windows with tabs only), body rows, border row. The geometry matches
// window.HitTest, which treats the outer ring as resize handles and the row
// below the top border as the title bar.
package frame

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/deck/pkg/tui/theme"
	"tableflip.dev/deck/pkg/window"
)

// Button is a title bar control.
type Button int

const (
	ButtonNone Button = iota
	ButtonMinimize
	ButtonFullscreen
	ButtonClose
)

var buttonGlyphs = []string{" − ", " □ ", " × "}

const buttonWidth = 3

// Tab is one entry of the tab strip.
type Tab struct {
	Title  string
	Active bool
}

// Frame describes one rendered window.
type Frame struct {
	Title   string
	Width   int
	Height  int
	Focused bool
	// Tabs is nil for windows without a tab strip.
	Tabs []Tab
	Body string

	Theme theme.WindowTheme
	Strip theme.TabsTheme
}

// BodySize returns the content area of a width x height window.
func BodySize(width, height int, tabbed bool) (int, int) {
	h := height - 3
	if tabbed {
		h--
	}
	return max(width-2, 0), max(h, 0)
}

// View renders the frame as exactly Height lines of Width cells.
func (f Frame) View() string {
	if f.Width < 2 || f.Height < 3 {
		return ""
	}
	border := f.Theme.Border
	title := f.Theme.Title
	if f.Focused {
		border = f.Theme.BorderFocused
		title = f.Theme.TitleFocused
	}
	inner := f.Width - 2
	side := border.Render("│")

	lines := make([]string, 0, f.Height)
	lines = append(lines, border.Render("╭"+strings.Repeat("─", inner)+"╮"))
	lines = append(lines, side+f.titleRow(inner, title)+side)
	if f.Tabs != nil {
		lines = append(lines, side+f.tabRow(inner)+side)
	}

	bw, bh := BodySize(f.Width, f.Height, f.Tabs != nil)
	body := strings.Split(f.Body, "\n")
	for i := 0; i < bh; i++ {
		line := ""
		if i < len(body) {
			line = body[i]
		}
		lines = append(lines, side+f.Theme.Body.Render(fit(line, bw))+side)
	}
	lines = append(lines, border.Render("╰"+strings.Repeat("─", inner)+"╯"))
	return strings.Join(lines, "\n")
}

func (f Frame) titleRow(inner int, style lipgloss.Style) string {
	controls := strings.Join(buttonGlyphs, "")
	space := inner - ansi.StringWidth(controls)
	if space < 0 {
		return style.Render(fit(" "+f.Title, inner))
	}
	return style.Render(fit(" "+f.Title, space)) + f.Theme.Button.Inherit(style).Render(controls)
}

func (f Frame) tabRow(inner int) string {
	var b strings.Builder
	for i, seg := range segments(f.Tabs) {
		text := seg.label
		switch {
		case i == len(f.Tabs):
			b.WriteString(f.Strip.Add.Render(text))
		case f.Tabs[i].Active:
			b.WriteString(f.Strip.Active.Render(text))
		default:
			b.WriteString(f.Strip.Tab.Render(text))
		}
		b.WriteString(" ")
	}
	return fit(b.String(), inner)
}

type segment struct {
	label      string
	start, end int
}

// segments lays out the tab labels followed by the add button, relative to
// the first cell inside the border.
func segments(tabs []Tab) []segment {
	out := make([]segment, 0, len(tabs)+1)
	x := 0
	add := func(label string) {
		w := ansi.StringWidth(label)
		out = append(out, segment{label: label, start: x, end: x + w})
		x += w + 1
	}
	for _, t := range tabs {
		add(" " + ansi.Truncate(t.Title, 20, "…") + " ")
	}
	add(" + ")
	return out
}

// ButtonAt returns the title bar button under p for a window at bounds.
func ButtonAt(bounds window.Rect, p window.Point) Button {
	if p.Y != bounds.Y+1 {
		return ButtonNone
	}
	inner := bounds.Width - 2
	first := inner - len(buttonGlyphs)*buttonWidth
	col := p.X - (bounds.X + 1)
	if first < 0 || col < first || col >= inner {
		return ButtonNone
	}
	return Button(1 + (col-first)/buttonWidth)
}

// TabAt returns the index of the tab under p for a tabbed window at bounds.
// add is true when p is on the add button. index is -1 when p misses every
// tab.
func TabAt(bounds window.Rect, p window.Point, tabs []Tab) (index int, add bool) {
	if p.Y != bounds.Y+2 {
		return -1, false
	}
	col := p.X - (bounds.X + 1)
	if col < 0 || col >= bounds.Width-2 {
		return -1, false
	}
	for i, seg := range segments(tabs) {
		if col >= seg.start && col < seg.end {
			if i == len(tabs) {
				return -1, true
			}
			return i, false
		}
	}
	return -1, false
}

// fit truncates or pads s to exactly width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "…")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

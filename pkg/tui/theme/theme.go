package theme

import (
	"github.com/charmbracelet/lipgloss/v2"

	prefs "tableflip.dev/deck/pkg/theme"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Desktop lipgloss.Style
	Window  WindowTheme
	Tabs    TabsTheme
	Bar     BarTheme
	Modal   ModalTheme
}

// WindowTheme styles window frames. The Focused variants apply to the
// top-most window.
type WindowTheme struct {
	Border        lipgloss.Style
	BorderFocused lipgloss.Style
	Title         lipgloss.Style
	TitleFocused  lipgloss.Style
	Button        lipgloss.Style
	Body          lipgloss.Style
}

// TabsTheme styles the tab strip of a fullscreen window.
type TabsTheme struct {
	Tab    lipgloss.Style
	Active lipgloss.Style
	Add    lipgloss.Style
}

// BarTheme groups styles used by the bottom minimized/status bar.
type BarTheme struct {
	Base   lipgloss.Style
	Entry  lipgloss.Style
	Index  lipgloss.Style
	Status lipgloss.Style
	Help   lipgloss.Style
}

// ModalTheme styles centered modal overlays (picker, help).
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// Default returns the theme for the default preferences.
func Default() Theme {
	return New(prefs.Default().Palette())
}

// New builds the theme from a palette.
func New(p prefs.Palette) Theme {
	accent := lipgloss.Color(p.Accent)
	dim := lipgloss.Color(p.AccentDim)
	muted := lipgloss.Color(p.Muted)
	fg := lipgloss.Color(p.Foreground)

	return Theme{
		Desktop: lipgloss.NewStyle().Foreground(muted),
		Window: WindowTheme{
			Border:        lipgloss.NewStyle().Foreground(muted),
			BorderFocused: lipgloss.NewStyle().Foreground(accent),
			Title:         lipgloss.NewStyle().Foreground(fg).Background(dim),
			TitleFocused:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.OnAccent)).Background(accent),
			Button:        lipgloss.NewStyle().Bold(true),
			Body:          lipgloss.NewStyle().Foreground(fg),
		},
		Tabs: TabsTheme{
			Tab:    lipgloss.NewStyle().Foreground(muted),
			Active: lipgloss.NewStyle().Bold(true).Foreground(accent).Underline(true),
			Add:    lipgloss.NewStyle().Foreground(accent),
		},
		Bar: BarTheme{
			Base:   lipgloss.NewStyle().Foreground(fg),
			Entry:  lipgloss.NewStyle().Foreground(fg).Background(dim),
			Index:  lipgloss.NewStyle().Bold(true).Foreground(accent),
			Status: lipgloss.NewStyle().Foreground(muted),
			Help:   lipgloss.NewStyle().Foreground(muted),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true).Foreground(accent),
			Body:  lipgloss.NewStyle(),
		},
	}
}

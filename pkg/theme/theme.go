// Package theme persists the colour preferences and derives a palette from
// them.
package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/deck/pkg/store"
)

// Storage keys.
const (
	KeyTheme       = "theme"
	KeyAccentColor = "accentColor"
)

// DefaultAccent is used when no accent is stored.
const DefaultAccent = "#7d56f4"

// ErrInvalidAccent is returned for accents that are not #rrggbb colours.
var ErrInvalidAccent = errors.New("theme: accent must be a #rrggbb colour")

// Mode is light or dark.
type Mode string

const (
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// ParseMode accepts dark or light.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeDark:
		return ModeDark, nil
	case ModeLight:
		return ModeLight, nil
	}
	return "", fmt.Errorf("theme: unknown mode %q", s)
}

// Preferences are the stored colour settings.
type Preferences struct {
	Mode   Mode   `json:"theme"`
	Accent string `json:"accentColor"`
}

// Default returns the dark theme with the default accent.
func Default() Preferences {
	return Preferences{Mode: ModeDark, Accent: DefaultAccent}
}

// Load reads the preferences. Missing or malformed values fall back to the
// defaults one by one.
func Load(b store.Blobs) Preferences {
	p := Default()
	var mode string
	if err := store.LoadJSON(b, KeyTheme, &mode); err == nil {
		if m, err := ParseMode(mode); err == nil {
			p.Mode = m
		}
	}
	var accent string
	if err := store.LoadJSON(b, KeyAccentColor, &accent); err == nil {
		if c, err := colorful.Hex(accent); err == nil {
			p.Accent = c.Hex()
		}
	}
	return p
}

// Save validates and stores p.
func Save(b store.Blobs, p Preferences) error {
	if _, err := ParseMode(string(p.Mode)); err != nil {
		return err
	}
	c, err := colorful.Hex(p.Accent)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidAccent, p.Accent)
	}
	if err := store.SaveJSON(b, KeyTheme, string(p.Mode)); err != nil {
		return err
	}
	return store.SaveJSON(b, KeyAccentColor, c.Hex())
}

// Palette is the set of hex colours the UI draws with.
type Palette struct {
	Accent     string
	AccentDim  string
	OnAccent   string
	Foreground string
	Muted      string
	Background string
}

// Palette derives the UI colours from p.
func (p Preferences) Palette() Palette {
	accent, err := colorful.Hex(p.Accent)
	if err != nil {
		accent, _ = colorful.Hex(DefaultAccent)
	}
	fg, _ := colorful.Hex("#e4e4e7")
	bg, _ := colorful.Hex("#18181b")
	if p.Mode == ModeLight {
		fg, bg = bg, fg
	}

	onAccent := "#ffffff"
	if l, _, _ := accent.Lab(); l > 0.6 {
		onAccent = "#000000"
	}
	return Palette{
		Accent:     accent.Hex(),
		AccentDim:  accent.BlendLab(bg, 0.5).Clamped().Hex(),
		OnAccent:   onAccent,
		Foreground: fg.Hex(),
		Muted:      fg.BlendLab(bg, 0.45).Clamped().Hex(),
		Background: bg.Hex(),
	}
}

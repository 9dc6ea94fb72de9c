// Package timeutil parses the look-back windows used by productivity
// totals, such as "1w" or "3d12h".
package timeutil

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultWindow is used when no window is given.
const DefaultWindow = "1w"

const (
	day  = 24 * time.Hour
	week = 7 * day
)

// ErrInvalidWindow is returned for windows that do not parse.
var ErrInvalidWindow = errors.New("timeutil: invalid window")

var segment = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)

// units are largest first; FormatWindow relies on the order.
var units = []struct {
	label   string
	aliases []string
	size    time.Duration
}{
	{"w", []string{"wk", "wks", "week", "weeks"}, week},
	{"d", []string{"day", "days"}, day},
	{"h", []string{"hr", "hrs", "hour", "hours"}, time.Hour},
	{"m", []string{"min", "mins", "minute", "minutes"}, time.Minute},
}

func unit(name string) (time.Duration, bool) {
	for _, u := range units {
		if name == u.label {
			return u.size, true
		}
		for _, a := range u.aliases {
			if name == a {
				return u.size, true
			}
		}
	}
	return 0, false
}

// ParseWindow parses a window such as "2w" or "1w2d6h" and returns it with
// its canonical label. An empty input means DefaultWindow.
func ParseWindow(input string) (time.Duration, string, error) {
	rest := strings.ToLower(strings.TrimSpace(input))
	if rest == "" {
		rest = DefaultWindow
	}

	var total time.Duration
	for len(rest) > 0 {
		m := segment.FindStringSubmatch(rest)
		if m == nil {
			return 0, "", fmt.Errorf("%w: %q", ErrInvalidWindow, strings.TrimSpace(rest))
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, "", fmt.Errorf("%w: %v", ErrInvalidWindow, err)
		}
		size, ok := unit(m[2])
		if !ok {
			return 0, "", fmt.Errorf("%w: unknown unit %q", ErrInvalidWindow, m[2])
		}
		total += time.Duration(n) * size
		rest = strings.TrimSpace(rest[len(m[0]):])
	}
	if total <= 0 {
		return 0, "", fmt.Errorf("%w: must be positive", ErrInvalidWindow)
	}
	return total, FormatWindow(total), nil
}

// FormatWindow renders d with week, day, hour and minute tokens. Seconds
// are dropped.
func FormatWindow(d time.Duration) string {
	var b strings.Builder
	for _, u := range units {
		if d < u.size {
			continue
		}
		n := d / u.size
		d -= n * u.size
		fmt.Fprintf(&b, "%d%s", n, u.label)
	}
	if b.Len() == 0 {
		return "0m"
	}
	return b.String()
}

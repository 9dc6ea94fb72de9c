package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func canvas(width, height int) string {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = strings.Repeat(".", width)
	}
	return strings.Join(lines, "\n")
}

func TestComposeAt(t *testing.T) {
	out := ComposeAt(canvas(6, 3), 6, 3, "ab\ncd", 1, 1)
	assert.Equal(t, "......\n.ab...\n.cd...", out)
}

func TestComposeAtClipsEdges(t *testing.T) {
	out := ComposeAt(canvas(4, 2), 4, 2, "abc\ndef", 2, 1)
	assert.Equal(t, "....\n..ab", out)

	out = ComposeAt(canvas(4, 2), 4, 2, "abc", -1, 0)
	assert.Equal(t, "bc..\n....", out)
}

func TestComposeAtKeepsStyledBackground(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("xxxx")
	out := ComposeAt(styled, 4, 1, "o", 1, 0)
	assert.Equal(t, 4, lipgloss.Width(out))
	assert.Contains(t, out, "o")
}

func TestComposeCenters(t *testing.T) {
	out := Compose(canvas(5, 3), 5, 3, "x", Placement{})
	assert.Equal(t, ".....\n..x..\n.....", out)
}

func TestComposeWideRunes(t *testing.T) {
	out := ComposeAt(canvas(4, 1), 4, 1, "界", 1, 0)
	assert.Equal(t, ".界.", out)
}

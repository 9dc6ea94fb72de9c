package help

import (
	"testing"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestHelpRendersKeys(t *testing.T) {
	m := New(80, 60, "notty", lipgloss.NewStyle())
	out := m.View()
	assert.Contains(t, out, "ctrl+n")
	assert.Contains(t, out, "fullscreen")
	assert.NoError(t, m.err)
}

func TestHelpMinimumSize(t *testing.T) {
	m := New(1, 1, "notty", lipgloss.NewStyle())
	assert.Equal(t, 32, m.width)
	assert.Equal(t, 8, m.height)
}

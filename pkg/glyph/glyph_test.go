package glyph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlyphs(t *testing.T) {
	assert.Equal(t, "✓", Mark(true))
	assert.Equal(t, "•", Mark(false))
	assert.Equal(t, "[x]", Check(true))
	assert.Equal(t, "[ ]", Check(false))
	assert.Equal(t, "›", Cursor(true))
	assert.Equal(t, " ", Cursor(false))
}

// Package glyph holds the symbols shared by the command line printers and
// the dashboard windows.
package glyph

const (
	Done      = "✓"
	Open      = "•"
	Checked   = "[x]"
	Unchecked = "[ ]"
	Selected  = "›"
)

// Mark returns the list bullet for a record.
func Mark(done bool) string {
	if done {
		return Done
	}
	return Open
}

// Check returns the checkbox for a record inside a window.
func Check(done bool) string {
	if done {
		return Checked
	}
	return Unchecked
}

// Cursor marks the selected row of a window list.
func Cursor(selected bool) string {
	if selected {
		return Selected
	}
	return " "
}

// Package ui holds the contracts shared by the desktop's widgets.
package ui

import tea "github.com/charmbracelet/bubbletea/v2"

// Component defines the contract for reusable Bubble Tea widgets.
type Component interface {
	Init() tea.Cmd
	Update(tea.Msg) (Component, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// Overlay is a Component drawn centred above the desktop. While Capturing
// reports true the overlay consumes Escape itself instead of being closed.
type Overlay interface {
	Component
	Capturing() bool
}

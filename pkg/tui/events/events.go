// Package events defines the messages the desktop exchanges with its
// components and records in its event log.
package events

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/deck/pkg/module"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// Action names a window-manager operation.
type Action string

const (
	ActionOpen       Action = "open"
	ActionClose      Action = "close"
	ActionMinimize   Action = "minimize"
	ActionRestore    Action = "restore"
	ActionFocus      Action = "focus"
	ActionFullscreen Action = "fullscreen"
	ActionExit       Action = "exit-fullscreen"
	ActionAddTab     Action = "add-tab"
	ActionCloseTab   Action = "close-tab"
	ActionMove       Action = "move"
	ActionResize     Action = "resize"
)

// WindowRef identifies a window in cross-component events.
type WindowRef struct {
	ID    string
	Kind  module.Kind
	Title string
}

// Label returns a human-friendly identifier for the window.
func (r WindowRef) Label() string {
	if r.Title != "" {
		return r.Title
	}
	return r.ID
}

// WindowMsg reports that a window-manager operation was applied.
type WindowMsg struct {
	Component ComponentID
	Action    Action
	Window    WindowRef
	Detail    string
}

// Describe renders the operation in a human-friendly format for logs.
func (m WindowMsg) Describe() string {
	if m.Detail == "" {
		return fmt.Sprintf(`%s name:%q`, m.Action, m.Window.Label())
	}
	return fmt.Sprintf(`%s name:%q %s`, m.Action, m.Window.Label(), m.Detail)
}

// PickMsg is emitted when the module picker chooses a kind. Host is the
// fullscreen window that receives the kind as a tab, or empty to open a
// window.
type PickMsg struct {
	Component ComponentID
	Kind      module.Kind
	Host      string
}

// Describe renders the pick for logs.
func (m PickMsg) Describe() string {
	if m.Host == "" {
		return fmt.Sprintf(`pick kind:%q`, m.Kind)
	}
	return fmt.Sprintf(`pick kind:%q host:%q`, m.Kind, m.Host)
}

// AddRecordMsg asks the desktop to add Text to the collection Book shown
// by the window Window.
type AddRecordMsg struct {
	Component ComponentID
	Window    string
	Kind      module.Kind
	Book      string
	Text      string
}

// Describe renders the request for logs.
func (m AddRecordMsg) Describe() string {
	return fmt.Sprintf(`add book:%q`, m.Book)
}

// RecordsChangedMsg is emitted when persisted records changed outside the
// current window. Key is empty when everything should be reloaded.
type RecordsChangedMsg struct {
	Key string
}

// Describe renders the change for logs.
func (m RecordsChangedMsg) Describe() string {
	if m.Key == "" {
		return "records invalidated"
	}
	return fmt.Sprintf(`records changed key:%q`, m.Key)
}

// TickMsg drives clock-dependent content.
type TickMsg struct {
	At time.Time
}

// Tick schedules the next TickMsg after d.
func Tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg{At: t} })
}

// Describer is implemented by messages that render themselves for the
// event log.
type Describer interface {
	Describe() string
}

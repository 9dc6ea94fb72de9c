// Package module describes the content a dashboard window can host. Each
// window resolves its Content once, when it is opened, and keeps it for its
// lifetime.
package module

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Kind tags the type of content a window hosts.
type Kind string

const (
	KindJournal             Kind = "journal"
	KindGoals               Kind = "goals"
	KindNotes               Kind = "notes"
	KindResources           Kind = "resources"
	KindFocusTimer          Kind = "focusTimer"
	KindMusicPlayer         Kind = "musicPlayer"
	KindProductivityHistory Kind = "productivityHistory"
	KindStudySessions       Kind = "studySessions"
	KindTodos               Kind = "todos"
)

var titles = map[Kind]string{
	KindJournal:             "Journal",
	KindGoals:               "Goals",
	KindNotes:               "Notes",
	KindResources:           "Resources",
	KindFocusTimer:          "Focus Timer",
	KindMusicPlayer:         "Music Player",
	KindProductivityHistory: "Productivity History",
	KindStudySessions:       "Study Sessions",
	KindTodos:               "To-Dos",
}

// ErrUnknownKind is returned when no provider is registered for a kind.
var ErrUnknownKind = errors.New("module: unknown kind")

// Kinds returns every built-in kind in display order.
func Kinds() []Kind {
	return []Kind{
		KindJournal,
		KindGoals,
		KindNotes,
		KindTodos,
		KindResources,
		KindFocusTimer,
		KindMusicPlayer,
		KindProductivityHistory,
		KindStudySessions,
	}
}

// Title returns the default display title for the kind.
func (k Kind) Title() string {
	if t, ok := titles[k]; ok {
		return t
	}
	return string(k)
}

// ParseKind matches s against the known kinds.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := titles[k]; ok {
		return k, nil
	}
	for kind := range titles {
		if string(kind) == s || kind.Title() == s {
			return kind, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Content is renderable window content.
type Content interface {
	Title() string
	Render(width, height int) string
}

// KeyHandler is implemented by content that reacts to keys while focused.
type KeyHandler interface {
	HandleKey(key string) bool
}

// Refresher is implemented by content backed by persisted records.
type Refresher interface {
	Refresh() error
}

// Ticker is implemented by content that changes with the clock. Tick
// reports whether anything changed beyond the passage of time.
type Ticker interface {
	Tick() bool
}

// Blocker is implemented by content that can hold a dialog open. While
// Blocking returns true, Escape does not minimize the window.
type Blocker interface {
	Blocking() bool
}

// Factory builds a new Content value.
type Factory func() (Content, error)

// Registry maps kinds to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[Kind]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[Kind]Factory)}
}

// Register sets the factory for kind, replacing any previous one.
func (r *Registry) Register(kind Kind, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[kind] = f
}

// Resolve builds content for kind.
func (r *Registry) Resolve(kind Kind) (Content, error) {
	r.mu.RLock()
	f, ok := r.factories[kind]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	c, err := f()
	if err != nil {
		return nil, fmt.Errorf("module: resolve %s: %w", kind, err)
	}
	return c, nil
}

// Kinds returns the registered kinds, built-ins first in display order.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[Kind]bool, len(r.factories))
	out := make([]Kind, 0, len(r.factories))
	for _, k := range Kinds() {
		if _, ok := r.factories[k]; ok {
			out = append(out, k)
			seen[k] = true
		}
	}
	var extra []Kind
	for k := range r.factories {
		if !seen[k] {
			extra = append(extra, k)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}

// Text is static content.
type Text struct {
	Heading string
	Body    string
}

// Title implements Content.
func (t Text) Title() string { return t.Heading }

// Render implements Content.
func (t Text) Render(int, int) string { return t.Body }

// Package zindex hands out stacking order for floating surfaces.
//
// A single counter is shared by every surface. Values are never recycled
// within a process, so two registered surfaces never tie and the most
// recently focused surface is always strictly above the rest.
package zindex

import "sync"

// Allocator tracks the z-index of every registered popup.
type Allocator struct {
	mu      sync.Mutex
	entries map[string]int
	highest int
}

// New returns an Allocator whose first registration lands just above the
// popup tier base.
func New() *Allocator {
	return &Allocator{
		entries: make(map[string]int),
		highest: TierPopup.Base(),
	}
}

// Register assigns the next z-index to id. Registering an id twice without
// an Unregister in between leaves the first value in place.
func (a *Allocator) Register(id string) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	if z, ok := a.entries[id]; ok {
		return z
	}
	a.highest++
	a.entries[id] = a.highest
	return a.highest
}

// Unregister forgets id. The counter is not rewound.
func (a *Allocator) Unregister(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.entries, id)
}

// ZIndex returns the stored value for id, or the popup tier base when id is
// not registered.
func (a *Allocator) ZIndex(id string) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	if z, ok := a.entries[id]; ok {
		return z
	}
	return TierPopup.Base()
}

// BringToFront moves id above every other registered surface and returns the
// new value. Unregistered ids are ignored and report 0.
func (a *Allocator) BringToFront(id string) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.entries[id]; !ok {
		return 0
	}
	top := a.highest
	for _, z := range a.entries {
		if z > top {
			top = z
		}
	}
	top++
	a.entries[id] = top
	a.highest = top
	return top
}

// NewZIndex returns a value for an untracked overlay of the given tier. It
// does not record anything.
func (a *Allocator) NewZIndex(tier Tier) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	next := a.highest + 1
	if base := tier.Base(); base > next {
		return base
	}
	return next
}

// IsTopMost reports whether id holds the largest registered z-index.
func (a *Allocator) IsTopMost(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	z, ok := a.entries[id]
	if !ok {
		return false
	}
	for _, other := range a.entries {
		if other > z {
			return false
		}
	}
	return true
}

// Highest returns the last value handed out.
func (a *Allocator) Highest() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.highest
}

// Registered returns a copy of the id to z-index table.
func (a *Allocator) Registered() map[string]int {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make(map[string]int, len(a.entries))
	for id, z := range a.entries {
		out[id] = z
	}
	return out
}

// Package records persists the dashboard's record lists. Each list is one
// JSON array stored under a single key and rewritten whole on every change.
package records

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/deck/pkg/store"
)

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("records: not found")

// Meta is embedded by every record type.
type Meta struct {
	ID      string    `json:"id"`
	Created time.Time `json:"created"`
}

func (m *Meta) meta() *Meta { return m }

// Record is satisfied by pointers to record types.
type Record[T any] interface {
	*T
	meta() *Meta
	Summary() Summary
}

// Summary is a record reduced to what list views show.
type Summary struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Detail  string    `json:"detail,omitempty"`
	Done    bool      `json:"done"`
	Created time.Time `json:"created"`
}

// Collection is the list of T stored under one key.
type Collection[T any, P Record[T]] struct {
	blobs store.Blobs
	key   string
	now   func() time.Time
	newID func() string
}

// NewCollection returns the collection stored under key.
func NewCollection[T any, P Record[T]](b store.Blobs, key string) *Collection[T, P] {
	return &Collection[T, P]{
		blobs: b,
		key:   key,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Key returns the storage key.
func (c *Collection[T, P]) Key() string { return c.key }

// List returns every record. A missing or malformed blob reads as empty.
func (c *Collection[T, P]) List() []T {
	var items []T
	if err := store.LoadJSON(c.blobs, c.key, &items); err != nil {
		return []T{}
	}
	return items
}

// Get returns the record with id.
func (c *Collection[T, P]) Get(id string) (T, error) {
	for _, item := range c.List() {
		if P(&item).meta().ID == id {
			return item, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %s/%s", ErrNotFound, c.key, id)
}

// Add appends v, assigning an id and creation time when missing.
func (c *Collection[T, P]) Add(v T) (T, error) {
	m := P(&v).meta()
	if m.ID == "" {
		m.ID = c.newID()
	}
	if m.Created.IsZero() {
		m.Created = c.now().UTC()
	}
	items := append(c.List(), v)
	if err := c.Replace(items); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Update applies fn to the record with id and saves the list.
func (c *Collection[T, P]) Update(id string, fn func(P)) (T, error) {
	items := c.List()
	for i := range items {
		p := P(&items[i])
		if p.meta().ID != id {
			continue
		}
		fn(p)
		p.meta().ID = id
		if err := c.Replace(items); err != nil {
			var zero T
			return zero, err
		}
		return items[i], nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %s/%s", ErrNotFound, c.key, id)
}

// Delete removes the record with id.
func (c *Collection[T, P]) Delete(id string) error {
	items := c.List()
	for i := range items {
		if P(&items[i]).meta().ID == id {
			return c.Replace(append(items[:i], items[i+1:]...))
		}
	}
	return fmt.Errorf("%w: %s/%s", ErrNotFound, c.key, id)
}

// Replace overwrites the whole list.
func (c *Collection[T, P]) Replace(items []T) error {
	if items == nil {
		items = []T{}
	}
	return store.SaveJSON(c.blobs, c.key, items)
}

// Summaries returns List reduced to summaries.
func (c *Collection[T, P]) Summaries() []Summary {
	items := c.List()
	out := make([]Summary, 0, len(items))
	for i := range items {
		out = append(out, P(&items[i]).Summary())
	}
	return out
}

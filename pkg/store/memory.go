package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// NewMemory returns Blobs held in memory. Watchers see every write and erase
// without throttling.
func NewMemory() Blobs {
	return &memory{blobs: make(map[string][]byte)}
}

type memory struct {
	mu       sync.Mutex
	blobs    map[string][]byte
	watchers []chan<- Event
}

func (m *memory) Read(key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.blobs[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *memory) Write(key string, data []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	buf := make([]byte, len(data))
	copy(buf, data)

	m.mu.Lock()
	m.blobs[key] = buf
	m.mu.Unlock()
	m.notify(key)
	return nil
}

func (m *memory) Erase(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	_, ok := m.blobs[key]
	delete(m.blobs, key)
	m.mu.Unlock()
	if ok {
		m.notify(key)
	}
	return nil
}

func (m *memory) Keys(context.Context) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.blobs))
	for k := range m.blobs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *memory) Watch(ctx context.Context) (<-chan Event, error) {
	events := make(chan Event, 64)
	m.mu.Lock()
	m.watchers = append(m.watchers, events)
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, w := range m.watchers {
			if w == events {
				m.watchers = append(m.watchers[:i], m.watchers[i+1:]...)
				break
			}
		}
		close(events)
	}()
	return events, nil
}

func (m *memory) notify(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range m.watchers {
		nonBlockingSend(w)(Event{Type: EventKeyChanged, Key: key})
	}
}

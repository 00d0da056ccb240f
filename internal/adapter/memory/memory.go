// Package memory implements an in-memory storage medium for development and
// testing.
package memory

import (
	"context"
	"sync"

	"healthlog/internal/store"
)

// Medium implements a map-backed storage medium. It never fails.
type Medium struct {
	mu   sync.Mutex
	data map[string][]byte
}

var _ store.Medium = (*Medium)(nil)

// New creates an empty in-memory medium.
func New() *Medium {
	return &Medium{data: make(map[string][]byte)}
}

// Get returns the value stored under key.
func (m *Medium) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	// copy so callers cannot alias the stored slice
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

// Set stores value under key.
func (m *Medium) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

// Delete removes key. Deleting an absent key is a no-op.
func (m *Medium) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Len returns the number of stored keys.
func (m *Medium) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}

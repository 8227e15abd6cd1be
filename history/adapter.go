// Package history persists the bounded gallery of past generations.
//
// The cache keeps at most MaxEntries images, coalesces rapid writes with
// a short debounce window, and swallows storage failures: a corrupt or
// missing record loads as empty history, and a failed write degrades to
// a smaller one before being dropped entirely. Persistence backends plug
// in through the Adapter interface.
package history

import (
	"context"
	"encoding/json"
	"sync"
)

// Adapter stores the single history record. Implementations must be
// safe for concurrent use.
type Adapter interface {
	// Get retrieves the record. Returns nil, false, nil when absent.
	Get(ctx context.Context) (json.RawMessage, bool, error)

	// Set replaces the record.
	Set(ctx context.Context, value json.RawMessage) error

	// Delete removes the record. No error if it does not exist.
	Delete(ctx context.Context) error
}

// MemoryAdapter is an in-memory Adapter, mainly for tests.
type MemoryAdapter struct {
	mu    sync.RWMutex
	value json.RawMessage
	set   bool
}

// NewMemoryAdapter creates an empty in-memory adapter.
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{}
}

// Get retrieves the record.
func (m *MemoryAdapter) Get(ctx context.Context) (json.RawMessage, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.set {
		return nil, false, nil
	}
	value := make(json.RawMessage, len(m.value))
	copy(value, m.value)
	return value, true, nil
}

// Set replaces the record.
func (m *MemoryAdapter) Set(ctx context.Context, value json.RawMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = make(json.RawMessage, len(value))
	copy(m.value, value)
	m.set = true
	return nil
}

// Delete removes the record.
func (m *MemoryAdapter) Delete(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = nil
	m.set = false
	return nil
}

var _ Adapter = (*MemoryAdapter)(nil)

// Package prefs defines the small key-value interface the games persist
// their high scores through.
package prefs

import "sync"

// Store is a key-value store of integers. PutInt may buffer; Flush makes
// pending writes durable.
type Store interface {
	GetInt(key string, def int) int
	PutInt(key string, value int)
	Flush() error
}

// Memory is an in-process Store. It is the fallback when no database is
// available and the store used by tests and replays.
type Memory struct {
	mu      sync.Mutex
	values  map[string]int
	flushes int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]int)}
}

// GetInt returns the value for key, or def if unset.
func (m *Memory) GetInt(key string, def int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.values[key]; ok {
		return v
	}
	return def
}

// PutInt sets key to value.
func (m *Memory) PutInt(key string, value int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

// Flush is a no-op that counts calls.
func (m *Memory) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flushes++
	return nil
}

// Flushes returns how many times Flush was called.
func (m *Memory) Flushes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flushes
}

// Package kv defines the synchronous key-value storage the task list persists to.
package kv

import (
	"context"
	"sync"
)

// Storage is a string-to-string store with localStorage semantics:
// one value per key, writes overwrite.
type Storage interface {
	// GetItem returns the value at key. ok is false if the key is absent.
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)

	// SetItem overwrites the value at key.
	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(ctx context.Context, key string) error

	// Close releases the underlying resources.
	Close() error
}

// Memory is an in-process Storage. Contents are lost on exit.
type Memory struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemory creates an empty Memory storage.
func NewMemory() *Memory {
	return &Memory{items: make(map[string]string)}
}

// GetItem implements Storage.
func (m *Memory) GetItem(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	return v, ok, nil
}

// SetItem implements Storage.
func (m *Memory) SetItem(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

// RemoveItem implements Storage.
func (m *Memory) RemoveItem(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// Close implements Storage.
func (m *Memory) Close() error { return nil }

package secrets

import (
	"bytes"
	"context"
	"sync"
)

// memoryStore keeps secrets in a map. It is used by tests and for throwaway
// sessions started with --secrets-backend=memory.
type memoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemoryStore returns an empty in-memory [Store].
func NewMemoryStore() Store {
	return &memoryStore{entries: make(map[string][]byte)}
}

func (m *memoryStore) Get(ctx context.Context, name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.entries[name]
	if !ok {
		return nil, ErrSecretNotFound
	}
	return bytes.Clone(value), nil
}

func (m *memoryStore) Set(ctx context.Context, name string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[name] = bytes.Clone(value)
	return nil
}

func (m *memoryStore) Delete(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, name)
	return nil
}

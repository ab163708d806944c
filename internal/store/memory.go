package store

import (
	"context"
	"sync"

	"freshbasket/internal/domain"
)

// Memory is an in-memory KV for unit tests and local experiments. It
// mirrors the Postgres implementation's semantics, including
// ErrNotFound for absent keys.
type Memory struct {
	mu      sync.Mutex
	records map[memoryKey][]byte
}

type memoryKey struct {
	sessionID string
	key       string
}

func NewMemory() *Memory {
	return &Memory{records: make(map[memoryKey][]byte)}
}

func (m *Memory) Load(_ context.Context, sessionID, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.records[memoryKey{sessionID, key}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *Memory) Save(_ context.Context, sessionID, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	m.records[memoryKey{sessionID, key}] = stored
	return nil
}

func (m *Memory) Delete(_ context.Context, sessionID, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, memoryKey{sessionID, key})
	return nil
}

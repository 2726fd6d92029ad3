package store

import (
	"context"
	"sync"
)

// Memory is an in-process Store. It backs tests and the degraded
// in-memory-only mode used when postgres is unreachable.
type Memory struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{snapshots: make(map[string][]byte)}
}

var _ Store = (*Memory)(nil)

func (m *Memory) Load(_ context.Context, collection string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.snapshots[collection]
	if !ok {
		return nil, ErrAbsent
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *Memory) Save(_ context.Context, collection string, snapshot []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data := make([]byte, len(snapshot))
	copy(data, snapshot)
	m.snapshots[collection] = data
	return nil
}

func (m *Memory) ResetAll(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.snapshots = make(map[string][]byte)
	return nil
}

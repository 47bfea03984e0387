package store

import (
	"errors"
	"sync"
)

// ErrUnavailable marks a backend that could not be opened or used.
var ErrUnavailable = errors.New("store: backend unavailable")

// KV is the host storage shape the adapter runs against.
type KV interface {
	// Get returns the value under key and whether it exists.
	Get(key string) ([]byte, bool, error)
	// Set overwrites the value under key.
	Set(key string, value []byte) error
	Close() error
}

// MemoryKV is a map-backed KV. It is the last resort when nothing on disk
// can be opened, and the default in tests.
type MemoryKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (m *MemoryKV) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *MemoryKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryKV) Close() error { return nil }

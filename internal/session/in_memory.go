package session

import (
	"context"
	"sync"
)

// inMemory implements Store using a map. Used in tests and when no Redis is
// configured.
type inMemory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewInMemoryStore creates a new in-process Store.
func NewInMemoryStore() Store {
	return &inMemory{
		values: make(map[string]string),
	}
}

// ReadString returns the value stored under key.
func (s *inMemory) ReadString(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

// WriteString stores value under key.
func (s *inMemory) WriteString(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

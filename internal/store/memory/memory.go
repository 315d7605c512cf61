package memory

import (
	"context"
	"sync"

	"budget/internal/store"
)

type Store struct {
	mu     sync.Mutex
	items  map[string][]byte
	writes int
}

func New() *Store {
	return &Store{items: map[string][]byte{}}
}

// NewWith returns a store pre-seeded with values, useful for tests.
func NewWith(values map[string]string) *Store {
	s := New()
	for k, v := range values {
		s.items[k] = []byte(v)
	}
	return s
}

// Get returns a copy of the value stored under key.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.items[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set replaces the value stored under key.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = append([]byte(nil), value...)
	s.writes++
	return nil
}

// Writes reports how many times Set has been called.
func (s *Store) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

package tokenstore

import (
	"context"
	"sync"

	"github.com/triplinker/triplinker-api/internal/ports/out/tokenstore"
)

// Store is an in-memory implementation of tokenstore.Store.
// It is safe for concurrent use. Contents are lost on process exit; use the
// file adapter when tokens must survive restarts.
type Store struct {
	mu sync.RWMutex
	m  map[string]string
}

func NewStore() *Store {
	return &Store{
		m: make(map[string]string),
	}
}

func (s *Store) SetItem(ctx context.Context, key, value string) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

func (s *Store) GetItem(ctx context.Context, key string) (string, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	if !ok {
		return "", tokenstore.ErrNotFound
	}
	return v, nil
}

func (s *Store) DeleteItem(ctx context.Context, key string) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

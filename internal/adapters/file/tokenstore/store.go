// Package tokenstore is a file-backed implementation of the secure token
// store port. It stands in for device secure storage: a single JSON file,
// owner read/write only, rewritten atomically on every mutation.
package tokenstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/triplinker/triplinker-api/internal/ports/out/tokenstore"
)

type Store struct {
	path string

	mu sync.Mutex
	m  map[string]string
}

// NewStore opens (or creates) the store file at path.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path, m: make(map[string]string)}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) SetItem(ctx context.Context, key, value string) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return s.flush()
}

func (s *Store) GetItem(ctx context.Context, key string) (string, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
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
	if _, ok := s.m[key]; !ok {
		return nil
	}
	delete(s.m, key)
	return s.flush()
}

func (s *Store) load() error {
	b, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read token store: %w", err)
	}
	if len(b) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, &s.m); err != nil {
		return fmt.Errorf("parse token store %s: %w", s.path, err)
	}
	return nil
}

// flush writes the full map to a temp file and renames it into place.
// Callers must hold s.mu.
func (s *Store) flush() error {
	b, err := json.Marshal(s.m)
	if err != nil {
		return fmt.Errorf("encode token store: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".tokenstore-*")
	if err != nil {
		return fmt.Errorf("write token store: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write token store: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write token store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write token store: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write token store: %w", err)
	}
	return nil
}

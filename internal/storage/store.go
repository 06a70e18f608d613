package storage

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/sandeepkv93/pomodesk/internal/debug"
)

const defaultOpTimeout = 2 * time.Second

// Store is the best-effort facade over a Repository. Reads fall back to the
// caller's default when a key is missing or undecodable; writes that fail are
// logged and dropped. Nothing here returns an error to the caller.
type Store struct {
	repo    Repository
	timeout time.Duration
}

func NewStore(repo Repository) *Store {
	if repo == nil {
		repo = NewMemoryRepository()
	}
	return &Store{repo: repo, timeout: defaultOpTimeout}
}

// Get decodes the value stored under key into a T, or returns def.
func Get[T any](s *Store, key string, def T) T {
	ctx, cancel := s.context()
	defer cancel()

	raw, err := s.repo.GetValue(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			debug.Log("store: read %s failed: %v", key, err)
		}
		return def
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		debug.Log("store: decode %s failed: %v", key, err)
		return def
	}
	return out
}

// Set encodes v and writes it under key. Failures are logged only.
func (s *Store) Set(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		debug.Log("store: encode %s failed: %v", key, err)
		return
	}
	ctx, cancel := s.context()
	defer cancel()
	if err := s.repo.PutValue(ctx, key, raw); err != nil {
		debug.Log("store: write %s failed: %v", key, err)
	}
}

// Remove deletes key. A missing key is not an error.
func (s *Store) Remove(key string) {
	ctx, cancel := s.context()
	defer cancel()
	if err := s.repo.DeleteValue(ctx, key); err != nil && !errors.Is(err, ErrNotFound) {
		debug.Log("store: remove %s failed: %v", key, err)
	}
}

func (s *Store) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

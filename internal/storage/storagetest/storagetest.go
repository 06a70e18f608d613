// Package storagetest holds repository doubles for tests in other packages.
package storagetest

import (
	"context"
	"errors"
	"sync"

	"github.com/sandeepkv93/pomodesk/internal/storage"
)

var ErrInjected = errors.New("storagetest: injected failure")

// FlakyRepository wraps a MemoryRepository and fails reads and/or writes on
// demand.
type FlakyRepository struct {
	*storage.MemoryRepository

	mu         sync.Mutex
	failReads  bool
	failWrites bool
	writes     int
}

func NewFlakyRepository() *FlakyRepository {
	return &FlakyRepository{MemoryRepository: storage.NewMemoryRepository()}
}

func (r *FlakyRepository) FailReads(v bool) {
	r.mu.Lock()
	r.failReads = v
	r.mu.Unlock()
}

func (r *FlakyRepository) FailWrites(v bool) {
	r.mu.Lock()
	r.failWrites = v
	r.mu.Unlock()
}

// Writes counts successful PutValue calls.
func (r *FlakyRepository) Writes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writes
}

func (r *FlakyRepository) GetValue(ctx context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	fail := r.failReads
	r.mu.Unlock()
	if fail {
		return nil, ErrInjected
	}
	return r.MemoryRepository.GetValue(ctx, key)
}

func (r *FlakyRepository) PutValue(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWrites {
		return ErrInjected
	}
	r.writes++
	return r.MemoryRepository.PutValue(ctx, key, value)
}

func (r *FlakyRepository) DeleteValue(ctx context.Context, key string) error {
	r.mu.Lock()
	fail := r.failWrites
	r.mu.Unlock()
	if fail {
		return ErrInjected
	}
	return r.MemoryRepository.DeleteValue(ctx, key)
}

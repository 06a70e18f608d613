package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// Repository is the strict key/value contract. Values are opaque JSON
// documents; callers that want default-on-failure semantics use Store.
type Repository interface {
	GetValue(ctx context.Context, key string) ([]byte, error)
	PutValue(ctx context.Context, key string, value []byte) error
	DeleteValue(ctx context.Context, key string) error
	ListKeys(ctx context.Context, prefix string) ([]string, error)
}

package storage

import "context"

// Repository is a byte-valued key/value store.
//
// Get returns (nil, nil) for a missing key. Deleting a missing key is not an
// error. SetMany and DeleteMany are atomic.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, values map[string][]byte) error
	DeleteMany(ctx context.Context, keys ...string) error
}

// Package metadata stores the client's small key/value state (the session)
// in sqlite or redis.
package metadata

import (
	"context"
)

// Repository is a flat key/value store. Get returns (nil, nil) for a missing
// key. SetMany writes all pairs or none.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

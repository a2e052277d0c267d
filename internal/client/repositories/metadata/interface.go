// Package metadata stores the client's small key/value state (session
// token, signed-in user, theme) in SQLite.
package metadata

import (
	"context"
)

// Repository is a flat key/value table. Get returns (nil, nil) for a
// missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

package cache

import (
	"context"
	"time"
)

// Store is a byte-oriented key/value store with per-key TTLs. Expired
// entries are indistinguishable from absent ones. A ttl of zero means the
// entry never expires.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeleteByPrefix(ctx context.Context, prefix string) error
	CountByPrefix(ctx context.Context, prefix string) (int, error)
}

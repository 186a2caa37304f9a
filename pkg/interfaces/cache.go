package interfaces

import (
	"context"
	"time"
)

// CacheProvider is the advisory read cache used by the content gateway. A nil
// TTL entry falls back to the provider default; Get returns (nil, nil) on a
// miss so callers treat absence and expiry the same way.
type CacheProvider interface {
	Get(ctx context.Context, key string) (any, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

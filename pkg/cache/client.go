package cache

import (
	"context"
	"time"
)

// Cache is a string key/value store with per-entry TTL.
type Cache interface {
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key string) error
}

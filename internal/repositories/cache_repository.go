package repositories

import (
	"context"
	"time"
)

// CacheRepositoryInterface abstracts the expiring key-value store used for
// login throttling and revoked-token tracking.
type CacheRepositoryInterface interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Increment(ctx context.Context, key string, ttl time.Duration) (int64, error)
	Exists(ctx context.Context, key string) (bool, error)
}

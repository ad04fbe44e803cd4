package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// ErrCacheMiss is returned by ViewCache.Get when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// ViewCache holds rendered public views. It is advisory: readers tolerate misses and
// writers treat invalidation as a best-effort signal.
type ViewCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}

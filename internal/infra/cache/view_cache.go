// Package cache implements the advisory public view cache.
package cache

import (
	"context"
	"log/slog"
	"time"

	"landmarket/config"
	"landmarket/internal/domain/lifecycle"
	"landmarket/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const keyPrefix = "landmarket:view:"

// Params holds the dependencies for NewViewCache.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Module provides the view cache.
var Module = fx.Options(
	fx.Provide(NewViewCache),
)

// NewViewCache returns a Redis-backed cache, or a no-op cache when cache.addr is empty.
func NewViewCache(params Params) service.ViewCache {
	cfg := params.Config.Cache
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("View cache disabled")

		return noopViewCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			// Reads fall back to the store, so an unreachable cache is not fatal.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("View cache unreachable", slog.String("addr", cfg.Addr), slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing view cache")

			return client.Close()
		},
	})

	return NewRedisViewCache(client)
}

type redisViewCache struct {
	client redis.UniversalClient
}

// NewRedisViewCache wraps an existing Redis client.
func NewRedisViewCache(client redis.UniversalClient) service.ViewCache {
	return &redisViewCache{client: client}
}

func (c *redisViewCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrCacheMiss
		}

		return nil, errors.Wrapf(err, "cache get %s", key)
	}

	return data, nil
}

func (c *redisViewCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, keyPrefix+key, value, ttl).Err(); err != nil {
		return errors.Wrapf(err, "cache set %s", key)
	}

	return nil
}

func (c *redisViewCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	prefixed := make([]string, 0, len(keys))
	for _, k := range keys {
		prefixed = append(prefixed, keyPrefix+k)
	}

	if err := c.client.Del(ctx, prefixed...).Err(); err != nil {
		return errors.Wrap(err, "cache invalidate")
	}

	return nil
}

type noopViewCache struct{}

func (noopViewCache) Get(context.Context, string) ([]byte, error) {
	return nil, service.ErrCacheMiss
}

func (noopViewCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (noopViewCache) Invalidate(context.Context, ...string) error {
	return nil
}

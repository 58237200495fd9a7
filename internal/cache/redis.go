// Package cache keeps rendered responses in redis, keyed by request path.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/tradehub/tradehub-server/internal/model"
)

var _ model.CacheInvalidator = (*PageCache)(nil)

// PageCache is a path-scoped response cache backed by redis.
type PageCache struct {
	rdb *goredis.Client
	ttl time.Duration
}

// New connects to redis and verifies the connection with a ping.
func New(ctx context.Context, addr string, ttl time.Duration) (*PageCache, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &PageCache{rdb: rdb, ttl: ttl}, nil
}

func pageKey(path string) string {
	return "page:" + path
}

// Get returns the cached body for path, reporting whether one existed.
func (c *PageCache) Get(ctx context.Context, path string) ([]byte, bool, error) {
	body, err := c.rdb.Get(ctx, pageKey(path)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached page: %w", err)
	}
	return body, true, nil
}

// Set stores body as the rendering of path for the configured TTL.
func (c *PageCache) Set(ctx context.Context, path string, body []byte) error {
	if err := c.rdb.Set(ctx, pageKey(path), body, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache page: %w", err)
	}
	return nil
}

// Invalidate marks the cached rendering of path as stale by deleting it.
func (c *PageCache) Invalidate(ctx context.Context, path string) error {
	if err := c.rdb.Del(ctx, pageKey(path)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached page: %w", err)
	}
	return nil
}

func (c *PageCache) Close() error {
	return c.rdb.Close()
}

package cache

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache layers single-flight coalescing over a Store. Concurrent requests
// for the same key share one computation; store failures degrade to a miss
// rather than failing the request.
type Cache struct {
	store  Store
	group  singleflight.Group
	logger *slog.Logger
}

// New wraps a store.
func New(store Store, logger *slog.Logger) *Cache {
	return &Cache{store: store, logger: logger}
}

// Backend reports the underlying store's name.
func (c *Cache) Backend() string { return c.store.Name() }

// Store exposes the underlying store for health checks.
func (c *Cache) Store() Store { return c.store }

type flightResult struct {
	data   []byte
	cached bool
}

// GetOrCompute returns the cached value for key, or runs compute once across
// all concurrent callers and caches its result for ttl. The cached return
// reports whether the value came from the store.
//
// The computation runs on a context detached from the caller's so one
// waiter's cancellation cannot abort work other waiters share; compute must
// bound its own work. A waiter whose context ends stops waiting, but the
// flight finishes and its result is still cached.
func (c *Cache) GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute func(context.Context) ([]byte, error)) ([]byte, bool, error) {
	if data, ok, err := c.store.Get(ctx, key); err != nil {
		c.logger.Warn("cache read failed, treating as miss", "key", key, "error", err)
	} else if ok {
		return data, true, nil
	}

	detached := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		// Re-check under the flight: a previous flight may have
		// populated the store while this caller was queueing.
		if data, ok, err := c.store.Get(detached, key); err == nil && ok {
			return flightResult{data: data, cached: true}, nil
		}

		data, err := compute(detached)
		if err != nil {
			return nil, err
		}
		if err := c.store.Set(detached, key, data, ttl); err != nil {
			c.logger.Warn("cache write failed", "key", key, "error", err)
		}
		return flightResult{data: data}, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, false, res.Err
		}
		fr := res.Val.(flightResult)
		return fr.data, fr.cached, nil
	case <-ctx.Done():
		return nil, false, ctx.Err()
	}
}

// Package cache provides the response cache for pipeline operations: a
// networked Redis store with an in-process LRU fallback, plus single-flight
// request coalescing so concurrent identical requests share one computation.
package cache

import (
	"context"
	"time"
)

// Store is a byte-oriented key-value store with per-entry expiry.
type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value with a time-to-live.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Name identifies the backend for health reporting.
	Name() string
}

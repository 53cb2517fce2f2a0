package contracts

import (
	"context"
	"time"
)

// QueryCache is the thin query-caching wrapper every read path goes
// through: cache-aside over redis with group-based invalidation. A redis
// outage degrades to pass-through fetch; the cache is an optimization,
// never an authority.
type QueryCache interface {
	// Fetch returns the cached payload for key, calling fill on a miss and
	// registering the key under group for later invalidation.
	Fetch(ctx context.Context, group, key string, ttl time.Duration, fill func(ctx context.Context) ([]byte, error)) ([]byte, error)
	// Invalidate drops every key registered under group.
	Invalidate(ctx context.Context, group string) error
}

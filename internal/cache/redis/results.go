// Package redis implements an optional TTL cache for serialized
// recommendation responses. Embedding generation per query dominates request
// cost, so repeated queries short-circuit here.
package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/artcollab/muse/internal/observability"
)

// ResultCache stores serialized recommendation responses in Redis with a
// fixed TTL. All failures degrade to a miss or a dropped write; the cache
// never fails the request path.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultCache creates a Redis-backed result cache.
func NewResultCache(client *redis.Client, ttl time.Duration) *ResultCache {
	return &ResultCache{
		client: client,
		ttl:    ttl,
	}
}

// Key derives the cache key for a recommendation request.
func Key(description string, topK int) string {
	hash := sha256.Sum256(fmt.Appendf(nil, "%s|%d", description, topK))
	return "recommend:" + hex.EncodeToString(hash[:])
}

// Get retrieves a cached response, or ok=false on miss or error.
func (c *ResultCache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			observability.FromContext(ctx).Warn("result cache get failed",
				observability.String("key", key),
				observability.Error(err))
		}
		return nil, false
	}

	return data, true
}

// Set stores a response, best effort.
func (c *ResultCache) Set(ctx context.Context, key string, data []byte) {
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		observability.FromContext(ctx).Warn("result cache set failed",
			observability.String("key", key),
			observability.Error(err))
	}
}

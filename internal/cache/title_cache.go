package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"cinehub/internal/http-api/models"

	"github.com/redis/go-redis/v9"
)

// TitleCache is a read-through cache for title detail payloads, keyed by
// title kind and id. All methods are nil-safe: a nil *TitleCache behaves
// like a permanent miss, so the API runs fine without Redis. Redis errors
// never surface to callers; the database stays the source of truth.
type TitleCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func New(rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *TitleCache {
	return &TitleCache{rdb: rdb, ttl: ttl, logger: logger}
}

func key(ref models.TitleRef) string {
	return fmt.Sprintf("title:%s:%d", ref.Kind, ref.ID)
}

// Get unmarshals the cached payload for ref into dest and reports whether
// it was a hit.
func (c *TitleCache) Get(ctx context.Context, ref models.TitleRef, dest any) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key(ref)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("cache get failed", "key", key(ref), "error", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.logger.Debug("cache payload corrupt, dropping", "key", key(ref), "error", err)
		c.rdb.Del(ctx, key(ref))
		return false
	}
	return true
}

func (c *TitleCache) Set(ctx context.Context, ref models.TitleRef, val any) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(val)
	if err != nil {
		c.logger.Debug("cache marshal failed", "key", key(ref), "error", err)
		return
	}
	if err := c.rdb.Set(ctx, key(ref), raw, c.ttl).Err(); err != nil {
		c.logger.Debug("cache set failed", "key", key(ref), "error", err)
	}
}

// Invalidate drops the cached payloads for the given refs. Called after
// any write that changes what a title detail response would contain.
func (c *TitleCache) Invalidate(ctx context.Context, refs ...models.TitleRef) {
	if c == nil || c.rdb == nil || len(refs) == 0 {
		return
	}
	keys := make([]string, 0, len(refs))
	for _, ref := range refs {
		keys = append(keys, key(ref))
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.Debug("cache invalidate failed", "keys", keys, "error", err)
	}
}

// Flush drops every cached title payload. The rating aggregation job calls
// this after a batch run so stale averages are not served for a full TTL.
func (c *TitleCache) Flush(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	iter := c.rdb.Scan(ctx, 0, "title:*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Debug("cache scan failed", "error", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.Debug("cache flush failed", "error", err)
	}
}

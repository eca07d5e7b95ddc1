package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/threadmarket/marketplace-api/internal/api/metrics"
	"github.com/threadmarket/marketplace-api/internal/core/domain"
)

const catalogTTL = 5 * time.Minute

// CatalogCache caches catalog listings as JSON blobs. Every failure is
// non-fatal: a broken cache degrades to serving reads from Mongo.
type CatalogCache struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewCatalogCache(client *redis.Client, log zerolog.Logger) *CatalogCache {
	return &CatalogCache{client: client, log: log}
}

// GetProducts returns the cached listing for key, or ok=false on miss or error.
func (c *CatalogCache) GetProducts(ctx context.Context, key string) ([]domain.Product, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Str("key", key).Msg("catalog cache read failed")
		}
		metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("catalog cache entry corrupt, dropping")
		_ = c.client.Del(ctx, key).Err()
		metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
	return products, true
}

// SetProducts stores a listing under key with the catalog TTL.
func (c *CatalogCache) SetProducts(ctx context.Context, key string, products []domain.Product) {
	raw, err := json.Marshal(products)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("catalog cache encode failed")
		return
	}
	if err := c.client.Set(ctx, key, raw, catalogTTL).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("catalog cache write failed")
	}
}

// Invalidate drops the given cache keys.
func (c *CatalogCache) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn().Err(err).Strs("keys", keys).Msg("catalog cache invalidation failed")
	}
}

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"catalog/internal/dto"
)

// ProductCache is a redis-backed read cache for product lookups by id.
// A nil *ProductCache is valid and disables caching, so callers never have
// to branch on whether redis is configured.
type ProductCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewProductCache creates a cache on top of an existing redis client.
func NewProductCache(rdb *redis.Client, ttl time.Duration) *ProductCache {
	return &ProductCache{
		rdb: rdb,
		ttl: ttl,
	}
}

func productKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

// Get returns the cached product and true on a hit. Cache errors are logged
// and treated as misses.
func (c *ProductCache) Get(ctx context.Context, id uint) (*dto.ProductDTO, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, productKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("product cache get %d: %v", id, err)
		}
		return nil, false
	}
	var product dto.ProductDTO
	if err := json.Unmarshal(raw, &product); err != nil {
		log.Printf("product cache decode %d: %v", id, err)
		return nil, false
	}
	return &product, true
}

// Set stores the product under its id with the configured TTL.
func (c *ProductCache) Set(ctx context.Context, product *dto.ProductDTO) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(product)
	if err != nil {
		log.Printf("product cache encode %d: %v", product.ID, err)
		return
	}
	if err := c.rdb.Set(ctx, productKey(product.ID), raw, c.ttl).Err(); err != nil {
		log.Printf("product cache set %d: %v", product.ID, err)
	}
}

// Invalidate drops the cached entry for a product id.
func (c *ProductCache) Invalidate(ctx context.Context, id uint) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, productKey(id)).Err(); err != nil {
		log.Printf("product cache invalidate %d: %v", id, err)
	}
}

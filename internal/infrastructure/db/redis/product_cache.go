package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quickcart/commerce-api/internal/core/domain"
)

const cacheTTL = 5 * time.Minute

// ProductCache is a best-effort read-through cache for product details,
// keyed by slug. Redis trouble degrades to cache misses, never to request
// failures.
type ProductCache struct {
	client *redis.Client
}

// NewProductCache creates a ProductCache wrapping the given Redis client.
func NewProductCache(client *redis.Client) *ProductCache {
	return &ProductCache{client: client}
}

// Get returns the cached product for slug, if present and decodable.
func (p *ProductCache) Get(ctx context.Context, slug string) (*domain.Product, bool) {
	raw, err := p.client.Get(ctx, p.key(slug)).Bytes()
	if err != nil {
		return nil, false
	}
	var product domain.Product
	if err := json.Unmarshal(raw, &product); err != nil {
		return nil, false
	}
	return &product, true
}

// Set stores the product under its slug (expires after cacheTTL).
func (p *ProductCache) Set(ctx context.Context, product *domain.Product) {
	raw, err := json.Marshal(product)
	if err != nil {
		return
	}
	_ = p.client.Set(ctx, p.key(product.Slug), raw, cacheTTL).Err()
}

// Invalidate drops the cached entry for slug after a mutation.
func (p *ProductCache) Invalidate(ctx context.Context, slug string) {
	_ = p.client.Del(ctx, p.key(slug)).Err()
}

func (p *ProductCache) key(slug string) string {
	return "product:" + slug
}

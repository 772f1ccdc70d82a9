package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/facetime/facetime-api/internal/core/domain"
)

const defaultProductTTL = 5 * time.Minute

// ProductCache stores catalog listings as JSON.
// Keys: products:list for the unfiltered listing, products:type:<skin_type>
// for filtered ones. No skin type can produce the unfiltered key.
type ProductCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewProductCache creates a ProductCache whose entries expire after ttl.
func NewProductCache(client redis.Cmdable, ttl time.Duration) *ProductCache {
	if ttl <= 0 {
		ttl = defaultProductTTL
	}
	return &ProductCache{client: client, ttl: ttl}
}

// Get returns the cached listing for skinType and whether it was present.
func (c *ProductCache) Get(ctx context.Context, skinType string) ([]domain.Product, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	raw, err := c.client.Get(ctx, productKey(skinType)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("product cache get: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, false, fmt.Errorf("product cache decode: %w", err)
	}
	return products, true, nil
}

func (c *ProductCache) Set(ctx context.Context, skinType string, products []domain.Product) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("product cache encode: %w", err)
	}
	return c.client.Set(ctx, productKey(skinType), raw, c.ttl).Err()
}

func productKey(skinType string) string {
	if skinType == "" {
		return "products:list"
	}
	return "products:type:" + skinType
}

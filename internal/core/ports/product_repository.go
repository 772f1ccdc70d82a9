package ports

import (
	"context"

	"github.com/facetime/facetime-api/internal/core/domain"
)

// ProductRepository reads the product catalog.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	// FindBySkinTypes returns products whose skin type is any of skinTypes.
	FindBySkinTypes(ctx context.Context, skinTypes ...string) ([]domain.Product, error)
}

// ProductCache caches catalog listings keyed by the requested skin type.
// An empty skin type stands for the unfiltered listing.
type ProductCache interface {
	Get(ctx context.Context, skinType string) ([]domain.Product, bool, error)
	Set(ctx context.Context, skinType string, products []domain.Product) error
}

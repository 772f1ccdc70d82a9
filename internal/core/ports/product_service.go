package ports

import (
	"context"

	"github.com/facetime/facetime-api/internal/core/domain"
)

type ProductService interface {
	ListProducts(ctx context.Context, skinType string) ([]domain.Product, error)
}

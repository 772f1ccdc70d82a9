package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/facetime/facetime-api/internal/api/metrics"
	"github.com/facetime/facetime-api/internal/core/domain"
	"github.com/facetime/facetime-api/internal/core/ports"
)

type ProductService struct {
	repo   ports.ProductRepository
	cache  ports.ProductCache
	logger zerolog.Logger
}

// NewProductService wires the catalog. cache may be nil to disable caching.
func NewProductService(repo ports.ProductRepository, cache ports.ProductCache, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, logger: logger}
}

// ListProducts returns the whole catalog when skinType is blank, otherwise the
// products for skinType together with those marked domain.SkinTypeAll.
func (s *ProductService) ListProducts(ctx context.Context, skinType string) ([]domain.Product, error) {
	skinType = strings.TrimSpace(skinType)

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, skinType)
		switch {
		case err != nil:
			metrics.ProductCacheLookupsTotal.WithLabelValues("error").Inc()
			s.logger.Warn().Err(err).Str("skin_type", skinType).Msg("product cache read failed")
		case ok:
			metrics.ProductCacheLookupsTotal.WithLabelValues("hit").Inc()
			return cached, nil
		default:
			metrics.ProductCacheLookupsTotal.WithLabelValues("miss").Inc()
		}
	}

	var (
		products []domain.Product
		err      error
	)
	if skinType == "" {
		products, err = s.repo.FindAll(ctx)
	} else {
		products, err = s.repo.FindBySkinTypes(ctx, skinType, domain.SkinTypeAll)
	}
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	sort.SliceStable(products, func(i, j int) bool { return products[i].ID < products[j].ID })

	if s.cache != nil {
		if err := s.cache.Set(ctx, skinType, products); err != nil {
			s.logger.Warn().Err(err).Str("skin_type", skinType).Msg("product cache write failed")
		}
	}

	return products, nil
}

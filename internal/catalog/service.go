package catalog

import (
	"context"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"

	"github.com/panier-labs/backend-panier/internal/common"
)

const productListCacheKey = "catalog:products"

// Service exposes read operations over the product catalog.
type Service struct {
	store Store
	cache *Cache
}

// ServiceConfig configures the Service dependencies.
type ServiceConfig struct {
	Store Store
	Cache *Cache
}

// NewService constructs a Service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Store == nil {
		return nil, errors.New("catalog: store is required")
	}
	return &Service{store: cfg.Store, cache: cfg.Cache}, nil
}

// ListProducts returns the full catalog, serving from cache when possible.
// Cache failures fall back to the store rather than failing the request.
func (s *Service) ListProducts(ctx context.Context) ([]Product, error) {
	var cached []Product
	if hit, err := s.cache.GetJSON(ctx, productListCacheKey, &cached); err == nil && hit {
		return cached, nil
	}
	products, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetJSON(ctx, productListCacheKey, products)
	return products, nil
}

// GetProduct fetches one product by id.
func (s *Service) GetProduct(ctx context.Context, id int64) (Product, error) {
	product, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, common.NewAppError("NOT_FOUND", "product not found", http.StatusNotFound, err)
		}
		return Product{}, err
	}
	return product, nil
}

// ProductsByIDs fetches the products present in the id set, keyed by id.
func (s *Service) ProductsByIDs(ctx context.Context, ids []int64) (map[int64]Product, error) {
	products, err := s.store.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID, nil
}

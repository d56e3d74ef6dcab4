package basket

import (
	"context"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"

	"github.com/panier-labs/backend-panier/internal/catalog"
	"github.com/panier-labs/backend-panier/internal/client"
	"github.com/panier-labs/backend-panier/internal/common"
	"github.com/panier-labs/backend-panier/internal/pricing"
)

// Input is the shared request payload for quoting and persisting a basket.
// The category tag is not constrained to the recognised values here: any
// non-individual category resolves against the business client table, the
// item contents stay unvalidated, and quantity may be any integer.
type Input struct {
	Category pricing.Category `json:"category" validate:"required"`
	ClientID int64            `json:"client_id" validate:"required"`
	Items    []ItemRequest    `json:"items" validate:"required,min=1"`
}

// Service computes basket quotes and persists baskets.
type Service struct {
	Clients  client.Store
	Products catalog.Store
	Baskets  Store
}

// Quote fetches the client and the referenced products, then prices the
// basket. A missing client is a hard not-found; missing products are
// dropped per line inside BuildQuote.
func (s *Service) Quote(ctx context.Context, in Input) (Quote, error) {
	if s == nil || s.Clients == nil || s.Products == nil {
		return Quote{}, errors.New("basket service not configured")
	}
	c, err := s.Clients.GetByCategory(ctx, in.Category, in.ClientID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Quote{}, common.NewAppError("NOT_FOUND", "client not found", http.StatusNotFound, err)
		}
		return Quote{}, common.NewAppError("STORE_ERROR", "unable to load client", http.StatusInternalServerError, err)
	}

	ids := make([]int64, 0, len(in.Items))
	for _, item := range in.Items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.Products.ListByIDs(ctx, ids)
	if err != nil {
		return Quote{}, common.NewAppError("STORE_ERROR", "unable to load products", http.StatusInternalServerError, err)
	}
	byID := make(map[int64]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	return BuildQuote(c, byID, in.Items), nil
}

// Create persists the basket without re-checking the client reference; the
// storage layer guarantees basket row and items land together.
func (s *Service) Create(ctx context.Context, in Input) (int64, error) {
	if s == nil || s.Baskets == nil {
		return 0, errors.New("basket service not configured")
	}
	id, err := s.Baskets.Create(ctx, in.Category, in.ClientID, in.Items)
	if err != nil {
		return 0, common.NewAppError("STORE_ERROR", "unable to create basket", http.StatusInternalServerError, err)
	}
	return id, nil
}

// List returns all persisted baskets, most recent first.
func (s *Service) List(ctx context.Context) ([]Basket, error) {
	if s == nil || s.Baskets == nil {
		return nil, errors.New("basket service not configured")
	}
	baskets, err := s.Baskets.List(ctx)
	if err != nil {
		return nil, common.NewAppError("STORE_ERROR", "unable to list baskets", http.StatusInternalServerError, err)
	}
	return baskets, nil
}

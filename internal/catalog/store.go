package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/panier-labs/backend-panier/internal/pricing"
)

// ErrStoreUnavailable indicates the product store dependency is not configured.
var ErrStoreUnavailable = errors.New("catalog: store unavailable")

// Product is a catalog entry carrying the three tier prices.
type Product struct {
	ID                int64   `json:"id"`
	Code              string  `json:"code"`
	Name              string  `json:"name"`
	IndividualPrice   float64 `json:"individual_price"`
	BusinessHighPrice float64 `json:"business_high_price"`
	BusinessLowPrice  float64 `json:"business_low_price"`
}

// Tiers adapts the product's price points for the pricing engine.
func (p Product) Tiers() pricing.Tiers {
	return pricing.Tiers{
		Individual:   p.IndividualPrice,
		BusinessHigh: p.BusinessHighPrice,
		BusinessLow:  p.BusinessLowPrice,
	}
}

// Store provides database accessors for products.
type Store interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id int64) (Product, error)
	ListByIDs(ctx context.Context, ids []int64) ([]Product, error)
}

// NewStore constructs a Store backed by a pgx connection pool.
func NewStore(pool *pgxpool.Pool) Store {
	return &pgStore{pool: pool}
}

type pgStore struct {
	pool *pgxpool.Pool
}

const productColumns = `id, code, name, individual_price, business_high_price, business_low_price`

// List returns every product in insertion order.
func (s *pgStore) List(ctx context.Context) ([]Product, error) {
	if s == nil || s.pool == nil {
		return nil, ErrStoreUnavailable
	}
	rows, err := s.pool.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

// Get fetches a single product by id. Missing rows surface as pgx.ErrNoRows.
func (s *pgStore) Get(ctx context.Context, id int64) (Product, error) {
	if s == nil || s.pool == nil {
		return Product{}, ErrStoreUnavailable
	}
	row := s.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	var p Product
	if err := row.Scan(&p.ID, &p.Code, &p.Name, &p.IndividualPrice, &p.BusinessHighPrice, &p.BusinessLowPrice); err != nil {
		return Product{}, err
	}
	return p, nil
}

// ListByIDs fetches the subset of products whose ids appear in the given set.
// Unknown ids simply produce no row.
func (s *pgStore) ListByIDs(ctx context.Context, ids []int64) ([]Product, error) {
	if s == nil || s.pool == nil {
		return nil, ErrStoreUnavailable
	}
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.pool.Query(ctx, `SELECT `+productColumns+` FROM products WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func scanProducts(rows pgx.Rows) ([]Product, error) {
	products := make([]Product, 0, 8)
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.IndividualPrice, &p.BusinessHighPrice, &p.BusinessLowPrice); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

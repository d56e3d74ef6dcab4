package basket

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/panier-labs/backend-panier/internal/pricing"
)

// ErrStoreUnavailable indicates the basket store dependency is not configured.
var ErrStoreUnavailable = errors.New("basket: store unavailable")

// Basket is a persisted basket row with its line items compacted into the
// "product_id:quantity,..." encoding used by the listing endpoint.
type Basket struct {
	ID             int64            `json:"id"`
	ClientCategory pricing.Category `json:"client_category"`
	ClientID       int64            `json:"client_id"`
	CreatedAt      time.Time        `json:"created_at"`
	Items          string           `json:"items"`
}

// Store provides database accessors for baskets.
type Store interface {
	Create(ctx context.Context, category pricing.Category, clientID int64, items []ItemRequest) (int64, error)
	List(ctx context.Context) ([]Basket, error)
}

// NewStore constructs a Store backed by a pgx connection pool.
func NewStore(pool *pgxpool.Pool) Store {
	return &pgStore{pool: pool}
}

type pgStore struct {
	pool *pgxpool.Pool
}

// Create persists the basket row and all its line items in one transaction.
func (s *pgStore) Create(ctx context.Context, category pricing.Category, clientID int64, items []ItemRequest) (int64, error) {
	if s == nil || s.pool == nil {
		return 0, ErrStoreUnavailable
	}
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var basketID int64
	err = tx.QueryRow(ctx, `INSERT INTO baskets (client_category, client_id) VALUES ($1, $2) RETURNING id`,
		string(category), clientID).Scan(&basketID)
	if err != nil {
		return 0, err
	}
	for _, item := range items {
		if _, err := tx.Exec(ctx, `INSERT INTO basket_items (basket_id, product_id, quantity) VALUES ($1, $2, $3)`,
			basketID, item.ProductID, item.Quantity); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return basketID, nil
}

// List returns all baskets most-recently-created first, each with its
// compact item encoding.
func (s *pgStore) List(ctx context.Context) ([]Basket, error) {
	if s == nil || s.pool == nil {
		return nil, ErrStoreUnavailable
	}
	rows, err := s.pool.Query(ctx, `SELECT b.id, b.client_category, b.client_id, b.created_at,
       COALESCE(string_agg(bi.product_id::text || ':' || bi.quantity::text, ',' ORDER BY bi.id), '') AS items
FROM baskets b
LEFT JOIN basket_items bi ON bi.basket_id = b.id
GROUP BY b.id
ORDER BY b.created_at DESC, b.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	baskets := make([]Basket, 0, 16)
	for rows.Next() {
		var b Basket
		var category string
		if err := rows.Scan(&b.ID, &category, &b.ClientID, &b.CreatedAt, &b.Items); err != nil {
			return nil, err
		}
		b.ClientCategory = pricing.Category(category)
		baskets = append(baskets, b)
	}
	return baskets, rows.Err()
}

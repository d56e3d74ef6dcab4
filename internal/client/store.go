package client

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/panier-labs/backend-panier/internal/pricing"
)

// ErrStoreUnavailable indicates the client store dependency is not configured.
var ErrStoreUnavailable = errors.New("client: store unavailable")

// IndividualInput captures the payload for creating an individual client.
type IndividualInput struct {
	Identifier string
	FirstName  string
	LastName   string
}

// BusinessInput captures the payload for creating a business client.
type BusinessInput struct {
	Identifier         string
	LegalName          string
	TaxNumber          string
	RegistrationNumber string
	Revenue            float64
}

// Store provides database accessors for both client variants.
type Store interface {
	CreateIndividual(ctx context.Context, input IndividualInput) (Client, error)
	CreateBusiness(ctx context.Context, input BusinessInput) (Client, error)
	List(ctx context.Context) ([]Client, error)
	GetByCategory(ctx context.Context, category pricing.Category, id int64) (Client, error)
}

// NewStore constructs a Store backed by a pgx connection pool.
func NewStore(pool *pgxpool.Pool) Store {
	return &pgStore{pool: pool}
}

type pgStore struct {
	pool *pgxpool.Pool
}

// CreateIndividual inserts an individual client and returns the stored row.
func (s *pgStore) CreateIndividual(ctx context.Context, input IndividualInput) (Client, error) {
	if s == nil || s.pool == nil {
		return Client{}, ErrStoreUnavailable
	}
	c := Client{
		Category:   pricing.CategoryIndividual,
		Identifier: input.Identifier,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
	}
	err := s.pool.QueryRow(ctx, `INSERT INTO individual_clients (identifier, first_name, last_name)
VALUES ($1, $2, $3) RETURNING id, created_at`, input.Identifier, input.FirstName, input.LastName).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return Client{}, err
	}
	return c, nil
}

// CreateBusiness inserts a business client and returns the stored row.
func (s *pgStore) CreateBusiness(ctx context.Context, input BusinessInput) (Client, error) {
	if s == nil || s.pool == nil {
		return Client{}, ErrStoreUnavailable
	}
	revenue := input.Revenue
	c := Client{
		Category:           pricing.CategoryBusiness,
		Identifier:         input.Identifier,
		LegalName:          input.LegalName,
		TaxNumber:          input.TaxNumber,
		RegistrationNumber: input.RegistrationNumber,
		Revenue:            &revenue,
	}
	err := s.pool.QueryRow(ctx, `INSERT INTO business_clients (identifier, legal_name, tax_number, registration_number, revenue)
VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		input.Identifier, input.LegalName, input.TaxNumber, input.RegistrationNumber, input.Revenue).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return Client{}, err
	}
	return c, nil
}

// List returns all clients of both categories, individuals first.
func (s *pgStore) List(ctx context.Context) ([]Client, error) {
	if s == nil || s.pool == nil {
		return nil, ErrStoreUnavailable
	}
	clients := make([]Client, 0, 16)

	rows, err := s.pool.Query(ctx, `SELECT id, identifier, first_name, last_name, created_at FROM individual_clients ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		c := Client{Category: pricing.CategoryIndividual}
		if err := rows.Scan(&c.ID, &c.Identifier, &c.FirstName, &c.LastName, &c.CreatedAt); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	brows, err := s.pool.Query(ctx, `SELECT id, identifier, legal_name, tax_number, registration_number, revenue, created_at FROM business_clients ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer brows.Close()
	for brows.Next() {
		c := Client{Category: pricing.CategoryBusiness}
		var taxNumber sql.NullString
		var revenue float64
		if err := brows.Scan(&c.ID, &c.Identifier, &c.LegalName, &taxNumber, &c.RegistrationNumber, &revenue, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.TaxNumber = taxNumber.String
		c.Revenue = &revenue
		clients = append(clients, c)
	}
	return clients, brows.Err()
}

// GetByCategory fetches one client. Any category other than individual
// resolves against the business table; missing rows surface as pgx.ErrNoRows.
func (s *pgStore) GetByCategory(ctx context.Context, category pricing.Category, id int64) (Client, error) {
	if s == nil || s.pool == nil {
		return Client{}, ErrStoreUnavailable
	}
	if category.IsIndividual() {
		c := Client{Category: pricing.CategoryIndividual}
		err := s.pool.QueryRow(ctx, `SELECT id, identifier, first_name, last_name, created_at FROM individual_clients WHERE id = $1`, id).
			Scan(&c.ID, &c.Identifier, &c.FirstName, &c.LastName, &c.CreatedAt)
		if err != nil {
			return Client{}, err
		}
		return c, nil
	}

	c := Client{Category: pricing.CategoryBusiness}
	var taxNumber sql.NullString
	var revenue float64
	err := s.pool.QueryRow(ctx, `SELECT id, identifier, legal_name, tax_number, registration_number, revenue, created_at FROM business_clients WHERE id = $1`, id).
		Scan(&c.ID, &c.Identifier, &c.LegalName, &taxNumber, &c.RegistrationNumber, &revenue, &c.CreatedAt)
	if err != nil {
		return Client{}, err
	}
	c.TaxNumber = taxNumber.String
	c.Revenue = &revenue
	return c, nil
}

package client

import (
	"strings"
	"time"

	"github.com/panier-labs/backend-panier/internal/pricing"
)

// Client is the single variant type covering both billing categories. The
// Category tag selects which of the optional field groups is meaningful:
// individual clients carry first/last name, business clients carry the
// legal-entity fields and annual revenue.
type Client struct {
	ID                 int64            `json:"id"`
	Category           pricing.Category `json:"category"`
	Identifier         string           `json:"identifier"`
	FirstName          string           `json:"first_name,omitempty"`
	LastName           string           `json:"last_name,omitempty"`
	LegalName          string           `json:"legal_name,omitempty"`
	TaxNumber          string           `json:"tax_number,omitempty"`
	RegistrationNumber string           `json:"registration_number,omitempty"`
	Revenue            *float64         `json:"revenue,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
}

// DisplayName returns the human-readable name for the active variant.
func (c Client) DisplayName() string {
	if c.Category.IsIndividual() {
		return strings.TrimSpace(c.FirstName + " " + c.LastName)
	}
	return c.LegalName
}

// RevenueFigure returns the annual revenue, zero when the variant has none.
func (c Client) RevenueFigure() float64 {
	if c.Revenue == nil {
		return 0
	}
	return *c.Revenue
}

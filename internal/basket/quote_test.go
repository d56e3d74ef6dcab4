package basket

import (
	"testing"

	"github.com/panier-labs/backend-panier/internal/catalog"
	"github.com/panier-labs/backend-panier/internal/client"
	"github.com/panier-labs/backend-panier/internal/pricing"
)

func productSet() map[int64]catalog.Product {
	return map[int64]catalog.Product{
		1: {ID: 1, Code: "PHONE_HIGH", Name: "High-End Phone", IndividualPrice: 1500, BusinessHighPrice: 1000, BusinessLowPrice: 1150},
		3: {ID: 3, Code: "LAPTOP", Name: "Laptop", IndividualPrice: 1200, BusinessHighPrice: 900, BusinessLowPrice: 1000},
	}
}

func individualClient() client.Client {
	return client.Client{
		ID:         1,
		Category:   pricing.CategoryIndividual,
		Identifier: "PART001",
		FirstName:  "Jean",
		LastName:   "Dupont",
	}
}

func businessClient(revenue float64) client.Client {
	return client.Client{
		ID:         1,
		Category:   pricing.CategoryBusiness,
		Identifier: "PRO001",
		LegalName:  "TechCorp SA",
		Revenue:    &revenue,
	}
}

func TestQuoteIndividualBasket(t *testing.T) {
	quote := BuildQuote(individualClient(), productSet(), []ItemRequest{
		{ProductID: 1, Quantity: 2},
		{ProductID: 3, Quantity: 1},
	})
	if quote.Total != 4200 {
		t.Fatalf("expected total 4200, got %v", quote.Total)
	}
	if len(quote.Details) != 2 {
		t.Fatalf("expected 2 detail lines, got %d", len(quote.Details))
	}
	if quote.Details[0].Product != "High-End Phone" || quote.Details[0].Subtotal != 3000 {
		t.Fatalf("unexpected first line: %+v", quote.Details[0])
	}
	if quote.Client.Name != "Jean Dupont" {
		t.Fatalf("expected client name Jean Dupont, got %q", quote.Client.Name)
	}
}

func TestQuoteBusinessHighTier(t *testing.T) {
	quote := BuildQuote(businessClient(15_000_000), productSet(), []ItemRequest{
		{ProductID: 1, Quantity: 3},
	})
	if quote.Total != 3000 {
		t.Fatalf("expected total 3000, got %v", quote.Total)
	}
	if quote.Details[0].UnitPrice != 1000 {
		t.Fatalf("expected business-high unit price 1000, got %v", quote.Details[0].UnitPrice)
	}
}

func TestQuoteBusinessLowTierAtBoundary(t *testing.T) {
	quote := BuildQuote(businessClient(10_000_000), productSet(), []ItemRequest{
		{ProductID: 1, Quantity: 1},
	})
	if quote.Details[0].UnitPrice != 1150 {
		t.Fatalf("expected business-low price at the boundary, got %v", quote.Details[0].UnitPrice)
	}
}

func TestQuoteSkipsUnknownProducts(t *testing.T) {
	quote := BuildQuote(individualClient(), productSet(), []ItemRequest{
		{ProductID: 1, Quantity: 1},
		{ProductID: 99, Quantity: 5},
	})
	if len(quote.Details) != 1 {
		t.Fatalf("expected unknown product skipped, got %d lines", len(quote.Details))
	}
	if quote.Total != 1500 {
		t.Fatalf("expected total 1500, got %v", quote.Total)
	}
}

func TestQuoteAllProductsUnknown(t *testing.T) {
	quote := BuildQuote(individualClient(), productSet(), []ItemRequest{
		{ProductID: 50, Quantity: 1},
		{ProductID: 51, Quantity: 2},
	})
	if len(quote.Details) != 0 || quote.Total != 0 {
		t.Fatalf("expected empty quote, got %+v", quote)
	}
}

func TestQuotePreservesInputOrder(t *testing.T) {
	quote := BuildQuote(individualClient(), productSet(), []ItemRequest{
		{ProductID: 3, Quantity: 1},
		{ProductID: 99, Quantity: 1},
		{ProductID: 1, Quantity: 1},
	})
	if len(quote.Details) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(quote.Details))
	}
	if quote.Details[0].Product != "Laptop" || quote.Details[1].Product != "High-End Phone" {
		t.Fatalf("expected input order preserved, got %+v", quote.Details)
	}
}

func TestQuoteNegativeRevenueIsLowTier(t *testing.T) {
	quote := BuildQuote(businessClient(-1), productSet(), []ItemRequest{
		{ProductID: 3, Quantity: 2},
	})
	if quote.Total != 2000 {
		t.Fatalf("expected business-low total 2000, got %v", quote.Total)
	}
}

func TestQuoteQuantityPassesThroughUnvalidated(t *testing.T) {
	quote := BuildQuote(individualClient(), productSet(), []ItemRequest{
		{ProductID: 1, Quantity: 0},
	})
	if len(quote.Details) != 1 || quote.Total != 0 {
		t.Fatalf("expected zero-quantity line kept with zero subtotal, got %+v", quote)
	}
}

package basket

import (
	"github.com/panier-labs/backend-panier/internal/catalog"
	"github.com/panier-labs/backend-panier/internal/client"
	"github.com/panier-labs/backend-panier/internal/pricing"
)

// ItemRequest is one requested (product, quantity) line. Quantity is not
// validated positive; values pass through arithmetic as given.
type ItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// LineDetail is one priced line of a basket quote.
type LineDetail struct {
	Product   string  `json:"product"`
	Quantity  int64   `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// ClientSummary identifies the quoted client.
type ClientSummary struct {
	Category pricing.Category `json:"category"`
	Name     string           `json:"name"`
}

// Quote is the result of pricing a basket request.
type Quote struct {
	Client  ClientSummary `json:"client"`
	Details []LineDetail  `json:"details"`
	Total   float64       `json:"total"`
}

// BuildQuote prices the requested lines against a pre-fetched product set.
// Lines whose product id resolves to nothing are dropped silently: they
// contribute neither a detail line nor anything to the total. Output order
// follows input order. Accumulation is plain float64 addition.
func BuildQuote(c client.Client, products map[int64]catalog.Product, items []ItemRequest) Quote {
	revenue := 0.0
	if !c.Category.IsIndividual() {
		revenue = c.RevenueFigure()
	}

	details := make([]LineDetail, 0, len(items))
	var total float64
	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok {
			continue
		}
		unitPrice := pricing.UnitPrice(product.Tiers(), c.Category, revenue)
		subtotal := unitPrice * float64(item.Quantity)
		total += subtotal
		details = append(details, LineDetail{
			Product:   product.Name,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
			Subtotal:  subtotal,
		})
	}

	return Quote{
		Client: ClientSummary{
			Category: c.Category,
			Name:     c.DisplayName(),
		},
		Details: details,
		Total:   total,
	}
}

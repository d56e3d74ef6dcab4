package pricing

// Category identifies the billing category of a client.
type Category string

const (
	// CategoryIndividual is billed at the flat individual price.
	CategoryIndividual Category = "individual"
	// CategoryBusiness is billed at one of two tiers based on annual revenue.
	CategoryBusiness Category = "business"
)

// RevenueThreshold separates the two business tiers. Revenue strictly above
// it resolves to the high tier; the threshold itself stays in the low tier.
const RevenueThreshold = 10_000_000

// Tiers holds the three price points carried by every product.
type Tiers struct {
	Individual   float64
	BusinessHigh float64
	BusinessLow  float64
}

// IsIndividual reports whether the category is the individual one. Any other
// value, recognised or not, resolves against the business rules.
func (c Category) IsIndividual() bool {
	return c == CategoryIndividual
}

// Valid reports whether the category is one of the two recognised tags.
func (c Category) Valid() bool {
	return c == CategoryIndividual || c == CategoryBusiness
}

// UnitPrice resolves the unit price for a client of the given category.
// The revenue argument is ignored for individual clients. Values pass
// through as given: no rounding, no currency handling.
func UnitPrice(t Tiers, category Category, revenue float64) float64 {
	if category.IsIndividual() {
		return t.Individual
	}
	if revenue > RevenueThreshold {
		return t.BusinessHigh
	}
	return t.BusinessLow
}

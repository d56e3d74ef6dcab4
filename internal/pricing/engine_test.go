package pricing

import "testing"

var phoneHigh = Tiers{Individual: 1500, BusinessHigh: 1000, BusinessLow: 1150}

func TestUnitPriceIndividual(t *testing.T) {
	for _, revenue := range []float64{0, 5_000_000, 50_000_000, -1} {
		got := UnitPrice(phoneHigh, CategoryIndividual, revenue)
		if got != 1500 {
			t.Fatalf("revenue %v: expected 1500, got %v", revenue, got)
		}
	}
}

func TestUnitPriceBusinessTiers(t *testing.T) {
	cases := []struct {
		revenue float64
		want    float64
	}{
		{revenue: 15_000_000, want: 1000},
		{revenue: 10_000_001, want: 1000},
		{revenue: 10_000_000, want: 1150},
		{revenue: 5_000_000, want: 1150},
		{revenue: 0, want: 1150},
		{revenue: -500, want: 1150},
	}
	for _, tc := range cases {
		got := UnitPrice(phoneHigh, CategoryBusiness, tc.revenue)
		if got != tc.want {
			t.Fatalf("revenue %v: expected %v, got %v", tc.revenue, tc.want, got)
		}
	}
}

func TestUnitPriceUnknownCategoryFollowsBusinessRules(t *testing.T) {
	got := UnitPrice(phoneHigh, Category("wholesale"), 20_000_000)
	if got != 1000 {
		t.Fatalf("expected business-high 1000, got %v", got)
	}
}

func TestUnitPricePassesValuesThrough(t *testing.T) {
	tiers := Tiers{Individual: 0, BusinessHigh: 9.99, BusinessLow: 0.5}
	if got := UnitPrice(tiers, CategoryIndividual, 0); got != 0 {
		t.Fatalf("expected zero price to pass through, got %v", got)
	}
	if got := UnitPrice(tiers, CategoryBusiness, RevenueThreshold+1); got != 9.99 {
		t.Fatalf("expected 9.99, got %v", got)
	}
}

func TestCategoryValid(t *testing.T) {
	if !CategoryIndividual.Valid() || !CategoryBusiness.Valid() {
		t.Fatal("expected recognised categories to be valid")
	}
	if Category("reseller").Valid() {
		t.Fatal("expected unrecognised category to be invalid")
	}
}

package models

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
	}{
		{"Restaurants", CategoryRestaurants},
		{"restaurants", CategoryRestaurants},
		{"Restaurantes", CategoryRestaurants},
		{"  Delivery  ", CategoryDelivery},
		{"Supermercado", CategorySupermarket},
		{"Suscripciones", CategorySubscriptions},
		{"made-up category", CategoryOther},
		{"", CategoryOther},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseCategory(tt.input); got != tt.want {
				t.Errorf("ParseCategory(%q): got %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestEssentialSetsAreDisjoint(t *testing.T) {
	for _, cat := range AllCategories {
		if cat.IsEssential() && cat.IsNonEssential() {
			t.Errorf("%s is in both essential and non-essential sets", cat)
		}
	}
}

func TestNeitherSetCategories(t *testing.T) {
	// Transfers and Investments are money movement, not consumption; they
	// belong to neither side of the needs/wants split.
	for _, cat := range []Category{CategoryTransfers, CategoryInvestments, CategoryOther} {
		if cat.IsEssential() || cat.IsNonEssential() {
			t.Errorf("%s should be uncounted in the split", cat)
		}
	}
}

func TestCurrencySymbol(t *testing.T) {
	tests := []struct {
		currency string
		want     string
	}{
		{"EUR", "€"},
		{"USD", "$"},
		{"BRL", "R$"},
		{"PEN", "S/"},
		{"XYZ", "$"},
		{"", "$"},
	}
	for _, tt := range tests {
		p := UserProfile{Currency: tt.currency}
		if got := p.CurrencySymbol(); got != tt.want {
			t.Errorf("%q: got %s, want %s", tt.currency, got, tt.want)
		}
	}
}

// backend/src/models/profile.go
package models

// UserProfile holds the per-session financial profile. It is supplied once at
// session creation, mutated only through explicit profile edits, and read-only
// to the analytics engine.
type UserProfile struct {
	Name           string  `json:"name"`
	Age            int     `json:"age"`
	MonthlyIncome  float64 `json:"monthlyIncome"`
	MonthlyDebt    float64 `json:"monthlyDebt"`
	CurrentSavings float64 `json:"currentSavings"`
	SavingsGoal    float64 `json:"savingsGoal"`
	Country        string  `json:"country"`  // ISO code, e.g. "CO"
	Currency       string  `json:"currency"` // output currency code, e.g. "USD"
}

// CountryInfo describes a supported country and its local currency.
type CountryInfo struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
	Symbol   string `json:"symbol"`
}

// Countries is the fixed set the profile picker offers.
var Countries = []CountryInfo{
	{Code: "CO", Name: "Colombia", Currency: "COP", Symbol: "$"},
	{Code: "MX", Name: "Mexico", Currency: "MXN", Symbol: "$"},
	{Code: "AR", Name: "Argentina", Currency: "ARS", Symbol: "$"},
	{Code: "CL", Name: "Chile", Currency: "CLP", Symbol: "$"},
	{Code: "PE", Name: "Peru", Currency: "PEN", Symbol: "S/"},
	{Code: "BR", Name: "Brazil", Currency: "BRL", Symbol: "R$"},
	{Code: "US", Name: "United States", Currency: "USD", Symbol: "$"},
	{Code: "ES", Name: "Spain", Currency: "EUR", Symbol: "€"},
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"COP": "$",
	"MXN": "$",
	"ARS": "$",
	"CLP": "$",
	"PEN": "S/",
	"BRL": "R$",
}

// CurrencySymbol returns the display symbol for the profile's output currency,
// defaulting to "$".
func (p UserProfile) CurrencySymbol() string {
	if sym, ok := currencySymbols[p.Currency]; ok {
		return sym
	}
	return "$"
}

// backend/src/models/category.go
package models

import "strings"

// Category is the closed set of spending categories. Every transaction carries
// exactly one of these; anything the extractor emits that we do not recognize
// collapses into CategoryOther.
type Category string

const (
	CategoryRestaurants   Category = "Restaurants"
	CategoryDelivery      Category = "Delivery"
	CategoryTransport     Category = "Transport"
	CategorySupermarket   Category = "Supermarket"
	CategoryConvenience   Category = "Convenience"
	CategoryEntertainment Category = "Entertainment"
	CategoryHealth        Category = "Health"
	CategoryInvestments   Category = "Investments"
	CategoryShopping      Category = "Shopping"
	CategoryServices      Category = "Services"
	CategoryTravel        Category = "Travel"
	CategorySubscriptions Category = "Subscriptions"
	CategoryTransfers     Category = "Transfers"
	CategoryEducation     Category = "Education"
	CategoryCafes         Category = "Cafes"
	CategoryFood          Category = "Food"
	CategoryGambling      Category = "Gambling"
	CategoryGovernment    Category = "Government"
	CategoryTelecom       Category = "Telecom"
	CategoryFuel          Category = "Fuel"
	CategoryPets          Category = "Pets"
	CategoryGym           Category = "Gym"
	CategoryHome          Category = "Home"
	CategoryOther         Category = "Other"
)

// AllCategories lists every known category, in a stable order.
var AllCategories = []Category{
	CategoryRestaurants, CategoryDelivery, CategoryTransport, CategorySupermarket,
	CategoryConvenience, CategoryEntertainment, CategoryHealth, CategoryInvestments,
	CategoryShopping, CategoryServices, CategoryTravel, CategorySubscriptions,
	CategoryTransfers, CategoryEducation, CategoryCafes, CategoryFood,
	CategoryGambling, CategoryGovernment, CategoryTelecom, CategoryFuel,
	CategoryPets, CategoryGym, CategoryHome, CategoryOther,
}

// categoryAliases maps lowercased source labels to categories. The extraction
// model is prompted with the English labels, but statements from LatAm banks
// often come back with the Spanish ones, so both are accepted.
var categoryAliases = map[string]Category{
	"restaurants":        CategoryRestaurants,
	"restaurantes":       CategoryRestaurants,
	"delivery":           CategoryDelivery,
	"transport":          CategoryTransport,
	"transporte":         CategoryTransport,
	"supermarket":        CategorySupermarket,
	"supermercado":       CategorySupermarket,
	"convenience":        CategoryConvenience,
	"conveniencia":       CategoryConvenience,
	"entertainment":      CategoryEntertainment,
	"entretenimiento":    CategoryEntertainment,
	"health":             CategoryHealth,
	"salud":              CategoryHealth,
	"investments":        CategoryInvestments,
	"inversiones":        CategoryInvestments,
	"shopping":           CategoryShopping,
	"compras":            CategoryShopping,
	"services":           CategoryServices,
	"servicios":          CategoryServices,
	"travel":             CategoryTravel,
	"viajes":             CategoryTravel,
	"subscriptions":      CategorySubscriptions,
	"suscripciones":      CategorySubscriptions,
	"transfers":          CategoryTransfers,
	"transferencias":     CategoryTransfers,
	"education":          CategoryEducation,
	"educación":          CategoryEducation,
	"educacion":          CategoryEducation,
	"cafes":              CategoryCafes,
	"cafés":              CategoryCafes,
	"food":               CategoryFood,
	"comida":             CategoryFood,
	"gambling":           CategoryGambling,
	"apuestas":           CategoryGambling,
	"government":         CategoryGovernment,
	"gobierno":           CategoryGovernment,
	"telecom":            CategoryTelecom,
	"telecommunications": CategoryTelecom,
	"telecomunicaciones": CategoryTelecom,
	"fuel":               CategoryFuel,
	"gasolina":           CategoryFuel,
	"pets":               CategoryPets,
	"mascotas":           CategoryPets,
	"gym":                CategoryGym,
	"gimnasio":           CategoryGym,
	"home":               CategoryHome,
	"hogar":              CategoryHome,
	"other":              CategoryOther,
	"otros":              CategoryOther,
}

// ParseCategory resolves a raw label to a Category, falling back to Other.
func ParseCategory(raw string) Category {
	if c, ok := categoryAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return c
	}
	return CategoryOther
}

// EssentialCategories and NonEssentialCategories partition the spend
// categories into needs and wants. Categories in neither set (Transfers,
// Investments, Government, ...) are excluded from the needs/wants ratio.
var EssentialCategories = []Category{
	CategorySupermarket, CategoryHealth, CategoryTransport, CategoryServices,
	CategoryTelecom, CategoryEducation, CategoryHome, CategoryFuel,
}

var NonEssentialCategories = []Category{
	CategoryRestaurants, CategoryDelivery, CategoryEntertainment, CategoryShopping,
	CategoryCafes, CategoryGambling, CategoryTravel, CategorySubscriptions,
}

var (
	essentialSet    = toSet(EssentialCategories)
	nonEssentialSet = toSet(NonEssentialCategories)
)

func toSet(cats []Category) map[Category]bool {
	set := make(map[Category]bool, len(cats))
	for _, c := range cats {
		set[c] = true
	}
	return set
}

// IsEssential reports whether the category belongs to the fixed needs set.
func (c Category) IsEssential() bool { return essentialSet[c] }

// IsNonEssential reports whether the category belongs to the fixed wants set.
func (c Category) IsNonEssential() bool { return nonEssentialSet[c] }

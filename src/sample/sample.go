// backend/src/sample/sample.go

// Package sample provides the deterministic fallback dataset used when
// statement extraction yields nothing usable. The data is synthetic but
// shaped like a real statement: recurring subscriptions, weekly groceries,
// payday-adjacent splurges, spread over the four most recent months.
package sample

import (
	"fmt"
	"time"

	"github.com/username/finsight/backend/src/models"
	"github.com/username/finsight/backend/src/utils"
)

// entry is one synthetic purchase template, placed relative to a month.
type entry struct {
	day         int
	hour        int
	amount      float64
	category    models.Category
	merchant    string
	description string
	everyMonth  bool // recurring charge, emitted in all four months
}

var entries = []entry{
	// Recurring charges, same day every month.
	{3, 10, 15.99, models.CategorySubscriptions, "Streamflix", "STREAMFLIX MONTHLY PLAN", true},
	{5, 9, 9.99, models.CategorySubscriptions, "Musicly", "MUSICLY PREMIUM", true},
	{1, 8, 45.00, models.CategoryTelecom, "Movistar", "MOVISTAR MOBILE PLAN", true},
	{2, 7, 38.50, models.CategoryServices, "EnerHome", "ELECTRIC BILL AUTOPAY", true},
	{15, 12, 200.00, models.CategoryInvestments, "IndexFund", "AUTOMATIC INVESTMENT TRANSFER", true},
	{10, 18, 29.90, models.CategoryGym, "FitClub", "FITCLUB MEMBERSHIP", true},

	// Weekly-ish groceries and daily life.
	{4, 17, 82.40, models.CategorySupermarket, "Mercado Central", "MERCADO CENTRAL COMPRA", false},
	{11, 18, 67.15, models.CategorySupermarket, "Mercado Central", "MERCADO CENTRAL COMPRA", false},
	{19, 19, 91.30, models.CategorySupermarket, "SuperAhorro", "SUPERAHORRO COMPRA SEMANAL", false},
	{26, 17, 58.75, models.CategorySupermarket, "Mercado Central", "MERCADO CENTRAL COMPRA", false},
	{6, 8, 4.50, models.CategoryCafes, "Cafe Aroma", "CAFE AROMA ESPRESSO", false},
	{13, 8, 4.50, models.CategoryCafes, "Cafe Aroma", "CAFE AROMA ESPRESSO", false},
	{20, 9, 6.80, models.CategoryCafes, "Cafe Aroma", "CAFE AROMA DESAYUNO", false},
	{7, 13, 12.30, models.CategoryConvenience, "Kiosko 24", "KIOSKO 24 SNACKS", false},
	{22, 21, 8.90, models.CategoryConvenience, "Kiosko 24", "KIOSKO 24 BEBIDAS", false},

	// Transport and fuel.
	{8, 7, 25.00, models.CategoryTransport, "Metro", "METRO CARD RECHARGE", false},
	{21, 7, 25.00, models.CategoryTransport, "Metro", "METRO CARD RECHARGE", false},
	{17, 16, 52.00, models.CategoryFuel, "PetroMax", "PETROMAX GASOLINA", false},

	// Eating out and delivery, heavier toward month end.
	{9, 20, 34.60, models.CategoryRestaurants, "La Parrilla", "LA PARRILLA CENA", false},
	{24, 21, 56.20, models.CategoryRestaurants, "Sushi Go", "SUSHI GO CENA", false},
	{12, 21, 22.40, models.CategoryDelivery, "Rappi", "RAPPI PEDIDO", false},
	{27, 22, 31.80, models.CategoryDelivery, "Rappi", "RAPPI PEDIDO NOCHE", false},

	// Occasional purchases.
	{14, 15, 64.90, models.CategoryShopping, "Tienda Moda", "TIENDA MODA ROPA", false},
	{16, 11, 48.00, models.CategoryHealth, "Farmacia Vida", "FARMACIA VIDA MEDICINAS", false},
	{18, 14, 35.00, models.CategoryPets, "PetLandia", "PETLANDIA ALIMENTO", false},
	{23, 10, 120.00, models.CategoryEducation, "Academia Lingua", "ACADEMIA LINGUA CUOTA", false},
	{25, 19, 28.50, models.CategoryEntertainment, "CineMax", "CINEMAX ENTRADAS", false},
	{28, 12, 150.00, models.CategoryTransfers, "Banco", "TRANSFERENCIA A AHORROS", false},
	{4, 11, 18.75, models.CategoryHome, "HogarPlus", "HOGARPLUS ARTICULOS", false},
	{19, 13, 15.00, models.CategoryGovernment, "Tesoreria", "PAGO TASA MUNICIPAL", false},
	{2, 20, 44.00, models.CategoryTravel, "BusLine", "BUSLINE BILLETE", false},
	{9, 22, 10.00, models.CategoryGambling, "LotoNet", "LOTONET APUESTA", false},
	{20, 14, 55.00, models.CategoryFood, "Deli Casa", "DELI CASA CATERING", false},
	{26, 16, 9.50, models.CategoryOther, "Varios", "CARGO VARIOS", false},
}

// monthMask thins the one-off entries so the four months do not look copied
// from each other: month i keeps an entry when (entryIndex+i)%4 != 3.
func keep(i, monthIdx int) bool {
	if entries[i].everyMonth {
		return true
	}
	return (i+monthIdx)%4 != 3
}

// Transactions builds the synthetic dataset covering the four most recent
// months relative to ref, newest last. The output depends only on ref, so the
// same reference date always produces the same dataset.
func Transactions(ref time.Time) []models.Transaction {
	var txs []models.Transaction
	id := 0
	for monthIdx := 0; monthIdx < 4; monthIdx++ {
		monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, monthIdx-3, 0)
		lastDay := monthStart.AddDate(0, 1, -1).Day()
		for i, e := range entries {
			if !keep(i, monthIdx) {
				continue
			}
			day := e.day
			if day > lastDay {
				day = lastDay
			}
			date := time.Date(monthStart.Year(), monthStart.Month(), day, 0, 0, 0, 0, time.UTC)
			// Spend drifts up slightly month over month so trend analysis has
			// something to see.
			amount := e.amount * (1 + 0.04*float64(monthIdx))
			if e.everyMonth {
				amount = e.amount // fixed recurring price
			}
			txs = append(txs, models.Transaction{
				ID:          id,
				Date:        date.Format("2006-01-02"),
				Description: e.description,
				Amount:      utils.RoundFloat(amount, 2),
				Category:    e.category,
				Merchant:    e.merchant,
				Month:       models.MonthAbbreviations[date.Month()-1],
				DayOfWeek:   int(date.Weekday()),
				DayOfMonth:  day,
				Hour:        e.hour,
				WeekOfMonth: (day + 6) / 7,
			})
			id++
		}
	}
	return txs
}

// Describe is a short human-readable tag for logs.
func Describe(txs []models.Transaction) string {
	return fmt.Sprintf("%d synthetic transactions", len(txs))
}

// backend/src/analytics/snapshot.go
package analytics

import (
	"github.com/username/finsight/backend/src/models"
	"github.com/username/finsight/backend/src/utils"
)

// ComputeSnapshot derives every metric from the transaction set, the profile
// and the period filter. It is a pure function: same inputs, bit-identical
// snapshot. Period-scoped metrics use the filtered set; lifestyle creep and
// the next-month prediction always read the full history, since both need the
// whole timeline to mean anything.
func ComputeSnapshot(all []models.Transaction, profile models.UserProfile, period string) models.AnalyticsSnapshot {
	if period == "" {
		period = PeriodAll
	}
	txs := FilterByPeriod(all, period)

	totals := CategoryTotals(txs)
	monthCount := MonthCount(txs, period)
	spend := totalNonInvestmentSpend(txs)
	avgMonthly := spend / float64(monthCount)

	split := EssentialSplit(txs)
	creep := DetectCreep(all)
	impulse := DetectImpulse(txs)
	duplicates := DetectDuplicates(txs)

	rate := ComputeSavingsRate(profile, avgMonthly)
	fund := ComputeEmergencyFund(profile, avgMonthly)
	health := ComputeHealthScore(rate, fund, split, creep, impulse)

	opportunities, totalSavings := FindOpportunities(txs, totals, monthCount)

	return models.AnalyticsSnapshot{
		Period: period,

		TotalSpent:          utils.RoundFloat(TotalSpent(txs), 2),
		TotalInvestments:    utils.RoundFloat(TotalInvestments(txs), 2),
		AverageMonthlySpend: utils.RoundFloat(avgMonthly, 2),
		MonthCount:          monthCount,
		CategoryTotals:      SortedCategoryTotals(totals),
		NeedsWants:          split,

		Velocity:     Velocity(txs),
		Hourly:       Hourly(txs),
		Volatility:   ComputeVolatility(txs),
		Creep:        creep,
		Impulse:      impulse,
		Duplicates:   duplicates,
		Cooccurrence: Cooccurrence(txs),

		SavingsRate:   rate,
		EmergencyFund: fund,
		Benchmarks:    CompareBenchmarks(totals, monthCount, profile),
		Health:        health,
		Alerts:        BuildAlerts(rate, fund, split, creep, impulse, duplicates, totals, monthCount, profile.CurrencySymbol()),

		Opportunities:         opportunities,
		TotalPotentialSavings: totalSavings,
		Prediction:            PredictNextMonth(all, avgMonthly),
	}
}

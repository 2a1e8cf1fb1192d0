// backend/src/analytics/health.go
package analytics

import (
	"fmt"

	"github.com/username/finsight/backend/src/models"
	"github.com/username/finsight/backend/src/utils"
)

// ComputeSavingsRate relates net income (income minus debt) to the average
// monthly non-investment spend. Net income of zero or less pins the rate to 0.
func ComputeSavingsRate(profile models.UserProfile, avgMonthlySpend float64) models.SavingsRate {
	netIncome := profile.MonthlyIncome - profile.MonthlyDebt
	saved := netIncome - avgMonthlySpend

	var rate float64
	if netIncome > 0 {
		rate = saved / netIncome * 100
	}

	status := models.SavingsDeficit
	switch {
	case rate >= 20:
		status = models.SavingsExcellent
	case rate >= 10:
		status = models.SavingsGood
	case rate >= 0:
		status = models.SavingsNeedsWork
	}

	return models.SavingsRate{
		Rate:                utils.RoundFloat(rate, 0),
		NetIncome:           utils.RoundFloat(netIncome, 2),
		AverageMonthlySpend: utils.RoundFloat(avgMonthlySpend, 2),
		Saved:               utils.RoundFloat(saved, 2),
		Status:              status,
	}
}

// ComputeEmergencyFund measures how many months of average spend the current
// savings would cover, against a six-month target.
func ComputeEmergencyFund(profile models.UserProfile, avgMonthlySpend float64) models.EmergencyFund {
	var months float64
	if avgMonthlySpend > 0 {
		months = profile.CurrentSavings / avgMonthlySpend
	}
	target := avgMonthlySpend * 6
	deficit := target - profile.CurrentSavings
	if deficit < 0 {
		deficit = 0
	}

	status := models.FundInsufficient
	switch {
	case months >= 6:
		status = models.FundExcellent
	case months >= 3:
		status = models.FundAcceptable
	}

	return models.EmergencyFund{
		Months:  utils.RoundFloat(months, 1),
		Target:  utils.RoundFloat(target, 2),
		Deficit: utils.RoundFloat(deficit, 2),
		Status:  status,
	}
}

// benchmarkAreas maps six coarse life areas onto spend categories and a fixed
// share-of-income table.
var benchmarkAreas = []struct {
	area       string
	share      float64
	categories []models.Category
}{
	{"Food", 0.15, []models.Category{models.CategorySupermarket, models.CategoryRestaurants, models.CategoryDelivery, models.CategoryCafes, models.CategoryConvenience, models.CategoryFood}},
	{"Investment", 0.15, []models.Category{models.CategoryInvestments}},
	{"Transport", 0.08, []models.Category{models.CategoryTransport, models.CategoryFuel}},
	{"Health", 0.06, []models.Category{models.CategoryHealth, models.CategoryGym}},
	{"Entertainment", 0.06, []models.Category{models.CategoryEntertainment, models.CategorySubscriptions, models.CategoryGambling}},
	{"Shopping", 0.04, []models.Category{models.CategoryShopping}},
}

// CompareBenchmarks measures the user's monthly average per life area against
// the fixed fraction-of-income table.
func CompareBenchmarks(totals map[models.Category]float64, monthCount int, profile models.UserProfile) []models.BenchmarkEntry {
	if monthCount < 1 {
		monthCount = 1
	}
	entries := make([]models.BenchmarkEntry, 0, len(benchmarkAreas))
	for _, area := range benchmarkAreas {
		var sum float64
		for _, cat := range area.categories {
			sum += totals[cat]
		}
		monthly := sum / float64(monthCount)
		benchmark := profile.MonthlyIncome * area.share
		entries = append(entries, models.BenchmarkEntry{
			Area:           area.area,
			MonthlyAverage: utils.RoundFloat(monthly, 2),
			Benchmark:      utils.RoundFloat(benchmark, 2),
			IncomeShare:    area.share,
			OverBudget:     monthly > benchmark,
		})
	}
	return entries
}

// ComputeHealthScore blends savings rate, emergency fund, needs/wants balance,
// creep and impulse frequency into a 0-100 index. Base 50, rule deltas, then a
// clamp.
func ComputeHealthScore(rate models.SavingsRate, fund models.EmergencyFund, split models.NeedsWants, creep models.LifestyleCreep, impulse models.ImpulseReport) models.HealthScore {
	score := 50

	// Statuses are banded on the unrounded values, so scoring off them avoids
	// display rounding nudging a 19.6% rate into the top bonus.
	switch rate.Status {
	case models.SavingsExcellent:
		score += 15
	case models.SavingsGood:
		score += 10
	case models.SavingsDeficit:
		score -= 15
	}

	switch fund.Status {
	case models.FundExcellent:
		score += 15
	case models.FundAcceptable:
		score += 8
	}

	if split.NeedsPercent >= 50 {
		score += 10
	} else {
		score -= 5
	}

	if creep.Detected {
		score -= 5
	} else {
		score += 5
	}

	if impulse.Count <= 3 {
		score += 5
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	band := models.HealthCritical
	switch {
	case score >= 80:
		band = models.HealthExcellent
	case score >= 60:
		band = models.HealthGood
	case score >= 40:
		band = models.HealthFair
	}

	return models.HealthScore{Score: score, Band: band}
}

// BuildAlerts evaluates every rule independently and keeps all matches in
// rule order. The rules never short-circuit one another.
func BuildAlerts(rate models.SavingsRate, fund models.EmergencyFund, split models.NeedsWants, creep models.LifestyleCreep, impulse models.ImpulseReport, dups models.DuplicateReport, totals map[models.Category]float64, monthCount int, currency string) []models.Alert {
	if monthCount < 1 {
		monthCount = 1
	}
	var alerts []models.Alert

	if rate.Status == models.SavingsDeficit {
		alerts = append(alerts, models.Alert{
			Severity: models.AlertCritical,
			Message:  fmt.Sprintf("You are spending %s%.2f more than your net income each month", currency, -rate.Saved),
		})
	}
	if rate.Status == models.SavingsNeedsWork {
		alerts = append(alerts, models.Alert{
			Severity: models.AlertWarning,
			Message:  fmt.Sprintf("Your savings rate is %.0f%% — aim for at least 10%% of net income", rate.Rate),
		})
	}
	if fund.Status == models.FundInsufficient {
		alerts = append(alerts, models.Alert{
			Severity: models.AlertWarning,
			Message:  fmt.Sprintf("Your emergency fund covers %.1f months of spending — the recommended minimum is 3", fund.Months),
		})
	}
	if creep.Detected {
		alerts = append(alerts, models.Alert{
			Severity: models.AlertWarning,
			Message:  fmt.Sprintf("Lifestyle creep detected: spending grew %.0f%% from %s to %s", creep.Change, creep.FirstMonth, creep.LastMonth),
		})
	}
	if split.WantsPercent > 50 {
		alerts = append(alerts, models.Alert{
			Severity: models.AlertWarning,
			Message:  fmt.Sprintf("%.0f%% of your spending goes to non-essentials", split.WantsPercent),
		})
	}
	if impulse.Count > 3 {
		alerts = append(alerts, models.Alert{
			Severity: models.AlertInfo,
			Message:  fmt.Sprintf("%d impulse purchases totaling %s%.2f this period", impulse.Count, currency, impulse.Total),
		})
	}
	if dups.Count > 0 {
		alerts = append(alerts, models.Alert{
			Severity: models.AlertInfo,
			Message:  fmt.Sprintf("%d possible duplicate charges — reviewing them could recover %s%.2f", dups.Count, currency, dups.PotentialSavings),
		})
	}
	if delivery := totals[models.CategoryDelivery] / float64(monthCount); delivery > 100 {
		alerts = append(alerts, models.Alert{
			Severity: models.AlertInfo,
			Message:  fmt.Sprintf("Food delivery averages %s%.2f per month — cooking more could free up real money", currency, delivery),
		})
	}

	return alerts
}

// backend/src/analytics/forecast.go
package analytics

import (
	"math"
	"sort"

	"github.com/username/finsight/backend/src/models"
	"github.com/username/finsight/backend/src/utils"
)

// opportunityRules is the declarative reduction table: a category's monthly
// spend over the threshold triggers a proposed cut. The "ant spending" rule is
// handled separately since it looks at ticket size, not category.
var opportunityRules = []struct {
	category   models.Category
	label      string
	threshold  float64
	reduction  float64
	suggestion string
}{
	{models.CategoryDelivery, "Food delivery", 80, 0.50, "Cook at home a few more nights a week"},
	{models.CategorySubscriptions, "Subscriptions", 30, 0.30, "Cancel the services you have not used this month"},
	{models.CategoryCafes, "Cafes", 40, 0.40, "Brew at home on weekdays"},
	{models.CategoryConvenience, "Convenience stores", 50, 0.35, "Plan a weekly supermarket run instead"},
	{models.CategoryRestaurants, "Restaurants", 150, 0.25, "Reserve eating out for occasions"},
}

// antSpendingRule: many small tickets (under 10 each) that together pass the
// threshold are their own opportunity.
const (
	antTicketMax  = 10.0
	antThreshold  = 60.0
	antReduction  = 0.50
	antSuggestion = "Small purchases add up — batch them or set a weekly cash limit"
)

// FindOpportunities evaluates the reduction rule table against per-category
// monthly averages and ranks the triggered rules by estimated saving.
func FindOpportunities(txs []models.Transaction, totals map[models.Category]float64, monthCount int) ([]models.SavingsOpportunity, float64) {
	if monthCount < 1 {
		monthCount = 1
	}

	var opportunities []models.SavingsOpportunity
	for _, rule := range opportunityRules {
		monthly := totals[rule.category] / float64(monthCount)
		if monthly < rule.threshold {
			continue
		}
		opportunities = append(opportunities, models.SavingsOpportunity{
			Label:            rule.label,
			MonthlySpend:     utils.RoundFloat(monthly, 2),
			ReductionPercent: rule.reduction * 100,
			Savings:          utils.RoundFloat(monthly*rule.reduction, 2),
			Suggestion:       rule.suggestion,
		})
	}

	var antSum float64
	for _, tx := range txs {
		if tx.Amount > 0 && tx.Amount < antTicketMax && tx.Category != models.CategoryInvestments {
			antSum += tx.Amount
		}
	}
	if antMonthly := antSum / float64(monthCount); antMonthly >= antThreshold {
		opportunities = append(opportunities, models.SavingsOpportunity{
			Label:            "Ant spending",
			MonthlySpend:     utils.RoundFloat(antMonthly, 2),
			ReductionPercent: antReduction * 100,
			Savings:          utils.RoundFloat(antMonthly*antReduction, 2),
			Suggestion:       antSuggestion,
		})
	}

	sort.Slice(opportunities, func(i, j int) bool {
		if opportunities[i].Savings != opportunities[j].Savings {
			return opportunities[i].Savings > opportunities[j].Savings
		}
		return opportunities[i].Label < opportunities[j].Label
	})

	var total float64
	for _, op := range opportunities {
		total += op.Savings
	}
	return opportunities, utils.RoundFloat(total, 2)
}

// PredictNextMonth extrapolates the linear trend between the first and last
// observed months over the full history. With fewer than two distinct months
// the prediction falls back to the current average with low confidence.
func PredictNextMonth(all []models.Transaction, avgMonthlySpend float64) models.Prediction {
	months := MonthsInOrder(all)
	if len(months) < 2 {
		return models.Prediction{
			Predicted:  utils.RoundFloat(avgMonthlySpend, 2),
			TrendLabel: "stable",
			Confidence: models.ConfidenceLow,
		}
	}

	monthTotals := make([]float64, len(months))
	index := make(map[string]int, len(months))
	for i, m := range months {
		index[m] = i
	}
	for _, tx := range all {
		if tx.Amount <= 0 || tx.Category == models.CategoryInvestments {
			continue
		}
		if i, ok := index[tx.Month]; ok {
			monthTotals[i] += tx.Amount
		}
	}

	first := monthTotals[0]
	last := monthTotals[len(monthTotals)-1]
	trend := (last - first) / float64(len(months))
	predicted := last + trend

	var sum float64
	for _, t := range monthTotals {
		sum += t
	}
	mean := sum / float64(len(monthTotals))
	var variance float64
	for _, t := range monthTotals {
		d := t - mean
		variance += d * d
	}
	variance /= float64(len(monthTotals))

	var cv float64
	if mean > 0 {
		cv = math.Sqrt(variance) / mean
	}
	confidence := models.ConfidenceLow
	switch {
	case cv < 0.2:
		confidence = models.ConfidenceHigh
	case cv < 0.4:
		confidence = models.ConfidenceMedium
	}

	label := "stable"
	if math.Abs(trend) > 50 {
		if trend > 0 {
			label = "rising"
		} else {
			label = "falling"
		}
	}

	return models.Prediction{
		Predicted:  utils.RoundFloat(predicted, 2),
		Trend:      utils.RoundFloat(trend, 2),
		TrendLabel: label,
		Confidence: confidence,
	}
}

// backend/src/analytics/aggregate.go
package analytics

import (
	"sort"

	"github.com/username/finsight/backend/src/models"
	"github.com/username/finsight/backend/src/utils"
)

// PeriodAll is the wildcard period filter covering the full history.
const PeriodAll = "all"

// FilterByPeriod returns the transactions whose month matches the period
// label, or the full set for the wildcard. Every other computation in this
// package takes its input from here.
func FilterByPeriod(txs []models.Transaction, period string) []models.Transaction {
	if period == PeriodAll || period == "" {
		return txs
	}
	var filtered []models.Transaction
	for _, tx := range txs {
		if tx.Month == period {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

// CategoryTotals sums positive amounts per category.
func CategoryTotals(txs []models.Transaction) map[models.Category]float64 {
	totals := make(map[models.Category]float64)
	for _, tx := range txs {
		if tx.Amount > 0 {
			totals[tx.Category] += tx.Amount
		}
	}
	return totals
}

// SortedCategoryTotals renders the totals map as a slice sorted descending by
// total (category name breaks ties) so snapshots are deterministic.
func SortedCategoryTotals(totals map[models.Category]float64) []models.CategoryTotal {
	out := make([]models.CategoryTotal, 0, len(totals))
	for cat, total := range totals {
		out = append(out, models.CategoryTotal{Category: cat, Total: utils.RoundFloat(total, 2)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// MonthsInOrder returns the distinct known months present in the set, ordered
// chronologically by the earliest date seen in each month. Transactions with
// an unknown month are skipped.
func MonthsInOrder(txs []models.Transaction) []string {
	earliest := make(map[string]string)
	for _, tx := range txs {
		if tx.Month == models.UnknownMonth {
			continue
		}
		if cur, ok := earliest[tx.Month]; !ok || tx.Date < cur {
			earliest[tx.Month] = tx.Date
		}
	}
	months := make([]string, 0, len(earliest))
	for m := range earliest {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool {
		if earliest[months[i]] != earliest[months[j]] {
			return earliest[months[i]] < earliest[months[j]]
		}
		return months[i] < months[j]
	})
	return months
}

// MonthCount is the divisor for monthly averages: the number of distinct known
// months, never less than 1. When a specific period is selected the count is
// fixed at 1 regardless of the data.
func MonthCount(txs []models.Transaction, period string) int {
	if period != PeriodAll && period != "" {
		return 1
	}
	n := len(MonthsInOrder(txs))
	if n < 1 {
		return 1
	}
	return n
}

// TotalSpent sums all positive amounts.
func TotalSpent(txs []models.Transaction) float64 {
	var sum float64
	for _, tx := range txs {
		if tx.Amount > 0 {
			sum += tx.Amount
		}
	}
	return sum
}

// TotalInvestments sums positive amounts in the Investments category.
func TotalInvestments(txs []models.Transaction) float64 {
	var sum float64
	for _, tx := range txs {
		if tx.Category == models.CategoryInvestments && tx.Amount > 0 {
			sum += tx.Amount
		}
	}
	return sum
}

// totalNonInvestmentSpend is the spend figure most metrics care about:
// positive amounts excluding investments (putting money into a fund is not
// consumption).
func totalNonInvestmentSpend(txs []models.Transaction) float64 {
	var sum float64
	for _, tx := range txs {
		if tx.Amount > 0 && tx.Category != models.CategoryInvestments {
			sum += tx.Amount
		}
	}
	return sum
}

// EssentialSplit partitions positive-amount transactions into the fixed
// essential and non-essential category sets. Categories outside both sets are
// simply uncounted. Percentages are whole numbers and sum to 100 whenever
// either side is non-zero.
func EssentialSplit(txs []models.Transaction) models.NeedsWants {
	var needs, wants float64
	for _, tx := range txs {
		if tx.Amount <= 0 {
			continue
		}
		switch {
		case tx.Category.IsEssential():
			needs += tx.Amount
		case tx.Category.IsNonEssential():
			wants += tx.Amount
		}
	}
	split := models.NeedsWants{
		Needs: utils.RoundFloat(needs, 2),
		Wants: utils.RoundFloat(wants, 2),
	}
	if total := needs + wants; total > 0 {
		split.NeedsPercent = utils.RoundFloat(needs/total*100, 0)
		split.WantsPercent = 100 - split.NeedsPercent
	}
	return split
}

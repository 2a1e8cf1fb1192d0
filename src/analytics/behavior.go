// backend/src/analytics/behavior.go
package analytics

import (
	"math"
	"sort"
	"strings"

	"github.com/username/finsight/backend/src/models"
	"github.com/username/finsight/backend/src/utils"
)

// Velocity buckets positive non-investment spend into the four calendar weeks
// of the month. Day 29+ lands in week 4. Weeks without data stay zero.
func Velocity(txs []models.Transaction) models.SpendingVelocity {
	var v models.SpendingVelocity
	for i := range v.Weeks {
		v.Weeks[i].Week = i + 1
	}
	for _, tx := range txs {
		if tx.Amount <= 0 || tx.Category == models.CategoryInvestments {
			continue
		}
		week := tx.WeekOfMonth
		if week < 1 {
			week = 1
		}
		if week > 4 {
			week = 4
		}
		v.Weeks[week-1].Total += tx.Amount
		v.Weeks[week-1].Count++
	}
	for i := range v.Weeks {
		v.Weeks[i].Total = utils.RoundFloat(v.Weeks[i].Total, 2)
	}
	if v.Weeks[3].Total > v.Weeks[0].Total {
		v.Trend = "accelerating"
	} else {
		v.Trend = "decelerating"
	}
	return v
}

// Hourly sums positive amounts per hour of day. Hours without transactions are
// omitted; the peak hour is the arg-max by total scanning 0-23, so ties go to
// the earlier hour. PeakHour is -1 when nothing was spent.
func Hourly(txs []models.Transaction) models.HourlyDistribution {
	var totals [24]float64
	var counts [24]int
	for _, tx := range txs {
		if tx.Amount <= 0 || tx.Hour < 0 || tx.Hour > 23 {
			continue
		}
		totals[tx.Hour] += tx.Amount
		counts[tx.Hour]++
	}
	dist := models.HourlyDistribution{PeakHour: -1}
	var peak float64
	for h := 0; h < 24; h++ {
		if counts[h] == 0 {
			continue
		}
		dist.Hours = append(dist.Hours, models.HourBucket{
			Hour:  h,
			Total: utils.RoundFloat(totals[h], 2),
			Count: counts[h],
		})
		if totals[h] > peak {
			peak = totals[h]
			dist.PeakHour = h
		}
	}
	return dist
}

// ComputeVolatility classifies day-to-day variation of positive non-investment
// spend. The standard deviation is the population form over days that saw
// spending. A zero mean yields a zero coefficient rather than a division.
func ComputeVolatility(txs []models.Transaction) models.Volatility {
	daily := make(map[string]float64)
	for _, tx := range txs {
		if tx.Amount <= 0 || tx.Category == models.CategoryInvestments {
			continue
		}
		daily[tx.Date] += tx.Amount
	}
	n := len(daily)
	if n == 0 {
		return models.Volatility{Level: models.VolatilityStable}
	}

	var sum float64
	for _, total := range daily {
		sum += total
	}
	mean := sum / float64(n)

	var variance float64
	for _, total := range daily {
		d := total - mean
		variance += d * d
	}
	variance /= float64(n)
	stddev := math.Sqrt(variance)

	var coeff float64
	if mean > 0 {
		coeff = stddev / mean * 100
	}

	level := models.VolatilityHigh
	switch {
	case coeff < 50:
		level = models.VolatilityStable
	case coeff < 100:
		level = models.VolatilityModerate
	}

	return models.Volatility{
		DailyMean:   utils.RoundFloat(mean, 2),
		StdDev:      utils.RoundFloat(stddev, 2),
		Coefficient: utils.RoundFloat(coeff, 2),
		Level:       level,
		Days:        n,
	}
}

// DetectCreep compares the first and last chronological months of the full,
// unfiltered history. It needs at least two distinct months; a first-month
// total of zero makes the percent change zero instead of infinite.
func DetectCreep(all []models.Transaction) models.LifestyleCreep {
	months := MonthsInOrder(all)
	if len(months) < 2 {
		return models.LifestyleCreep{}
	}
	first, last := months[0], months[len(months)-1]

	monthSpend := func(month string) (float64, map[models.Category]float64) {
		var total float64
		byCat := make(map[models.Category]float64)
		for _, tx := range all {
			if tx.Month != month || tx.Amount <= 0 || tx.Category == models.CategoryInvestments {
				continue
			}
			total += tx.Amount
			byCat[tx.Category] += tx.Amount
		}
		return total, byCat
	}

	firstTotal, firstByCat := monthSpend(first)
	lastTotal, lastByCat := monthSpend(last)

	var change float64
	if firstTotal > 0 {
		change = (lastTotal - firstTotal) / firstTotal * 100
	}

	var changes []models.CategoryChange
	for cat, lastAmt := range lastByCat {
		firstAmt := firstByCat[cat]
		if firstAmt <= 0 {
			continue
		}
		pct := (lastAmt - firstAmt) / firstAmt * 100
		if pct > 20 {
			changes = append(changes, models.CategoryChange{
				Category:   cat,
				FirstMonth: utils.RoundFloat(firstAmt, 2),
				LastMonth:  utils.RoundFloat(lastAmt, 2),
				Change:     utils.RoundFloat(pct, 0),
			})
		}
	}
	sort.Slice(changes, func(i, j int) bool {
		if changes[i].Change != changes[j].Change {
			return changes[i].Change > changes[j].Change
		}
		return changes[i].Category < changes[j].Category
	})
	if len(changes) > 5 {
		changes = changes[:5]
	}

	return models.LifestyleCreep{
		Detected:   change > 15,
		FirstMonth: first,
		LastMonth:  last,
		FirstTotal: utils.RoundFloat(firstTotal, 2),
		LastTotal:  utils.RoundFloat(lastTotal, 2),
		Change:     utils.RoundFloat(change, 0),
		Categories: changes,
	}
}

// DetectImpulse flags non-essential transactions whose amount exceeds twice
// the mean of the non-essential group.
func DetectImpulse(txs []models.Transaction) models.ImpulseReport {
	var pool []models.Transaction
	var sum float64
	for _, tx := range txs {
		if tx.Amount > 0 && tx.Category.IsNonEssential() {
			pool = append(pool, tx)
			sum += tx.Amount
		}
	}
	if len(pool) == 0 {
		return models.ImpulseReport{}
	}

	mean := sum / float64(len(pool))
	threshold := mean * 2

	var flagged []models.Transaction
	var total float64
	for _, tx := range pool {
		if tx.Amount > threshold {
			flagged = append(flagged, tx)
			total += tx.Amount
		}
	}
	sort.Slice(flagged, func(i, j int) bool {
		if flagged[i].Amount != flagged[j].Amount {
			return flagged[i].Amount > flagged[j].Amount
		}
		return flagged[i].ID < flagged[j].ID
	})

	report := models.ImpulseReport{
		Mean:      utils.RoundFloat(mean, 2),
		Threshold: utils.RoundFloat(threshold, 2),
		Count:     len(flagged),
		Total:     utils.RoundFloat(total, 2),
		Top:       flagged,
	}
	if len(report.Top) > 5 {
		report.Top = report.Top[:5]
	}
	return report
}

// DetectDuplicates clusters transactions on (date, amount, merchant) and
// treats every member beyond the first as a suspected repeat charge.
func DetectDuplicates(txs []models.Transaction) models.DuplicateReport {
	type key struct {
		date     string
		amount   float64
		merchant string
	}
	clusters := make(map[key]int)
	for _, tx := range txs {
		clusters[key{tx.Date, tx.Amount, tx.Merchant}]++
	}

	var found []models.DuplicateCluster
	var savings float64
	for k, count := range clusters {
		if count < 2 {
			continue
		}
		found = append(found, models.DuplicateCluster{
			Date:     k.date,
			Amount:   k.amount,
			Merchant: k.merchant,
			Count:    count,
		})
		savings += k.amount * float64(count-1)
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].Date != found[j].Date {
			return found[i].Date < found[j].Date
		}
		if found[i].Merchant != found[j].Merchant {
			return found[i].Merchant < found[j].Merchant
		}
		return found[i].Amount < found[j].Amount
	})

	report := models.DuplicateReport{
		Count:            len(found),
		PotentialSavings: utils.RoundFloat(savings, 2),
		Samples:          found,
	}
	if len(report.Samples) > 5 {
		report.Samples = report.Samples[:5]
	}
	return report
}

// Cooccurrence counts unordered category pairs bought on the same calendar
// day, across all days, and returns the five most frequent. Pair labels are
// alphabetically ordered so the key is stable.
func Cooccurrence(txs []models.Transaction) []models.CategoryPair {
	byDay := make(map[string]map[models.Category]bool)
	for _, tx := range txs {
		if tx.Amount <= 0 {
			continue
		}
		if byDay[tx.Date] == nil {
			byDay[tx.Date] = make(map[models.Category]bool)
		}
		byDay[tx.Date][tx.Category] = true
	}

	pairCounts := make(map[string]int)
	for _, cats := range byDay {
		day := make([]string, 0, len(cats))
		for cat := range cats {
			day = append(day, string(cat))
		}
		sort.Strings(day)
		for i := 0; i < len(day); i++ {
			for j := i + 1; j < len(day); j++ {
				pairCounts[strings.Join([]string{day[i], day[j]}, " + ")]++
			}
		}
	}

	pairs := make([]models.CategoryPair, 0, len(pairCounts))
	for pair, count := range pairCounts {
		pairs = append(pairs, models.CategoryPair{Pair: pair, Count: count})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		return pairs[i].Pair < pairs[j].Pair
	})
	if len(pairs) > 5 {
		pairs = pairs[:5]
	}
	return pairs
}

package analytics

import (
	"testing"

	"github.com/username/finsight/backend/src/models"
)

func TestVelocityTrend(t *testing.T) {
	accelerating := []models.Transaction{
		tx(1, "2025-01-02", 10, models.CategoryOther, "A"),  // week 1
		tx(2, "2025-01-25", 100, models.CategoryOther, "B"), // week 4
	}
	v := Velocity(accelerating)
	if v.Trend != "accelerating" {
		t.Errorf("got %q, want accelerating", v.Trend)
	}
	if v.Weeks[0].Total != 10 || v.Weeks[3].Total != 100 {
		t.Errorf("week totals: got %v/%v, want 10/100", v.Weeks[0].Total, v.Weeks[3].Total)
	}
	if v.Weeks[1].Total != 0 || v.Weeks[2].Total != 0 {
		t.Error("weeks without data should stay zero")
	}
}

func TestVelocityClampsFifthWeek(t *testing.T) {
	txs := []models.Transaction{tx(1, "2025-01-30", 50, models.CategoryOther, "A")} // day 30, week 5
	v := Velocity(txs)
	if v.Weeks[3].Total != 50 {
		t.Errorf("day 30 should land in week 4, got %v", v.Weeks[3].Total)
	}
}

func TestVelocityExcludesInvestments(t *testing.T) {
	txs := []models.Transaction{tx(1, "2025-01-02", 500, models.CategoryInvestments, "Broker")}
	v := Velocity(txs)
	if v.Weeks[0].Total != 0 {
		t.Errorf("investments should not count, got %v", v.Weeks[0].Total)
	}
}

func TestHourlyPeakAndSparsity(t *testing.T) {
	txs := []models.Transaction{
		{ID: 1, Date: "2025-01-02", Amount: 30, Category: models.CategoryCafes, Hour: 9},
		{ID: 2, Date: "2025-01-02", Amount: 30, Category: models.CategoryCafes, Hour: 20},
		{ID: 3, Date: "2025-01-03", Amount: 10, Category: models.CategoryCafes, Hour: 9},
	}
	dist := Hourly(txs)
	if len(dist.Hours) != 2 {
		t.Fatalf("got %d hour buckets, want 2 (sparse)", len(dist.Hours))
	}
	if dist.PeakHour != 9 {
		t.Errorf("peak: got %d, want 9 (40 beats 30)", dist.PeakHour)
	}
}

func TestHourlyPeakTieGoesToEarlierHour(t *testing.T) {
	txs := []models.Transaction{
		{ID: 1, Date: "2025-01-02", Amount: 30, Category: models.CategoryCafes, Hour: 18},
		{ID: 2, Date: "2025-01-03", Amount: 30, Category: models.CategoryCafes, Hour: 8},
	}
	if got := Hourly(txs).PeakHour; got != 8 {
		t.Errorf("tie: got %d, want 8", got)
	}
}

func TestHourlyEmpty(t *testing.T) {
	if got := Hourly(nil).PeakHour; got != -1 {
		t.Errorf("no spending: got peak %d, want -1", got)
	}
}

func TestVolatilityBands(t *testing.T) {
	// Two days at 100 each: stddev 0, CV 0, Stable.
	stable := []models.Transaction{
		tx(1, "2025-01-02", 100, models.CategoryOther, "A"),
		tx(2, "2025-01-03", 100, models.CategoryOther, "B"),
	}
	v := ComputeVolatility(stable)
	if v.Level != models.VolatilityStable || v.Coefficient != 0 {
		t.Errorf("stable case: got %s/%v", v.Level, v.Coefficient)
	}
	if v.Days != 2 || v.DailyMean != 100 {
		t.Errorf("got days=%d mean=%v, want 2/100", v.Days, v.DailyMean)
	}

	// Days 10 and 190: mean 100, stddev 90, CV 90 -> Moderate.
	moderate := []models.Transaction{
		tx(1, "2025-01-02", 10, models.CategoryOther, "A"),
		tx(2, "2025-01-03", 190, models.CategoryOther, "B"),
	}
	if got := ComputeVolatility(moderate).Level; got != models.VolatilityModerate {
		t.Errorf("moderate case: got %s", got)
	}

	// Days 1, 1, 1000: mean ~334, stddev ~471, CV ~141 -> Highly Variable.
	high := []models.Transaction{
		tx(1, "2025-01-02", 1, models.CategoryOther, "A"),
		tx(2, "2025-01-03", 1, models.CategoryOther, "B"),
		tx(3, "2025-01-04", 1000, models.CategoryOther, "C"),
	}
	if got := ComputeVolatility(high).Level; got != models.VolatilityHigh {
		t.Errorf("high case: got %s", got)
	}
}

func TestVolatilityNoSpend(t *testing.T) {
	v := ComputeVolatility(nil)
	if v.Coefficient != 0 || v.Days != 0 {
		t.Errorf("empty: got coeff=%v days=%d", v.Coefficient, v.Days)
	}
}

func TestDetectCreep(t *testing.T) {
	// Restaurants doubles 100 -> 200 across two months (spec end-to-end case).
	var txs []models.Transaction
	id := 1
	for i := 0; i < 4; i++ {
		txs = append(txs, tx(id, "2025-01-05", 25, models.CategoryRestaurants, "R"))
		id++
	}
	for i := 0; i < 2; i++ {
		txs = append(txs, tx(id, "2025-01-10", 50, models.CategorySupermarket, "S"))
		id++
	}
	for i := 0; i < 4; i++ {
		txs = append(txs, tx(id, "2025-02-05", 50, models.CategoryRestaurants, "R"))
		id++
	}
	for i := 0; i < 2; i++ {
		txs = append(txs, tx(id, "2025-02-10", 50, models.CategorySupermarket, "S"))
		id++
	}

	creep := DetectCreep(txs)
	if !creep.Detected {
		t.Fatal("creep not detected")
	}
	if creep.FirstMonth != "Jan" || creep.LastMonth != "Feb" {
		t.Errorf("months: got %s->%s", creep.FirstMonth, creep.LastMonth)
	}
	if creep.FirstTotal != 200 || creep.LastTotal != 300 {
		t.Errorf("totals: got %v->%v, want 200->300", creep.FirstTotal, creep.LastTotal)
	}
	if creep.Change != 50 {
		t.Errorf("change: got %v, want 50", creep.Change)
	}
	found := false
	for _, c := range creep.Categories {
		if c.Category == models.CategoryRestaurants {
			found = true
			if c.Change != 100 {
				t.Errorf("Restaurants change: got %v, want 100", c.Change)
			}
		}
		if c.Category == models.CategorySupermarket {
			t.Error("Supermarket did not grow, should not be listed")
		}
	}
	if !found {
		t.Error("Restaurants missing from category breakdown")
	}
}

func TestDetectCreepNeedsTwoMonths(t *testing.T) {
	txs := []models.Transaction{tx(1, "2025-01-05", 100, models.CategoryOther, "A")}
	if DetectCreep(txs).Detected {
		t.Error("single month should never report creep")
	}
}

func TestDetectCreepZeroFirstMonth(t *testing.T) {
	txs := []models.Transaction{
		tx(1, "2025-01-05", 500, models.CategoryInvestments, "Broker"), // only investments in Jan
		tx(2, "2025-02-05", 300, models.CategoryRestaurants, "R"),
	}
	creep := DetectCreep(txs)
	if creep.Change != 0 {
		t.Errorf("zero first month: change got %v, want 0 not Inf", creep.Change)
	}
	if creep.Detected {
		t.Error("zero first month must not trigger detection")
	}
}

func TestDetectImpulse(t *testing.T) {
	// Spec case: [5,5,5,5,50] non-essential, mean 14, threshold 28, only 50 flagged.
	var txs []models.Transaction
	for i := 1; i <= 4; i++ {
		txs = append(txs, tx(i, "2025-01-05", 5, models.CategoryShopping, "S"))
	}
	txs = append(txs, tx(5, "2025-01-06", 50, models.CategoryShopping, "S"))

	report := DetectImpulse(txs)
	if report.Mean != 14 || report.Threshold != 28 {
		t.Errorf("got mean=%v threshold=%v, want 14/28", report.Mean, report.Threshold)
	}
	if report.Count != 1 || report.Total != 50 {
		t.Errorf("got count=%d total=%v, want 1/50", report.Count, report.Total)
	}
	if len(report.Top) != 1 || report.Top[0].Amount != 50 {
		t.Errorf("top: got %v", report.Top)
	}
}

func TestDetectImpulseIgnoresEssentials(t *testing.T) {
	txs := []models.Transaction{
		tx(1, "2025-01-05", 5, models.CategorySupermarket, "S"),
		tx(2, "2025-01-06", 500, models.CategorySupermarket, "S"),
	}
	if got := DetectImpulse(txs); got.Count != 0 {
		t.Errorf("essential spend flagged as impulse: %+v", got)
	}
}

func TestDetectDuplicates(t *testing.T) {
	// Spec case: one exact pair among otherwise-unique rows.
	txs := []models.Transaction{
		tx(1, "2025-01-01", 10, models.CategoryOther, "X"),
		tx(2, "2025-01-01", 10, models.CategoryOther, "X"),
		tx(3, "2025-01-02", 10, models.CategoryOther, "X"),
		tx(4, "2025-01-01", 20, models.CategoryOther, "Y"),
	}
	report := DetectDuplicates(txs)
	if report.Count != 1 {
		t.Fatalf("count: got %d, want 1", report.Count)
	}
	if report.PotentialSavings != 10 {
		t.Errorf("savings: got %v, want 10", report.PotentialSavings)
	}
	if len(report.Samples) != 1 || report.Samples[0].Count != 2 {
		t.Errorf("samples: got %+v", report.Samples)
	}
}

func TestDetectDuplicatesTriple(t *testing.T) {
	txs := []models.Transaction{
		tx(1, "2025-01-01", 15, models.CategoryOther, "X"),
		tx(2, "2025-01-01", 15, models.CategoryOther, "X"),
		tx(3, "2025-01-01", 15, models.CategoryOther, "X"),
	}
	report := DetectDuplicates(txs)
	if report.PotentialSavings != 30 {
		t.Errorf("triple cluster: savings got %v, want 30 (15 x 2 extras)", report.PotentialSavings)
	}
}

func TestCooccurrence(t *testing.T) {
	txs := []models.Transaction{
		tx(1, "2025-01-05", 10, models.CategoryRestaurants, "A"),
		tx(2, "2025-01-05", 10, models.CategoryCafes, "B"),
		tx(3, "2025-01-06", 10, models.CategoryRestaurants, "A"),
		tx(4, "2025-01-06", 10, models.CategoryCafes, "B"),
		tx(5, "2025-01-06", 10, models.CategoryTransport, "C"),
	}
	pairs := Cooccurrence(txs)
	if len(pairs) == 0 {
		t.Fatal("no pairs found")
	}
	if pairs[0].Pair != "Cafes + Restaurants" || pairs[0].Count != 2 {
		t.Errorf("top pair: got %+v, want Cafes + Restaurants x2", pairs[0])
	}
}

package sample

import (
	"reflect"
	"testing"
	"time"

	"github.com/username/finsight/backend/src/models"
)

func TestTransactionsDeterministic(t *testing.T) {
	ref := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	first := Transactions(ref)
	second := Transactions(ref)
	if !reflect.DeepEqual(first, second) {
		t.Error("same reference date produced different datasets")
	}
}

func TestTransactionsCoverFourRecentMonths(t *testing.T) {
	ref := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	months := make(map[string]bool)
	for _, tx := range Transactions(ref) {
		months[tx.Month] = true
	}
	for _, want := range []string{"Mar", "Apr", "May", "Jun"} {
		if !months[want] {
			t.Errorf("month %s missing", want)
		}
	}
	if len(months) != 4 {
		t.Errorf("got %d months, want 4: %v", len(months), months)
	}
}

func TestTransactionsCoverCategoryEnum(t *testing.T) {
	seen := make(map[models.Category]bool)
	for _, tx := range Transactions(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)) {
		seen[tx.Category] = true
	}
	for _, cat := range models.AllCategories {
		if !seen[cat] {
			t.Errorf("category %s has no sample transactions", cat)
		}
	}
}

func TestTransactionsRecurringChargesEveryMonth(t *testing.T) {
	count := make(map[string]int)
	for _, tx := range Transactions(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)) {
		if tx.Category == models.CategorySubscriptions {
			count[tx.Merchant]++
		}
	}
	for merchant, n := range count {
		if n != 4 {
			t.Errorf("%s appears %d times, want one per month", merchant, n)
		}
	}
}

func TestTransactionsOneOffEntriesThinned(t *testing.T) {
	// Non-recurring templates are dropped from exactly one of the four
	// months so the months do not look copied from each other.
	count := make(map[string]int)
	for _, tx := range Transactions(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)) {
		if tx.Merchant == "PetroMax" {
			count[tx.Month]++
		}
	}
	total := 0
	for _, n := range count {
		total += n
	}
	if total != 3 {
		t.Errorf("PetroMax appears %d times, want 3 (one month skipped)", total)
	}
}

func TestTransactionsValidDerivedFields(t *testing.T) {
	for _, tx := range Transactions(time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)) {
		if tx.Month == models.UnknownMonth || tx.Date == models.UnknownDate {
			t.Fatalf("sample transaction has sentinel date: %+v", tx)
		}
		if tx.WeekOfMonth < 1 || tx.WeekOfMonth > 5 {
			t.Errorf("week of month out of range: %+v", tx)
		}
		if tx.Hour < 0 || tx.Hour > 23 {
			t.Errorf("hour out of range: %+v", tx)
		}
		if tx.Amount <= 0 {
			t.Errorf("sample amounts are all outflows: %+v", tx)
		}
	}
}

func TestTransactionsUniqueIDs(t *testing.T) {
	txs := Transactions(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	seen := make(map[int]bool)
	for _, tx := range txs {
		if seen[tx.ID] {
			t.Fatalf("duplicate ID %d", tx.ID)
		}
		seen[tx.ID] = true
	}
}

func TestTransactionsClampShortMonths(t *testing.T) {
	// With February in range, day-28+ templates must clamp, not overflow.
	for _, tx := range Transactions(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)) {
		if tx.Month == "Feb" && tx.DayOfMonth > 28 {
			t.Errorf("February day overflow: %+v", tx)
		}
	}
}

// backend/src/normalizer/normalizer.go
package normalizer

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/username/finsight/backend/src/models"
	"github.com/username/finsight/backend/src/security/validation"
)

// Normalize converts loosely-typed extracted records into canonical
// transactions. It fails open: a record missing any field, including the date,
// still yields a transaction with defaults applied. It never returns an error
// because upstream extraction is inherently unreliable and a half-usable
// record beats no record.
func Normalize(records []models.RawRecord) []models.Transaction {
	txs := make([]models.Transaction, 0, len(records))
	for i, rec := range records {
		desc := validation.SanitizeText(validation.StripUnprintable(rec.Description))

		tx := models.Transaction{
			ID:          i,
			Date:        models.UnknownDate,
			Description: desc,
			Amount:      parseAmount(rec.Amount),
			Category:    models.ParseCategory(rec.Category),
			Merchant:    deriveMerchant(rec.Merchant, desc),

			Month:       models.UnknownMonth,
			DayOfWeek:   0,
			DayOfMonth:  1,
			Hour:        parseHour(rec.Time),
			WeekOfMonth: 1,
		}

		if date, ok := parseDate(rec.Date); ok {
			tx.Date = date.Format("2006-01-02")
			tx.Month = models.MonthAbbreviations[date.Month()-1]
			tx.DayOfWeek = int(date.Weekday())
			tx.DayOfMonth = date.Day()
			tx.WeekOfMonth = (date.Day() + 6) / 7 // ceil(day/7)
		}

		txs = append(txs, tx)
	}
	return txs
}

// parseAmount tolerates the amount arriving as a JSON number, an integer, or a
// free-form string ("1.234,56", "$42", ...). Anything unparseable becomes 0.
func parseAmount(v any) float64 {
	switch a := v.(type) {
	case float64:
		return a
	case int:
		return float64(a)
	case string:
		cleaned := strings.TrimSpace(a)
		cleaned = strings.TrimLeft(cleaned, "$€£")
		cleaned = strings.ReplaceAll(cleaned, " ", "")
		// European decimal commas: only treat the comma as a decimal point when
		// there is no period already claiming that role.
		if strings.Contains(cleaned, ",") && !strings.Contains(cleaned, ".") {
			cleaned = strings.ReplaceAll(cleaned, ",", ".")
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
		d, err := decimal.NewFromString(cleaned)
		if err != nil {
			return 0
		}
		f, _ := d.Float64()
		return f
	default:
		return 0
	}
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == models.UnknownDate {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// parseHour reads "HH:MM"; missing or malformed times default to midday so
// hourly buckets stay plausible without fabricating night-time activity.
func parseHour(raw string) int {
	parts := strings.SplitN(strings.TrimSpace(raw), ":", 2)
	if len(parts) == 0 || parts[0] == "" {
		return models.DefaultHour
	}
	hour := 0
	for _, r := range parts[0] {
		if r < '0' || r > '9' {
			return models.DefaultHour
		}
		hour = hour*10 + int(r-'0')
	}
	if hour > 23 {
		return models.DefaultHour
	}
	return hour
}

func deriveMerchant(merchant, description string) string {
	m := validation.SanitizeText(validation.StripUnprintable(merchant))
	if m != "" {
		return m
	}
	if fields := strings.Fields(description); len(fields) > 0 {
		return fields[0]
	}
	return models.UnknownMerchant
}

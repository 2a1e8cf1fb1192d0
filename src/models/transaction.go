// backend/src/models/transaction.go
package models

// RawRecord is the loosely-typed shape the extraction step hands to the
// normalizer. Every field is optional and may be malformed; Amount in
// particular arrives either as a JSON number or as a string, depending on how
// the model felt that day.
type RawRecord struct {
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
	Amount      any    `json:"amount,omitempty"`
	Category    string `json:"category,omitempty"`
	Merchant    string `json:"merchant,omitempty"`
	Time        string `json:"time,omitempty"` // HH:MM
}

// Sentinel values used when the source record is missing a date or time.
// Derived temporal fields are always populated so downstream aggregates never
// have to null-check; unknown dates simply bucket under these.
const (
	UnknownDate     = "Unknown"
	UnknownMonth    = "Unknown"
	UnknownMerchant = "Unknown"
	DefaultHour     = 12
)

// Transaction is the canonical, immutable transaction entity. Positive Amount
// means outflow; zero and negative amounts are kept but excluded from spend
// aggregates.
type Transaction struct {
	ID          int      `json:"id"`
	Date        string   `json:"date"` // YYYY-MM-DD, or UnknownDate
	Description string   `json:"description"`
	Amount      float64  `json:"amount"`
	Category    Category `json:"category"`
	Merchant    string   `json:"merchant"`

	// Derived temporal parts, populated at normalization.
	Month       string `json:"month"` // three-letter abbreviation, or UnknownMonth
	DayOfWeek   int    `json:"dayOfWeek"`
	DayOfMonth  int    `json:"dayOfMonth"`
	Hour        int    `json:"hour"`
	WeekOfMonth int    `json:"weekOfMonth"` // ceil(DayOfMonth / 7)
}

// MonthAbbreviations indexes month number (1-12) minus one to its label.
var MonthAbbreviations = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// DataSource tags where a session's transactions came from, so downstream
// consumers (dashboard, assistant) can tell real data from the synthetic
// fallback.
type DataSource string

const (
	SourceExtracted DataSource = "extracted"
	SourceSample    DataSource = "sample"
)

// AnalysisResult is what an ingestion run produces: the canonical transaction
// set plus its provenance.
type AnalysisResult struct {
	Transactions []Transaction `json:"transactions"`
	DataSource   DataSource    `json:"dataSource"`
}

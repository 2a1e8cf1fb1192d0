// backend/src/models/snapshot.go
package models

// The types below are the named metrics the analytics engine computes. The
// whole bundle is a pure value: recomputing it from the same transactions,
// profile and period yields an identical snapshot.

// CategoryTotal is one slice of the spending pie, sorted descending by total.
type CategoryTotal struct {
	Category Category `json:"category"`
	Total    float64  `json:"total"`
}

// NeedsWants is the essential vs non-essential split. Percentages sum to 100
// whenever at least one transaction fell in either set; both are 0 otherwise.
type NeedsWants struct {
	Needs        float64 `json:"needs"`
	Wants        float64 `json:"wants"`
	NeedsPercent float64 `json:"needsPercent"`
	WantsPercent float64 `json:"wantsPercent"`
}

// WeekBucket is one calendar week-of-month of spending.
type WeekBucket struct {
	Week  int     `json:"week"` // 1-4
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// SpendingVelocity reports how spending moves through the month.
type SpendingVelocity struct {
	Weeks [4]WeekBucket `json:"weeks"`
	Trend string        `json:"trend"` // "accelerating" or "decelerating"
}

// HourBucket is one hour of the day with at least one transaction.
type HourBucket struct {
	Hour  int     `json:"hour"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// HourlyDistribution is sparse: hours without transactions are omitted.
type HourlyDistribution struct {
	Hours    []HourBucket `json:"hours"`
	PeakHour int          `json:"peakHour"` // -1 when there is no spending at all
}

// Volatility classes: Stable (<50), Moderate (<100), Highly Variable (>=100).
const (
	VolatilityStable   = "Stable"
	VolatilityModerate = "Moderate"
	VolatilityHigh     = "Highly Variable"
)

// Volatility summarizes day-to-day variation of spend.
type Volatility struct {
	DailyMean   float64 `json:"dailyMean"`
	StdDev      float64 `json:"stdDev"`
	Coefficient float64 `json:"coefficient"` // stddev/mean * 100; 0 when mean is 0
	Level       string  `json:"level"`
	Days        int     `json:"days"`
}

// CategoryChange is a category whose spend moved between the first and last
// observed months.
type CategoryChange struct {
	Category   Category `json:"category"`
	FirstMonth float64  `json:"firstMonth"`
	LastMonth  float64  `json:"lastMonth"`
	Change     float64  `json:"change"` // percent
}

// LifestyleCreep compares the first and last observed months over the full,
// unfiltered history.
type LifestyleCreep struct {
	Detected   bool             `json:"detected"`
	FirstMonth string           `json:"firstMonth"`
	LastMonth  string           `json:"lastMonth"`
	FirstTotal float64          `json:"firstTotal"`
	LastTotal  float64          `json:"lastTotal"`
	Change     float64          `json:"change"` // percent; 0 when first month is 0
	Categories []CategoryChange `json:"categories"`
}

// ImpulseReport flags non-essential transactions above twice the group mean.
type ImpulseReport struct {
	Mean      float64       `json:"mean"`
	Threshold float64       `json:"threshold"`
	Count     int           `json:"count"`
	Total     float64       `json:"total"`
	Top       []Transaction `json:"top"` // up to 5, by amount descending
}

// DuplicateCluster is a group of transactions sharing (date, amount, merchant).
type DuplicateCluster struct {
	Date     string  `json:"date"`
	Amount   float64 `json:"amount"`
	Merchant string  `json:"merchant"`
	Count    int     `json:"count"`
}

// DuplicateReport assumes one instance per cluster was legitimate.
type DuplicateReport struct {
	Count            int                `json:"count"`
	PotentialSavings float64            `json:"potentialSavings"`
	Samples          []DuplicateCluster `json:"samples"` // up to 5
}

// CategoryPair counts two categories purchased on the same calendar day.
type CategoryPair struct {
	Pair  string `json:"pair"` // "A + B", alphabetically ordered
	Count int    `json:"count"`
}

// Savings rate status bands.
const (
	SavingsExcellent = "Excellent"
	SavingsGood      = "Good"
	SavingsNeedsWork = "Needs Improvement"
	SavingsDeficit   = "Deficit"
)

// SavingsRate relates net income to average monthly spend.
type SavingsRate struct {
	Rate                float64 `json:"rate"` // percent, whole number
	NetIncome           float64 `json:"netIncome"`
	AverageMonthlySpend float64 `json:"averageMonthlySpend"`
	Saved               float64 `json:"saved"`
	Status              string  `json:"status"`
}

// Emergency fund status bands.
const (
	FundExcellent    = "Excellent"
	FundAcceptable   = "Acceptable"
	FundInsufficient = "Insufficient"
)

// EmergencyFund measures how many months current savings would cover.
type EmergencyFund struct {
	Months  float64 `json:"months"` // one decimal
	Target  float64 `json:"target"` // six months of average spend
	Deficit float64 `json:"deficit"`
	Status  string  `json:"status"`
}

// BenchmarkEntry compares one life area against a fixed share-of-income table.
type BenchmarkEntry struct {
	Area           string  `json:"area"`
	MonthlyAverage float64 `json:"monthlyAverage"`
	Benchmark      float64 `json:"benchmark"`   // income * share
	IncomeShare    float64 `json:"incomeShare"` // e.g. 0.15
	OverBudget     bool    `json:"overBudget"`
}

// Health score bands.
const (
	HealthExcellent = "Excellent"
	HealthGood      = "Good"
	HealthFair      = "Fair"
	HealthCritical  = "Critical"
)

// HealthScore is the 0-100 composite index.
type HealthScore struct {
	Score int    `json:"score"`
	Band  string `json:"band"`
}

// Alert severities.
const (
	AlertCritical = "critical"
	AlertWarning  = "warning"
	AlertInfo     = "info"
)

// Alert is one matched condition->message rule.
type Alert struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// SavingsOpportunity is one triggered reduction rule.
type SavingsOpportunity struct {
	Label            string  `json:"label"`
	MonthlySpend     float64 `json:"monthlySpend"`
	ReductionPercent float64 `json:"reductionPercent"`
	Savings          float64 `json:"savings"` // estimated monthly
	Suggestion       string  `json:"suggestion"`
}

// Prediction confidence bands, from the coefficient of variation of monthly
// totals (<0.2 High, <0.4 Medium, otherwise Low).
const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
	ConfidenceLow    = "Low"
)

// Prediction is the next-month spend estimate.
type Prediction struct {
	Predicted  float64 `json:"predicted"`
	Trend      float64 `json:"trend"`
	TrendLabel string  `json:"trendLabel"` // "rising", "falling", "stable"
	Confidence string  `json:"confidence"`
}

// AnalyticsSnapshot bundles every metric for one (transactions, profile,
// period) triple. Periodized metrics are computed on the filtered set;
// LifestyleCreep and Prediction always look at the full history.
type AnalyticsSnapshot struct {
	Period string `json:"period"`

	TotalSpent          float64         `json:"totalSpent"`
	TotalInvestments    float64         `json:"totalInvestments"`
	AverageMonthlySpend float64         `json:"averageMonthlySpend"`
	MonthCount          int             `json:"monthCount"`
	CategoryTotals      []CategoryTotal `json:"categoryTotals"`
	NeedsWants          NeedsWants      `json:"needsWants"`

	Velocity     SpendingVelocity   `json:"velocity"`
	Hourly       HourlyDistribution `json:"hourly"`
	Volatility   Volatility         `json:"volatility"`
	Creep        LifestyleCreep     `json:"creep"`
	Impulse      ImpulseReport      `json:"impulse"`
	Duplicates   DuplicateReport    `json:"duplicates"`
	Cooccurrence []CategoryPair     `json:"cooccurrence"`

	SavingsRate   SavingsRate      `json:"savingsRate"`
	EmergencyFund EmergencyFund    `json:"emergencyFund"`
	Benchmarks    []BenchmarkEntry `json:"benchmarks"`
	Health        HealthScore      `json:"health"`
	Alerts        []Alert          `json:"alerts"`

	Opportunities         []SavingsOpportunity `json:"opportunities"`
	TotalPotentialSavings float64              `json:"totalPotentialSavings"`
	Prediction            Prediction           `json:"prediction"`
}

package summary

// dateOnlyFormat is the wire format of calendar dates.
const dateOnlyFormat = "2006-01-02"

// SpendingSummary is the API response model for the spending summary.
type SpendingSummary struct {
	TodayTotal            float64 `json:"todayTotal" doc:"Sum of price for the current calendar day"`
	TodayTrend            float64 `json:"todayTrend" doc:"Signed deviation from the preceding 7-day daily average; positive means below average"`
	MonthTotal            float64 `json:"monthTotal" doc:"Sum of price for the current calendar month"`
	MonthTrend            float64 `json:"monthTrend" doc:"Percentage change against the previous month"`
	TopCategory           string  `json:"topCategory" doc:"Largest category this month, or None"`
	TopCategoryAmount     float64 `json:"topCategoryAmount" doc:"Total of the largest category"`
	TopCategoryPercentage float64 `json:"topCategoryPercentage" doc:"Share of the month total held by the largest category"`
	DailyAverage          float64 `json:"dailyAverage" doc:"Month total divided by the calendar days in the month"`
}

// CategorySummary is one category's share of the current month.
type CategorySummary struct {
	Category   string  `json:"category" doc:"Category label"`
	Total      float64 `json:"total" doc:"Summed price for the month"`
	Percentage float64 `json:"percentage" doc:"Share of the month total"`
}

// DailyTotal is one entry of the daily spending series.
type DailyTotal struct {
	Date  string  `json:"date" doc:"Calendar date (YYYY-MM-DD)"`
	Total float64 `json:"total" doc:"Summed price for the date, 0 when no transactions"`
}

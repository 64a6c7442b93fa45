package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/spend-server/internal/storage"
)

const defaultTrendDays = 7

var hundred = decimal.NewFromInt(100)

// SpendingSummary is the dashboard view of spending relative to "now".
type SpendingSummary struct {
	TodayTotal            decimal.Decimal
	TodayTrend            float64
	MonthTotal            decimal.Decimal
	MonthTrend            float64
	TopCategory           string
	TopCategoryAmount     decimal.Decimal
	TopCategoryPercentage float64
	DailyAverage          decimal.Decimal
}

// CategorySummary is one category's share of the current month.
type CategorySummary struct {
	Category   string
	Total      decimal.Decimal
	Percentage float64
}

// DailyTotal is one day of the daily spending series.
type DailyTotal struct {
	Date  time.Time
	Total decimal.Decimal
}

// SummaryService computes derived spending views over the transaction store.
type SummaryService struct {
	store storage.ITransactionStore
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(store storage.ITransactionStore) *SummaryService {
	return &SummaryService{store: store}
}

// SpendingSummary computes today/month totals and their trends relative to
// now. The today trend compares against the average daily total over the 7
// preceding calendar days, sign-inverted so spending below the average reads
// as a positive value. The month trend is the plain percentage change from
// the previous calendar month.
func (s *SummaryService) SpendingSummary(ctx context.Context, now time.Time) (*SpendingSummary, error) {
	today := calendarDate(now)

	todayTotal, err := s.store.TotalInRange(ctx, today, today)
	if err != nil {
		return nil, err
	}

	weekFrom := today.AddDate(0, 0, -defaultTrendDays)
	weekTo := today.AddDate(0, 0, -1)
	weekTotals, err := s.store.TotalsByDay(ctx, weekFrom, weekTo)
	if err != nil {
		return nil, err
	}
	weekSum := decimal.Zero
	for _, dt := range weekTotals {
		weekSum = weekSum.Add(dt.Total)
	}
	weekAvg := weekSum.Div(decimal.NewFromInt(defaultTrendDays))

	todayTrend := 0.0
	if weekAvg.IsPositive() {
		// Inverted on purpose: a day below the weekly average is good news.
		todayTrend = todayTotal.Sub(weekAvg).Div(weekAvg).Mul(hundred).Neg().Round(2).InexactFloat64()
	}

	monthFrom, monthTo := monthBounds(today)
	monthTotal, err := s.store.TotalInRange(ctx, monthFrom, monthTo)
	if err != nil {
		return nil, err
	}

	prevFrom := monthFrom.AddDate(0, -1, 0)
	prevTo := monthFrom.AddDate(0, 0, -1)
	prevTotal, err := s.store.TotalInRange(ctx, prevFrom, prevTo)
	if err != nil {
		return nil, err
	}

	monthTrend := 0.0
	if prevTotal.IsPositive() {
		monthTrend = monthTotal.Sub(prevTotal).Div(prevTotal).Mul(hundred).Round(2).InexactFloat64()
	}

	summary := &SpendingSummary{
		TodayTotal:        todayTotal.Round(2),
		TodayTrend:        todayTrend,
		MonthTotal:        monthTotal.Round(2),
		MonthTrend:        monthTrend,
		TopCategory:       "None",
		TopCategoryAmount: decimal.Zero,
		DailyAverage:      monthTotal.Div(decimal.NewFromInt(int64(monthTo.Day()))).Round(2),
	}

	categories, err := s.store.TotalsByCategory(ctx, monthFrom, monthTo)
	if err != nil {
		return nil, err
	}
	if len(categories) > 0 {
		top := categories[0]
		summary.TopCategory = top.Category
		summary.TopCategoryAmount = top.Total.Round(2)
		if monthTotal.IsPositive() {
			summary.TopCategoryPercentage = top.Total.Div(monthTotal).Mul(hundred).Round(2).InexactFloat64()
		}
	}

	return summary, nil
}

// CategorySummary groups the current month's transactions by category with
// each group's share of the month total, largest first. Categories with no
// transactions this month are omitted.
func (s *SummaryService) CategorySummary(ctx context.Context, now time.Time) ([]CategorySummary, error) {
	monthFrom, monthTo := monthBounds(calendarDate(now))

	totals, err := s.store.TotalsByCategory(ctx, monthFrom, monthTo)
	if err != nil {
		return nil, err
	}

	monthTotal := decimal.Zero
	for _, ct := range totals {
		monthTotal = monthTotal.Add(ct.Total)
	}

	summaries := make([]CategorySummary, len(totals))
	for i, ct := range totals {
		summaries[i] = CategorySummary{
			Category: ct.Category,
			Total:    ct.Total.Round(2),
		}
		if monthTotal.IsPositive() {
			summaries[i].Percentage = ct.Total.Div(monthTotal).Mul(hundred).Round(2).InexactFloat64()
		}
	}
	return summaries, nil
}

// DailySpending returns exactly days entries covering the most recent days
// calendar days ending today, in ascending order, with zero totals for days
// that have no transactions. Non-positive days falls back to the default of 7.
func (s *SummaryService) DailySpending(ctx context.Context, now time.Time, days int) ([]DailyTotal, error) {
	if days <= 0 {
		days = defaultTrendDays
	}
	today := calendarDate(now)
	from := today.AddDate(0, 0, -(days - 1))

	totals, err := s.store.TotalsByDay(ctx, from, today)
	if err != nil {
		return nil, err
	}
	byDay := make(map[time.Time]decimal.Decimal, len(totals))
	for _, dt := range totals {
		byDay[dt.Day] = dt.Total
	}

	series := make([]DailyTotal, days)
	for i := 0; i < days; i++ {
		day := from.AddDate(0, 0, i)
		series[i] = DailyTotal{Date: day, Total: byDay[day].Round(2)}
	}
	return series, nil
}

// monthBounds returns the first and last calendar day of day's month.
func monthBounds(day time.Time) (time.Time, time.Time) {
	from := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return from, to
}

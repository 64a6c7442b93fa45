package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/spend-server/internal/storage"
)

func newTestSummaryService(t *testing.T) (*SummaryService, *storage.MockITransactionStore) {
	t.Helper()
	mockStore := storage.NewMockITransactionStore(t)
	return NewSummaryService(mockStore), mockStore
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// -- SpendingSummary tests --

func TestSpendingSummary_TrendsAndAverages(t *testing.T) {
	svc, mockStore := newTestSummaryService(t)
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	// Today: 10.00 spent.
	mockStore.EXPECT().TotalInRange(mock.Anything, day(2025, 6, 15), day(2025, 6, 15)).
		Return(decimal.RequireFromString("10.00"), nil)

	// Preceding 7 days sum to 140.00, so the daily average is 20.00.
	mockStore.EXPECT().TotalsByDay(mock.Anything, day(2025, 6, 8), day(2025, 6, 14)).
		Return([]storage.DayTotal{
			{Day: day(2025, 6, 9), Total: decimal.RequireFromString("60.00")},
			{Day: day(2025, 6, 12), Total: decimal.RequireFromString("80.00")},
		}, nil)

	// Current month: 300.00; previous month: 200.00.
	mockStore.EXPECT().TotalInRange(mock.Anything, day(2025, 6, 1), day(2025, 6, 30)).
		Return(decimal.RequireFromString("300.00"), nil)
	mockStore.EXPECT().TotalInRange(mock.Anything, day(2025, 5, 1), day(2025, 5, 31)).
		Return(decimal.RequireFromString("200.00"), nil)

	mockStore.EXPECT().TotalsByCategory(mock.Anything, day(2025, 6, 1), day(2025, 6, 30)).
		Return([]storage.CategoryTotal{
			{Category: "Food", Total: decimal.RequireFromString("180.00")},
			{Category: "Rent", Total: decimal.RequireFromString("120.00")},
		}, nil)

	summary, err := svc.SpendingSummary(context.Background(), now)

	assert.NoError(t, err)
	assert.True(t, summary.TodayTotal.Equal(decimal.RequireFromString("10.00")))
	// Half the weekly average spent today reads as +50: spending is down.
	assert.Equal(t, 50.0, summary.TodayTrend)
	assert.True(t, summary.MonthTotal.Equal(decimal.RequireFromString("300.00")))
	assert.Equal(t, 50.0, summary.MonthTrend)
	assert.Equal(t, "Food", summary.TopCategory)
	assert.True(t, summary.TopCategoryAmount.Equal(decimal.RequireFromString("180.00")))
	assert.Equal(t, 60.0, summary.TopCategoryPercentage)
	// June has 30 days: 300.00 / 30.
	assert.True(t, summary.DailyAverage.Equal(decimal.RequireFromString("10.00")),
		"dailyAverage %s", summary.DailyAverage)
}

func TestSpendingSummary_OverspendingTodayIsNegativeTrend(t *testing.T) {
	svc, mockStore := newTestSummaryService(t)
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	// 40.00 today against a 20.00 weekly average: trend is -100.
	mockStore.EXPECT().TotalInRange(mock.Anything, day(2025, 6, 15), day(2025, 6, 15)).
		Return(decimal.RequireFromString("40.00"), nil)
	mockStore.EXPECT().TotalsByDay(mock.Anything, day(2025, 6, 8), day(2025, 6, 14)).
		Return([]storage.DayTotal{
			{Day: day(2025, 6, 10), Total: decimal.RequireFromString("140.00")},
		}, nil)
	mockStore.EXPECT().TotalInRange(mock.Anything, day(2025, 6, 1), day(2025, 6, 30)).
		Return(decimal.RequireFromString("40.00"), nil)
	mockStore.EXPECT().TotalInRange(mock.Anything, day(2025, 5, 1), day(2025, 5, 31)).
		Return(decimal.Zero, nil)
	mockStore.EXPECT().TotalsByCategory(mock.Anything, day(2025, 6, 1), day(2025, 6, 30)).
		Return([]storage.CategoryTotal{
			{Category: "Petrol", Total: decimal.RequireFromString("40.00")},
		}, nil)

	summary, err := svc.SpendingSummary(context.Background(), now)

	assert.NoError(t, err)
	assert.Equal(t, -100.0, summary.TodayTrend)
	// No previous-month data means no trend rather than a division by zero.
	assert.Equal(t, 0.0, summary.MonthTrend)
}

func TestSpendingSummary_EmptyMonth(t *testing.T) {
	svc, mockStore := newTestSummaryService(t)
	now := time.Date(2025, 2, 10, 8, 0, 0, 0, time.UTC)

	mockStore.EXPECT().TotalInRange(mock.Anything, mock.Anything, mock.Anything).
		Return(decimal.Zero, nil)
	mockStore.EXPECT().TotalsByDay(mock.Anything, mock.Anything, mock.Anything).
		Return([]storage.DayTotal{}, nil)
	mockStore.EXPECT().TotalsByCategory(mock.Anything, mock.Anything, mock.Anything).
		Return([]storage.CategoryTotal{}, nil)

	summary, err := svc.SpendingSummary(context.Background(), now)

	assert.NoError(t, err)
	assert.True(t, summary.TodayTotal.IsZero())
	assert.Equal(t, 0.0, summary.TodayTrend)
	assert.Equal(t, 0.0, summary.MonthTrend)
	assert.Equal(t, "None", summary.TopCategory)
	assert.True(t, summary.TopCategoryAmount.IsZero())
	assert.Equal(t, 0.0, summary.TopCategoryPercentage)
	assert.True(t, summary.DailyAverage.IsZero())
}

func TestSpendingSummary_StorageError(t *testing.T) {
	svc, mockStore := newTestSummaryService(t)

	mockStore.EXPECT().TotalInRange(mock.Anything, mock.Anything, mock.Anything).
		Return(decimal.Zero, errors.New("database unavailable"))

	summary, err := svc.SpendingSummary(context.Background(), time.Now())

	assert.Error(t, err)
	assert.Nil(t, summary)
}

// -- CategorySummary tests --

func TestCategorySummary_SharesOfMonthTotal(t *testing.T) {
	svc, mockStore := newTestSummaryService(t)
	now := time.Date(2025, 11, 18, 11, 0, 0, 0, time.UTC)

	mockStore.EXPECT().TotalsByCategory(mock.Anything, day(2025, 11, 1), day(2025, 11, 30)).
		Return([]storage.CategoryTotal{
			{Category: "Food", Total: decimal.RequireFromString("30.00")},
			{Category: "Rent", Total: decimal.RequireFromString("5.00")},
		}, nil)

	summaries, err := svc.CategorySummary(context.Background(), now)

	assert.NoError(t, err)
	assert.Len(t, summaries, 2)

	assert.Equal(t, "Food", summaries[0].Category)
	assert.True(t, summaries[0].Total.Equal(decimal.RequireFromString("30.00")))
	assert.Equal(t, 85.71, summaries[0].Percentage)

	assert.Equal(t, "Rent", summaries[1].Category)
	assert.True(t, summaries[1].Total.Equal(decimal.RequireFromString("5.00")))
	assert.Equal(t, 14.29, summaries[1].Percentage)
}

func TestCategorySummary_EmptyMonth(t *testing.T) {
	svc, mockStore := newTestSummaryService(t)

	mockStore.EXPECT().TotalsByCategory(mock.Anything, mock.Anything, mock.Anything).
		Return([]storage.CategoryTotal{}, nil)

	summaries, err := svc.CategorySummary(context.Background(), time.Now())

	assert.NoError(t, err)
	assert.Empty(t, summaries)
}

// -- DailySpending tests --

func TestDailySpending_ZeroFillsMissingDays(t *testing.T) {
	svc, mockStore := newTestSummaryService(t)
	now := time.Date(2025, 6, 15, 23, 0, 0, 0, time.UTC)

	// Only one of the three requested days has any spending.
	mockStore.EXPECT().TotalsByDay(mock.Anything, day(2025, 6, 13), day(2025, 6, 15)).
		Return([]storage.DayTotal{
			{Day: day(2025, 6, 14), Total: decimal.RequireFromString("12.50")},
		}, nil)

	series, err := svc.DailySpending(context.Background(), now, 3)

	assert.NoError(t, err)
	assert.Len(t, series, 3)
	assert.Equal(t, day(2025, 6, 13), series[0].Date)
	assert.True(t, series[0].Total.IsZero())
	assert.Equal(t, day(2025, 6, 14), series[1].Date)
	assert.True(t, series[1].Total.Equal(decimal.RequireFromString("12.50")))
	assert.Equal(t, day(2025, 6, 15), series[2].Date)
	assert.True(t, series[2].Total.IsZero())
}

func TestDailySpending_SeriesIsAscendingAndEndsToday(t *testing.T) {
	svc, mockStore := newTestSummaryService(t)
	now := time.Date(2025, 3, 1, 6, 0, 0, 0, time.UTC)

	// A 5-day window starting on March 1 reaches back into February.
	mockStore.EXPECT().TotalsByDay(mock.Anything, day(2025, 2, 25), day(2025, 3, 1)).
		Return([]storage.DayTotal{}, nil)

	series, err := svc.DailySpending(context.Background(), now, 5)

	assert.NoError(t, err)
	assert.Len(t, series, 5)
	for i := 1; i < len(series); i++ {
		assert.True(t, series[i-1].Date.Before(series[i].Date))
	}
	assert.Equal(t, day(2025, 3, 1), series[len(series)-1].Date)
}

func TestDailySpending_NonPositiveDaysFallsBackToDefault(t *testing.T) {
	svc, mockStore := newTestSummaryService(t)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	mockStore.EXPECT().TotalsByDay(mock.Anything, day(2025, 6, 9), day(2025, 6, 15)).
		Return([]storage.DayTotal{}, nil)

	series, err := svc.DailySpending(context.Background(), now, 0)

	assert.NoError(t, err)
	assert.Len(t, series, defaultTrendDays)
}

func TestDailySpending_StorageError(t *testing.T) {
	svc, mockStore := newTestSummaryService(t)

	mockStore.EXPECT().TotalsByDay(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	series, err := svc.DailySpending(context.Background(), time.Now(), 7)

	assert.Error(t, err)
	assert.Nil(t, series)
}

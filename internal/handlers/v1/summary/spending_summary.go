package summary

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/spend-server/internal/logging"
	"github.com/carson-networks/spend-server/internal/service"
)

// SpendingSummaryInput is the Huma input for the spending summary.
type SpendingSummaryInput struct{}

// SpendingSummaryOutput is the Huma output for the spending summary.
type SpendingSummaryOutput struct {
	Body SpendingSummary
}

// spendingSummarizer is the interface for computing the spending summary.
type spendingSummarizer interface {
	SpendingSummary(ctx context.Context, now time.Time) (*service.SpendingSummary, error)
}

// SpendingSummaryHandler handles GET /v1/summary/spending.
type SpendingSummaryHandler struct {
	SummaryService spendingSummarizer
}

// NewSpendingSummaryHandler creates a new SpendingSummaryHandler.
func NewSpendingSummaryHandler(svc spendingSummarizer) *SpendingSummaryHandler {
	return &SpendingSummaryHandler{SummaryService: svc}
}

// Register registers the spending summary endpoint with the Huma API.
func (h *SpendingSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "spending-summary",
		Method:      http.MethodGet,
		Path:        "/v1/summary/spending",
		Summary:     "Spending summary",
		Description: "Returns today/month totals with trends and the top category of the current month.",
		Tags:        []string{"Summaries"},
	}, h.handle)
}

func (h *SpendingSummaryHandler) handle(ctx context.Context, _ *SpendingSummaryInput) (*SpendingSummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("spendingSummaryMs")
	}
	summary, err := h.SummaryService.SpendingSummary(ctx, time.Now())
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		// The cause goes to the logs; the response stays generic.
		if logData != nil {
			logData.AddData("error", err.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute spending summary")
	}

	return &SpendingSummaryOutput{Body: SpendingSummary{
		TodayTotal:            summary.TodayTotal.InexactFloat64(),
		TodayTrend:            summary.TodayTrend,
		MonthTotal:            summary.MonthTotal.InexactFloat64(),
		MonthTrend:            summary.MonthTrend,
		TopCategory:           summary.TopCategory,
		TopCategoryAmount:     summary.TopCategoryAmount.InexactFloat64(),
		TopCategoryPercentage: summary.TopCategoryPercentage,
		DailyAverage:          summary.DailyAverage.InexactFloat64(),
	}}, nil
}

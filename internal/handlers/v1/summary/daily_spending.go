package summary

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/spend-server/internal/logging"
	"github.com/carson-networks/spend-server/internal/service"
)

// DailySpendingInput is the Huma input for the daily spending series.
type DailySpendingInput struct {
	Days int `query:"days" doc:"Window length in calendar days ending today, defaults to 7"`
}

// DailySpendingOutput is the Huma output for the daily spending series.
type DailySpendingOutput struct {
	Body []DailyTotal
}

// dailySummarizer is the interface for computing the daily series.
type dailySummarizer interface {
	DailySpending(ctx context.Context, now time.Time, days int) ([]service.DailyTotal, error)
}

// DailySpendingHandler handles GET /v1/summary/daily.
type DailySpendingHandler struct {
	SummaryService dailySummarizer
}

// NewDailySpendingHandler creates a new DailySpendingHandler.
func NewDailySpendingHandler(svc dailySummarizer) *DailySpendingHandler {
	return &DailySpendingHandler{SummaryService: svc}
}

// Register registers the daily spending endpoint with the Huma API.
func (h *DailySpendingHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "daily-spending",
		Method:      http.MethodGet,
		Path:        "/v1/summary/daily",
		Summary:     "Daily spending",
		Description: "Returns a zero-filled daily spending series for the most recent days, ascending.",
		Tags:        []string{"Summaries"},
	}, h.handle)
}

func (h *DailySpendingHandler) handle(ctx context.Context, input *DailySpendingInput) (*DailySpendingOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("dailySpendingMs")
	}
	series, err := h.SummaryService.DailySpending(ctx, time.Now(), input.Days)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		// The cause goes to the logs; the response stays generic.
		if logData != nil {
			logData.AddData("error", err.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute daily spending")
	}

	body := make([]DailyTotal, len(series))
	for i, day := range series {
		body[i] = DailyTotal{
			Date:  day.Date.Format(dateOnlyFormat),
			Total: day.Total.InexactFloat64(),
		}
	}

	return &DailySpendingOutput{Body: body}, nil
}

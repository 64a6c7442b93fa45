package summary

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/spend-server/internal/logging"
	"github.com/carson-networks/spend-server/internal/service"
)

// CategorySummaryInput is the Huma input for the category summary.
type CategorySummaryInput struct{}

// CategorySummaryOutput is the Huma output for the category summary.
type CategorySummaryOutput struct {
	Body []CategorySummary
}

// categorySummarizer is the interface for computing the category summary.
type categorySummarizer interface {
	CategorySummary(ctx context.Context, now time.Time) ([]service.CategorySummary, error)
}

// CategorySummaryHandler handles GET /v1/summary/categories.
type CategorySummaryHandler struct {
	SummaryService categorySummarizer
}

// NewCategorySummaryHandler creates a new CategorySummaryHandler.
func NewCategorySummaryHandler(svc categorySummarizer) *CategorySummaryHandler {
	return &CategorySummaryHandler{SummaryService: svc}
}

// Register registers the category summary endpoint with the Huma API.
func (h *CategorySummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "category-summary",
		Method:      http.MethodGet,
		Path:        "/v1/summary/categories",
		Summary:     "Category summary",
		Description: "Returns the current month's totals grouped by category, largest first.",
		Tags:        []string{"Summaries"},
	}, h.handle)
}

func (h *CategorySummaryHandler) handle(ctx context.Context, _ *CategorySummaryInput) (*CategorySummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("categorySummaryMs")
	}
	summaries, err := h.SummaryService.CategorySummary(ctx, time.Now())
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		// The cause goes to the logs; the response stays generic.
		if logData != nil {
			logData.AddData("error", err.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute category summary")
	}

	body := make([]CategorySummary, len(summaries))
	for i, s := range summaries {
		body[i] = CategorySummary{
			Category:   s.Category,
			Total:      s.Total.InexactFloat64(),
			Percentage: s.Percentage,
		}
	}

	return &CategorySummaryOutput{Body: body}, nil
}

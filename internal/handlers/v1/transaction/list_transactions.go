package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/spend-server/internal/logging"
	"github.com/carson-networks/spend-server/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
// All parameters are optional; filters are conjunctive.
type ListTransactionsInput struct {
	Search   string `query:"search" doc:"Case-insensitive substring match on items"`
	Category string `query:"category" doc:"Exact category match"`
	Date     string `query:"date" doc:"Exact calendar date match (YYYY-MM-DD)"`
	SortBy   string `query:"sortBy" doc:"One of price:asc, price:desc, date:asc, date:desc; defaults to date:desc"`
	Page     int    `query:"page" doc:"1-based page number, defaults to 1"`
	Limit    int    `query:"limit" doc:"Page size, defaults to 10"`
}

// Pagination describes the window of a listing response. Total counts every
// match before pagination; Pages is ceil(total/limit).
type Pagination struct {
	Total int `json:"total" doc:"Number of matches before pagination"`
	Page  int `json:"page" doc:"Current 1-based page"`
	Limit int `json:"limit" doc:"Page size"`
	Pages int `json:"pages" doc:"Total number of pages"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions  []Transaction `json:"transactions" doc:"Page of transactions"`
	Pagination    Pagination    `json:"pagination" doc:"Pagination window"`
	FilteredTotal float64       `json:"filteredTotal" doc:"Sum of price over the entire filtered set"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, query *service.TransactionQuery) (*service.TransactionPage, error)
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns a filtered, sorted, paginated page of transactions plus totals over the whole filtered set.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput parses and validates the API input. Unknown
// sortBy values and malformed dates are rejected; non-positive page and
// limit values are left for the service to normalize to defaults.
func parseListTransactionsInput(input *ListTransactionsInput) (*service.TransactionQuery, error) {
	switch input.SortBy {
	case "", "price:asc", "price:desc", "date:asc", "date:desc":
	default:
		return nil, huma.NewError(http.StatusBadRequest, "invalid sortBy")
	}

	query := &service.TransactionQuery{
		Search:   input.Search,
		Category: input.Category,
		SortBy:   input.SortBy,
		Page:     input.Page,
		Limit:    input.Limit,
	}

	if input.Date != "" {
		date, err := time.Parse(dateOnlyFormat, input.Date)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid date filter", err)
		}
		query.Date = &date
	}

	return query, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	query, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	page, err := h.TransactionService.ListTransactions(ctx, query)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		// The cause goes to the logs; the response stays generic.
		if logData != nil {
			logData.AddData("error", err.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(page.Transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(page.Transactions)),
		Pagination: Pagination{
			Total: page.Total,
			Page:  page.Page,
			Limit: page.Limit,
			Pages: page.Pages,
		},
		FilteredTotal: page.FilteredTotal.InexactFloat64(),
	}
	for i, tx := range page.Transactions {
		resp.Transactions[i] = toAPITransaction(tx)
	}

	return &ListTransactionsOutput{Body: resp}, nil
}

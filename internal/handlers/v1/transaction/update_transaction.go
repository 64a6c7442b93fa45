package transaction

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/spend-server/internal/logging"
	"github.com/carson-networks/spend-server/internal/service"
	"github.com/carson-networks/spend-server/internal/storage"
)

// UpdateTransactionBody is the request body for editing a transaction.
// It replaces every mutable field; id and userId are immutable and the
// stored dateOnly is re-derived from dateTime.
type UpdateTransactionBody struct {
	Price    float64 `json:"price" required:"true" doc:"Positive amount"`
	Items    string  `json:"items" required:"true" doc:"Non-empty description"`
	DateTime string  `json:"dateTime" required:"true" doc:"RFC3339 timestamp"`
	Category string  `json:"category" required:"true" doc:"One of the known category labels"`
}

// UpdateTransactionInput is the Huma input for editing a transaction.
type UpdateTransactionInput struct {
	ID   int64 `path:"id" doc:"Transaction ID"`
	Body UpdateTransactionBody
}

// UpdateTransactionOutput is the Huma output for editing a transaction.
type UpdateTransactionOutput struct {
	Body Transaction
}

// transactionUpdater is the interface for editing a transaction.
type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, id int64, edit *service.TransactionEdit) (*service.Transaction, error)
}

// UpdateTransactionHandler handles PUT /v1/transactions/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/v1/transactions/{id}",
		Summary:     "Update transaction",
		Description: "Replaces the mutable fields of a transaction after validating the full payload.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseUpdateTransactionInput converts the body into a service edit. An
// unparseable dateTime yields a zero time so the service reports it together
// with any other field failures.
func parseUpdateTransactionInput(input *UpdateTransactionInput) *service.TransactionEdit {
	dateTime, err := time.Parse(time.RFC3339, input.Body.DateTime)
	if err != nil {
		dateTime = time.Time{}
	}
	return &service.TransactionEdit{
		Price:    decimal.NewFromFloat(input.Body.Price),
		Items:    input.Body.Items,
		DateTime: dateTime,
		Category: input.Body.Category,
	}
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)
	edit := parseUpdateTransactionInput(input)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateTransactionMs")
	}
	tx, err := h.TransactionService.UpdateTransaction(ctx, input.ID, edit)
	if stopTimer != nil {
		stopTimer()
	}

	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		details := make([]error, len(validationErr.Fields))
		for i, f := range validationErr.Fields {
			details[i] = &huma.ErrorDetail{
				Message:  f.Message,
				Location: "body." + f.Field,
			}
		}
		return nil, huma.NewError(http.StatusUnprocessableEntity, "invalid transaction", details...)
	case errors.Is(err, storage.ErrNotFound):
		return nil, huma.NewError(http.StatusNotFound, "transaction not found")
	case err != nil:
		// The cause goes to the logs; the response stays generic.
		if logData != nil {
			logData.AddData("error", err.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update transaction")
	}

	return &UpdateTransactionOutput{Body: toAPITransaction(*tx)}, nil
}

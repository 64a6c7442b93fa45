package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/spend-server/internal/logging"
	"github.com/carson-networks/spend-server/internal/service"
	"github.com/carson-networks/spend-server/internal/storage"
)

// GetTransactionInput is the Huma input for fetching a single transaction.
type GetTransactionInput struct {
	ID int64 `path:"id" doc:"Transaction ID"`
}

// GetTransactionOutput is the Huma output for fetching a single transaction.
type GetTransactionOutput struct {
	Body Transaction
}

// transactionGetter is the interface for looking up a transaction.
type transactionGetter interface {
	GetTransaction(ctx context.Context, id int64) (*service.Transaction, error)
}

// GetTransactionHandler handles GET /v1/transactions/{id}.
type GetTransactionHandler struct {
	TransactionService transactionGetter
}

// NewGetTransactionHandler creates a new GetTransactionHandler.
func NewGetTransactionHandler(svc transactionGetter) *GetTransactionHandler {
	return &GetTransactionHandler{TransactionService: svc}
}

// Register registers the get transaction endpoint with the Huma API.
func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/{id}",
		Summary:     "Get transaction",
		Description: "Returns a single transaction by ID.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *GetTransactionInput) (*GetTransactionOutput, error) {
	tx, err := h.TransactionService.GetTransaction(ctx, input.ID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, huma.NewError(http.StatusNotFound, "transaction not found")
	}
	if err != nil {
		// The cause goes to the logs; the response stays generic.
		if logData := logging.GetLogData(ctx); logData != nil {
			logData.AddData("error", err.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get transaction")
	}

	return &GetTransactionOutput{Body: toAPITransaction(*tx)}, nil
}

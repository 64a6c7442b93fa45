package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/spend-server/internal/service"
	"github.com/carson-networks/spend-server/internal/storage"
)

type mockTransactionGetter struct {
	mock.Mock
}

func (m *mockTransactionGetter) GetTransaction(ctx context.Context, id int64) (*service.Transaction, error) {
	args := m.Called(ctx, id)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func newGetTestAPI(t *testing.T, svc transactionGetter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGetTransactionHandler(svc).Register(api)
	return api
}

func TestHTTP_GetTransaction_Success(t *testing.T) {
	mockSvc := new(mockTransactionGetter)
	mockSvc.On("GetTransaction", mock.Anything, int64(7)).Return(&service.Transaction{
		ID:       7,
		Price:    decimal.RequireFromString("12.50"),
		Items:    "Weekly groceries",
		DateTime: time.Date(2025, 6, 10, 18, 30, 0, 0, time.UTC),
		DateOnly: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Category: "Food",
	}, nil)

	resp := newGetTestAPI(t, mockSvc).Get("/v1/transactions/7")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(7), body.ID)
	assert.Equal(t, 12.5, body.Price)
	assert.Equal(t, "Weekly groceries", body.Items)
	assert.Equal(t, "2025-06-10T18:30:00Z", body.DateTime)
	assert.Equal(t, "2025-06-10", body.DateOnly)
	assert.Equal(t, "Food", body.Category)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetTransaction_NotFound(t *testing.T) {
	mockSvc := new(mockTransactionGetter)
	mockSvc.On("GetTransaction", mock.Anything, int64(404)).
		Return((*service.Transaction)(nil), storage.ErrNotFound)

	resp := newGetTestAPI(t, mockSvc).Get("/v1/transactions/404")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetTransaction_NonNumericID(t *testing.T) {
	mockSvc := new(mockTransactionGetter)

	// Huma rejects the malformed path parameter before the handler runs.
	resp := newGetTestAPI(t, mockSvc).Get("/v1/transactions/abc")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "GetTransaction")
}

func TestHTTP_GetTransaction_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionGetter)
	mockSvc.On("GetTransaction", mock.Anything, mock.Anything).
		Return((*service.Transaction)(nil), errors.New("database unavailable"))

	resp := newGetTestAPI(t, mockSvc).Get("/v1/transactions/1")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.NotContains(t, resp.Body.String(), "database unavailable",
		"internal error detail must not reach the response")
	mockSvc.AssertExpectations(t)
}

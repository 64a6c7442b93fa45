package service

import (
	"github.com/carson-networks/spend-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Summary     *SummaryService
}

// NewService creates a new Service with the given storage.
func NewService(store storage.ITransactionStore) *Service {
	return &Service{
		Transaction: NewTransactionService(store),
		Summary:     NewSummaryService(store),
	}
}

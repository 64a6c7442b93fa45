package service

import (
	"context"
	"strings"
	"time"

	"github.com/carson-networks/spend-server/internal/storage"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// TransactionService handles transaction listing, lookup, and edits.
type TransactionService struct {
	store storage.ITransactionStore
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store storage.ITransactionStore) *TransactionService {
	return &TransactionService{store: store}
}

// ListTransactions returns the requested page of matching transactions along
// with the pre-pagination match count and the summed price over the whole
// filtered set. Non-positive page or limit values are normalized to the
// defaults; a page past the end of the data yields an empty page.
func (s *TransactionService) ListTransactions(ctx context.Context, query *TransactionQuery) (*TransactionPage, error) {
	page := defaultPage
	limit := defaultLimit
	var q TransactionQuery
	if query != nil {
		q = *query
	}
	if q.Page > 0 {
		page = q.Page
	}
	if q.Limit > 0 {
		limit = q.Limit
	}

	filter := &storage.TransactionFilter{
		Search:   q.Search,
		Category: q.Category,
		Date:     q.Date,
		Sort:     sortOrder(q.SortBy),
		Limit:    limit,
		Offset:   pageOffset(page, limit),
	}

	rows, total, sum, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := &TransactionPage{
		Transactions:  make([]Transaction, len(rows)),
		Total:         total,
		Page:          page,
		Limit:         limit,
		Pages:         (total + limit - 1) / limit,
		FilteredTotal: sum.Round(2),
	}
	for i, row := range rows {
		result.Transactions[i] = storedToTransaction(row)
	}
	return result, nil
}

// GetTransaction looks up a transaction by ID.
func (s *TransactionService) GetTransaction(ctx context.Context, id int64) (*Transaction, error) {
	row, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tx := storedToTransaction(row)
	return &tx, nil
}

// UpdateTransaction validates the edit, checks existence, and replaces the
// stored record's mutable fields. ID and UserID are preserved; DateOnly is
// re-derived from the submitted DateTime.
func (s *TransactionService) UpdateTransaction(ctx context.Context, id int64, edit *TransactionEdit) (*Transaction, error) {
	if err := validateEdit(edit); err != nil {
		return nil, err
	}

	// Not-found is surfaced before attempting the update.
	if _, err := s.store.FindByID(ctx, id); err != nil {
		return nil, err
	}

	update := &storage.TransactionUpdate{
		Price:    edit.Price.Round(2),
		Items:    strings.TrimSpace(edit.Items),
		DateTime: edit.DateTime,
		DateOnly: calendarDate(edit.DateTime),
		Category: edit.Category,
	}

	row, err := s.store.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	tx := storedToTransaction(row)
	return &tx, nil
}

func validateEdit(edit *TransactionEdit) error {
	var fields []FieldError
	if !edit.Price.IsPositive() {
		fields = append(fields, FieldError{Field: "price", Message: "must be a positive number"})
	}
	if strings.TrimSpace(edit.Items) == "" {
		fields = append(fields, FieldError{Field: "items", Message: "must not be empty"})
	}
	if edit.DateTime.IsZero() {
		fields = append(fields, FieldError{Field: "dateTime", Message: "must be a valid timestamp"})
	}
	if !ValidCategory(edit.Category) {
		fields = append(fields, FieldError{Field: "category", Message: "must be one of the known categories"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func sortOrder(sortBy string) storage.SortOrder {
	switch sortBy {
	case "price:asc":
		return storage.SortPriceAsc
	case "price:desc":
		return storage.SortPriceDesc
	case "date:asc":
		return storage.SortDateAsc
	default:
		return storage.SortDateDesc
	}
}

// pageOffset computes (page-1)*limit, saturating instead of overflowing so an
// absurd page number yields an empty page rather than a negative offset.
func pageOffset(page, limit int) int {
	const maxInt = int(^uint(0) >> 1)
	if page <= 1 {
		return 0
	}
	if page-1 > maxInt/limit {
		return maxInt
	}
	return (page - 1) * limit
}

// calendarDate truncates a timestamp to its UTC calendar date.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func storedToTransaction(row *storage.Transaction) Transaction {
	return Transaction{
		ID:       row.ID,
		Price:    row.Price,
		Items:    row.Items,
		DateTime: row.DateTime,
		DateOnly: row.DateOnly,
		Category: row.Category,
		UserID:   row.UserID,
	}
}

package storage

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when no transaction exists for the requested ID.
var ErrNotFound = errors.New("transaction not found")

// SortOrder selects the ordering of a transaction listing.
type SortOrder string

const (
	SortDateDesc  SortOrder = "date:desc"
	SortDateAsc   SortOrder = "date:asc"
	SortPriceDesc SortOrder = "price:desc"
	SortPriceAsc  SortOrder = "price:asc"
)

// Transaction represents a stored transaction record.
type Transaction struct {
	ID       int64
	Price    decimal.Decimal
	Items    string
	DateTime time.Time
	DateOnly time.Time // calendar date of DateTime, midnight UTC
	Category string
	UserID   uuid.UUID
}

// TransactionUpdate is the replacement set of mutable fields for an update.
// ID and UserID are never part of an update.
type TransactionUpdate struct {
	Price    decimal.Decimal
	Items    string
	DateTime time.Time
	DateOnly time.Time
	Category string
}

// TransactionFilter specifies filters, ordering, and the pagination window
// for listing transactions. All supplied filters are conjunctive.
type TransactionFilter struct {
	Search   string     // case-insensitive substring match on Items
	Category string     // exact match
	Date     *time.Time // exact DateOnly match
	UserID   *uuid.UUID
	Sort     SortOrder
	Limit    int
	Offset   int
}

// DayTotal is the summed price for one calendar day.
type DayTotal struct {
	Day   time.Time
	Total decimal.Decimal
}

// CategoryTotal is the summed price for one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// ITransactionStore defines the storage operations the engine depends on.
// This abstraction allows swapping the implementation (memory, Postgres)
// without changing callers.
//
// List returns the page of matching rows together with the total match count
// and the summed price over the entire filtered set, both computed before the
// pagination window is applied.
//
// TotalsByDay and TotalsByCategory aggregate over DateOnly in the inclusive
// [from, to] range; days or categories with no transactions are omitted.
// TotalsByCategory is ordered by total descending.
//
//go:generate mockery --name ITransactionStore --inpackage --with-expecter
type ITransactionStore interface {
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, int, decimal.Decimal, error)
	FindByID(ctx context.Context, id int64) (*Transaction, error)
	Update(ctx context.Context, id int64, update *TransactionUpdate) (*Transaction, error)
	TotalInRange(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	TotalsByDay(ctx context.Context, from, to time.Time) ([]DayTotal, error)
	TotalsByCategory(ctx context.Context, from, to time.Time) ([]CategoryTotal, error)
}

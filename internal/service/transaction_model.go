package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID       int64
	Price    decimal.Decimal
	Items    string
	DateTime time.Time
	DateOnly time.Time
	Category string
	UserID   uuid.UUID
}

// TransactionQuery carries the listing parameters. Zero-valued filters are
// treated as absent; non-positive Page/Limit fall back to the defaults.
type TransactionQuery struct {
	Search   string
	Category string
	Date     *time.Time
	SortBy   string
	Page     int
	Limit    int
}

// TransactionPage is one page of a filtered listing. Total and FilteredTotal
// cover the entire filtered set, not just this page.
type TransactionPage struct {
	Transactions  []Transaction
	Total         int
	Page          int
	Limit         int
	Pages         int
	FilteredTotal decimal.Decimal
}

// TransactionEdit is the full replacement of a transaction's mutable fields.
// DateOnly is not part of the edit; it is re-derived from DateTime so the
// two can never diverge.
type TransactionEdit struct {
	Price    decimal.Decimal
	Items    string
	DateTime time.Time
	Category string
}

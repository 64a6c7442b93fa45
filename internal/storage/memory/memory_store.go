package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/spend-server/internal/storage"
)

// Ensure Store implements ITransactionStore at compile time.
var _ storage.ITransactionStore = (*Store)(nil)

// Store provides in-memory persistence for transactions.
type Store struct {
	mu           sync.RWMutex
	transactions map[int64]*storage.Transaction
	nextID       int64
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		transactions: make(map[int64]*storage.Transaction),
	}
}

// seedRecord is the JSON shape of one seed file entry.
type seedRecord struct {
	Price    string `json:"price"`
	Items    string `json:"items"`
	DateTime string `json:"dateTime"`
	Category string `json:"category"`
	UserID   string `json:"userId"`
}

// NewStoreFromFile creates a store seeded from a JSON file containing an
// array of transactions. IDs are assigned in file order.
func NewStoreFromFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var records []seedRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	s := NewStore()
	for i, rec := range records {
		price, err := decimal.NewFromString(rec.Price)
		if err != nil {
			return nil, fmt.Errorf("seed record %d: invalid price %q", i, rec.Price)
		}
		dateTime, err := time.Parse(time.RFC3339, rec.DateTime)
		if err != nil {
			return nil, fmt.Errorf("seed record %d: invalid dateTime %q", i, rec.DateTime)
		}
		var userID uuid.UUID
		if rec.UserID != "" {
			userID, err = uuid.FromString(rec.UserID)
			if err != nil {
				return nil, fmt.Errorf("seed record %d: invalid userId %q", i, rec.UserID)
			}
		}
		s.Insert(&storage.Transaction{
			Price:    price,
			Items:    rec.Items,
			DateTime: dateTime,
			Category: rec.Category,
			UserID:   userID,
		})
	}
	return s, nil
}

// Insert adds a transaction and assigns the next monotonic ID.
// Used for seeding; the API itself never creates transactions.
func (s *Store) Insert(tx *storage.Transaction) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	stored := *tx
	stored.ID = s.nextID
	stored.DateOnly = dateOf(stored.DateTime)
	s.transactions[stored.ID] = &stored
	return stored.ID
}

// FindByID retrieves a transaction by ID.
func (s *Store) FindByID(ctx context.Context, id int64) (*storage.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.transactions[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	c := *tx
	return &c, nil
}

// Update replaces the mutable fields of a stored transaction.
func (s *Store) Update(ctx context.Context, id int64, update *storage.TransactionUpdate) (*storage.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.transactions[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	tx.Price = update.Price
	tx.Items = update.Items
	tx.DateTime = update.DateTime
	tx.DateOnly = update.DateOnly
	tx.Category = update.Category

	c := *tx
	return &c, nil
}

// List returns the page of matching transactions plus the total match count
// and the summed price over the whole filtered set.
func (s *Store) List(ctx context.Context, filter *storage.TransactionFilter) ([]*storage.Transaction, int, decimal.Decimal, error) {
	s.mu.RLock()
	var rows []*storage.Transaction
	sum := decimal.Zero
	for _, tx := range s.transactions {
		if matches(tx, filter) {
			c := *tx
			rows = append(rows, &c)
			sum = sum.Add(tx.Price)
		}
	}
	s.mu.RUnlock()

	order := storage.SortDateDesc
	limit, offset := 0, 0
	if filter != nil {
		if filter.Sort != "" {
			order = filter.Sort
		}
		limit = filter.Limit
		offset = filter.Offset
	}
	sortRows(rows, order)

	total := len(rows)
	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return []*storage.Transaction{}, total, sum, nil
	}
	rows = rows[offset:]
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, total, sum, nil
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func matches(tx *storage.Transaction, filter *storage.TransactionFilter) bool {
	if filter == nil {
		return true
	}
	if filter.Search != "" && !strings.Contains(strings.ToLower(tx.Items), strings.ToLower(filter.Search)) {
		return false
	}
	if filter.Category != "" && tx.Category != filter.Category {
		return false
	}
	if filter.Date != nil && !tx.DateOnly.Equal(*filter.Date) {
		return false
	}
	if filter.UserID != nil && tx.UserID != *filter.UserID {
		return false
	}
	return true
}

func sortRows(rows []*storage.Transaction, order storage.SortOrder) {
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch order {
		case storage.SortPriceAsc:
			if !a.Price.Equal(b.Price) {
				return a.Price.LessThan(b.Price)
			}
			return a.ID < b.ID
		case storage.SortPriceDesc:
			if !a.Price.Equal(b.Price) {
				return a.Price.GreaterThan(b.Price)
			}
			return a.ID > b.ID
		case storage.SortDateAsc:
			if !a.DateTime.Equal(b.DateTime) {
				return a.DateTime.Before(b.DateTime)
			}
			return a.ID < b.ID
		default: // SortDateDesc
			if !a.DateTime.Equal(b.DateTime) {
				return a.DateTime.After(b.DateTime)
			}
			return a.ID > b.ID
		}
	})
}

// TotalInRange sums prices over the inclusive [from, to] calendar-date range.
func (s *Store) TotalInRange(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, tx := range s.transactions {
		if inRange(tx.DateOnly, from, to) {
			total = total.Add(tx.Price)
		}
	}
	return total, nil
}

// TotalsByDay aggregates prices per calendar day over [from, to]. Days with
// no transactions are omitted.
func (s *Store) TotalsByDay(ctx context.Context, from, to time.Time) ([]storage.DayTotal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byDay := make(map[time.Time]decimal.Decimal)
	for _, tx := range s.transactions {
		if inRange(tx.DateOnly, from, to) {
			byDay[tx.DateOnly] = byDay[tx.DateOnly].Add(tx.Price)
		}
	}

	totals := make([]storage.DayTotal, 0, len(byDay))
	for day, total := range byDay {
		totals = append(totals, storage.DayTotal{Day: day, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Day.Before(totals[j].Day)
	})
	return totals, nil
}

// TotalsByCategory aggregates prices per category over [from, to], ordered
// by total descending. Empty categories are omitted.
func (s *Store) TotalsByCategory(ctx context.Context, from, to time.Time) ([]storage.CategoryTotal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byCategory := make(map[string]decimal.Decimal)
	for _, tx := range s.transactions {
		if inRange(tx.DateOnly, from, to) {
			byCategory[tx.Category] = byCategory[tx.Category].Add(tx.Price)
		}
	}

	totals := make([]storage.CategoryTotal, 0, len(byCategory))
	for category, total := range byCategory {
		totals = append(totals, storage.CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		if !totals[i].Total.Equal(totals[j].Total) {
			return totals[i].Total.GreaterThan(totals[j].Total)
		}
		return totals[i].Category < totals[j].Category
	})
	return totals, nil
}

func inRange(day, from, to time.Time) bool {
	return !day.Before(from) && !day.After(to)
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"time"

	"github.com/gofrs/uuid/v5"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/bob/mods"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/spend-server/internal/config"
	"github.com/carson-networks/spend-server/internal/storage"
)

// Ensure Store implements ITransactionStore at compile time. The composition
// root also relies on Close being reachable through io.Closer.
var (
	_ storage.ITransactionStore = (*Store)(nil)
	_ io.Closer                 = (*Store)(nil)
)

// Store provides transaction persistence backed by PostgreSQL. All filter
// values are bound as query arguments, never interpolated.
type Store struct {
	db   *sql.DB
	exec bob.Executor
}

// NewStore opens a connection to the configured database.
func NewStore(env *config.Config) (*Store, error) {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, exec: bob.NewDB(db)}, nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

type transactionRow struct {
	ID       int64           `db:"id"`
	Price    decimal.Decimal `db:"price"`
	Items    string          `db:"items"`
	DateTime time.Time       `db:"date_time"`
	DateOnly time.Time       `db:"date_only"`
	Category string          `db:"category"`
	UserID   uuid.UUID       `db:"user_id"`
}

type listTotalsRow struct {
	Total int64           `db:"total"`
	Sum   decimal.Decimal `db:"sum"`
}

func selectColumns() bob.Mod[*dialect.SelectQuery] {
	return sm.Columns("id", "price", "items", "date_time", "date_only", "category", "user_id")
}

func filterMods(filter *storage.TransactionFilter) []bob.Mod[*dialect.SelectQuery] {
	if filter == nil {
		return nil
	}
	var whereMods []mods.Where[*dialect.SelectQuery]
	if filter.Search != "" {
		whereMods = append(whereMods, sm.Where(psql.Quote("items").ILike(psql.Arg("%"+filter.Search+"%"))))
	}
	if filter.Category != "" {
		whereMods = append(whereMods, sm.Where(psql.Quote("category").EQ(psql.Arg(filter.Category))))
	}
	if filter.Date != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("date_only").EQ(psql.Arg(*filter.Date))))
	}
	if filter.UserID != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("user_id").EQ(psql.Arg(*filter.UserID))))
	}
	queryMods := make([]bob.Mod[*dialect.SelectQuery], len(whereMods))
	for i, m := range whereMods {
		queryMods[i] = m
	}
	return queryMods
}

func orderMods(order storage.SortOrder) []bob.Mod[*dialect.SelectQuery] {
	switch order {
	case storage.SortPriceAsc:
		return []bob.Mod[*dialect.SelectQuery]{
			sm.OrderBy("price").Asc(),
			sm.OrderBy("id").Asc(),
		}
	case storage.SortPriceDesc:
		return []bob.Mod[*dialect.SelectQuery]{
			sm.OrderBy("price").Desc(),
			sm.OrderBy("id").Desc(),
		}
	case storage.SortDateAsc:
		return []bob.Mod[*dialect.SelectQuery]{
			sm.OrderBy("date_time").Asc(),
			sm.OrderBy("id").Asc(),
		}
	default:
		return []bob.Mod[*dialect.SelectQuery]{
			sm.OrderBy("date_time").Desc(),
			sm.OrderBy("id").Desc(),
		}
	}
}

// List returns the page of matching rows plus the total match count and the
// summed price over the whole filtered set.
func (s *Store) List(ctx context.Context, filter *storage.TransactionFilter) ([]*storage.Transaction, int, decimal.Decimal, error) {
	whereMods := filterMods(filter)

	totalsQuery := psql.Select(append([]bob.Mod[*dialect.SelectQuery]{
		sm.Columns(
			psql.Raw("COUNT(*) AS total"),
			psql.Raw("COALESCE(SUM(price), 0) AS sum"),
		),
		sm.From("transactions"),
	}, whereMods...)...)

	totals, err := bob.One(ctx, s.exec, totalsQuery, scan.StructMapper[listTotalsRow]())
	if err != nil {
		return nil, 0, decimal.Zero, err
	}

	queryMods := []bob.Mod[*dialect.SelectQuery]{
		selectColumns(),
		sm.From("transactions"),
	}
	queryMods = append(queryMods, whereMods...)
	order := storage.SortDateDesc
	if filter != nil && filter.Sort != "" {
		order = filter.Sort
	}
	queryMods = append(queryMods, orderMods(order)...)
	if filter != nil {
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}

	rows, err := bob.All(ctx, s.exec, psql.Select(queryMods...), scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, 0, decimal.Zero, err
	}

	result := make([]*storage.Transaction, len(rows))
	for i, row := range rows {
		result[i] = rowToTransaction(row)
	}
	return result, int(totals.Total), totals.Sum, nil
}

// FindByID retrieves a transaction by primary key.
func (s *Store) FindByID(ctx context.Context, id int64) (*storage.Transaction, error) {
	query := psql.Select(
		selectColumns(),
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	row, err := bob.One(ctx, s.exec, query, scan.StructMapper[transactionRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rowToTransaction(row), nil
}

// Update replaces the mutable fields of a stored transaction.
func (s *Store) Update(ctx context.Context, id int64, update *storage.TransactionUpdate) (*storage.Transaction, error) {
	query := psql.Update(
		um.Table("transactions"),
		um.SetCol("price").ToArg(update.Price),
		um.SetCol("items").ToArg(update.Items),
		um.SetCol("date_time").ToArg(update.DateTime),
		um.SetCol("date_only").ToArg(update.DateOnly),
		um.SetCol("category").ToArg(update.Category),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	res, err := bob.Exec(ctx, s.exec, query)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, storage.ErrNotFound
	}

	return s.FindByID(ctx, id)
}

// TotalInRange sums prices over the inclusive [from, to] calendar-date range.
func (s *Store) TotalInRange(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	query := psql.Select(
		sm.Columns(psql.Raw("COALESCE(SUM(price), 0)")),
		sm.From("transactions"),
		sm.Where(psql.Quote("date_only").GTE(psql.Arg(from))),
		sm.Where(psql.Quote("date_only").LTE(psql.Arg(to))),
	)

	total, err := bob.One(ctx, s.exec, query, scan.SingleColumnMapper[decimal.Decimal])
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

type dayTotalRow struct {
	Day   time.Time       `db:"day"`
	Total decimal.Decimal `db:"total"`
}

// TotalsByDay aggregates prices per calendar day over [from, to], ascending.
func (s *Store) TotalsByDay(ctx context.Context, from, to time.Time) ([]storage.DayTotal, error) {
	query := psql.Select(
		sm.Columns(
			psql.Raw("date_only AS day"),
			psql.Raw("SUM(price) AS total"),
		),
		sm.From("transactions"),
		sm.Where(psql.Quote("date_only").GTE(psql.Arg(from))),
		sm.Where(psql.Quote("date_only").LTE(psql.Arg(to))),
		sm.GroupBy("date_only"),
		sm.OrderBy("date_only").Asc(),
	)

	rows, err := bob.All(ctx, s.exec, query, scan.StructMapper[dayTotalRow]())
	if err != nil {
		return nil, err
	}

	totals := make([]storage.DayTotal, len(rows))
	for i, row := range rows {
		totals[i] = storage.DayTotal{Day: row.Day.UTC(), Total: row.Total}
	}
	return totals, nil
}

type categoryTotalRow struct {
	Category string          `db:"category"`
	Total    decimal.Decimal `db:"total"`
}

// TotalsByCategory aggregates prices per category over [from, to], ordered
// by total descending.
func (s *Store) TotalsByCategory(ctx context.Context, from, to time.Time) ([]storage.CategoryTotal, error) {
	query := psql.Select(
		sm.Columns(
			psql.Raw("category"),
			psql.Raw("SUM(price) AS total"),
		),
		sm.From("transactions"),
		sm.Where(psql.Quote("date_only").GTE(psql.Arg(from))),
		sm.Where(psql.Quote("date_only").LTE(psql.Arg(to))),
		sm.GroupBy("category"),
		sm.OrderBy("total").Desc(),
		sm.OrderBy("category").Asc(),
	)

	rows, err := bob.All(ctx, s.exec, query, scan.StructMapper[categoryTotalRow]())
	if err != nil {
		return nil, err
	}

	totals := make([]storage.CategoryTotal, len(rows))
	for i, row := range rows {
		totals[i] = storage.CategoryTotal{Category: row.Category, Total: row.Total}
	}
	return totals, nil
}

func rowToTransaction(row transactionRow) *storage.Transaction {
	return &storage.Transaction{
		ID:       row.ID,
		Price:    row.Price,
		Items:    row.Items,
		DateTime: row.DateTime,
		DateOnly: row.DateOnly.UTC(),
		Category: row.Category,
		UserID:   row.UserID,
	}
}

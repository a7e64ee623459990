package expenses

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aristath/ledger-seeder/internal/domain"
)

// Preparer is satisfied by *sql.Tx and *sql.DB
type Preparer interface {
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

// Querier is satisfied by *sql.Tx, *sql.DB and *database.DB
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// Repository writes expenses and their tag associations
type Repository struct {
	log zerolog.Logger
}

// NewRepository creates an expense repository
func NewRepository(log zerolog.Logger) *Repository {
	return &Repository{
		log: log.With().Str("repo", "expenses").Logger(),
	}
}

// InsertExpenses inserts records in order, stores the assigned ids on the
// records and returns them.
func (r *Repository) InsertExpenses(ctx context.Context, p Preparer, records []domain.Expense) ([]int64, error) {
	stmt, err := p.PrepareContext(ctx, `
		INSERT INTO expenses
		(date, amount_cents, currency, description, category_id, account_id, notes, payer, payee)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare expense insert: %w", err)
	}
	defer stmt.Close()

	ids := make([]int64, 0, len(records))
	for i := range records {
		rec := &records[i]
		res, err := stmt.ExecContext(ctx,
			rec.Date.Format(domain.DateLayout),
			rec.AmountCents,
			string(rec.Currency),
			rec.Description,
			nullInt64(rec.CategoryID),
			nullInt64(rec.AccountID),
			nullString(rec.Notes),
			nullString(rec.Payer),
			nullString(rec.Payee),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert expense %q: %w", rec.Description, err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to read expense id: %w", err)
		}
		rec.ID = id
		ids = append(ids, id)
	}

	r.log.Debug().Int("count", len(ids)).Msg("Expenses inserted")
	return ids, nil
}

// InsertExpenseTags inserts associations, ignoring duplicates, and returns
// how many rows were added.
func (r *Repository) InsertExpenseTags(ctx context.Context, p Preparer, pairs []domain.ExpenseTag) (int, error) {
	stmt, err := p.PrepareContext(ctx, "INSERT OR IGNORE INTO expense_tags (expense_id, tag_id) VALUES (?, ?)")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare expense tag insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, pair := range pairs {
		res, err := stmt.ExecContext(ctx, pair.ExpenseID, pair.TagID)
		if err != nil {
			return inserted, fmt.Errorf("failed to tag expense %d: %w", pair.ExpenseID, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	r.log.Debug().Int("inserted", inserted).Int("pairs", len(pairs)).Msg("Expense tags inserted")
	return inserted, nil
}

// LoadForTagging returns every stored expense in id order, carrying only the
// fields the tagger reads.
func (r *Repository) LoadForTagging(ctx context.Context, q Querier) ([]domain.Expense, error) {
	rows, err := q.QueryContext(ctx, "SELECT id, description, category_id FROM expenses ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses for tagging: %w", err)
	}
	defer rows.Close()

	var records []domain.Expense
	for rows.Next() {
		var (
			rec      domain.Expense
			category sql.NullInt64
		)
		if err := rows.Scan(&rec.ID, &rec.Description, &category); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		if category.Valid {
			id := category.Int64
			rec.CategoryID = &id
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return records, nil
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

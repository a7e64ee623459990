package trading

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

// Repository writes trading activities
type Repository struct {
	log zerolog.Logger
}

// NewRepository creates a trading activity repository
func NewRepository(log zerolog.Logger) *Repository {
	return &Repository{
		log: log.With().Str("repo", "trading").Logger(),
	}
}

// InsertActivities inserts activities in order and stores the assigned ids
// on them. It returns the number of rows written.
func (r *Repository) InsertActivities(ctx context.Context, p Preparer, activities []domain.TradingActivity) (int, error) {
	stmt, err := p.PrepareContext(ctx, `
		INSERT INTO trading_activities
		(date, symbol, quantity, activity_type, unit_price_cents, currency, fee_cents, account_id, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare trading activity insert: %w", err)
	}
	defer stmt.Close()

	for i := range activities {
		a := &activities[i]
		res, err := stmt.ExecContext(ctx,
			a.Date.Format(domain.DateLayout),
			a.Symbol,
			a.Quantity,
			string(a.Type),
			a.UnitPriceCents,
			string(a.Currency),
			a.FeeCents,
			a.AccountID,
			a.Notes,
		)
		if err != nil {
			return i, fmt.Errorf("failed to insert %s activity for %s: %w", a.Type, a.Symbol, err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return i, fmt.Errorf("failed to read trading activity id: %w", err)
		}
		a.ID = id
	}

	r.log.Debug().Int("count", len(activities)).Msg("Trading activities inserted")
	return len(activities), nil
}

// Package summary reports what the store holds after a seeding run.
package summary

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// RowQuerier is satisfied by *sql.DB, *sql.Tx and *database.DB
type RowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// DateRange is the earliest and latest date of a table. Valid is false when
// the table is empty.
type DateRange struct {
	From  string
	To    string
	Valid bool
}

// Report holds the store totals
type Report struct {
	ExpenseDates      DateRange
	TradingDates      DateRange
	Accounts          int64
	Categories        int64
	Tags              int64
	Expenses          int64
	ExpenseTags       int64
	Rules             int64
	TradingActivities int64
	SpendingCents     int64
	IncomeCents       int64
}

// Repository runs the aggregate queries
type Repository struct {
	log zerolog.Logger
}

// NewRepository creates a summary repository
func NewRepository(log zerolog.Logger) *Repository {
	return &Repository{
		log: log.With().Str("repo", "summary").Logger(),
	}
}

// Collect reads the counts, totals and date ranges from the store
func (r *Repository) Collect(ctx context.Context, q RowQuerier) (*Report, error) {
	report := &Report{}

	counts := []struct {
		table string
		dest  *int64
	}{
		{"accounts", &report.Accounts},
		{"categories", &report.Categories},
		{"tags", &report.Tags},
		{"expenses", &report.Expenses},
		{"expense_tags", &report.ExpenseTags},
		{"rules", &report.Rules},
		{"trading_activities", &report.TradingActivities},
	}
	for _, c := range counts {
		if err := q.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+c.table).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.table, err)
		}
	}

	err := q.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN amount_cents < 0 THEN -amount_cents ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN amount_cents > 0 THEN amount_cents ELSE 0 END), 0)
		FROM expenses
	`).Scan(&report.SpendingCents, &report.IncomeCents)
	if err != nil {
		return nil, fmt.Errorf("failed to total expenses: %w", err)
	}

	if report.ExpenseDates, err = dateRange(ctx, q, "expenses"); err != nil {
		return nil, err
	}
	if report.TradingDates, err = dateRange(ctx, q, "trading_activities"); err != nil {
		return nil, err
	}

	r.log.Debug().
		Int64("expenses", report.Expenses).
		Int64("trading_activities", report.TradingActivities).
		Msg("Summary collected")

	return report, nil
}

func dateRange(ctx context.Context, q RowQuerier, table string) (DateRange, error) {
	var from, to sql.NullString
	if err := q.QueryRowContext(ctx, "SELECT MIN(date), MAX(date) FROM "+table).Scan(&from, &to); err != nil {
		return DateRange{}, fmt.Errorf("failed to read %s date range: %w", table, err)
	}
	return DateRange{From: from.String, To: to.String, Valid: from.Valid && to.Valid}, nil
}

// Write renders the report
func (rep *Report) Write(w io.Writer) error {
	rule := strings.Repeat("=", 50)

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\nDatabase seeded successfully!\n%s\n", rule, rule)
	fmt.Fprintf(&b, "Accounts: %s\n", humanize.Comma(rep.Accounts))
	fmt.Fprintf(&b, "Categories: %s\n", humanize.Comma(rep.Categories))
	fmt.Fprintf(&b, "Tags: %s\n", humanize.Comma(rep.Tags))
	fmt.Fprintf(&b, "Expenses: %s\n", humanize.Comma(rep.Expenses))
	fmt.Fprintf(&b, "Expense-Tag relations: %s\n", humanize.Comma(rep.ExpenseTags))
	fmt.Fprintf(&b, "Rules: %s\n", humanize.Comma(rep.Rules))
	fmt.Fprintf(&b, "Trading activities: %s\n", humanize.Comma(rep.TradingActivities))
	fmt.Fprintf(&b, "Total spending: %s\n", FormatMoney(rep.SpendingCents))
	fmt.Fprintf(&b, "Total income: %s\n", FormatMoney(rep.IncomeCents))
	if rep.ExpenseDates.Valid {
		fmt.Fprintf(&b, "Expense date range: %s to %s\n", rep.ExpenseDates.From, rep.ExpenseDates.To)
	}
	if rep.TradingDates.Valid {
		fmt.Fprintf(&b, "Trading date range: %s to %s\n", rep.TradingDates.From, rep.TradingDates.To)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// FormatMoney renders an absolute cent amount as dollars with thousands
// separators, e.g. $12,345.67
func FormatMoney(cents int64) string {
	d := decimal.New(cents, -2).Abs()
	whole := d.IntPart()
	fraction := d.Sub(decimal.NewFromInt(whole)).StringFixed(2)
	return "$" + humanize.Comma(whole) + strings.TrimPrefix(fraction, "0")
}

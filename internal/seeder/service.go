// Package seeder runs the seeding phases against a MoneyMapper store.
package seeder

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aristath/ledger-seeder/internal/database"
	"github.com/aristath/ledger-seeder/internal/domain"
	"github.com/aristath/ledger-seeder/internal/modules/catalog"
	"github.com/aristath/ledger-seeder/internal/modules/expenses"
	"github.com/aristath/ledger-seeder/internal/modules/reference"
	"github.com/aristath/ledger-seeder/internal/modules/summary"
	"github.com/aristath/ledger-seeder/internal/modules/trading"
	"github.com/aristath/ledger-seeder/pkg/random"
)

// Options controls one seeding run
type Options struct {
	Now      func() time.Time // defaults to time.Now
	Expenses int
	Days     int
	Clear    bool
}

// Result reports what a run wrote. Report reflects the whole store.
type Result struct {
	Report            *summary.Report
	RunID             string
	AccountsSeeded    int
	TagsSeeded        int
	RulesSeeded       int
	RulesSkipped      int
	Expenses          int
	SalaryEntries     int
	OtherIncome       int
	ExpensesSkipped   int
	ExpenseTags       int
	TagsDropped       int
	Activities        int
	ActivitiesSkipped int
	Cleared           bool
}

// Service wires the repositories and generators
type Service struct {
	db          *database.DB
	rnd         *random.Source
	catalogRepo *catalog.Repository
	expenseRepo *expenses.Repository
	tradingRepo *trading.Repository
	summaryRepo *summary.Repository
	log         zerolog.Logger
	catalog     reference.Catalog
}

// NewService creates a seeding service
func NewService(db *database.DB, cat reference.Catalog, rnd *random.Source, log zerolog.Logger) *Service {
	return &Service{
		db:          db,
		rnd:         rnd,
		catalogRepo: catalog.NewRepository(log),
		expenseRepo: expenses.NewRepository(log),
		tradingRepo: trading.NewRepository(log),
		summaryRepo: summary.NewRepository(log),
		log:         log.With().Str("component", "seeder").Logger(),
		catalog:     cat,
	}
}

// Run executes the seeding phases in order. Every write phase commits on its
// own; a failure aborts the run and leaves earlier phases committed.
func (s *Service) Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Days < 1 {
		return nil, fmt.Errorf("%w: days must be at least 1, got %d", domain.ErrInvalidConfig, opts.Days)
	}
	if opts.Expenses < 0 {
		return nil, fmt.Errorf("%w: expense count must not be negative, got %d", domain.ErrInvalidConfig, opts.Expenses)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	res := &Result{RunID: uuid.NewString()}
	log := s.log.With().Str("run_id", res.RunID).Logger()
	today := opts.Now()

	log.Info().
		Str("database", s.db.Path()).
		Int("expenses", opts.Expenses).
		Int("days", opts.Days).
		Uint64("seed", s.rnd.Seed()).
		Msg("Seeding database")

	if opts.Clear {
		log.Info().Msg("Clearing existing data...")
		if err := s.db.WithTransaction(ctx, func(tx *sql.Tx) error {
			return s.catalogRepo.ClearGenerated(ctx, tx)
		}); err != nil {
			return nil, fmt.Errorf("failed to clear generated data: %w", err)
		}
		res.Cleared = true
	}

	log.Info().Msg("Seeding accounts, tags and rules...")
	if err := s.db.WithTransaction(ctx, func(tx *sql.Tx) error {
		return s.seedCatalog(ctx, tx, res)
	}); err != nil {
		return nil, fmt.Errorf("failed to seed catalog: %w", err)
	}

	categories, err := s.catalogRepo.CategoryIDs(ctx, s.db)
	if err != nil {
		return nil, err
	}
	tags, err := s.catalogRepo.TagIDs(ctx, s.db)
	if err != nil {
		return nil, err
	}
	accounts, err := s.catalogRepo.AccountIDs(ctx, s.db)
	if err != nil {
		return nil, err
	}

	log.Info().Int("expenses", opts.Expenses).Int("days", opts.Days).Msg("Seeding expenses...")
	batch, err := expenses.NewGenerator(s.catalog, s.rnd, log).Generate(expenses.Request{
		Today:      today,
		Categories: categories,
		Accounts:   accounts,
		Count:      opts.Expenses,
		Days:       opts.Days,
	})
	if err != nil {
		return nil, err
	}
	if err := s.db.WithTransaction(ctx, func(tx *sql.Tx) error {
		_, err := s.expenseRepo.InsertExpenses(ctx, tx, batch.Records)
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to store expenses: %w", err)
	}
	res.Expenses = batch.Expenses
	res.SalaryEntries = batch.Salary
	res.OtherIncome = batch.OtherIncome
	res.ExpensesSkipped = batch.Skipped

	log.Info().Msg("Assigning tags to expenses...")
	tagger := expenses.NewTagger(s.catalog, s.rnd)
	if err := s.db.WithTransaction(ctx, func(tx *sql.Tx) error {
		stored, err := s.expenseRepo.LoadForTagging(ctx, tx)
		if err != nil {
			return err
		}
		pairs, dropped := tagger.Assign(stored, categories.Reverse(), tags)
		res.TagsDropped = dropped
		res.ExpenseTags, err = s.expenseRepo.InsertExpenseTags(ctx, tx, pairs)
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to store expense tags: %w", err)
	}

	log.Info().Int("days", opts.Days).Msg("Seeding trading activities...")
	history, err := trading.NewGenerator(s.catalog, s.rnd, log).Generate(trading.Request{
		Today:    today,
		Accounts: accounts,
		Days:     opts.Days,
	})
	if err != nil {
		return nil, err
	}
	if _, err := trading.Replay(history.Activities); err != nil {
		return nil, fmt.Errorf("inconsistent trading history: %w", err)
	}
	if err := s.db.WithTransaction(ctx, func(tx *sql.Tx) error {
		n, err := s.tradingRepo.InsertActivities(ctx, tx, history.Activities)
		res.Activities = n
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to store trading activities: %w", err)
	}
	res.ActivitiesSkipped = history.Skipped
	log.Info().Int("activities", res.Activities).Msg("Trading activities created")

	if res.ExpensesSkipped > 0 || res.TagsDropped > 0 || res.RulesSkipped > 0 || res.ActivitiesSkipped > 0 {
		log.Debug().
			Int("expenses", res.ExpensesSkipped).
			Int("tags", res.TagsDropped).
			Int("rules", res.RulesSkipped).
			Int("activities", res.ActivitiesSkipped).
			Msg("Unresolved references skipped")
	}

	report, err := s.summaryRepo.Collect(ctx, s.db)
	if err != nil {
		return nil, err
	}
	res.Report = report

	return res, nil
}

func (s *Service) seedCatalog(ctx context.Context, tx *sql.Tx, res *Result) error {
	var err error
	if res.AccountsSeeded, err = s.catalogRepo.SeedAccounts(ctx, tx, s.catalog.Accounts); err != nil {
		return err
	}
	if res.TagsSeeded, err = s.catalogRepo.SeedTags(ctx, tx, s.catalog.Tags); err != nil {
		return err
	}

	categories, err := s.catalogRepo.CategoryIDs(ctx, tx)
	if err != nil {
		return err
	}
	tags, err := s.catalogRepo.TagIDs(ctx, tx)
	if err != nil {
		return err
	}

	res.RulesSeeded, res.RulesSkipped, err = s.catalogRepo.SeedRules(ctx, tx, s.catalog.Rules, categories, tags)
	return err
}

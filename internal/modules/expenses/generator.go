// Package expenses generates the synthetic expense and income stream, tags
// it and persists it.
package expenses

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/ledger-seeder/internal/domain"
	"github.com/aristath/ledger-seeder/internal/modules/catalog"
	"github.com/aristath/ledger-seeder/internal/modules/reference"
	"github.com/aristath/ledger-seeder/internal/modules/salary"
	"github.com/aristath/ledger-seeder/pkg/random"
)

// Request describes one generation pass
type Request struct {
	Today      time.Time
	Categories catalog.NameIndex
	Accounts   catalog.NameIndex
	Count      int
	Days       int
}

// Batch is the in-memory result of a generation pass, ready to insert
type Batch struct {
	Records     []domain.Expense
	Expenses    int
	Salary      int
	OtherIncome int
	Skipped     int
}

// Generator draws expenses, salary credits and miscellaneous income
type Generator struct {
	log     zerolog.Logger
	rnd     *random.Source
	salary  *salary.Generator
	catalog reference.Catalog
}

// NewGenerator creates an expense generator over cat
func NewGenerator(cat reference.Catalog, rnd *random.Source, log zerolog.Logger) *Generator {
	return &Generator{
		log:     log.With().Str("component", "expenses").Logger(),
		rnd:     rnd,
		salary:  salary.NewGenerator(cat.Salary, rnd),
		catalog: cat,
	}
}

// Generate draws req.Count expenses over the last req.Days days, then the
// salary schedule and other income for the same window. Expenses whose
// category cannot be resolved are dropped and counted in Skipped.
func (g *Generator) Generate(req Request) (*Batch, error) {
	if req.Days < 1 {
		return nil, fmt.Errorf("%w: days must be at least 1, got %d", domain.ErrInvalidConfig, req.Days)
	}
	if req.Count < 0 {
		return nil, fmt.Errorf("%w: expense count must not be negative, got %d", domain.ErrInvalidConfig, req.Count)
	}

	today := truncateDay(req.Today)
	start := today.AddDate(0, 0, -req.Days)

	checking := req.Accounts.Ptr(reference.AccountChecking)
	savings := req.Accounts.Ptr(reference.AccountSavings)
	credit := req.Accounts.Ptr(reference.AccountCreditCard)

	batch := &Batch{Records: make([]domain.Expense, 0, req.Count)}
	weighted := g.catalog.WeightedCategories()

	for i := 0; i < req.Count && len(weighted) > 0; i++ {
		category := random.Pick(g.rnd, weighted)
		templates := g.catalog.ExpenseTemplates[category]
		if len(templates) == 0 {
			batch.Skipped++
			continue
		}

		tpl := random.Pick(g.rnd, templates)
		amount := g.rnd.IntBetween(tpl.MinCents, tpl.MaxCents)
		date := today.AddDate(0, 0, -g.recencyOffset(req.Days))

		categoryID := req.Categories.Ptr(category)
		if categoryID == nil {
			batch.Skipped++
			g.log.Debug().Str("category", category).Msg("Category unresolved, skipping expense")
			continue
		}

		account := g.fundingAccount(category, amount, checking, credit)

		var notes *string
		if g.rnd.Chance(g.catalog.Expenses.NoteChance) {
			note := random.Pick(g.rnd, g.catalog.NoteTemplates)
			notes = &note
		}

		payee := Payee(tpl.Description)
		batch.Records = append(batch.Records, domain.Expense{
			Date:        date,
			CategoryID:  categoryID,
			AccountID:   account,
			Notes:       notes,
			Payee:       &payee,
			Description: tpl.Description,
			Currency:    domain.CurrencyUSD,
			AmountCents: -amount,
		})
		batch.Expenses++
	}

	schedule, err := g.salary.Schedule(start, today)
	if err != nil {
		return nil, fmt.Errorf("failed to generate salary schedule: %w", err)
	}
	for _, entry := range schedule {
		employer := g.catalog.Salary.Employer
		batch.Records = append(batch.Records, domain.Expense{
			Date:        entry.Date,
			AccountID:   checking,
			Payer:       &employer,
			Description: entry.Description,
			Currency:    domain.CurrencyUSD,
			AmountCents: entry.AmountCents,
		})
		batch.Salary++
	}

	g.otherIncome(batch, req.Days, today, checking, savings)

	g.log.Debug().
		Int("expenses", batch.Expenses).
		Int("salary", batch.Salary).
		Int("other_income", batch.OtherIncome).
		Int("skipped", batch.Skipped).
		Msg("Expense batch generated")

	return batch, nil
}

// recencyOffset returns a day offset in [0, days) biased toward zero
func (g *Generator) recencyOffset(days int) int {
	cfg := g.catalog.Expenses
	scaled := math.Floor(g.rnd.Pareto(cfg.RecencyShape) * cfg.RecencyScaleDays)
	return int(math.Mod(scaled, float64(days)))
}

func (g *Generator) fundingAccount(category string, amount int64, checking, credit *int64) *int64 {
	cfg := g.catalog.Expenses
	switch {
	case g.catalog.IsFixedCost(category):
		return checking
	case amount > cfg.LargePurchaseCents:
		if g.rnd.Chance(cfg.LargeFromCheckingProb) {
			return checking
		}
		return credit
	default:
		if g.rnd.Chance(cfg.SmallOnCreditCardProb) {
			return credit
		}
		return checking
	}
}

func (g *Generator) otherIncome(batch *Batch, days int, today time.Time, checking, savings *int64) {
	every := g.catalog.Expenses.OtherIncomeEveryDays
	if every <= 0 || len(g.catalog.OtherIncome) == 0 {
		return
	}

	for i := 0; i < days/every; i++ {
		tpl := random.Pick(g.rnd, g.catalog.OtherIncome)
		amount := g.rnd.IntBetween(tpl.MinCents, tpl.MaxCents)
		daysAgo := g.rnd.IntBetween(0, int64(days))

		account := checking
		if tpl.Description == g.catalog.Expenses.TaxRefundDescription {
			account = savings
		}

		payer := tpl.Payer
		batch.Records = append(batch.Records, domain.Expense{
			Date:        today.AddDate(0, 0, -int(daysAgo)),
			AccountID:   account,
			Payer:       &payer,
			Description: tpl.Description,
			Currency:    domain.CurrencyUSD,
			AmountCents: amount,
		})
		batch.OtherIncome++
	}
}

// Payee returns the vendor part of a description, the text before " - "
func Payee(description string) string {
	vendor, _, _ := strings.Cut(description, " - ")
	return vendor
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

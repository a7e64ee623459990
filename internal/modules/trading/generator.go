// Package trading simulates a brokerage and a retirement account: cash
// deposits, buy and sell trades and quarterly dividends.
package trading

import (
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/aristath/ledger-seeder/internal/domain"
	"github.com/aristath/ledger-seeder/internal/modules/catalog"
	"github.com/aristath/ledger-seeder/internal/modules/reference"
	"github.com/aristath/ledger-seeder/pkg/random"
)

// Deposit notes
const (
	NoteInitialDeposit      = "Initial deposit"
	NoteIRAContribution     = "Annual IRA contribution"
	NoteMonthlyContribution = "Monthly investment contribution"
)

// Request describes one simulation
type Request struct {
	Today    time.Time
	Accounts catalog.NameIndex
	Days     int
}

// Batch is the simulated history, sorted by date
type Batch struct {
	Activities []domain.TradingActivity
	Positions  Positions
	Deposits   int
	Trades     int
	Dividends  int
	Skipped    int
}

// Generator simulates the trading history
type Generator struct {
	log     zerolog.Logger
	rnd     *random.Source
	catalog reference.Catalog
}

// NewGenerator creates a trading generator over cat
func NewGenerator(cat reference.Catalog, rnd *random.Source, log zerolog.Logger) *Generator {
	return &Generator{
		log:     log.With().Str("component", "trading").Logger(),
		rnd:     rnd,
		catalog: cat,
	}
}

// simulation carries the state of one Generate call
type simulation struct {
	brokerage *int64
	ira       *int64
	today     time.Time
	batch     *Batch
}

// Generate simulates req.Days days of activity ending at req.Today. Trades
// are applied in date order so sells never exceed the shares held, and each
// dividend uses the position held on its own date. Activities for an
// unresolved account are dropped and counted in Skipped.
func (g *Generator) Generate(req Request) (*Batch, error) {
	if req.Days < 1 {
		return nil, fmt.Errorf("%w: days must be at least 1, got %d", domain.ErrInvalidConfig, req.Days)
	}

	cfg := g.catalog.Trading
	today := truncateDay(req.Today)
	start := today.AddDate(0, 0, -req.Days)

	sim := &simulation{
		brokerage: req.Accounts.Ptr(reference.AccountBrokerage),
		ira:       req.Accounts.Ptr(reference.AccountRetirement),
		today:     today,
		batch:     &Batch{},
	}

	g.deposit(sim, sim.brokerage, start, cfg.InitialBrokerageCents, NoteInitialDeposit)
	g.deposit(sim, sim.ira, start, cfg.InitialRetirementCents, NoteIRAContribution)

	trades := g.tradeOffsets(req.Days)
	var positions Positions

	for m := 0; ; m++ {
		date := addMonthsClamped(start, m)
		if date.After(today) {
			break
		}

		amount := g.rnd.IntBetween(cfg.MonthlyContributionMinCents, cfg.MonthlyContributionMaxCents)
		g.deposit(sim, sim.brokerage, date, amount, NoteMonthlyContribution)

		if date.Month() == time.January && m > 0 {
			amount := g.rnd.IntBetween(cfg.RetirementContributionMinCents, cfg.RetirementContributionMaxCents)
			g.deposit(sim, sim.ira, date, min(amount, cfg.RetirementContributionCapCents), NoteIRAContribution)
		}

		for len(trades) > 0 && !today.AddDate(0, 0, -trades[0]).After(date) {
			positions = g.trade(sim, trades[0], positions)
			trades = trades[1:]
		}

		if cfg.IsDividendMonth(date.Month()) {
			g.dividends(sim, date, positions)
		}
	}

	for _, daysAgo := range trades {
		positions = g.trade(sim, daysAgo, positions)
	}

	batch := sim.batch
	slices.SortStableFunc(batch.Activities, func(a, b domain.TradingActivity) int {
		return a.Date.Compare(b.Date)
	})
	batch.Positions = positions

	g.log.Debug().
		Int("deposits", batch.Deposits).
		Int("trades", batch.Trades).
		Int("dividends", batch.Dividends).
		Int("skipped", batch.Skipped).
		Int("open_positions", positions.Len()).
		Msg("Trading history simulated")

	return batch, nil
}

// tradeOffsets draws the day offsets of every trade, oldest first
func (g *Generator) tradeOffsets(days int) []int {
	every := g.catalog.Trading.TradeEveryDays
	if every <= 0 {
		return nil
	}

	offsets := make([]int, days/every)
	for i := range offsets {
		offsets[i] = int(g.rnd.IntBetween(0, int64(days)))
	}
	slices.SortFunc(offsets, func(a, b int) int { return b - a })
	return offsets
}

func (g *Generator) deposit(sim *simulation, account *int64, date time.Time, cents int64, note string) {
	if account == nil {
		sim.batch.Skipped++
		return
	}

	sim.batch.Activities = append(sim.batch.Activities, domain.TradingActivity{
		Date:           date,
		Symbol:         domain.CashSymbol,
		Type:           domain.ActivityDeposit,
		Currency:       domain.CurrencyUSD,
		Notes:          note,
		AccountID:      *account,
		Quantity:       float64(cents) / 100,
		UnitPriceCents: 100,
	})
	sim.batch.Deposits++
}

// trade simulates one trade daysAgo days before today and returns the
// updated positions.
func (g *Generator) trade(sim *simulation, daysAgo int, positions Positions) Positions {
	cfg := g.catalog.Trading

	retirement := !g.rnd.Chance(cfg.BrokerageShare)
	account := sim.brokerage
	if retirement {
		account = sim.ira
	}

	pool := g.catalog.SymbolPool(retirement)
	if len(pool) == 0 {
		sim.batch.Skipped++
		return positions
	}
	sym := random.Pick(g.rnd, pool)

	yearsAgo := float64(daysAgo) / 365
	trend := 1 + yearsAgo*g.rnd.Uniform(cfg.TrendPctMin, cfg.TrendPctMax)
	vol := sym.VolatilityPct / 100
	volatility := 1 + g.rnd.Uniform(-vol, vol)
	price := int64(float64(sym.BasePriceCent) / trend * volatility)

	if account == nil {
		sim.batch.Skipped++
		return positions
	}

	held := positions.Held(*account, sym.Ticker)
	activity := domain.TradingActivity{
		Date:           sim.today.AddDate(0, 0, -daysAgo),
		Symbol:         sym.Ticker,
		Currency:       domain.CurrencyUSD,
		AccountID:      *account,
		UnitPriceCents: price,
	}

	switch {
	case held < cfg.MinHoldingBeforeSell || g.rnd.Chance(cfg.BuyChance):
		qty := g.rnd.IntBetween(1, cfg.BuySharesMax)
		activity.Type = domain.ActivityBuy
		activity.Quantity = float64(qty)
		activity.FeeCents = random.Pick(g.rnd, cfg.FeeChoicesCents)
		activity.Notes = fmt.Sprintf("Buy %d shares of %s", qty, sym.Ticker)
		positions = positions.With(*account, sym.Ticker, qty)
	case held > 0:
		qty := g.rnd.IntBetween(1, min(held, cfg.SellSharesMax))
		activity.Type = domain.ActivitySell
		activity.Quantity = float64(qty)
		activity.FeeCents = random.Pick(g.rnd, cfg.FeeChoicesCents)
		activity.Notes = fmt.Sprintf("Sell %d shares of %s", qty, sym.Ticker)
		positions = positions.With(*account, sym.Ticker, -qty)
	default:
		return positions
	}

	sim.batch.Activities = append(sim.batch.Activities, activity)
	sim.batch.Trades++
	return positions
}

// dividends pays every dividend symbol held on date in both accounts
func (g *Generator) dividends(sim *simulation, date time.Time, positions Positions) {
	cfg := g.catalog.Trading

	for _, account := range []*int64{sim.brokerage, sim.ira} {
		if account == nil {
			continue
		}
		for _, symbol := range g.catalog.DividendSymbols {
			held := positions.Held(*account, symbol)
			if held <= 0 {
				continue
			}

			perShare := g.rnd.IntBetween(cfg.DividendPerShareMinCents, cfg.DividendPerShareMaxCents)
			sim.batch.Activities = append(sim.batch.Activities, domain.TradingActivity{
				Date:           date,
				Symbol:         symbol,
				Type:           domain.ActivityDividend,
				Currency:       domain.CurrencyUSD,
				Notes:          DividendNote(held, perShare),
				AccountID:      *account,
				Quantity:       float64(held),
				UnitPriceCents: perShare,
			})
			sim.batch.Dividends++
		}
	}
}

// DividendNote renders the note of a dividend of perShareCents on shares
func DividendNote(shares, perShareCents int64) string {
	return fmt.Sprintf("Quarterly dividend: %d shares × $%s", shares, decimal.New(perShareCents, -2).StringFixed(2))
}

// addMonthsClamped returns start moved forward n months, keeping its day of
// month where the target month is long enough and using the last day
// otherwise.
func addMonthsClamped(start time.Time, n int) time.Time {
	first := time.Date(start.Year(), start.Month()+time.Month(n), 1, 0, 0, 0, 0, start.Location())
	last := first.AddDate(0, 1, -1).Day()
	return first.AddDate(0, 0, min(start.Day(), last)-1)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

package trading

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/ledger-seeder/internal/domain"
	"github.com/aristath/ledger-seeder/internal/modules/catalog"
	"github.com/aristath/ledger-seeder/internal/modules/reference"
	testingpkg "github.com/aristath/ledger-seeder/internal/testing"
	"github.com/aristath/ledger-seeder/pkg/random"
)

func TestInsertActivities(t *testing.T) {
	ctx := context.Background()
	db := testingpkg.NewTestDB(t)
	catalogRepo := catalog.NewRepository(testingpkg.NopLogger())
	cat := reference.Default()

	_, err := catalogRepo.SeedAccounts(ctx, db, cat.Accounts)
	require.NoError(t, err)
	accts, err := catalogRepo.AccountIDs(ctx, db)
	require.NoError(t, err)

	g := NewGenerator(cat, random.New(21), testingpkg.NopLogger())
	batch, err := g.Generate(Request{Today: testingpkg.FixedNow, Accounts: accts, Days: 365})
	require.NoError(t, err)

	repo := NewRepository(testingpkg.NopLogger())
	var n int
	err = db.WithTransaction(ctx, func(tx *sql.Tx) error {
		var err error
		n, err = repo.InsertActivities(ctx, tx, batch.Activities)
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, len(batch.Activities), n)
	assert.Equal(t, n, testingpkg.CountRows(t, db, "trading_activities"))
	for _, a := range batch.Activities {
		assert.NotZero(t, a.ID)
	}

	first := batch.Activities[0]
	var (
		date     string
		symbol   string
		quantity float64
		kind     string
		price    int64
		notes    string
	)
	err = db.QueryRowContext(ctx,
		"SELECT date, symbol, quantity, activity_type, unit_price_cents, notes FROM trading_activities WHERE id = ?", first.ID,
	).Scan(&date, &symbol, &quantity, &kind, &price, &notes)
	require.NoError(t, err)

	assert.Equal(t, first.Date.Format(domain.DateLayout), date)
	assert.Equal(t, domain.CashSymbol, symbol)
	assert.Equal(t, string(domain.ActivityDeposit), kind)
	assert.Equal(t, int64(100), price)
	assert.InDelta(t, first.Quantity, quantity, 1e-9)
	assert.Equal(t, first.Notes, notes)
}

func TestInsertActivities_FailureRollsBack(t *testing.T) {
	ctx := context.Background()
	db := testingpkg.NewTestDB(t)
	repo := NewRepository(testingpkg.NopLogger())

	activities := []domain.TradingActivity{
		{Date: testingpkg.FixedNow, Symbol: "AAPL", Type: domain.ActivityBuy, Currency: domain.CurrencyUSD, Quantity: 1, UnitPriceCents: 100},
		{Date: testingpkg.FixedNow, Symbol: "AAPL", Type: "BOGUS", Currency: domain.CurrencyUSD, Quantity: 1},
	}

	err := db.WithTransaction(ctx, func(tx *sql.Tx) error {
		_, err := repo.InsertActivities(ctx, tx, activities)
		return err
	})
	assert.Error(t, err)
	assert.Equal(t, 0, testingpkg.CountRows(t, db, "trading_activities"))
}

package trading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/ledger-seeder/internal/domain"
)

func TestPositions_WithDoesNotMutate(t *testing.T) {
	var empty Positions
	one := empty.With(1, "AAPL", 5)
	two := one.With(1, "AAPL", -2)

	assert.Equal(t, int64(0), empty.Held(1, "AAPL"))
	assert.Equal(t, int64(5), one.Held(1, "AAPL"))
	assert.Equal(t, int64(3), two.Held(1, "AAPL"))
	assert.Equal(t, int64(0), two.Held(2, "AAPL"), "positions are per account")
}

func TestPositions_ZeroPositionRemoved(t *testing.T) {
	p := Positions{}.With(1, "VTI", 4).With(1, "VTI", -4)
	assert.Equal(t, 0, p.Len())
}

func activity(typ domain.ActivityType, symbol string, qty float64) domain.TradingActivity {
	return domain.TradingActivity{Type: typ, Symbol: symbol, Quantity: qty, AccountID: 1}
}

func TestReplay(t *testing.T) {
	tests := []struct {
		name       string
		activities []domain.TradingActivity
		wantErr    bool
		wantHeld   int64
	}{
		{
			name: "buy then sell",
			activities: []domain.TradingActivity{
				activity(domain.ActivityBuy, "AAPL", 6),
				activity(domain.ActivitySell, "AAPL", 4),
			},
			wantHeld: 2,
		},
		{
			name: "cash deposits ignored",
			activities: []domain.TradingActivity{
				activity(domain.ActivityDeposit, domain.CashSymbol, 5000),
				activity(domain.ActivityBuy, "AAPL", 1),
			},
			wantHeld: 1,
		},
		{
			name: "dividend on held position",
			activities: []domain.TradingActivity{
				activity(domain.ActivityBuy, "AAPL", 3),
				activity(domain.ActivityDividend, "AAPL", 3),
			},
			wantHeld: 3,
		},
		{
			name: "oversell",
			activities: []domain.TradingActivity{
				activity(domain.ActivityBuy, "AAPL", 2),
				activity(domain.ActivitySell, "AAPL", 3),
			},
			wantErr: true,
		},
		{
			name: "dividend without holding",
			activities: []domain.TradingActivity{
				activity(domain.ActivityDividend, "AAPL", 1),
			},
			wantErr: true,
		},
		{
			name: "dividend quantity differs from holding",
			activities: []domain.TradingActivity{
				activity(domain.ActivityBuy, "AAPL", 5),
				activity(domain.ActivityDividend, "AAPL", 2),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book, err := Replay(tt.activities)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHeld, book.Held(1, "AAPL"))
		})
	}
}

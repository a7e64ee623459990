package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTradingActivity_PositionDelta(t *testing.T) {
	tests := []struct {
		name     string
		activity TradingActivity
		expected float64
	}{
		{
			name:     "buy adds shares",
			activity: TradingActivity{Type: ActivityBuy, Quantity: 7},
			expected: 7,
		},
		{
			name:     "sell removes shares",
			activity: TradingActivity{Type: ActivitySell, Quantity: 3},
			expected: -3,
		},
		{
			name:     "deposit adds cash units",
			activity: TradingActivity{Type: ActivityDeposit, Symbol: CashSymbol, Quantity: 500.25},
			expected: 500.25,
		},
		{
			name:     "dividend leaves position unchanged",
			activity: TradingActivity{Type: ActivityDividend, Quantity: 12},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.activity.PositionDelta())
		})
	}
}

func TestExpense_IsIncome(t *testing.T) {
	assert.True(t, Expense{AmountCents: 100}.IsIncome())
	assert.False(t, Expense{AmountCents: -100}.IsIncome())
	assert.False(t, Expense{AmountCents: 0}.IsIncome())
}

package trading

import (
	"fmt"

	"github.com/aristath/ledger-seeder/internal/domain"
)

type positionKey struct {
	symbol  string
	account int64
}

// Positions is the share count held per (account, symbol). It is a value:
// With returns an updated copy and never modifies the receiver.
type Positions struct {
	held map[positionKey]int64
}

// Held returns the shares of symbol held in account
func (p Positions) Held(account int64, symbol string) int64 {
	return p.held[positionKey{account: account, symbol: symbol}]
}

// With returns a copy of p with delta shares applied to (account, symbol)
func (p Positions) With(account int64, symbol string, delta int64) Positions {
	next := make(map[positionKey]int64, len(p.held)+1)
	for k, v := range p.held {
		next[k] = v
	}

	key := positionKey{account: account, symbol: symbol}
	next[key] += delta
	if next[key] == 0 {
		delete(next, key)
	}
	return Positions{held: next}
}

// Len returns the number of non-empty positions
func (p Positions) Len() int {
	return len(p.held)
}

// Replay rebuilds the positions from activities in order and fails on the
// first SELL that exceeds the held quantity or DIVIDEND paid on no holding.
// Cash deposits do not affect share positions.
func Replay(activities []domain.TradingActivity) (Positions, error) {
	var book Positions
	for i, a := range activities {
		if a.Symbol == domain.CashSymbol {
			continue
		}

		held := book.Held(a.AccountID, a.Symbol)
		qty := int64(a.Quantity)

		switch a.Type {
		case domain.ActivitySell:
			if qty > held {
				return book, fmt.Errorf("activity %d: sell of %d %s exceeds %d held", i, qty, a.Symbol, held)
			}
		case domain.ActivityDividend:
			if held <= 0 {
				return book, fmt.Errorf("activity %d: dividend on %s with no holding", i, a.Symbol)
			}
			if qty != held {
				return book, fmt.Errorf("activity %d: dividend on %d %s but %d held", i, qty, a.Symbol, held)
			}
		}

		if delta := int64(a.PositionDelta()); delta != 0 {
			book = book.With(a.AccountID, a.Symbol, delta)
		}
	}
	return book, nil
}

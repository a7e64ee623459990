// Package domain provides core domain models and types.
package domain

import "time"

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
)

// DateLayout is the on-disk format for record dates
const DateLayout = "2006-01-02"

// CashSymbol is the reserved trading symbol for pure cash movements
const CashSymbol = "$CASH-USD"

// AccountType classifies an account
type AccountType string

const (
	// AccountTypeCash is a checking, savings or credit card account
	AccountTypeCash AccountType = "Cash"
	// AccountTypeSecurities is a brokerage or retirement account
	AccountTypeSecurities AccountType = "Securities"
)

// Account is a named account that expenses and trading activities reference
type Account struct {
	ID   int64       `json:"id"`
	Name string      `json:"name"`
	Type AccountType `json:"account_type"`
}

// Category is a spending category. Categories already exist in the store.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TagStyle is the visual treatment of a tag badge
type TagStyle string

const (
	TagStyleSolid   TagStyle = "solid"
	TagStyleOutline TagStyle = "outline"
	TagStyleStriped TagStyle = "striped"
)

// Tag is a free label attached to expenses
type Tag struct {
	ID    int64    `json:"id"`
	Name  string   `json:"name"`
	Color string   `json:"color"`
	Style TagStyle `json:"style"`
}

// RuleAction is what a categorization rule does on match
type RuleAction string

const (
	RuleActionAssignCategory RuleAction = "assign_category"
	RuleActionAssignTag      RuleAction = "assign_tag"
)

// Rule matches transaction descriptions with a case-insensitive pattern.
// ActionValue holds the id of the target category or tag as text.
type Rule struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Pattern     string     `json:"pattern"`
	Action      RuleAction `json:"action_type"`
	ActionValue string     `json:"action_value"`
}

// Expense is a single cash movement. Negative amounts are outflows and carry
// a payee; positive amounts are inflows and carry a payer.
type Expense struct {
	Date        time.Time `json:"date"`
	CategoryID  *int64    `json:"category_id,omitempty"`
	AccountID   *int64    `json:"account_id,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
	Payer       *string   `json:"payer,omitempty"`
	Payee       *string   `json:"payee,omitempty"`
	Description string    `json:"description"`
	Currency    Currency  `json:"currency"`
	ID          int64     `json:"id"`
	AmountCents int64     `json:"amount_cents"`
}

// IsIncome reports whether the expense is an inflow
func (e Expense) IsIncome() bool {
	return e.AmountCents > 0
}

// ExpenseTag associates an expense with a tag
type ExpenseTag struct {
	ExpenseID int64 `json:"expense_id"`
	TagID     int64 `json:"tag_id"`
}

// ActivityType is the kind of a trading activity
type ActivityType string

const (
	ActivityDeposit  ActivityType = "DEPOSIT"
	ActivityBuy      ActivityType = "BUY"
	ActivitySell     ActivityType = "SELL"
	ActivityDividend ActivityType = "DIVIDEND"
)

// TradingActivity is one event in a securities account. Quantity is shares
// for BUY/SELL/DIVIDEND and currency units for DEPOSIT on CashSymbol.
type TradingActivity struct {
	Date           time.Time    `json:"date"`
	Symbol         string       `json:"symbol"`
	Type           ActivityType `json:"activity_type"`
	Currency       Currency     `json:"currency"`
	Notes          string       `json:"notes"`
	ID             int64        `json:"id"`
	AccountID      int64        `json:"account_id"`
	Quantity       float64      `json:"quantity"`
	UnitPriceCents int64        `json:"unit_price_cents"`
	FeeCents       int64        `json:"fee_cents"`
}

// PositionDelta returns the signed change this activity applies to the
// held quantity of its symbol.
func (a TradingActivity) PositionDelta() float64 {
	switch a.Type {
	case ActivityBuy, ActivityDeposit:
		return a.Quantity
	case ActivitySell:
		return -a.Quantity
	default:
		return 0
	}
}

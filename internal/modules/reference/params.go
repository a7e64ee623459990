package reference

import "time"

// SalaryConfig parameterizes the monthly payroll schedule. Percentages are
// expressed in percent, not fractions.
type SalaryConfig struct {
	BonusMonths       []time.Month
	Employer          string
	BaseAnnualCents   int64
	RaisePctMin       float64
	RaisePctMax       float64
	BonusPctMin       float64
	BonusPctMax       float64
	DeductionChance   float64
	DeductionPctMin   float64
	DeductionPctMax   float64
	PayDay            int
	BonusDelayDaysMin int64
	BonusDelayDaysMax int64
}

// DefaultSalaryConfig returns $85,000/year with 2-5% raises, March and
// December bonuses of 5-20% and a 10% monthly chance of a 1-5% deduction.
func DefaultSalaryConfig() SalaryConfig {
	return SalaryConfig{
		BonusMonths:       []time.Month{time.March, time.December},
		Employer:          "Employer Inc.",
		BaseAnnualCents:   85000_00,
		RaisePctMin:       2,
		RaisePctMax:       5,
		BonusPctMin:       5,
		BonusPctMax:       20,
		DeductionChance:   0.1,
		DeductionPctMin:   1,
		DeductionPctMax:   5,
		PayDay:            15,
		BonusDelayDaysMin: 1,
		BonusDelayDaysMax: 5,
	}
}

// IsBonusMonth reports whether m is configured to pay a bonus
func (c SalaryConfig) IsBonusMonth(m time.Month) bool {
	for _, bm := range c.BonusMonths {
		if bm == m {
			return true
		}
	}
	return false
}

// ExpenseConfig parameterizes the expense stream
type ExpenseConfig struct {
	RecencyShape          float64
	RecencyScaleDays      float64
	LargePurchaseCents    int64
	LargeFromCheckingProb float64
	SmallOnCreditCardProb float64
	NoteChance            float64
	OtherIncomeEveryDays  int
	CategoryTagChance     float64
	TaxDeductibleChance   float64
	ReimbursableChance    float64
	ImpulseChance         float64
	TaxRefundDescription  string
}

// DefaultExpenseConfig returns the expense stream defaults
func DefaultExpenseConfig() ExpenseConfig {
	return ExpenseConfig{
		RecencyShape:          1.5,
		RecencyScaleDays:      30,
		LargePurchaseCents:    50000,
		LargeFromCheckingProb: 0.7,
		SmallOnCreditCardProb: 0.8,
		NoteChance:            0.15,
		OtherIncomeEveryDays:  60,
		CategoryTagChance:     0.7,
		TaxDeductibleChance:   0.1,
		ReimbursableChance:    0.05,
		ImpulseChance:         0.08,
		TaxRefundDescription:  "Tax Refund",
	}
}

// TradingConfig parameterizes the investment history
type TradingConfig struct {
	FeeChoicesCents                []int64
	DividendMonths                 []time.Month
	InitialBrokerageCents          int64
	InitialRetirementCents         int64
	MonthlyContributionMinCents    int64
	MonthlyContributionMaxCents    int64
	RetirementContributionMinCents int64
	RetirementContributionMaxCents int64
	RetirementContributionCapCents int64
	DividendPerShareMinCents       int64
	DividendPerShareMaxCents       int64
	TradeEveryDays                 int
	BrokerageShare                 float64
	TrendPctMin                    float64
	TrendPctMax                    float64
	MinHoldingBeforeSell           int64
	BuyChance                      float64
	BuySharesMax                   int64
	SellSharesMax                  int64
}

// DefaultTradingConfig returns the trading defaults
func DefaultTradingConfig() TradingConfig {
	return TradingConfig{
		FeeChoicesCents:                []int64{0, 0, 0, 100, 495},
		DividendMonths:                 []time.Month{time.March, time.June, time.September, time.December},
		InitialBrokerageCents:          5000_00,
		InitialRetirementCents:         6000_00,
		MonthlyContributionMinCents:    500_00,
		MonthlyContributionMaxCents:    1500_00,
		RetirementContributionMinCents: 6000_00,
		RetirementContributionMaxCents: 6500_00,
		RetirementContributionCapCents: 6500_00,
		DividendPerShareMinCents:       20,
		DividendPerShareMaxCents:       150,
		TradeEveryDays:                 10,
		BrokerageShare:                 0.8,
		TrendPctMin:                    0.05,
		TrendPctMax:                    0.15,
		MinHoldingBeforeSell:           5,
		BuyChance:                      0.7,
		BuySharesMax:                   10,
		SellSharesMax:                  5,
	}
}

// IsDividendMonth reports whether dividends are paid in m
func (c TradingConfig) IsDividendMonth(m time.Month) bool {
	for _, dm := range c.DividendMonths {
		if dm == m {
			return true
		}
	}
	return false
}

// Package salary generates the monthly payroll schedule: a paycheck on a
// fixed day of every month, compounding yearly raises, occasional deductions
// and bonuses in configured months.
package salary

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/aristath/ledger-seeder/internal/modules/reference"
	"github.com/aristath/ledger-seeder/pkg/random"
)

// Descriptions used for payroll entries
const (
	DescriptionSalary           = "Salary Deposit"
	DescriptionSalaryDeducted   = "Salary Deposit (after deductions)"
	DescriptionPerformanceBonus = "Performance Bonus"
	DescriptionYearEndBonus     = "Year-End Bonus"
	DescriptionBonus            = "Bonus"
)

// Entry is one payroll credit
type Entry struct {
	Date             time.Time
	Description      string
	AmountCents      int64
	BaseMonthlyCents int64 // monthly base in effect, before any deduction
	Bonus            bool
}

// Generator draws payroll schedules
type Generator struct {
	rnd *random.Source
	cfg reference.SalaryConfig
}

// NewGenerator creates a payroll generator
func NewGenerator(cfg reference.SalaryConfig, rnd *random.Source) *Generator {
	return &Generator{cfg: cfg, rnd: rnd}
}

// Schedule returns the payroll entries for every month from start to end.
// The payday of the start month is included even when it precedes start.
func (g *Generator) Schedule(start, end time.Time) ([]Entry, error) {
	if g.cfg.PayDay < 1 || g.cfg.PayDay > 28 {
		return nil, fmt.Errorf("pay day must be between 1 and 28, got %d", g.cfg.PayDay)
	}

	paydays, err := cron.ParseStandard(fmt.Sprintf("0 0 %d * *", g.cfg.PayDay))
	if err != nil {
		return nil, fmt.Errorf("failed to build payday schedule: %w", err)
	}

	monthly := g.cfg.BaseAnnualCents / 12
	year := start.Year()

	var entries []Entry
	cursor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location()).Add(-time.Second)
	for {
		payday := paydays.Next(cursor)
		if payday.IsZero() || payday.After(end) {
			break
		}
		cursor = payday

		if payday.Year() > year {
			raise := g.rnd.Uniform(g.cfg.RaisePctMin, g.cfg.RaisePctMax)
			monthly = int64(float64(monthly) * (1 + raise/100))
			year = payday.Year()
		}

		amount := monthly
		description := DescriptionSalary
		if g.rnd.Chance(g.cfg.DeductionChance) {
			deduction := g.rnd.Uniform(g.cfg.DeductionPctMin, g.cfg.DeductionPctMax)
			amount = int64(float64(amount) * (1 - deduction/100))
			description = DescriptionSalaryDeducted
		}

		entries = append(entries, Entry{
			Date:             payday,
			Description:      description,
			AmountCents:      amount,
			BaseMonthlyCents: monthly,
		})

		if !g.cfg.IsBonusMonth(payday.Month()) {
			continue
		}

		pct := g.rnd.Uniform(g.cfg.BonusPctMin, g.cfg.BonusPctMax)
		bonus := int64(float64(monthly) * pct / 100)
		if bonus <= 0 {
			continue
		}

		delay := g.rnd.IntBetween(g.cfg.BonusDelayDaysMin, g.cfg.BonusDelayDaysMax)
		entries = append(entries, Entry{
			Date:             payday.AddDate(0, 0, int(delay)),
			Description:      bonusDescription(payday.Month()),
			AmountCents:      bonus,
			BaseMonthlyCents: monthly,
			Bonus:            true,
		})
	}

	return entries, nil
}

func bonusDescription(m time.Month) string {
	switch m {
	case time.March:
		return DescriptionPerformanceBonus
	case time.December:
		return DescriptionYearEndBonus
	default:
		return DescriptionBonus
	}
}

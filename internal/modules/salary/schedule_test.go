package salary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/ledger-seeder/internal/modules/reference"
	"github.com/aristath/ledger-seeder/pkg/random"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func baseEntries(entries []Entry) []Entry {
	var out []Entry
	for _, e := range entries {
		if !e.Bonus {
			out = append(out, e)
		}
	}
	return out
}

func TestSchedule_OneEntryPerMonthOnPayday(t *testing.T) {
	g := NewGenerator(reference.DefaultSalaryConfig(), random.New(1))

	entries, err := g.Schedule(date(2023, time.January, 10), date(2025, time.June, 20))
	require.NoError(t, err)

	base := baseEntries(entries)
	require.Len(t, base, 30)

	for i, e := range base {
		assert.Equal(t, 15, e.Date.Day())
		if i > 0 {
			prev := base[i-1].Date
			assert.Equal(t, prev.AddDate(0, 1, 0), e.Date, "entries must be one month apart")
		}
	}
}

func TestSchedule_StartMonthPaydayBeforeStartIncluded(t *testing.T) {
	g := NewGenerator(reference.DefaultSalaryConfig(), random.New(2))

	entries, err := g.Schedule(date(2024, time.October, 20), date(2024, time.November, 14))
	require.NoError(t, err)

	base := baseEntries(entries)
	require.Len(t, base, 1)
	assert.Equal(t, date(2024, time.October, 15), base[0].Date)
}

func TestSchedule_FirstYearBase(t *testing.T) {
	cfg := reference.DefaultSalaryConfig()
	cfg.DeductionChance = 0
	g := NewGenerator(cfg, random.New(3))

	entries, err := g.Schedule(date(2024, time.January, 1), date(2024, time.February, 28))
	require.NoError(t, err)

	for _, e := range baseEntries(entries) {
		assert.Equal(t, int64(85000_00/12), e.AmountCents)
		assert.Equal(t, DescriptionSalary, e.Description)
	}
}

func TestSchedule_BaseNonDecreasingAcrossYears(t *testing.T) {
	cfg := reference.DefaultSalaryConfig()
	cfg.DeductionChance = 0.5
	g := NewGenerator(cfg, random.New(4))

	entries, err := g.Schedule(date(2020, time.March, 1), date(2025, time.September, 30))
	require.NoError(t, err)

	base := baseEntries(entries)
	for i := 1; i < len(base); i++ {
		prev, cur := base[i-1], base[i]
		if cur.Date.Year() == prev.Date.Year() {
			assert.Equal(t, prev.BaseMonthlyCents, cur.BaseMonthlyCents, "base changes only at year boundaries")
			continue
		}
		assert.GreaterOrEqual(t, cur.BaseMonthlyCents, prev.BaseMonthlyCents)
		raise := float64(cur.BaseMonthlyCents)/float64(prev.BaseMonthlyCents) - 1
		assert.InDelta(t, 0.035, raise, 0.016, "raise should be within 2-5%%")
	}
}

func TestSchedule_Deductions(t *testing.T) {
	cfg := reference.DefaultSalaryConfig()
	cfg.DeductionChance = 1
	g := NewGenerator(cfg, random.New(5))

	entries, err := g.Schedule(date(2024, time.January, 1), date(2024, time.December, 31))
	require.NoError(t, err)

	for _, e := range baseEntries(entries) {
		assert.Equal(t, DescriptionSalaryDeducted, e.Description)
		assert.Less(t, e.AmountCents, e.BaseMonthlyCents)
		assert.GreaterOrEqual(t, float64(e.AmountCents), float64(e.BaseMonthlyCents)*0.95-1)
	}
}

func TestSchedule_Bonuses(t *testing.T) {
	cfg := reference.DefaultSalaryConfig()
	g := NewGenerator(cfg, random.New(6))

	entries, err := g.Schedule(date(2023, time.January, 1), date(2024, time.December, 31))
	require.NoError(t, err)

	var bonuses []Entry
	for i, e := range entries {
		if !e.Bonus {
			continue
		}
		bonuses = append(bonuses, e)

		require.Positive(t, i)
		paycheck := entries[i-1]
		assert.False(t, paycheck.Bonus, "a bonus follows its month's paycheck")

		delay := int(e.Date.Sub(paycheck.Date).Hours() / 24)
		assert.GreaterOrEqual(t, delay, 1)
		assert.LessOrEqual(t, delay, 5)

		assert.GreaterOrEqual(t, float64(e.AmountCents), float64(e.BaseMonthlyCents)*0.05-1)
		assert.LessOrEqual(t, float64(e.AmountCents), float64(e.BaseMonthlyCents)*0.20)

		switch paycheck.Date.Month() {
		case time.March:
			assert.Equal(t, DescriptionPerformanceBonus, e.Description)
		case time.December:
			assert.Equal(t, DescriptionYearEndBonus, e.Description)
		default:
			t.Errorf("unexpected bonus in %s", paycheck.Date.Month())
		}
	}
	assert.Len(t, bonuses, 4)
}

func TestSchedule_DatesOrderedByMonth(t *testing.T) {
	g := NewGenerator(reference.DefaultSalaryConfig(), random.New(7))

	entries, err := g.Schedule(date(2022, time.May, 3), date(2025, time.May, 3))
	require.NoError(t, err)

	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].Date.Before(entries[i-1].Date))
	}
}

func TestSchedule_InvalidPayDay(t *testing.T) {
	cfg := reference.DefaultSalaryConfig()
	cfg.PayDay = 31
	g := NewGenerator(cfg, random.New(8))

	_, err := g.Schedule(date(2024, time.January, 1), date(2024, time.December, 31))
	assert.Error(t, err)
}

func TestSchedule_EndBeforeFirstPayday(t *testing.T) {
	g := NewGenerator(reference.DefaultSalaryConfig(), random.New(9))

	entries, err := g.Schedule(date(2024, time.January, 1), date(2024, time.January, 10))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

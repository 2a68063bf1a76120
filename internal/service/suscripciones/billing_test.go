package suscripciones

import (
	"testing"
	"time"

	"suscripciones-service/internal/domain/offer"
	"suscripciones-service/internal/domain/plan"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeRenewalDate(t *testing.T) {
	start := date(2026, time.January, 26)

	tests := []struct {
		name    string
		cadence plan.Duration
		want    time.Time
	}{
		{"monthly", plan.DurationMonthly, date(2026, time.February, 26)},
		{"quarter", plan.DurationQuarter, date(2026, time.April, 26)},
		{"semester", plan.DurationSemester, date(2026, time.July, 26)},
		{"annual", plan.DurationAnnual, date(2027, time.January, 26)},
		{"biweekly", plan.DurationBiweekly, date(2026, time.February, 10)},
		{"unknown cadence falls back to monthly", plan.Duration("weekly"), date(2026, time.February, 26)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeRenewalDate(start, tt.cadence)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeRenewalDateMonthRollover(t *testing.T) {
	// AddDate semantics: Jan 31 + 1 month normalizes past February.
	got := ComputeRenewalDate(date(2026, time.January, 31), plan.DurationMonthly)
	assert.Equal(t, date(2026, time.March, 3), got)
}

func TestComputeRenewalDateIsPure(t *testing.T) {
	start := date(2026, time.January, 26)
	first := ComputeRenewalDate(start, plan.DurationAnnual)
	second := ComputeRenewalDate(start, plan.DurationAnnual)
	assert.Equal(t, first, second)
	assert.Equal(t, date(2026, time.January, 26), start, "input must not be mutated")
}

func TestApplyExtraDuration(t *testing.T) {
	base := date(2026, time.February, 26)

	tests := []struct {
		name   string
		amount int
		unit   offer.DurationUnit
		want   time.Time
	}{
		{"ten days", 10, offer.UnitDays, date(2026, time.March, 8)},
		{"two weeks", 2, offer.UnitWeeks, date(2026, time.March, 12)},
		{"one month", 1, offer.UnitMonths, date(2026, time.March, 26)},
		{"zero amount is a no-op", 0, offer.UnitDays, base},
		{"negative amount is a no-op", -3, offer.UnitMonths, base},
		{"years falls back to days", 1, offer.UnitYears, date(2026, time.February, 27)},
		{"unknown unit falls back to days", 5, offer.DurationUnit("fortnights"), date(2026, time.March, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyExtraDuration(base, tt.amount, tt.unit)
			assert.Equal(t, tt.want, got)
		})
	}
}

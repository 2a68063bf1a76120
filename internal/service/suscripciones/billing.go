// internal/service/suscripciones/billing.go
package suscripciones

import (
	"time"

	"suscripciones-service/internal/domain/offer"
	"suscripciones-service/internal/domain/plan"
)

// ComputeRenewalDate derives the renewal date from the plan's billing
// cadence. Calendar arithmetic uses time.Time.AddDate, so month deltas
// follow Go's native rollover (Jan 31 + 1 month lands in early March when
// February is shorter). An unrecognized cadence falls back to monthly.
func ComputeRenewalDate(start time.Time, cadence plan.Duration) time.Time {
	switch cadence {
	case plan.DurationMonthly:
		return start.AddDate(0, 1, 0)
	case plan.DurationQuarter:
		return start.AddDate(0, 3, 0)
	case plan.DurationSemester:
		return start.AddDate(0, 6, 0)
	case plan.DurationAnnual:
		return start.AddDate(1, 0, 0)
	case plan.DurationBiweekly:
		return start.AddDate(0, 0, 15)
	default:
		return start.AddDate(0, 1, 0)
	}
}

// ApplyExtraDuration layers an offer's bonus time on top of an already
// computed renewal date. amount <= 0 is a no-op. The unit switch only knows
// days/weeks/months; anything else (including "years", which the DTO enum
// admits) falls back to days.
func ApplyExtraDuration(date time.Time, amount int, unit offer.DurationUnit) time.Time {
	if amount <= 0 {
		return date
	}

	switch unit {
	case offer.UnitDays:
		return date.AddDate(0, 0, amount)
	case offer.UnitWeeks:
		return date.AddDate(0, 0, amount*7)
	case offer.UnitMonths:
		return date.AddDate(0, amount, 0)
	default:
		return date.AddDate(0, 0, amount)
	}
}

// internal/domain/offer/entity.go
package offer

import (
	"database/sql"
	"time"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type DurationUnit string

const (
	UnitDays   DurationUnit = "days"
	UnitWeeks  DurationUnit = "weeks"
	UnitMonths DurationUnit = "months"
	UnitYears  DurationUnit = "years"
)

// Discount lowers the subscription price. Exactly one of Percentage or
// FixedAmount is set on a valid discount.
type Discount struct {
	Percentage  *float64 `json:"percentage,omitempty"`
	FixedAmount *float64 `json:"fixed_amount,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// ExtraDurationPlan grants bonus renewal time on top of the plan's cadence.
type ExtraDurationPlan struct {
	ExtraDuration int          `json:"extra_duration"`
	DurationType  DurationUnit `json:"duration_type"`
}

// Offer carries exactly one of Discount / ExtraDurationPlan, never both.
// Nil pointers encode absence; the exclusivity invariant is enforced by
// ValidateChoice at the request boundary and again in the repository.
type Offer struct {
	ID                string             `json:"id" db:"id"`
	OfferName         string             `json:"offer_name" db:"offer_name"`
	Description       sql.NullString     `json:"description,omitempty" db:"description"`
	Discount          *Discount          `json:"discount,omitempty" db:"discount"`
	ExtraDurationPlan *ExtraDurationPlan `json:"extra_duration_plan,omitempty" db:"extra_duration_plan"`
	Status            Status             `json:"status" db:"status"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

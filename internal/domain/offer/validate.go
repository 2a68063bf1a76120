// internal/domain/offer/validate.go
package offer

import (
	"fmt"

	xerrors "suscripciones-service/internal/pkg/errors"
)

// ChoiceMode selects how ValidateChoice treats an offer with neither a
// discount nor an extra-duration bonus.
type ChoiceMode int

const (
	// ChoiceStrict requires exactly one of discount / extra_duration_plan.
	// Used when creating a new offer.
	ChoiceStrict ChoiceMode = iota
	// ChoiceLenient allows neither (a partial update that touches other
	// fields), but still rejects both.
	ChoiceLenient
)

// ValidateChoice enforces the discount XOR extra-duration invariant.
func ValidateChoice(hasDiscount, hasExtra bool, mode ChoiceMode) error {
	if hasDiscount && hasExtra {
		return fmt.Errorf("%w: cannot specify both discount and extra_duration_plan", xerrors.ErrBadRequest)
	}
	if mode == ChoiceStrict && !hasDiscount && !hasExtra {
		return fmt.Errorf("%w: must specify exactly one of discount or extra_duration_plan", xerrors.ErrBadRequest)
	}
	return nil
}

// Validate checks the discount's own two-way exclusivity: exactly one of
// percentage / fixed_amount, with percentage in [0,100] and fixed_amount >= 0.
func (d *Discount) Validate() error {
	if d == nil {
		return nil
	}

	hasPercentage := d.Percentage != nil
	hasFixed := d.FixedAmount != nil

	if hasPercentage && hasFixed {
		return fmt.Errorf("%w: only one discount type is allowed: percentage or fixed_amount, not both", xerrors.ErrBadRequest)
	}
	if !hasPercentage && !hasFixed {
		return fmt.Errorf("%w: a discount requires percentage or fixed_amount", xerrors.ErrBadRequest)
	}
	if hasPercentage && (*d.Percentage < 0 || *d.Percentage > 100) {
		return fmt.Errorf("%w: percentage must be between 0 and 100", xerrors.ErrBadRequest)
	}
	if hasFixed && *d.FixedAmount < 0 {
		return fmt.Errorf("%w: fixed_amount cannot be negative", xerrors.ErrBadRequest)
	}
	return nil
}

// Validate checks the extra-duration bonus payload.
func (e *ExtraDurationPlan) Validate() error {
	if e == nil {
		return nil
	}

	if e.ExtraDuration < 1 {
		return fmt.Errorf("%w: extra_duration must be at least 1", xerrors.ErrBadRequest)
	}
	switch e.DurationType {
	case UnitDays, UnitWeeks, UnitMonths, UnitYears:
		return nil
	default:
		return fmt.Errorf("%w: duration_type must be 'days', 'weeks', 'months' or 'years'", xerrors.ErrBadRequest)
	}
}

// ValidatePayload runs the full cross-field pipeline over an offer-shaped
// payload: the choice invariant plus the inner payload of whichever side is
// present.
func ValidatePayload(discount *Discount, extra *ExtraDurationPlan, mode ChoiceMode) error {
	if err := ValidateChoice(discount != nil, extra != nil, mode); err != nil {
		return err
	}
	if err := discount.Validate(); err != nil {
		return err
	}
	return extra.Validate()
}

package calendar

import (
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// DefaultMaxDeliveriesPerDay is the fixed daily delivery capacity used when
// no override is configured.
const DefaultMaxDeliveriesPerDay = 3

// Capacity derives day availability from booking counts and enforces the
// daily admission limit.
//
// Capacity holds no booking state of its own. Counts are recomputed from the
// order store every time a day is evaluated, so the calendar can never drift
// out of sync with order reality: a counter and its source of truth must not
// diverge.
type Capacity struct {
	maxPerDay int
}

// NewCapacity creates a Capacity with the given daily limit.
// The limit must be positive.
func NewCapacity(maxPerDay int) (Capacity, error) {
	if maxPerDay <= 0 {
		return Capacity{}, errs.NewValueIsInvalidErrorWithCause("maxDeliveriesPerDay",
			fmt.Errorf("%d is not greater than 0", maxPerDay))
	}
	return Capacity{maxPerDay: maxPerDay}, nil
}

// MaxPerDay returns the daily booking limit.
func (c Capacity) MaxPerDay() int {
	return c.maxPerDay
}

// Derive computes the availability of a day from its current booking count
// and operator blackout flag, in precedence order: blackout, full, nearly
// full, open.
func (c Capacity) Derive(bookingCount int, operatorBlackout bool) AvailabilityStatus {
	switch {
	case operatorBlackout:
		return Unavailable
	case bookingCount >= c.maxPerDay:
		return Busy
	case bookingCount >= c.maxPerDay-1:
		return Partial
	default:
		return Available
	}
}

// EnsureBookable is the hard admission-control gate: it fails with a
// CapacityExceededError when the day cannot accept another booking, carrying
// the current and maximum counts so the caller can surface exact numbers.
// Partial days pass; overbooking is never a soft warning.
func (c Capacity) EnsureBookable(date kernel.Date, bookingCount int, operatorBlackout bool) error {
	if c.Derive(bookingCount, operatorBlackout).Bookable() {
		return nil
	}
	return errs.NewCapacityExceededError(date.String(), bookingCount, c.maxPerDay)
}

// DisplayCount caps a booking count at the daily limit for rendering.
// Cancelled-then-rebooked churn can briefly leave historic days over the
// cap; the dashboard never shows more than the limit.
func (c Capacity) DisplayCount(bookingCount int) int {
	if bookingCount > c.maxPerDay {
		return c.maxPerDay
	}
	return bookingCount
}

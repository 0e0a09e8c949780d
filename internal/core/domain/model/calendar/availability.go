package calendar

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// AvailabilityStatus describes how bookable a calendar day is.
//
// Derivation precedence: an operator blackout always wins (Unavailable),
// then a full day (Busy), then a nearly-full day (Partial), else Available.
type AvailabilityStatus int

const (
	// StatusUnknown represents an invalid or undefined availability.
	StatusUnknown AvailabilityStatus = iota

	// Available means the day has open booking slots.
	Available

	// Partial means the day is one booking away from full. Scheduling is
	// still permitted; the dashboard renders this as a soft warning.
	Partial

	// Busy means the day has reached its booking capacity. New bookings are
	// rejected.
	Busy

	// Unavailable means an operator declared the day a blackout. New
	// bookings are rejected regardless of the booking count.
	Unavailable
)

func getAvailabilityStrings() map[AvailabilityStatus]string {
	return map[AvailabilityStatus]string{
		Available:   "available",
		Partial:     "partial",
		Busy:        "busy",
		Unavailable: "unavailable",
	}
}

// Validate checks if the AvailabilityStatus value is valid.
func (s AvailabilityStatus) Validate() error {
	if _, ok := getAvailabilityStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"availabilityStatus", fmt.Errorf("%d is not a valid availability status", int(s)))
	}
	return nil
}

// String returns the wire representation of the availability status.
// Implements the fmt.Stringer interface; invalid values yield "unknown".
func (s AvailabilityStatus) String() string {
	if str, ok := getAvailabilityStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Bookable reports whether a new delivery may be admitted on a day with this
// availability. Busy and Unavailable are hard blocks; Partial is not.
func (s AvailabilityStatus) Bookable() bool {
	return s == Available || s == Partial
}

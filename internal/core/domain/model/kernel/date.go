package kernel

import (
	"fmt"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// DateLayout is the wire and persistence format for calendar dates.
const DateLayout = "2006-01-02"

// ErrDateIsNotConstructed is returned when attempting to use an improperly initialized Date.
// Dates must be created using NewDate or DateFromString constructors to ensure validity.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError(
	"date must be created via NewDate or DateFromString constructors")

// Date represents a single calendar day with no time-of-day component.
// Date is an immutable value object normalized to midnight UTC, so two dates
// referring to the same calendar day always compare equal regardless of the
// clock or zone of the timestamp they were derived from.
//
// The zero value of Date is invalid and will fail validation - use constructors
// to create instances.
//
// Example:
//
//	day := kernel.NewDate(time.Now())
//	fmt.Println(day) // Output: 2026-08-29
type Date struct { //nolint:recvcheck //using for validation
	day   time.Time
	guard guard.ConstructorGuard
}

// NewDate creates a Date from any timestamp by truncating it to its UTC
// calendar day. The conversion never fails: every timestamp belongs to
// exactly one day.
func NewDate(t time.Time) Date {
	utc := t.UTC()
	return Date{
		day:   time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC),
		guard: guard.NewConstructorGuard(),
	}
}

// DateFromString parses a Date from its YYYY-MM-DD representation.
// Returns a validation error if the string is not a valid calendar date.
//
// Example:
//
//	day, err := kernel.DateFromString("2026-09-01")
//	if err != nil {
//	    return fmt.Errorf("invalid delivery date: %w", err)
//	}
func DateFromString(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", fmt.Errorf("%q is not a calendar date: %w", s, err))
	}
	return NewDate(t), nil
}

// Validate checks if the Date was properly constructed.
// Returns ErrDateIsNotConstructed for zero-value instances.
func (d Date) Validate() error {
	return d.guard.Validate(ErrDateIsNotConstructed)
}

// Time returns the date as a time.Time at midnight UTC.
func (d Date) Time() time.Time {
	return d.day
}

// String returns the YYYY-MM-DD representation of the date.
// Implements the fmt.Stringer interface.
func (d Date) String() string {
	return d.day.Format(DateLayout)
}

// Before reports whether the date falls strictly before other.
func (d Date) Before(other Date) bool {
	return d.day.Before(other.day)
}

// IsEqual reports whether both values refer to the same calendar day.
func (d Date) IsEqual(other Date) bool {
	return d.day.Equal(other.day)
}

// AddDays returns the date shifted by the given number of days.
// Negative values shift into the past.
func (d Date) AddDays(days int) Date {
	return NewDate(d.day.AddDate(0, 0, days))
}

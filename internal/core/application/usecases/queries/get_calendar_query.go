package queries

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetCalendarQueryIsNotConstructed = errors.New(
	"GetCalendarQuery must be created via NewGetCalendarQuery constructor",
)

// Year bounds accepted by the calendar view. Wide enough for history and
// forward planning, tight enough to catch a mangled request.
const (
	calendarMinYear = 2000
	calendarMaxYear = 2100
)

// GetCalendarQuery retrieves the availability calendar for one month: per
// day the booking count, operator blackout, derived availability, and the
// slots still open.
type GetCalendarQuery struct { //nolint:recvcheck //using for validation
	year  int
	month int

	guard guard.ConstructorGuard
}

// NewGetCalendarQuery creates a calendar query for the given month.
// The month must be 1 through 12 and the year within the supported range.
func NewGetCalendarQuery(year, month int) (GetCalendarQuery, error) {
	if month < 1 || month > 12 {
		return GetCalendarQuery{}, errs.NewValueIsOutOfRangeError("month", month, 1, 12)
	}
	if year < calendarMinYear || year > calendarMaxYear {
		return GetCalendarQuery{}, errs.NewValueIsOutOfRangeError("year", year, calendarMinYear, calendarMaxYear)
	}

	return GetCalendarQuery{
		year:  year,
		month: month,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCalendarQuery) Validate() error {
	return q.guard.Validate(ErrGetCalendarQueryIsNotConstructed)
}

// Year returns the requested year.
func (q GetCalendarQuery) Year() int {
	return q.year
}

// Month returns the requested month, 1 through 12.
func (q GetCalendarQuery) Month() int {
	return q.month
}

// GetCalendarQueryResponse is one day of the availability calendar.
type GetCalendarQueryResponse struct {
	Date           string   `json:"date"`
	BookingCount   int      `json:"bookingCount"`
	MaxPerDay      int      `json:"maxPerDay"`
	Status         string   `json:"status"`
	IsBlackout     bool     `json:"isBlackout"`
	BlackoutReason string   `json:"blackoutReason,omitempty"`
	AvailableSlots []string `json:"availableSlots"`
}

package calendar

import (
	"dispatch/internal/core/domain/model/kernel"
)

// Day is the read-model snapshot of one calendar day shown on the delivery
// dashboard: how many deliveries are booked, whether the operator blacked
// the day out, and the derived availability.
type Day struct {
	Date               kernel.Date
	BookingCount       int
	Status             AvailabilityStatus
	IsOperatorBlackout bool
	AvailableSlots     []string
}

// NewDay assembles a Day from the raw booking count and blackout flag,
// deriving its availability and capping the displayed count via capacity.
func NewDay(date kernel.Date, bookingCount int, operatorBlackout bool, slots []string, capacity Capacity) Day {
	return Day{
		Date:               date,
		BookingCount:       capacity.DisplayCount(bookingCount),
		Status:             capacity.Derive(bookingCount, operatorBlackout),
		IsOperatorBlackout: operatorBlackout,
		AvailableSlots:     slots,
	}
}

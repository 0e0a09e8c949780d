package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/calendar"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// GetCalendarQueryHandler renders the month availability calendar.
//
// Booking counts are aggregated from the orders table on every read, never
// cached: the calendar and the orders it summarizes must not diverge.
type GetCalendarQueryHandler struct {
	db       *gorm.DB
	capacity calendar.Capacity
}

// NewGetCalendarQueryHandler creates a handler with the given daily capacity.
func NewGetCalendarQueryHandler(db *gorm.DB, capacity calendar.Capacity) GetCalendarQueryHandler {
	return GetCalendarQueryHandler{db: db, capacity: capacity}
}

// Handle executes the query and returns one entry per day of the month, in
// date order.
func (h GetCalendarQueryHandler) Handle(
	ctx context.Context,
	query GetCalendarQuery,
) ([]GetCalendarQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	first := time.Date(query.Year(), time.Month(query.Month()), 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	counts, err := h.loadBookingCounts(ctx, first, next)
	if err != nil {
		return nil, err
	}
	blackouts, err := h.loadBlackouts(ctx, first, next)
	if err != nil {
		return nil, err
	}

	days := make([]GetCalendarQueryResponse, 0, 31)
	for cursor := first; cursor.Before(next); cursor = cursor.AddDate(0, 0, 1) {
		date := kernel.NewDate(cursor)
		blackout, hasBlackout := blackouts[date.String()]

		day := calendar.NewDay(date, counts[date.String()], hasBlackout && blackout.BlocksDay(),
			availableSlots(hasBlackout, blackout), h.capacity)

		entry := GetCalendarQueryResponse{
			Date:           date.String(),
			BookingCount:   day.BookingCount,
			MaxPerDay:      h.capacity.MaxPerDay(),
			Status:         day.Status.String(),
			IsBlackout:     hasBlackout,
			AvailableSlots: day.AvailableSlots,
		}
		if hasBlackout {
			entry.BlackoutReason = blackout.Reason()
		}
		if !day.Status.Bookable() {
			entry.AvailableSlots = []string{}
		}
		days = append(days, entry)
	}

	return days, nil
}

func (h GetCalendarQueryHandler) loadBookingCounts(
	ctx context.Context, from, to time.Time,
) (map[string]int, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT scheduled_date, COUNT(*)
		FROM orders
		WHERE scheduled_date >= ? AND scheduled_date < ?
		  AND status IN (?, ?, ?)
		GROUP BY scheduled_date
	`, from, to,
		order.Scheduled.String(), order.InTransit.String(), order.Delivered.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var day time.Time
		var count int
		if err = rows.Scan(&day, &count); err != nil {
			return nil, err
		}
		counts[kernel.NewDate(day).String()] = count
	}
	return counts, rows.Err()
}

func (h GetCalendarQueryHandler) loadBlackouts(
	ctx context.Context, from, to time.Time,
) (map[string]calendar.Blackout, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT date, reason, slots
		FROM blackouts
		WHERE date >= ? AND date < ?
	`, from, to).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blackouts := make(map[string]calendar.Blackout)
	for rows.Next() {
		var day time.Time
		var reason sql.NullString
		var slots pq.StringArray
		if err = rows.Scan(&day, &reason, &slots); err != nil {
			return nil, err
		}

		parsed := make([]order.TimeSlot, 0, len(slots))
		for _, s := range slots {
			slot, slotErr := order.TimeSlotFromString(s)
			if slotErr != nil {
				return nil, slotErr
			}
			parsed = append(parsed, slot)
		}

		blackout, blackoutErr := calendar.NewBlackout(kernel.NewDate(day), reason.String, parsed)
		if blackoutErr != nil {
			return nil, blackoutErr
		}
		blackouts[blackout.Date().String()] = blackout
	}
	return blackouts, rows.Err()
}

// availableSlots lists the wire names of slots not blocked on a day. Days
// that end up non-bookable get their slot list cleared by the caller.
func availableSlots(hasBlackout bool, blackout calendar.Blackout) []string {
	all := []order.TimeSlot{order.SlotMorning, order.SlotAfternoon, order.SlotEvening}
	open := make([]string, 0, len(all))
	for _, slot := range all {
		if hasBlackout && blackout.Blocks(slot) {
			continue
		}
		open = append(open, slot.String())
	}
	return open
}

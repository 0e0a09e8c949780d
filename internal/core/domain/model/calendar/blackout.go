package calendar

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// Blackout marks a calendar day the operator closed for deliveries. A
// blackout with no slots blocks the whole day; one carrying slots blocks
// only those parts of the day and leaves the rest bookable.
type Blackout struct {
	date   kernel.Date
	reason string
	slots  []order.TimeSlot
}

// NewBlackout creates a blackout for the given day. An empty slot list means
// the whole day is closed.
func NewBlackout(date kernel.Date, reason string, slots []order.TimeSlot) (Blackout, error) {
	if err := date.Validate(); err != nil {
		return Blackout{}, err
	}
	for _, slot := range slots {
		if err := slot.Validate(); err != nil {
			return Blackout{}, err
		}
		if slot == order.SlotUnspecified {
			return Blackout{}, errs.NewValueIsInvalidError("blackout slot")
		}
	}

	b := Blackout{date: date, reason: reason}
	b.slots = make([]order.TimeSlot, len(slots))
	copy(b.slots, slots)
	return b, nil
}

// Date returns the day the blackout applies to.
func (b Blackout) Date() kernel.Date {
	return b.date
}

// Reason returns the operator's note, possibly empty.
func (b Blackout) Reason() string {
	return b.reason
}

// Slots returns the blocked slots, empty for a whole-day blackout.
func (b Blackout) Slots() []order.TimeSlot {
	out := make([]order.TimeSlot, len(b.slots))
	copy(out, b.slots)
	return out
}

// BlocksDay reports whether the entire day is closed.
func (b Blackout) BlocksDay() bool {
	return len(b.slots) == 0
}

// Blocks reports whether the given slot is closed. An unspecified slot is
// blocked only by a whole-day blackout: a booking with no slot promise can
// still land in any open part of the day.
func (b Blackout) Blocks(slot order.TimeSlot) bool {
	if b.BlocksDay() {
		return true
	}
	if slot == order.SlotUnspecified {
		return false
	}
	for _, blocked := range b.slots {
		if blocked == slot {
			return true
		}
	}
	return false
}

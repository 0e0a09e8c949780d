package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrToggleBlackoutCommandIsNotConstructed = errors.New(
	"ToggleBlackoutCommand must be created via NewToggleBlackoutCommand constructor",
)

// ToggleBlackoutCommand represents an operator request to close or reopen a
// calendar day for deliveries. Closing may target the whole day or a set of
// time slots.
//
// Toggling only changes future admissions. Orders already booked on the day
// keep their schedule; the operator delays or cancels them explicitly.
type ToggleBlackoutCommand struct { //nolint:recvcheck //using for validation
	date    kernel.Date
	enabled bool
	reason  string
	slots   []order.TimeSlot

	guard guard.ConstructorGuard
}

// NewToggleBlackoutCommand creates a blackout toggle. With enabled true the
// day (or the given slots) is closed; with enabled false any existing
// blackout is lifted and reason and slots are ignored.
func NewToggleBlackoutCommand(
	date kernel.Date,
	enabled bool,
	reason string,
	slots []order.TimeSlot,
) (ToggleBlackoutCommand, error) {
	command := ToggleBlackoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDate(date),
		command.setSlots(slots),
	); err != nil {
		return ToggleBlackoutCommand{}, err
	}

	command.enabled = enabled
	command.reason = reason
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ToggleBlackoutCommand) Validate() error {
	return c.guard.Validate(ErrToggleBlackoutCommandIsNotConstructed)
}

// Date returns the day to toggle.
func (c ToggleBlackoutCommand) Date() kernel.Date {
	return c.date
}

// Enabled reports whether the day is being closed (true) or reopened (false).
func (c ToggleBlackoutCommand) Enabled() bool {
	return c.enabled
}

// Reason returns the operator's note, possibly empty.
func (c ToggleBlackoutCommand) Reason() string {
	return c.reason
}

// Slots returns the slots to close, empty for the whole day.
func (c ToggleBlackoutCommand) Slots() []order.TimeSlot {
	out := make([]order.TimeSlot, len(c.slots))
	copy(out, c.slots)
	return out
}

func (c *ToggleBlackoutCommand) setDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}
	c.date = date
	return nil
}

func (c *ToggleBlackoutCommand) setSlots(slots []order.TimeSlot) error {
	for _, slot := range slots {
		if err := slot.Validate(); err != nil {
			return err
		}
	}
	c.slots = make([]order.TimeSlot, len(slots))
	copy(c.slots, slots)
	return nil
}

package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrScheduleDeliveryCommandIsNotConstructed = errors.New(
	"ScheduleDeliveryCommand must be created via NewScheduleDeliveryCommand constructor",
)

// ScheduleDeliveryCommand represents a request to admit an order to a
// delivery day, optionally promising a part of day and assigning a courier.
//
// Example:
//
//	date, _ := kernel.DateFromString("2026-03-20")
//	cmd, err := NewScheduleDeliveryCommand(orderID, date, order.SlotMorning, &courierID)
//	if err != nil {
//	    return fmt.Errorf("invalid schedule request: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to schedule delivery: %w", err)
//	}
type ScheduleDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	date      kernel.Date
	timeSlot  order.TimeSlot
	courierID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewScheduleDeliveryCommand creates a command to schedule a delivery.
// The time slot may be SlotUnspecified and the courier may be nil; both are
// optional at admission time.
func NewScheduleDeliveryCommand(
	orderID kernel.UUID,
	date kernel.Date,
	timeSlot order.TimeSlot,
	courierID *kernel.UUID,
) (ScheduleDeliveryCommand, error) {
	command := ScheduleDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setDate(date),
		command.setTimeSlot(timeSlot),
		command.setCourierID(courierID),
	); err != nil {
		return ScheduleDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ScheduleDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrScheduleDeliveryCommandIsNotConstructed)
}

// OrderID returns the order to schedule.
func (c ScheduleDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Date returns the requested delivery day.
func (c ScheduleDeliveryCommand) Date() kernel.Date {
	return c.date
}

// TimeSlot returns the promised part of day, SlotUnspecified when none.
func (c ScheduleDeliveryCommand) TimeSlot() order.TimeSlot {
	return c.timeSlot
}

// CourierID returns the requested courier, nil when assignment is deferred.
func (c ScheduleDeliveryCommand) CourierID() *kernel.UUID {
	return c.courierID
}

func (c *ScheduleDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ScheduleDeliveryCommand) setDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}
	c.date = date
	return nil
}

func (c *ScheduleDeliveryCommand) setTimeSlot(timeSlot order.TimeSlot) error {
	if err := timeSlot.Validate(); err != nil {
		return err
	}
	c.timeSlot = timeSlot
	return nil
}

func (c *ScheduleDeliveryCommand) setCourierID(courierID *kernel.UUID) error {
	if courierID == nil {
		return nil
	}
	if err := courierID.Validate(); err != nil {
		return err
	}
	id := *courierID
	c.courierID = &id
	return nil
}

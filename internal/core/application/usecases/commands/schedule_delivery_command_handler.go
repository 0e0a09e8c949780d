package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/calendar"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/datelock"
	"dispatch/internal/pkg/errs"
)

// ScheduleDeliveryCommandHandler admits orders to delivery days.
//
// Admission is a check-then-act sequence over a per-date resource: the
// handler holds the date's lock from the capacity read through the commit,
// so two concurrent requests for the same day cannot both observe a free
// slot. Requests for different days run in parallel.
type ScheduleDeliveryCommandHandler struct {
	uowFactory ScheduleUoWFactory
	dateLocks  *datelock.KeyedMutex
	capacity   calendar.Capacity
	notifier   ports.NotificationSink
	clock      func() time.Time
}

// NewScheduleDeliveryCommandHandler creates a handler for delivery admission.
func NewScheduleDeliveryCommandHandler(
	uowFactory ScheduleUoWFactory,
	dateLocks *datelock.KeyedMutex,
	capacity calendar.Capacity,
	notifier ports.NotificationSink,
) ScheduleDeliveryCommandHandler {
	return ScheduleDeliveryCommandHandler{
		uowFactory: uowFactory,
		dateLocks:  dateLocks,
		capacity:   capacity,
		notifier:   notifier,
		clock:      time.Now,
	}
}

// WithClock replaces the handler's clock. Used by tests.
func (h ScheduleDeliveryCommandHandler) WithClock(clock func() time.Time) ScheduleDeliveryCommandHandler {
	h.clock = clock
	return h
}

// Handle processes the schedule command.
//
// Inside the date lock and a single transaction it verifies the order is
// schedulable, the day is not blacked out or full, and the requested courier
// is active, then books the order. The notification fires only after the
// commit succeeds: an observer must never hear about a booking that was
// rolled back.
func (h *ScheduleDeliveryCommandHandler) Handle(ctx context.Context, cmd ScheduleDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	today := kernel.NewDate(h.clock())
	if cmd.Date().Before(today) {
		return errs.NewValueIsInvalidErrorWithCause("scheduledDeliveryDate",
			fmt.Errorf("%s is in the past", cmd.Date()))
	}

	dateKey := cmd.Date().String()
	h.dateLocks.Lock(dateKey)
	defer h.dateLocks.Unlock(dateKey)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// State is checked before the day and courier: a duplicate submit for a
	// full day must report the order's state, not the day's occupancy.
	if !aggregate.Status().IsSchedulable() {
		return errs.NewInvalidStateError(aggregate.ID().String(), aggregate.Status().String(), "schedule")
	}

	if err = h.ensureDayIsBookable(ctx, uow, cmd); err != nil {
		return err
	}

	courierInfo, err := h.resolveCourier(ctx, uow, cmd.CourierID())
	if err != nil {
		return err
	}

	if err = aggregate.Schedule(cmd.Date(), cmd.TimeSlot(), courierInfo); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderScheduled(ctx, aggregate)
	return nil
}

// ensureDayIsBookable applies blackout and capacity admission control for
// the requested day inside the current transaction.
func (h *ScheduleDeliveryCommandHandler) ensureDayIsBookable(
	ctx context.Context, uow ScheduleUoW, cmd ScheduleDeliveryCommand,
) error {
	blocked := false
	blackout, err := uow.BlackoutRepository().Get(ctx, cmd.Date())
	switch {
	case err == nil:
		blocked = blackout.Blocks(cmd.TimeSlot())
	case errors.Is(err, errs.ErrObjectNotFound):
		// day is open
	default:
		return err
	}

	count, err := uow.OrderRepository().CountScheduledOn(ctx, cmd.Date())
	if err != nil {
		return err
	}

	return h.capacity.EnsureBookable(cmd.Date(), count, blocked)
}

// resolveCourier loads the requested courier and snapshots its contact
// details. A nil request defers assignment; a missing or non-active courier
// fails the admission.
func (h *ScheduleDeliveryCommandHandler) resolveCourier(
	ctx context.Context, uow ScheduleUoW, courierID *kernel.UUID,
) (*order.CourierInfo, error) {
	if courierID == nil {
		return nil, nil //nolint:nilnil // assignment deferred
	}

	aggregate, err := uow.CourierRepository().Get(ctx, *courierID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewCourierUnavailableErrorWithCause(courierID.String(), "courier not found", err)
		}
		return nil, err
	}
	if !aggregate.IsActive() {
		return nil, errs.NewCourierUnavailableError(aggregate.ID().String(),
			"courier is "+aggregate.Status().String())
	}

	info, err := order.NewCourierInfo(aggregate.Name(), aggregate.Phone())
	if err != nil {
		return nil, err
	}
	return &info, nil
}

package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// UpdateDeliveryStatusCommandHandler moves orders through their lifecycle.
// Each transition is checked against the status machine by the aggregate
// itself; the handler only loads, dispatches, persists, and notifies.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationSink
	clock      func() time.Time
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for status transitions.
func NewUpdateDeliveryStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.NotificationSink,
) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      time.Now,
	}
}

// WithClock replaces the handler's clock. Used by tests.
func (h UpdateDeliveryStatusCommandHandler) WithClock(clock func() time.Time) UpdateDeliveryStatusCommandHandler {
	h.clock = clock
	return h
}

// Handle processes the status transition command. The notification fires
// only after the commit succeeds.
func (h *UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

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

	previous := aggregate.Status()
	if err = h.transition(aggregate, cmd.Target()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderStatusChanged(ctx, aggregate, previous)
	return nil
}

func (h *UpdateDeliveryStatusCommandHandler) transition(aggregate *order.Order, target order.Status) error {
	switch target {
	case order.InTransit:
		return aggregate.StartTransit()
	case order.Delivered:
		return aggregate.Complete(h.clock())
	case order.Delayed:
		return aggregate.Delay()
	case order.Cancelled:
		return aggregate.Cancel()
	case order.Pending:
		return aggregate.Restore()
	default:
		return errs.NewValueIsInvalidError("status: " + target.String())
	}
}

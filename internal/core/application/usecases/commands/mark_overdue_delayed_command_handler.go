package commands

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// MarkOverdueDelayedCommandHandler sweeps scheduled and in-transit orders
// whose delivery day passed without a completion and moves them to Delayed.
// Delaying clears the stale schedule, so the orders drop out of capacity
// counts and reappear in the priority queue for re-admission.
type MarkOverdueDelayedCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationSink
	logger     *slog.Logger
	clock      func() time.Time
}

// NewMarkOverdueDelayedCommandHandler creates a handler for the overdue sweep.
func NewMarkOverdueDelayedCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.NotificationSink,
	logger *slog.Logger,
) MarkOverdueDelayedCommandHandler {
	return MarkOverdueDelayedCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "overdue_sweep"),
		clock:      time.Now,
	}
}

// WithClock replaces the handler's clock. Used by tests.
func (h MarkOverdueDelayedCommandHandler) WithClock(clock func() time.Time) MarkOverdueDelayedCommandHandler {
	h.clock = clock
	return h
}

// Handle runs one sweep and returns how many orders were delayed.
// Notifications for the swept orders fire after the commit.
func (h *MarkOverdueDelayedCommandHandler) Handle(ctx context.Context, cmd MarkOverdueDelayedCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	today := kernel.NewDate(h.clock())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	overdue, err := orderRepo.GetAllScheduledBefore(ctx, today)
	if err != nil {
		return 0, err
	}

	type sweptOrder struct {
		aggregate *order.Order
		previous  order.Status
	}
	swept := make([]sweptOrder, 0, len(overdue))
	for _, aggregate := range overdue {
		previous := aggregate.Status()
		if err = aggregate.Delay(); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
		swept = append(swept, sweptOrder{aggregate: aggregate, previous: previous})
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, s := range swept {
		h.notifier.OrderStatusChanged(ctx, s.aggregate, s.previous)
	}

	if len(swept) > 0 {
		h.logger.Info("overdue orders delayed", "count", len(swept), "as_of", today.String())
	}
	return len(swept), nil
}

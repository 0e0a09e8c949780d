// Package notify provides the delivery event sink. Events are emitted after
// the state change that produced them has committed; delivery is at-most-once
// and a lost event is never re-sent.
package notify

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/order"
)

// SlogSink publishes delivery lifecycle events to the structured log. It is
// the default sink; a messaging transport can replace it behind the same
// port without touching the handlers.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink creates a sink writing through the given logger.
func NewSlogSink(logger *slog.Logger) *SlogSink {
	return &SlogSink{logger: logger.With("component", "notifications")}
}

// OrderScheduled reports that an order was admitted to a delivery day.
func (s *SlogSink) OrderScheduled(ctx context.Context, aggregate *order.Order) {
	attrs := []any{
		"event", "order_scheduled",
		"order_id", aggregate.ID().String(),
		"order_number", aggregate.OrderNumber(),
	}
	if date := aggregate.ScheduledDate(); date != nil {
		attrs = append(attrs, "scheduled_date", date.String())
	}
	if slot := aggregate.TimeSlot(); slot != order.SlotUnspecified {
		attrs = append(attrs, "time_slot", slot.String())
	}
	if courier := aggregate.Courier(); courier != nil {
		attrs = append(attrs, "courier", courier.Name())
	}
	s.logger.InfoContext(ctx, "delivery scheduled", attrs...)
}

// OrderStatusChanged reports a lifecycle transition on an order.
func (s *SlogSink) OrderStatusChanged(ctx context.Context, aggregate *order.Order, previous order.Status) {
	s.logger.InfoContext(ctx, "delivery status changed",
		"event", "order_status_changed",
		"order_id", aggregate.ID().String(),
		"order_number", aggregate.OrderNumber(),
		"from", previous.String(),
		"to", aggregate.Status().String(),
	)
}

package ports

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// NotificationSink receives delivery lifecycle events after they are
// committed. Delivery is at-most-once and best-effort: a failed notification
// is logged and dropped, never retried, and never rolls back the state
// change it describes.
type NotificationSink interface {
	// OrderScheduled reports that an order was admitted to a delivery day.
	OrderScheduled(ctx context.Context, aggregate *order.Order)

	// OrderStatusChanged reports a lifecycle transition on an order.
	OrderStatusChanged(ctx context.Context, aggregate *order.Order, previous order.Status)
}

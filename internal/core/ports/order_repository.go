package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByDedupKey retrieves the order holding the given (orderNumber,
	// orderType) identity, or an ObjectNotFoundError when none exists.
	// At most one order per key can exist; the store enforces it.
	GetByDedupKey(ctx context.Context, orderNumber string, orderType order.Type) (*order.Order, error)

	// GetAllUndelivered retrieves every order not yet in a terminal delivered
	// or cancelled state. This is the working set the priority queue scores.
	GetAllUndelivered(ctx context.Context) ([]*order.Order, error)

	// CountScheduledOn counts the orders whose delivery is booked on the
	// given day. Cancelled and delayed orders never hold a date, so they are
	// excluded by construction.
	CountScheduledOn(ctx context.Context, date kernel.Date) (int, error)

	// GetAllScheduledBefore retrieves orders still marked Scheduled or
	// InTransit whose delivery day has already passed. Used by the overdue
	// sweep to move them to Delayed.
	GetAllScheduledBefore(ctx context.Context, date kernel.Date) ([]*order.Order, error)
}

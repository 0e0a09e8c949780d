package ports

import (
	"context"

	"dispatch/internal/core/domain/model/calendar"
	"dispatch/internal/core/domain/model/kernel"
)

// BlackoutRepository defines the persistence contract for operator blackouts.
// A day has at most one blackout entry; setting a blackout for a day that
// already has one replaces it.
type BlackoutRepository interface {
	// Upsert stores the blackout for its day, replacing any existing entry.
	Upsert(ctx context.Context, blackout calendar.Blackout) error

	// Remove deletes the blackout for the given day, reopening it.
	// Removing a day without a blackout is a no-op.
	Remove(ctx context.Context, date kernel.Date) error

	// Get retrieves the blackout for a day, or an ObjectNotFoundError when
	// the day is open.
	Get(ctx context.Context, date kernel.Date) (calendar.Blackout, error)

	// GetAllBetween retrieves every blackout in the half-open range
	// [from, to), in date order. Used to render calendar months.
	GetAllBetween(ctx context.Context, from kernel.Date, to kernel.Date) ([]calendar.Blackout, error)
}

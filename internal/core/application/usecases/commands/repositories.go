// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// BlackoutRepoFactory provides access to the blackout repository within a transaction.
	BlackoutRepoFactory interface {
		BlackoutRepository() ports.BlackoutRepository
	}

	// CourierRepoFactory provides access to the courier roster within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// BlackoutUoW manages transactions for blackout-only operations.
	BlackoutUoW interface {
		TxManager
		BlackoutRepoFactory
	}

	// BlackoutUoWFactory creates new blackout unit of work instances.
	BlackoutUoWFactory interface {
		Create() BlackoutUoW
	}

	// ScheduleUoW manages the admission transaction. Scheduling reads the
	// day's booking count and blackout and writes the order inside one
	// transaction, so it needs all three repositories.
	ScheduleUoW interface {
		TxManager
		OrderRepoFactory
		BlackoutRepoFactory
		CourierRepoFactory
	}

	// ScheduleUoWFactory creates new schedule unit of work instances.
	ScheduleUoWFactory interface {
		Create() ScheduleUoW
	}
)

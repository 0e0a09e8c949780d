package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrMarkOverdueDelayedCommandIsNotConstructed = errors.New(
	"MarkOverdueDelayedCommand must be created via NewMarkOverdueDelayedCommand constructor",
)

// MarkOverdueDelayedCommand triggers the sweep that moves orders whose
// delivery day has passed without completion into Delayed. This is a
// parameterless batch command run daily.
type MarkOverdueDelayedCommand struct {
	guard guard.ConstructorGuard
}

// NewMarkOverdueDelayedCommand creates a command to run one overdue sweep.
func NewMarkOverdueDelayedCommand() MarkOverdueDelayedCommand {
	return MarkOverdueDelayedCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *MarkOverdueDelayedCommand) Validate() error {
	return c.guard.Validate(ErrMarkOverdueDelayedCommandIsNotConstructed)
}

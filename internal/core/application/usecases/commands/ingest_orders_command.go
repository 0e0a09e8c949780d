package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrIngestOrdersCommandIsNotConstructed = errors.New(
	"IngestOrdersCommand must be created via NewIngestOrdersCommand constructor",
)

// IngestOrdersCommand triggers a pull-and-normalize pass over every
// registered upstream order feed. This is a parameterless batch command run
// on a schedule and on demand.
//
// Example:
//
//	cmd := NewIngestOrdersCommand()
//	report, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("ingestion failed: %w", err)
//	}
//	log.Printf("ingested %d orders, %d duplicates collapsed", report.Ingested, report.Duplicates)
type IngestOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewIngestOrdersCommand creates a command to run one ingestion pass.
func NewIngestOrdersCommand() IngestOrdersCommand {
	return IngestOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *IngestOrdersCommand) Validate() error {
	return c.guard.Validate(ErrIngestOrdersCommandIsNotConstructed)
}

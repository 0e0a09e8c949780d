package jobs

import (
	"fmt"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	feedIngestionJob *FeedIngestionJob
	overdueSweepJob  *OverdueSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	ingestHandler commands.IngestOrdersCommandHandler,
	sweepHandler commands.MarkOverdueDelayedCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		feedIngestionJob: NewFeedIngestionJob(ingestHandler, logger),
		overdueSweepJob:  NewOverdueSweepJob(sweepHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.feedIngestionJob.Start(); err != nil {
		return fmt.Errorf("failed to start feed ingestion job: %w", err)
	}

	if err := jm.overdueSweepJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.feedIngestionJob.Stop()
		return fmt.Errorf("failed to start overdue sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueSweepJob.Stop()
	jm.feedIngestionJob.Stop()
}

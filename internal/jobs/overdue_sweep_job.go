package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"dispatch/internal/core/application/usecases/commands"
)

// defaultSweepSchedule runs shortly after midnight, once the previous
// delivery day has fully elapsed.
const defaultSweepSchedule = "5 0 * * *"

// OverdueSweepJob moves scheduled orders whose delivery day passed without a
// completion to the delayed state, putting them back in front of the
// dispatcher for re-admission.
type OverdueSweepJob struct {
	handler  commands.MarkOverdueDelayedCommandHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewOverdueSweepJob creates a sweep job on the default daily schedule.
func NewOverdueSweepJob(handler commands.MarkOverdueDelayedCommandHandler, logger *slog.Logger) *OverdueSweepJob {
	return &OverdueSweepJob{
		handler:  handler,
		cron:     cron.New(),
		schedule: defaultSweepSchedule,
		logger:   logger.With("component", "overdue_sweep_job"),
	}
}

// Start begins the daily overdue sweep.
func (j *OverdueSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewMarkOverdueDelayedCommand()

		swept, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "overdue sweep run failed", "error", handleErr)
			return
		}

		if swept > 0 {
			j.logger.InfoContext(ctx, "overdue deliveries marked delayed", "count", swept)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "overdue sweep job started", "schedule", j.schedule)
	return nil
}

// Stop stops the overdue sweep job.
func (j *OverdueSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "overdue sweep job stopped")
}

package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"dispatch/internal/core/application/usecases/commands"
)

// defaultIngestionSchedule pulls the upstream feeds every 15 minutes.
const defaultIngestionSchedule = "*/15 * * * *"

// FeedIngestionJob periodically pulls the upstream order feeds and admits
// unseen orders. Ingestion is idempotent, so an overlapping or repeated run
// is harmless.
type FeedIngestionJob struct {
	handler  commands.IngestOrdersCommandHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewFeedIngestionJob creates an ingestion job on the default schedule.
func NewFeedIngestionJob(handler commands.IngestOrdersCommandHandler, logger *slog.Logger) *FeedIngestionJob {
	return &FeedIngestionJob{
		handler:  handler,
		cron:     cron.New(),
		schedule: defaultIngestionSchedule,
		logger:   logger.With("component", "feed_ingestion_job"),
	}
}

// Start begins the periodic feed ingestion.
func (j *FeedIngestionJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewIngestOrdersCommand()

		report, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "feed ingestion run failed", "error", handleErr)
			return
		}

		j.logger.InfoContext(ctx, "feed ingestion run finished",
			"feeds_queried", report.FeedsQueried,
			"feeds_failed", report.FeedsFailed,
			"records", report.Records,
			"ingested", report.Ingested,
			"already_known", report.AlreadyKnown,
			"duplicates", report.Duplicates,
			"invalid", report.Invalid,
			"suspects", report.Suspects,
		)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "feed ingestion job started", "schedule", j.schedule)
	return nil
}

// Stop stops the feed ingestion job.
func (j *FeedIngestionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "feed ingestion job stopped")
}

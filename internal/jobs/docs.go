// Package jobs provides scheduled background tasks for the dispatch engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order admission.
//
// # Available Jobs
//
// 1. FeedIngestionJob - Pulls the upstream order feeds every 15 minutes and
// admits unseen orders through the ingestion pipeline.
// 2. OverdueSweepJob - Runs daily after midnight to move scheduled orders
// whose delivery day passed without completion into the delayed state.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(ingestHandler, sweepHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs log failures and wait for the next scheduled run; ingestion is
// idempotent and the sweep only touches orders still overdue, so a skipped
// run self-heals on the next one. Failed job starts stop any already running
// jobs.
package jobs

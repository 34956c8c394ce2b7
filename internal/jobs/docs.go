// Package jobs provides scheduled background tasks for the dispatch service.
//
// Jobs use github.com/robfig/cron/v3 with the seconds field enabled.
//
// # Available Jobs
//
// PendingOrderAssignmentJob assigns orders that are still pending, oldest first. Orders end up
// there when no worker was active at submission time or when the assignment phase failed.
// Each run handles at most a configured batch and stops early when the backlog is empty or the
// roster has nobody active. The administrator is not alerted again for orders that stay pending.
//
// # Usage
//
//	job, err := jobs.NewPendingOrderAssignmentJob(handler, "*/30 * * * * *", 20, logger)
//	if err != nil {
//		return err
//	}
//
//	jobManager := jobs.NewJobManager(job, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// Overlapping runs are skipped rather than queued.
package jobs

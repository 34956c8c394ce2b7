package jobs

import (
	"context"
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// A nil job means the job is disabled by configuration.
type JobManager struct {
	pendingOrderAssignmentJob *PendingOrderAssignmentJob
	logger                    *slog.Logger
}

// NewJobManager creates a job manager. Pass a nil sweep to run without it.
func NewJobManager(pendingOrderAssignmentJob *PendingOrderAssignmentJob, logger *slog.Logger) *JobManager {
	return &JobManager{
		pendingOrderAssignmentJob: pendingOrderAssignmentJob,
		logger:                    logger.With("component", "job_manager"),
	}
}

// StartAll starts all configured jobs.
func (jm *JobManager) StartAll() error {
	if jm.pendingOrderAssignmentJob == nil {
		jm.logger.InfoContext(context.Background(), "Pending order assignment job disabled")
		return nil
	}

	if err := jm.pendingOrderAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending order assignment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.pendingOrderAssignmentJob != nil {
		jm.pendingOrderAssignmentJob.Stop()
	}
}

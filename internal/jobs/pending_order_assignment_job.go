package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// NextPendingOrderAssigner runs the assignment phase for the oldest pending order.
// commands.AssignNextPendingOrderCommandHandler satisfies it.
type NextPendingOrderAssigner interface {
	Handle(ctx context.Context, cmd commands.AssignNextPendingOrderCommand) (commands.AssignmentResult, error)
}

// PendingOrderAssignmentJob periodically assigns orders that were left pending, for example
// because the roster was empty or the store was down when they came in.
type PendingOrderAssignmentJob struct {
	handler  NextPendingOrderAssigner
	schedule string
	batch    int
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPendingOrderAssignmentJob creates the sweep. The schedule uses the six-field cron format
// with seconds. Each run assigns at most batch orders.
func NewPendingOrderAssignmentJob(
	handler NextPendingOrderAssigner,
	schedule string,
	batch int,
	logger *slog.Logger,
) (*PendingOrderAssignmentJob, error) {
	if batch <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("batch", batch, 1, "unbounded")
	}

	return &PendingOrderAssignmentJob{
		handler:  handler,
		schedule: schedule,
		batch:    batch,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "pending_order_assignment_job"),
	}, nil
}

// Start registers the sweep on its schedule and starts the scheduler.
func (j *PendingOrderAssignmentJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if assigned := j.Sweep(ctx); assigned > 0 {
			j.logger.InfoContext(ctx, "pending orders assigned", "count", assigned)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending order assignment job started", "schedule", j.schedule, "batch", j.batch)
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *PendingOrderAssignmentJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Pending order assignment job stopped")
}

// Sweep assigns pending orders oldest first and returns how many were assigned. It makes at
// most batch attempts and stops early when the backlog is empty, when no worker is active, or
// on a failure. An order taken or deleted by someone else in the meantime is skipped.
func (j *PendingOrderAssignmentJob) Sweep(ctx context.Context) int {
	assigned := 0
	for attempt := 0; attempt < j.batch; attempt++ {
		result, err := j.handler.Handle(ctx, commands.NewAssignNextPendingOrderCommand())
		switch {
		case errors.Is(err, commands.ErrNoPendingOrder):
			return assigned
		case errors.Is(err, commands.ErrOrderIsNotPending), errors.Is(err, errs.ErrObjectNotFound):
			j.logger.DebugContext(ctx, "pending order changed before the sweep reached it", "error", err)
			continue
		case err != nil:
			j.logger.ErrorContext(ctx, "Pending order assignment failed", "error", err)
			return assigned
		case result.Outcome != commands.OutcomeAssigned:
			return assigned
		}

		for _, warning := range result.Warnings {
			j.logger.WarnContext(ctx, "assignment warning", "order_id", result.OrderID.String(), "warning", warning)
		}
		assigned++
	}
	return assigned
}

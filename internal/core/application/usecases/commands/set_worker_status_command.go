package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrSetWorkerStatusCommandIsNotConstructed = errors.New(
	"SetWorkerStatusCommand must be created via NewSetWorkerStatusCommand constructor",
)

// SetWorkerStatusCommand activates or deactivates a worker. Inactive workers keep their
// counters and are skipped by selection.
type SetWorkerStatusCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID
	status   worker.Status

	guard guard.ConstructorGuard
}

// NewSetWorkerStatusCommand accepts "active" or "inactive".
func NewSetWorkerStatusCommand(workerID kernel.UUID, status string) (SetWorkerStatusCommand, error) {
	parsed, statusErr := worker.ParseStatus(status)
	if err := errors.Join(workerID.Validate(), statusErr); err != nil {
		return SetWorkerStatusCommand{}, errs.NewValidationError(err)
	}

	return SetWorkerStatusCommand{
		workerID: workerID,
		status:   parsed,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c SetWorkerStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetWorkerStatusCommandIsNotConstructed)
}

func (c SetWorkerStatusCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c SetWorkerStatusCommand) Status() worker.Status {
	return c.status
}

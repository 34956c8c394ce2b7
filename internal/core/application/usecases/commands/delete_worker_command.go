package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrDeleteWorkerCommandIsNotConstructed = errors.New(
	"DeleteWorkerCommand must be created via NewDeleteWorkerCommand constructor",
)

// DeleteWorkerCommand removes a worker from the roster. Orders already assigned to them
// keep the worker id.
type DeleteWorkerCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteWorkerCommand(workerID kernel.UUID) (DeleteWorkerCommand, error) {
	if err := workerID.Validate(); err != nil {
		return DeleteWorkerCommand{}, err
	}

	return DeleteWorkerCommand{
		workerID: workerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteWorkerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteWorkerCommandIsNotConstructed)
}

func (c DeleteWorkerCommand) WorkerID() kernel.UUID {
	return c.workerID
}

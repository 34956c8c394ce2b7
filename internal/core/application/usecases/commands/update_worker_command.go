package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateWorkerCommandIsNotConstructed = errors.New(
	"UpdateWorkerCommand must be created via NewUpdateWorkerCommand constructor",
)

// UpdateWorkerCommand changes a worker's name and WhatsApp number.
// Load counters and status are not editable through it.
type UpdateWorkerCommand struct { //nolint:recvcheck //using for validation
	workerID       kernel.UUID
	name           string
	whatsappNumber kernel.PhoneNumber

	guard guard.ConstructorGuard
}

func NewUpdateWorkerCommand(workerID kernel.UUID, name, whatsappNumber string) (UpdateWorkerCommand, error) {
	cmd := UpdateWorkerCommand{
		workerID: workerID,
		guard:    guard.NewConstructorGuard(),
	}

	number, numberErr := kernel.NewPhoneNumber(whatsappNumber)
	if err := errors.Join(
		workerID.Validate(),
		setTrimmed(&cmd.name, "name", name),
		numberErr,
	); err != nil {
		return UpdateWorkerCommand{}, errs.NewValidationError(err)
	}
	cmd.whatsappNumber = number

	return cmd, nil
}

func (c UpdateWorkerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateWorkerCommandIsNotConstructed)
}

func (c UpdateWorkerCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c UpdateWorkerCommand) Name() string {
	return c.name
}

func (c UpdateWorkerCommand) WhatsAppNumber() kernel.PhoneNumber {
	return c.whatsappNumber
}

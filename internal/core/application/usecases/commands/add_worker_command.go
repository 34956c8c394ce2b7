package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrAddWorkerCommandIsNotConstructed = errors.New(
	"AddWorkerCommand must be created via NewAddWorkerCommand constructor",
)

// AddWorkerCommand registers a new worker. New workers start active with no orders.
//
// Example:
//
//	cmd, err := NewAddWorkerCommand("Omar", "+20 100 123 4567")
//	if err != nil {
//	    return err // *errs.ValidationError
//	}
//	err = handler.Handle(ctx, cmd)
//	fmt.Println(cmd.WorkerID())
type AddWorkerCommand struct { //nolint:recvcheck //using for validation
	workerID       kernel.UUID
	name           string
	whatsappNumber kernel.PhoneNumber

	guard guard.ConstructorGuard
}

func NewAddWorkerCommand(name, whatsappNumber string) (AddWorkerCommand, error) {
	cmd := AddWorkerCommand{
		workerID: kernel.NewUUID(),
		guard:    guard.NewConstructorGuard(),
	}

	number, numberErr := kernel.NewPhoneNumber(whatsappNumber)
	if err := errors.Join(setTrimmed(&cmd.name, "name", name), numberErr); err != nil {
		return AddWorkerCommand{}, errs.NewValidationError(err)
	}
	cmd.whatsappNumber = number

	return cmd, nil
}

func (c AddWorkerCommand) Validate() error {
	return c.guard.Validate(ErrAddWorkerCommandIsNotConstructed)
}

func (c AddWorkerCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c AddWorkerCommand) Name() string {
	return c.name
}

func (c AddWorkerCommand) WhatsAppNumber() kernel.PhoneNumber {
	return c.whatsappNumber
}

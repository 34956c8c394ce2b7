package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrRetryOrderAssignmentCommandIsNotConstructed = errors.New(
	"RetryOrderAssignmentCommand must be created via NewRetryOrderAssignmentCommand constructor",
)

// RetryOrderAssignmentCommand re-runs only the assignment phase of an order that was saved
// but left pending, for example after an AssignmentError.
type RetryOrderAssignmentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRetryOrderAssignmentCommand(orderID kernel.UUID) (RetryOrderAssignmentCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RetryOrderAssignmentCommand{}, err
	}

	return RetryOrderAssignmentCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RetryOrderAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrRetryOrderAssignmentCommandIsNotConstructed)
}

func (c RetryOrderAssignmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

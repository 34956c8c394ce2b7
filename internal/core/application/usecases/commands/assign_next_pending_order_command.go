package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrAssignNextPendingOrderCommandIsNotConstructed = errors.New(
	"AssignNextPendingOrderCommand must be created via NewAssignNextPendingOrderCommand constructor",
)

// AssignNextPendingOrderCommand asks to assign the oldest pending order, whichever it is.
// It is what the background sweep issues on every tick.
type AssignNextPendingOrderCommand struct {
	guard guard.ConstructorGuard
}

func NewAssignNextPendingOrderCommand() AssignNextPendingOrderCommand {
	return AssignNextPendingOrderCommand{guard: guard.NewConstructorGuard()}
}

func (c AssignNextPendingOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignNextPendingOrderCommandIsNotConstructed)
}

package commands

import (
	"context"
	"errors"

	"dispatch/internal/pkg/errs"
)

var ErrNoPendingOrder = errors.New("no pending order")

// AssignNextPendingOrderCommandHandler picks the oldest pending order and runs its
// assignment phase. The administrator was already alerted when the order came in, so an
// order that stays unassigned is not announced again.
//
// Example:
//
//	result, err := handler.Handle(ctx, NewAssignNextPendingOrderCommand())
//	switch {
//	case errors.Is(err, ErrNoPendingOrder):
//	    // backlog is empty
//	case err != nil:
//	    return err
//	case result.Outcome == OutcomeUnassigned:
//	    // still nobody active, stop sweeping for now
//	}
type AssignNextPendingOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	assigner   *OrderAssigner
}

func NewAssignNextPendingOrderCommandHandler(
	uowFactory OrderUoWFactory,
	assigner *OrderAssigner,
) AssignNextPendingOrderCommandHandler {
	return AssignNextPendingOrderCommandHandler{
		uowFactory: uowFactory,
		assigner:   assigner,
	}
}

func (h AssignNextPendingOrderCommandHandler) Handle(
	ctx context.Context,
	cmd AssignNextPendingOrderCommand,
) (AssignmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignmentResult{}, err
	}

	uow := h.uowFactory.Create()
	pending, err := uow.OrderRepository().GetOldestPending(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AssignmentResult{}, ErrNoPendingOrder
	}
	if err != nil {
		return AssignmentResult{}, err
	}

	return h.assigner.Assign(ctx, pending.ID(), false)
}

package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// SubmitOrderCommandHandler runs order intake end to end.
//
// The order is committed on its own first, so an order that cannot be assigned is never
// lost. The assignment phase then runs through the shared OrderAssigner.
//
// Example:
//
//	result, err := handler.Handle(ctx, cmd)
//	var assignmentErr *AssignmentError
//	switch {
//	case errors.As(err, &assignmentErr):
//	    // saved as pending; retry later with assignmentErr.OrderID
//	case err != nil:
//	    return err
//	case result.Outcome == OutcomeAssigned:
//	    fmt.Printf("order %s goes to %s\n", result.OrderID, result.WorkerName)
//	default:
//	    fmt.Printf("order %s is waiting for a worker\n", result.OrderID)
//	}
type SubmitOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	assigner   *OrderAssigner
	clock      kernel.Clock
}

func NewSubmitOrderCommandHandler(
	uowFactory OrderUoWFactory,
	assigner *OrderAssigner,
	clock kernel.Clock,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
		assigner:   assigner,
		clock:      clock,
	}
}

// Handle persists the order as pending, then assigns it. Validation and persistence
// failures return before anything is stored; a failure after that is an *AssignmentError.
func (h SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (AssignmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignmentResult{}, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerName(),
		cmd.Address(),
		cmd.Phone(),
		cmd.OrderDetails(),
		h.clock.Now(),
	)
	if err != nil {
		return AssignmentResult{}, err
	}

	if err = h.persist(ctx, newOrder); err != nil {
		return AssignmentResult{}, err
	}

	return h.assigner.AssignSubmitted(ctx, newOrder.ID())
}

func (h SubmitOrderCommandHandler) persist(ctx context.Context, newOrder *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

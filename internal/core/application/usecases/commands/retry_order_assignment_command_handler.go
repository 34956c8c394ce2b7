package commands

import "context"

// RetryOrderAssignmentCommandHandler assigns an already saved pending order.
// It returns ErrOrderIsNotPending once the order has a worker, so repeating the call
// never assigns twice.
type RetryOrderAssignmentCommandHandler struct {
	assigner *OrderAssigner
}

func NewRetryOrderAssignmentCommandHandler(assigner *OrderAssigner) RetryOrderAssignmentCommandHandler {
	return RetryOrderAssignmentCommandHandler{assigner: assigner}
}

func (h RetryOrderAssignmentCommandHandler) Handle(
	ctx context.Context,
	cmd RetryOrderAssignmentCommand,
) (AssignmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignmentResult{}, err
	}

	return h.assigner.Assign(ctx, cmd.OrderID(), true)
}

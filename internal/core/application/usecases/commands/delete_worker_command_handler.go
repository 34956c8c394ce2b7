package commands

import "context"

type DeleteWorkerCommandHandler struct {
	uowFactory WorkerUoWFactory
}

func NewDeleteWorkerCommandHandler(uowFactory WorkerUoWFactory) DeleteWorkerCommandHandler {
	return DeleteWorkerCommandHandler{uowFactory: uowFactory}
}

func (h DeleteWorkerCommandHandler) Handle(ctx context.Context, cmd DeleteWorkerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.WorkerRepository().Delete(ctx, cmd.WorkerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

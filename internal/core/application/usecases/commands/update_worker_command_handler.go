package commands

import "context"

// UpdateWorkerCommandHandler edits a worker under its version check. Racing with an
// assignment yields a ConcurrencyConflictError instead of losing the assignment's count.
type UpdateWorkerCommandHandler struct {
	uowFactory WorkerUoWFactory
}

func NewUpdateWorkerCommandHandler(uowFactory WorkerUoWFactory) UpdateWorkerCommandHandler {
	return UpdateWorkerCommandHandler{uowFactory: uowFactory}
}

func (h UpdateWorkerCommandHandler) Handle(ctx context.Context, cmd UpdateWorkerCommand) error {
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

	repo := uow.WorkerRepository()

	w, err := repo.Get(ctx, cmd.WorkerID())
	if err != nil {
		return err
	}

	if err = w.Edit(cmd.Name(), cmd.WhatsAppNumber()); err != nil {
		return err
	}

	if err = repo.Update(ctx, w); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import "context"

type SetWorkerStatusCommandHandler struct {
	uowFactory WorkerUoWFactory
}

func NewSetWorkerStatusCommandHandler(uowFactory WorkerUoWFactory) SetWorkerStatusCommandHandler {
	return SetWorkerStatusCommandHandler{uowFactory: uowFactory}
}

func (h SetWorkerStatusCommandHandler) Handle(ctx context.Context, cmd SetWorkerStatusCommand) error {
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

	if w.Status() == cmd.Status() {
		return nil
	}

	if err = w.SetStatus(cmd.Status()); err != nil {
		return err
	}

	if err = repo.Update(ctx, w); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

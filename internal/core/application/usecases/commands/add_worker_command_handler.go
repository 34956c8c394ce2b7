package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"
)

type AddWorkerCommandHandler struct {
	uowFactory WorkerUoWFactory
	clock      kernel.Clock
}

func NewAddWorkerCommandHandler(uowFactory WorkerUoWFactory, clock kernel.Clock) AddWorkerCommandHandler {
	return AddWorkerCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h AddWorkerCommandHandler) Handle(ctx context.Context, cmd AddWorkerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newWorker, err := worker.NewWorker(cmd.WorkerID(), cmd.Name(), cmd.WhatsAppNumber(), h.clock.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.WorkerRepository().Add(ctx, newWorker); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

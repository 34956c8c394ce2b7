package commands

import "context"

type SetOfferStatusCommandHandler struct {
	uowFactory OfferUoWFactory
}

func NewSetOfferStatusCommandHandler(uowFactory OfferUoWFactory) SetOfferStatusCommandHandler {
	return SetOfferStatusCommandHandler{uowFactory: uowFactory}
}

func (h SetOfferStatusCommandHandler) Handle(ctx context.Context, cmd SetOfferStatusCommand) error {
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

	repo := uow.OfferRepository()

	o, err := repo.Get(ctx, cmd.OfferID())
	if err != nil {
		return err
	}

	if cmd.IsActive() {
		o.Activate()
	} else {
		o.Deactivate()
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import "context"

type DeleteOfferCommandHandler struct {
	uowFactory OfferUoWFactory
}

func NewDeleteOfferCommandHandler(uowFactory OfferUoWFactory) DeleteOfferCommandHandler {
	return DeleteOfferCommandHandler{uowFactory: uowFactory}
}

func (h DeleteOfferCommandHandler) Handle(ctx context.Context, cmd DeleteOfferCommand) error {
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

	if err := uow.OfferRepository().Delete(ctx, cmd.OfferID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

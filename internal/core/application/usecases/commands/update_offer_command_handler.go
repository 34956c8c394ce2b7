package commands

import (
	"context"

	"dispatch/internal/pkg/errs"
)

type UpdateOfferCommandHandler struct {
	uowFactory OfferUoWFactory
}

func NewUpdateOfferCommandHandler(uowFactory OfferUoWFactory) UpdateOfferCommandHandler {
	return UpdateOfferCommandHandler{uowFactory: uowFactory}
}

func (h UpdateOfferCommandHandler) Handle(ctx context.Context, cmd UpdateOfferCommand) error {
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

	if err = o.Revise(cmd.Details()); err != nil {
		return errs.NewValidationError(err)
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

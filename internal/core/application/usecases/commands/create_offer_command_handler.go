package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/offer"
	"dispatch/internal/pkg/errs"
)

type CreateOfferCommandHandler struct {
	uowFactory OfferUoWFactory
	clock      kernel.Clock
}

func NewCreateOfferCommandHandler(uowFactory OfferUoWFactory, clock kernel.Clock) CreateOfferCommandHandler {
	return CreateOfferCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h CreateOfferCommandHandler) Handle(ctx context.Context, cmd CreateOfferCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newOffer, err := offer.NewOffer(cmd.OfferID(), cmd.Details(), h.clock.Now())
	if err != nil {
		return errs.NewValidationError(err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OfferRepository().Add(ctx, newOffer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

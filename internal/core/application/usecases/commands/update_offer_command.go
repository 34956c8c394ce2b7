package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/offer"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateOfferCommandIsNotConstructed = errors.New(
	"UpdateOfferCommand must be created via NewUpdateOfferCommand constructor",
)

// UpdateOfferCommand replaces every editable field of an offer.
type UpdateOfferCommand struct { //nolint:recvcheck //using for validation
	offerID kernel.UUID
	details offer.Details

	guard guard.ConstructorGuard
}

func NewUpdateOfferCommand(offerID kernel.UUID, details offer.Details) (UpdateOfferCommand, error) {
	if err := offerID.Validate(); err != nil {
		return UpdateOfferCommand{}, err
	}

	return UpdateOfferCommand{
		offerID: offerID,
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOfferCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOfferCommandIsNotConstructed)
}

func (c UpdateOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

func (c UpdateOfferCommand) Details() offer.Details {
	return c.details
}

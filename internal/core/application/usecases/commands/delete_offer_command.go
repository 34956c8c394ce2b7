package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrDeleteOfferCommandIsNotConstructed = errors.New(
	"DeleteOfferCommand must be created via NewDeleteOfferCommand constructor",
)

type DeleteOfferCommand struct { //nolint:recvcheck //using for validation
	offerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteOfferCommand(offerID kernel.UUID) (DeleteOfferCommand, error) {
	if err := offerID.Validate(); err != nil {
		return DeleteOfferCommand{}, err
	}

	return DeleteOfferCommand{
		offerID: offerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteOfferCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOfferCommandIsNotConstructed)
}

func (c DeleteOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

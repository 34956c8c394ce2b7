package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/offer"
	"dispatch/internal/pkg/guard"
)

var ErrCreateOfferCommandIsNotConstructed = errors.New(
	"CreateOfferCommand must be created via NewCreateOfferCommand constructor",
)

// CreateOfferCommand publishes a new promotion. Field rules live on the offer aggregate;
// the handler reports them as a ValidationError.
type CreateOfferCommand struct { //nolint:recvcheck //using for validation
	offerID kernel.UUID
	details offer.Details

	guard guard.ConstructorGuard
}

func NewCreateOfferCommand(details offer.Details) CreateOfferCommand {
	return CreateOfferCommand{
		offerID: kernel.NewUUID(),
		details: details,
		guard:   guard.NewConstructorGuard(),
	}
}

func (c CreateOfferCommand) Validate() error {
	return c.guard.Validate(ErrCreateOfferCommandIsNotConstructed)
}

func (c CreateOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

func (c CreateOfferCommand) Details() offer.Details {
	return c.details
}

package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrSetOfferStatusCommandIsNotConstructed = errors.New(
	"SetOfferStatusCommand must be created via NewSetOfferStatusCommand constructor",
)

// SetOfferStatusCommand shows or hides an offer without deleting it.
type SetOfferStatusCommand struct { //nolint:recvcheck //using for validation
	offerID  kernel.UUID
	isActive bool

	guard guard.ConstructorGuard
}

func NewSetOfferStatusCommand(offerID kernel.UUID, isActive bool) (SetOfferStatusCommand, error) {
	if err := offerID.Validate(); err != nil {
		return SetOfferStatusCommand{}, err
	}

	return SetOfferStatusCommand{
		offerID:  offerID,
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c SetOfferStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetOfferStatusCommandIsNotConstructed)
}

func (c SetOfferStatusCommand) OfferID() kernel.UUID {
	return c.offerID
}

func (c SetOfferStatusCommand) IsActive() bool {
	return c.isActive
}

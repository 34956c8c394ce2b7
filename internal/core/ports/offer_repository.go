package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/offer"
)

// OfferRepository persists offer aggregates.
type OfferRepository interface {
	Add(ctx context.Context, aggregate *offer.Offer) error
	Update(ctx context.Context, aggregate *offer.Offer) error
	Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error)
	Delete(ctx context.Context, id kernel.UUID) error
}

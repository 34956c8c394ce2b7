package memory

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/offer"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

type OfferRepository struct {
	uow *UnitOfWork
}

func (r *OfferRepository) Add(ctx context.Context, aggregate *offer.Offer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.write(ctx, func(tx *txState) error {
		return offersTable.stageInsert(r.uow.store.offers, tx.offers, aggregate.ID().Bytes(), offerRowOf(aggregate), 0)
	})
}

func (r *OfferRepository) Update(ctx context.Context, aggregate *offer.Offer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.write(ctx, func(tx *txState) error {
		return offersTable.stageUpdate(r.uow.store.offers, tx.offers, aggregate.ID().Bytes(), offerRowOf(aggregate), 0)
	})
}

func (r *OfferRepository) Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	var (
		found entry[offerRow]
		ok    bool
	)
	if err := r.uow.read(ctx, func(tx *txState) {
		found, ok = offersTable.visible(r.uow.store.offers, tx.offers, id.Bytes())
	}); err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NewObjectNotFoundError("offerId", id)
	}
	return restoreOffer(id.Bytes(), found)
}

func (r *OfferRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return r.uow.write(ctx, func(tx *txState) error {
		return offersTable.stageDelete(r.uow.store.offers, tx.offers, id.Bytes())
	})
}

func offerRowOf(o *offer.Offer) offerRow {
	return offerRow{
		details:   o.Details(),
		isActive:  o.IsActive(),
		createdAt: o.CreatedAt(),
	}
}

func restoreOffer(id uuid.UUID, e entry[offerRow]) (*offer.Offer, error) {
	offerID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	return offer.RestoreOffer(offerID, e.row.details, e.row.isActive, e.row.createdAt)
}

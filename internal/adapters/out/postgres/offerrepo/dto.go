// Package offerrepo maps offer aggregates to the offers table.
package offerrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/offer"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OfferDTO is one row of the offers table. Prices are NUMERIC and scan through
// decimal.NullDecimal so no precision is lost.
type OfferDTO struct {
	ID                 uuid.UUID           `gorm:"column:id;type:uuid;primaryKey"`
	Title              string              `gorm:"column:title"`
	Description        string              `gorm:"column:description"`
	DiscountPercentage *int                `gorm:"column:discount_percentage"`
	OriginalPrice      decimal.NullDecimal `gorm:"column:original_price;type:numeric"`
	OfferPrice         decimal.NullDecimal `gorm:"column:offer_price;type:numeric"`
	ExpiresAt          *time.Time          `gorm:"column:expires_at"`
	ImageURL           string              `gorm:"column:image_url"`
	IsActive           bool                `gorm:"column:is_active"`
	CreatedAt          time.Time           `gorm:"column:created_at"`
}

func (OfferDTO) TableName() string {
	return "offers"
}

func fromDomain(o *offer.Offer) OfferDTO {
	d := o.Details()
	return OfferDTO{
		ID:                 o.ID().Bytes(),
		Title:              d.Title,
		Description:        d.Description,
		DiscountPercentage: d.DiscountPercentage,
		OriginalPrice:      nullDecimal(d.OriginalPrice),
		OfferPrice:         nullDecimal(d.OfferPrice),
		ExpiresAt:          d.ExpiresAt,
		ImageURL:           d.ImageURL,
		IsActive:           o.IsActive(),
		CreatedAt:          o.CreatedAt(),
	}
}

func toDomain(dto OfferDTO) (*offer.Offer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var expiresAt *time.Time
	if dto.ExpiresAt != nil {
		t := dto.ExpiresAt.UTC()
		expiresAt = &t
	}

	details := offer.Details{
		Title:              dto.Title,
		Description:        dto.Description,
		DiscountPercentage: dto.DiscountPercentage,
		OriginalPrice:      decimalPtr(dto.OriginalPrice),
		OfferPrice:         decimalPtr(dto.OfferPrice),
		ExpiresAt:          expiresAt,
		ImageURL:           dto.ImageURL,
	}

	return offer.RestoreOffer(id, details, dto.IsActive, dto.CreatedAt.UTC())
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func decimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

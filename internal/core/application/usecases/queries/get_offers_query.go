package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOffersQueryIsNotConstructed = errors.New(
		"GetOffersQuery must be created via NewGetOffersQuery constructor",
	)
)

// GetOffersQuery lists offers newest first. With visibleOnly set it keeps only what customers
// may see: active offers that have not expired.
type GetOffersQuery struct {
	visibleOnly bool
	guard       guard.ConstructorGuard
}

func NewGetOffersQuery(visibleOnly bool) GetOffersQuery {
	return GetOffersQuery{
		visibleOnly: visibleOnly,
		guard:       guard.NewConstructorGuard(),
	}
}

func (q GetOffersQuery) Validate() error {
	return q.guard.Validate(ErrGetOffersQueryIsNotConstructed)
}

func (q GetOffersQuery) VisibleOnly() bool {
	return q.visibleOnly
}

type GetOffersQueryResponse struct {
	ID                 kernel.UUID
	Title              string
	Description        string
	DiscountPercentage *int
	OriginalPrice      *decimal.Decimal
	OfferPrice         *decimal.Decimal
	ExpiresAt          *time.Time
	ImageURL           string
	IsActive           bool
	CreatedAt          time.Time
}

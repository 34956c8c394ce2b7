package queries

import (
	"context"
	"strings"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOffersQueryHandler reads offers. Expiry is judged against the handler clock rather
// than the database clock so one instant governs the whole request.
type GetOffersQueryHandler struct {
	db    *gorm.DB
	clock kernel.Clock
}

func NewGetOffersQueryHandler(db *gorm.DB, clock kernel.Clock) GetOffersQueryHandler {
	return GetOffersQueryHandler{db: db, clock: clock}
}

func (h GetOffersQueryHandler) Handle(
	ctx context.Context,
	query GetOffersQuery,
) ([]GetOffersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		sql  strings.Builder
		args []any
	)
	sql.WriteString(`
		SELECT
			id,
			title,
			description,
			discount_percentage,
			original_price,
			offer_price,
			expires_at,
			image_url,
			is_active,
			created_at
		FROM offers`)
	if query.VisibleOnly() {
		sql.WriteString(`
		WHERE is_active AND (expires_at IS NULL OR expires_at > ?)`)
		args = append(args, h.clock.Now())
	}
	sql.WriteString(`
		ORDER BY created_at DESC, id DESC`)

	rows, err := h.db.WithContext(ctx).Raw(sql.String(), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := make([]GetOffersQueryResponse, 0)
	for rows.Next() {
		var (
			resp          GetOffersQueryResponse
			id            uuid.UUID
			originalPrice decimal.NullDecimal
			offerPrice    decimal.NullDecimal
		)

		err = rows.Scan(
			&id,
			&resp.Title,
			&resp.Description,
			&resp.DiscountPercentage,
			&originalPrice,
			&offerPrice,
			&resp.ExpiresAt,
			&resp.ImageURL,
			&resp.IsActive,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if originalPrice.Valid {
			resp.OriginalPrice = &originalPrice.Decimal
		}
		if offerPrice.Valid {
			resp.OfferPrice = &offerPrice.Decimal
		}
		if resp.ExpiresAt != nil {
			t := resp.ExpiresAt.UTC()
			resp.ExpiresAt = &t
		}
		resp.CreatedAt = resp.CreatedAt.UTC()

		offers = append(offers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return offers, nil
}

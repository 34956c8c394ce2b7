package offer_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/offer"
	"dispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func TestNewOffer(t *testing.T) {
	t.Run("creates an active offer with trimmed text", func(t *testing.T) {
		details := offer.Details{
			Title:              "  Family box ",
			Description:        "Four meals and drinks",
			DiscountPercentage: ptr(20),
			OriginalPrice:      ptr(decimal.RequireFromString("100.00")),
			OfferPrice:         ptr(decimal.RequireFromString("80.00")),
			ImageURL:           "https://cdn.example.com/box.png",
		}

		o, err := offer.NewOffer(kernel.NewUUID(), details, now)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.IsActive())
		assert.Equal(t, "Family box", o.Details().Title)
		assert.Equal(t, 20, *o.Details().DiscountPercentage)
		assert.True(t, o.Details().OfferPrice.Equal(decimal.NewFromInt(80)))
		assert.Equal(t, now, o.CreatedAt())
	})

	t.Run("title is required", func(t *testing.T) {
		_, err := offer.NewOffer(kernel.NewUUID(), offer.Details{Title: "  "}, now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("discount must stay within 0..100", func(t *testing.T) {
		for _, discount := range []int{-1, 101} {
			_, err := offer.NewOffer(kernel.NewUUID(), offer.Details{Title: "x", DiscountPercentage: ptr(discount)}, now)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}

		for _, discount := range []int{0, 100} {
			_, err := offer.NewOffer(kernel.NewUUID(), offer.Details{Title: "x", DiscountPercentage: ptr(discount)}, now)
			require.NoError(t, err)
		}
	})

	t.Run("prices must be sane", func(t *testing.T) {
		_, err := offer.NewOffer(kernel.NewUUID(), offer.Details{
			Title:      "x",
			OfferPrice: ptr(decimal.NewFromInt(-5)),
		}, now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = offer.NewOffer(kernel.NewUUID(), offer.Details{
			Title:         "x",
			OriginalPrice: ptr(decimal.NewFromInt(50)),
			OfferPrice:    ptr(decimal.NewFromInt(60)),
		}, now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "offerPrice")
	})

	t.Run("image url must be absolute http", func(t *testing.T) {
		for _, raw := range []string{"ftp://cdn.example.com/a.png", "/static/a.png", "https://"} {
			_, err := offer.NewOffer(kernel.NewUUID(), offer.Details{Title: "x", ImageURL: raw}, now)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, raw)
		}
	})
}

func TestOffer_IsVisibleAt(t *testing.T) {
	tomorrow := now.Add(24 * time.Hour)
	yesterday := now.Add(-24 * time.Hour)

	open, err := offer.NewOffer(kernel.NewUUID(), offer.Details{Title: "open"}, now)
	require.NoError(t, err)
	running, err := offer.NewOffer(kernel.NewUUID(), offer.Details{Title: "running", ExpiresAt: &tomorrow}, now)
	require.NoError(t, err)
	expired, err := offer.NewOffer(kernel.NewUUID(), offer.Details{Title: "expired", ExpiresAt: &yesterday}, now)
	require.NoError(t, err)

	assert.True(t, open.IsVisibleAt(now))
	assert.True(t, running.IsVisibleAt(now))
	assert.False(t, expired.IsVisibleAt(now))

	open.Deactivate()
	assert.False(t, open.IsVisibleAt(now))
	open.Activate()
	assert.True(t, open.IsVisibleAt(now))
}

func TestOffer_Revise(t *testing.T) {
	o, err := offer.NewOffer(kernel.NewUUID(), offer.Details{Title: "Lunch"}, now)
	require.NoError(t, err)

	require.NoError(t, o.Revise(offer.Details{Title: "Lunch deal", DiscountPercentage: ptr(15)}))
	assert.Equal(t, "Lunch deal", o.Details().Title)

	require.Error(t, o.Revise(offer.Details{Title: ""}))
	assert.Equal(t, "Lunch deal", o.Details().Title, "failed revision keeps the previous content")
}

func TestOffer_DetailsAreCopied(t *testing.T) {
	discount := 10
	o, err := offer.NewOffer(kernel.NewUUID(), offer.Details{Title: "x", DiscountPercentage: &discount}, now)
	require.NoError(t, err)

	discount = 99
	got := o.Details()
	*got.DiscountPercentage = 50

	assert.Equal(t, 10, *o.Details().DiscountPercentage)
}

func TestRestoreOffer(t *testing.T) {
	o, err := offer.RestoreOffer(kernel.NewUUID(), offer.Details{Title: "x"}, false, now)
	require.NoError(t, err)
	assert.False(t, o.IsActive())

	var zero offer.Offer
	require.ErrorIs(t, zero.Validate(), offer.ErrOfferIsNotConstructed)
}

package offer

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	minDiscount = 0
	maxDiscount = 100
)

var ErrOfferIsNotConstructed = errors.New("Offer must be created via NewOffer or RestoreOffer constructor")

// Details is the administrator-editable content of an offer. Nil pointers mean "not set".
type Details struct {
	Title              string
	Description        string
	DiscountPercentage *int
	OriginalPrice      *decimal.Decimal
	OfferPrice         *decimal.Decimal
	ExpiresAt          *time.Time
	ImageURL           string
}

// Offer is the aggregate root for a promotion.
type Offer struct {
	id        kernel.UUID
	details   Details
	isActive  bool
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewOffer creates an active offer.
//
// Example:
//
//	price := decimal.RequireFromString("79.99")
//	o, err := offer.NewOffer(kernel.NewUUID(), offer.Details{Title: "Family box", OfferPrice: &price}, clock.Now())
func NewOffer(id kernel.UUID, details Details, createdAt time.Time) (*Offer, error) {
	o := &Offer{
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setDetails(details),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOffer rebuilds an offer read from storage.
func RestoreOffer(id kernel.UUID, details Details, isActive bool, createdAt time.Time) (*Offer, error) {
	o, err := NewOffer(id, details, createdAt)
	if err != nil {
		return nil, err
	}
	o.isActive = isActive
	return o, nil
}

func (o *Offer) Validate() error {
	if o == nil {
		return ErrOfferIsNotConstructed
	}
	return o.guard.Validate(ErrOfferIsNotConstructed)
}

func (o *Offer) ID() kernel.UUID      { return o.id }
func (o *Offer) IsActive() bool       { return o.isActive }
func (o *Offer) CreatedAt() time.Time { return o.createdAt }

// Details returns a copy of the offer content.
func (o *Offer) Details() Details {
	return copyDetails(o.details)
}

// Revise replaces the content. On error the offer is left unchanged.
func (o *Offer) Revise(details Details) error {
	return o.setDetails(details)
}

func (o *Offer) Activate() {
	o.isActive = true
}

func (o *Offer) Deactivate() {
	o.isActive = false
}

// IsVisibleAt tells whether customers see the offer at the given instant.
func (o *Offer) IsVisibleAt(now time.Time) bool {
	if !o.isActive {
		return false
	}
	return o.details.ExpiresAt == nil || o.details.ExpiresAt.After(now)
}

func (o *Offer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Offer) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Offer) setDetails(details Details) error {
	details = copyDetails(details)
	details.Title = strings.TrimSpace(details.Title)
	details.Description = strings.TrimSpace(details.Description)
	details.ImageURL = strings.TrimSpace(details.ImageURL)

	if err := validateDetails(details); err != nil {
		return err
	}

	o.details = details
	return nil
}

func validateDetails(d Details) error {
	var problems []error

	if d.Title == "" {
		problems = append(problems, errs.NewValueIsRequiredError("title"))
	}

	if d.DiscountPercentage != nil && (*d.DiscountPercentage < minDiscount || *d.DiscountPercentage > maxDiscount) {
		problems = append(problems,
			errs.NewValueIsOutOfRangeError("discountPercentage", *d.DiscountPercentage, minDiscount, maxDiscount))
	}

	if d.OriginalPrice != nil && d.OriginalPrice.IsNegative() {
		problems = append(problems,
			errs.NewValueIsInvalidErrorWithCause("originalPrice", errors.New("must not be negative")))
	}

	if d.OfferPrice != nil && d.OfferPrice.IsNegative() {
		problems = append(problems,
			errs.NewValueIsInvalidErrorWithCause("offerPrice", errors.New("must not be negative")))
	}

	if d.OriginalPrice != nil && d.OfferPrice != nil && d.OfferPrice.GreaterThan(*d.OriginalPrice) {
		problems = append(problems,
			errs.NewValueIsInvalidErrorWithCause("offerPrice", errors.New("must not exceed the original price")))
	}

	if d.ImageURL != "" {
		if err := validateImageURL(d.ImageURL); err != nil {
			problems = append(problems, err)
		}
	}

	return errors.Join(problems...)
}

func validateImageURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("imageUrl", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errs.NewValueIsInvalidErrorWithCause("imageUrl", errors.New("must be an absolute http or https URL"))
	}
	return nil
}

func copyDetails(d Details) Details {
	out := d
	if d.DiscountPercentage != nil {
		v := *d.DiscountPercentage
		out.DiscountPercentage = &v
	}
	if d.OriginalPrice != nil {
		v := *d.OriginalPrice
		out.OriginalPrice = &v
	}
	if d.OfferPrice != nil {
		v := *d.OfferPrice
		out.OfferPrice = &v
	}
	if d.ExpiresAt != nil {
		v := *d.ExpiresAt
		out.ExpiresAt = &v
	}
	return out
}

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause prints the id", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "7f1c")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "7f1c", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 7f1c", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("with cause prints param and cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("workerId", "w-1", cause)

		assert.Equal(t,
			"object not found: param is: workerId, ID is: w-1 (cause: connection reset)",
			err.Error())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	err := errs.NewValueIsInvalidError("imageUrl")
	assert.Equal(t, "value is invalid: imageUrl", err.Error())
	assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())

	withCause := errs.NewValueIsInvalidErrorWithCause("offerPrice", errors.New("greater than original price"))
	assert.Equal(t, "value is invalid: offerPrice (cause: greater than original price)", withCause.Error())
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("formats bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("discountPercentage", 150, 0, 100)

		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t,
			"value is invalid: 150 is discountPercentage, min value is 0, max value is 100",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("strips newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("title", "big\nsale", 0, 10, errors.New("too long"))
		assert.Contains(t, err.Error(), "big sale")
		assert.NotContains(t, err.Error(), "\n")
		assert.Contains(t, err.Error(), "(cause: too long)")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("customerName")
	assert.Equal(t, "value is required: customerName", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	withCause := errs.NewValueIsRequiredErrorWithCause("phone", errors.New("blank"))
	assert.Equal(t, "value is required: phone (cause: blank)", withCause.Error())
}

func TestConcurrencyConflictError(t *testing.T) {
	err := errs.NewConcurrencyConflictError("worker", "w-1", 3)

	assert.Equal(t, "concurrency conflict: worker w-1 changed since version 3", err.Error())
	require.ErrorIs(t, fmt.Errorf("update: %w", err), errs.ErrConcurrencyConflict)
}

func TestValidationError(t *testing.T) {
	t.Run("collects every field from a joined error", func(t *testing.T) {
		err := errs.NewValidationError(errors.Join(
			errs.NewValueIsRequiredError("customerName"),
			nil,
			fmt.Errorf("wrapped: %w", errs.NewValueIsRequiredError("phone")),
			errs.NewValueIsOutOfRangeError("discountPercentage", -1, 0, 100),
		))

		assert.Equal(t, []string{"customerName", "phone", "discountPercentage"}, err.Fields)
		assert.Equal(t, "validation failed: customerName, phone, discountPercentage", err.Error())
	})

	t.Run("matches its own sentinel and the wrapped ones", func(t *testing.T) {
		var err error = errs.NewValidationError(errs.NewValueIsRequiredError("address"))

		require.ErrorIs(t, err, errs.ErrValidation)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		var validationErr *errs.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{"address"}, validationErr.Fields)
	})

	t.Run("falls back to the cause when no field is known", func(t *testing.T) {
		err := errs.NewValidationError(errors.New("body is not json"))
		assert.Empty(t, err.Fields)
		assert.Equal(t, "validation failed (cause: body is not json)", err.Error())
	})
}

func TestSentinelMessages(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "validation failed", errs.ErrValidation.Error())
	assert.Equal(t, "concurrency conflict", errs.ErrConcurrencyConflict.Error())
}

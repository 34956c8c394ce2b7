package guard_test

import (
	"errors"
	"testing"

	"dispatch/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("command must be created via its constructor")

	t.Run("constructed_guard_passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, errNotConstructed, g.Validate(errNotConstructed))
	})

	t.Run("zero_value_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, guard.ErrDefaultConstructorGuard, g.Validate(nil))
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type ticket struct {
		code  string
		guard guard.ConstructorGuard
	}
	errTicketNotConstructed := errors.New("ticket must be created via newTicket")

	newTicket := func(code string) (ticket, error) {
		if code == "" {
			return ticket{}, errors.New("code is required")
		}
		return ticket{code: code, guard: guard.NewConstructorGuard()}, nil
	}

	built, err := newTicket("A-1")
	require.NoError(t, err)
	require.NoError(t, built.guard.Validate(errTicketNotConstructed))

	var declared ticket
	require.ErrorIs(t, declared.guard.Validate(errTicketNotConstructed), errTicketNotConstructed)

	_, err = newTicket("")
	require.Error(t, err)
}

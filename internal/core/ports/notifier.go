package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// Notifier delivers a text message to a phone number.
// A returned error means the channel refused the message synchronously; callers treat it as
// non-fatal.
type Notifier interface {
	Notify(ctx context.Context, destination kernel.PhoneNumber, message string) error
}

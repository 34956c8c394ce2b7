// Package ports declares the contracts the dispatch core needs from the outside world:
// persistence through repositories bound to a unit of work, and outbound notifications.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates.
type OrderRepository interface {
	// Add inserts a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes status and worker assignment if the stored version still equals
	// aggregate.Version(), then bumps the stored version. A mismatch yields a
	// ConcurrencyConflictError, a missing row an ObjectNotFoundError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order by id. Returns an ObjectNotFoundError if it does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order. The assigned worker's counters are left untouched.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetOldestPending returns the pending order created first.
	// Returns an ObjectNotFoundError if no order is pending.
	GetOldestPending(ctx context.Context) (*order.Order, error)
}

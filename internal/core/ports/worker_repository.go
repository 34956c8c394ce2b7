package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"
)

// WorkerRepository persists worker aggregates under optimistic locking.
type WorkerRepository interface {
	Add(ctx context.Context, aggregate *worker.Worker) error

	// Update writes the worker if its stored version still equals aggregate.Version(),
	// then bumps the stored version. A mismatch yields a ConcurrencyConflictError,
	// a missing row an ObjectNotFoundError.
	Update(ctx context.Context, aggregate *worker.Worker) error

	Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error)

	Delete(ctx context.Context, id kernel.UUID) error

	// GetRoster returns every worker ordered by creation time, then id.
	// The order is the selector's final tie-break, so it must be stable.
	GetRoster(ctx context.Context) ([]*worker.Worker, error)
}

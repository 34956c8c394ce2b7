package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per business operation.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a transaction boundary over all repositories.
// Repositories obtained after Begin run inside the transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	WorkerRepository() WorkerRepository
	OfferRepository() OfferRepository
}

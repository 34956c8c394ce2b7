// Package commands contains the write side of the dispatch service.
// Every command is built by a validating constructor and executed by a handler that owns
// the transaction boundary through a unit of work.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work views narrowed to what each handler touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	WorkerRepoFactory interface {
		WorkerRepository() ports.WorkerRepository
	}

	OfferRepoFactory interface {
		OfferRepository() ports.OfferRepository
	}

	// OrderUoW is used by commands that touch orders only.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// WorkerUoW is used by worker administration.
	WorkerUoW interface {
		TxManager
		WorkerRepoFactory
	}

	WorkerUoWFactory interface {
		Create() WorkerUoW
	}

	// OfferUoW is used by offer administration.
	OfferUoW interface {
		TxManager
		OfferRepoFactory
	}

	OfferUoWFactory interface {
		Create() OfferUoW
	}

	// UoW spans orders and workers. The assignment phase reads the roster and writes
	// both the order and the chosen worker inside one of these.
	//
	// Example:
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer func() { _ = uow.Rollback(ctx) }()
	//
	//   roster, err := uow.WorkerRepository().GetRoster(ctx)
	//   // ... select, update order and worker
	//
	//   return uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		WorkerRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)

package memory

import (
	"context"
	"errors"

	"dispatch/internal/core/ports"
)

var (
	ErrTransactionIsActive = errors.New("transaction is already active")
	ErrNoActiveTransaction = errors.New("no active transaction")
)

type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return NewUnitOfWork(f.store)
}

// UnitOfWork stages writes between Begin and Commit. Outside a transaction every write is
// committed immediately.
type UnitOfWork struct {
	store *Store
	tx    *txState
}

func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{store: store}
}

func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.tx != nil {
		return nil
	}
	u.tx = newTxState()
	return nil
}

func (u *UnitOfWork) Commit(ctx context.Context) error {
	if u.tx == nil {
		return ErrNoActiveTransaction
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	tx := u.tx
	u.tx = nil
	return u.store.commitLocked(tx)
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if u.tx == nil {
		return ErrNoActiveTransaction
	}
	u.tx = nil
	return nil
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: u}
}

func (u *UnitOfWork) WorkerRepository() ports.WorkerRepository {
	return &WorkerRepository{uow: u}
}

func (u *UnitOfWork) OfferRepository() ports.OfferRepository {
	return &OfferRepository{uow: u}
}

// read runs fn under the store lock against the transaction's view.
func (u *UnitOfWork) read(ctx context.Context, fn func(tx *txState)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	tx := u.tx
	if tx == nil {
		tx = newTxState()
	}
	fn(tx)
	return nil
}

// write stages fn's changes in the active transaction, or commits them at once.
func (u *UnitOfWork) write(ctx context.Context, fn func(tx *txState) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	if u.tx != nil {
		return fn(u.tx)
	}

	tx := newTxState()
	if err := fn(tx); err != nil {
		return err
	}
	return u.store.commitLocked(tx)
}

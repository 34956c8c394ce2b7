// Package memory keeps orders, workers and offers in process memory behind the same unit of
// work contract as the Postgres adapter. It backs the command, HTTP and wiring tests; the
// service itself always runs on Postgres, since the query handlers read SQL.
//
// Writes made inside a transaction are staged and become visible to other units of work only
// on Commit. Order and worker updates carry the optimistic version check the database
// enforces: the check runs when the update is staged and again when it is committed, so two
// units of work racing on the same worker see exactly one winner.
//
// Example:
//
//	store := memory.NewStore()
//	uow := memory.NewUnitOfWorkFactory(store).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.WorkerRepository().Add(ctx, w); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package memory

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/offer"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrDuplicateKey = errors.New("duplicate key")

// Store is the committed state shared by every unit of work created from it.
type Store struct {
	mu      sync.Mutex
	orders  map[uuid.UUID]entry[orderRow]
	workers map[uuid.UUID]entry[workerRow]
	offers  map[uuid.UUID]entry[offerRow]
}

func NewStore() *Store {
	return &Store{
		orders:  make(map[uuid.UUID]entry[orderRow]),
		workers: make(map[uuid.UUID]entry[workerRow]),
		offers:  make(map[uuid.UUID]entry[offerRow]),
	}
}

type orderRow struct {
	customerName string
	address      string
	phone        string
	details      string
	createdAt    time.Time
	status       int
	workerID     *kernel.UUID
}

type workerRow struct {
	name           string
	whatsappNumber kernel.PhoneNumber
	status         int
	ordersCount    int
	lastOrderTime  *time.Time
	createdAt      time.Time
}

type offerRow struct {
	details   offer.Details
	isActive  bool
	createdAt time.Time
}

type entry[R any] struct {
	row     R
	version int64
}

type changeKind int

const (
	changeInsert changeKind = iota + 1
	changeUpdate
	changeDelete
)

// change is a staged write. expected is the committed version an update was based on;
// version is what the row will carry once committed.
type change[R any] struct {
	kind     changeKind
	row      R
	expected int64
	version  int64
}

type table[R any] struct {
	name      string
	versioned bool
}

// txState holds the writes staged by one transaction.
type txState struct {
	orders  map[uuid.UUID]change[orderRow]
	workers map[uuid.UUID]change[workerRow]
	offers  map[uuid.UUID]change[offerRow]
}

func newTxState() *txState {
	return &txState{
		orders:  make(map[uuid.UUID]change[orderRow]),
		workers: make(map[uuid.UUID]change[workerRow]),
		offers:  make(map[uuid.UUID]change[offerRow]),
	}
}

var (
	ordersTable  = table[orderRow]{name: "order", versioned: true}
	workersTable = table[workerRow]{name: "worker", versioned: true}
	offersTable  = table[offerRow]{name: "offer"}
)

// visible returns the row as seen from inside the transaction.
func (t table[R]) visible(committed map[uuid.UUID]entry[R], staged map[uuid.UUID]change[R], id uuid.UUID) (entry[R], bool) {
	if c, ok := staged[id]; ok {
		if c.kind == changeDelete {
			return entry[R]{}, false
		}
		return entry[R]{row: c.row, version: c.version}, true
	}
	e, ok := committed[id]
	return e, ok
}

// snapshot merges committed rows with the transaction's staged writes.
func (t table[R]) snapshot(committed map[uuid.UUID]entry[R], staged map[uuid.UUID]change[R]) map[uuid.UUID]entry[R] {
	merged := make(map[uuid.UUID]entry[R], len(committed)+len(staged))
	for id, e := range committed {
		merged[id] = e
	}
	for id, c := range staged {
		if c.kind == changeDelete {
			delete(merged, id)
			continue
		}
		merged[id] = entry[R]{row: c.row, version: c.version}
	}
	return merged
}

func (t table[R]) stageInsert(
	committed map[uuid.UUID]entry[R],
	staged map[uuid.UUID]change[R],
	id uuid.UUID,
	row R,
	version int64,
) error {
	if _, exists := t.visible(committed, staged, id); exists {
		return fmt.Errorf("%w: %s %s", ErrDuplicateKey, t.name, id)
	}
	staged[id] = change[R]{kind: changeInsert, row: row, version: version}
	return nil
}

func (t table[R]) stageUpdate(
	committed map[uuid.UUID]entry[R],
	staged map[uuid.UUID]change[R],
	id uuid.UUID,
	row R,
	version int64,
) error {
	current, exists := t.visible(committed, staged, id)
	if !exists {
		return errs.NewObjectNotFoundError(t.name+"Id", id)
	}
	if t.versioned && current.version != version {
		return errs.NewConcurrencyConflictError(t.name, id, version)
	}

	next := change[R]{kind: changeUpdate, row: row, expected: current.version, version: current.version + 1}
	if prior, ok := staged[id]; ok {
		next.kind = prior.kind
		next.expected = prior.expected
	}
	staged[id] = next
	return nil
}

func (t table[R]) stageDelete(committed map[uuid.UUID]entry[R], staged map[uuid.UUID]change[R], id uuid.UUID) error {
	current, exists := t.visible(committed, staged, id)
	if !exists {
		return errs.NewObjectNotFoundError(t.name+"Id", id)
	}

	next := change[R]{kind: changeDelete, expected: current.version}
	if prior, ok := staged[id]; ok {
		if prior.kind == changeInsert {
			delete(staged, id)
			return nil
		}
		next.expected = prior.expected
	}
	staged[id] = next
	return nil
}

// verify re-checks every staged write against the committed state.
func (t table[R]) verify(committed map[uuid.UUID]entry[R], staged map[uuid.UUID]change[R]) error {
	for id, c := range staged {
		current, exists := committed[id]
		switch c.kind {
		case changeInsert:
			if exists {
				return fmt.Errorf("%w: %s %s", ErrDuplicateKey, t.name, id)
			}
		case changeUpdate, changeDelete:
			if !exists {
				return errs.NewObjectNotFoundError(t.name+"Id", id)
			}
			if t.versioned && current.version != c.expected {
				return errs.NewConcurrencyConflictError(t.name, id, c.expected)
			}
		}
	}
	return nil
}

func (t table[R]) apply(committed map[uuid.UUID]entry[R], staged map[uuid.UUID]change[R]) {
	for id, c := range staged {
		if c.kind == changeDelete {
			delete(committed, id)
			continue
		}
		committed[id] = entry[R]{row: c.row, version: c.version}
	}
}

// commitLocked publishes a transaction. The caller holds s.mu.
func (s *Store) commitLocked(tx *txState) error {
	if err := errors.Join(
		ordersTable.verify(s.orders, tx.orders),
		workersTable.verify(s.workers, tx.workers),
		offersTable.verify(s.offers, tx.offers),
	); err != nil {
		return err
	}

	ordersTable.apply(s.orders, tx.orders)
	workersTable.apply(s.workers, tx.workers)
	offersTable.apply(s.offers, tx.offers)
	return nil
}

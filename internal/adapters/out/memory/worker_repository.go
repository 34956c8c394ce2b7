package memory

import (
	"context"
	"sort"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

type WorkerRepository struct {
	uow *UnitOfWork
}

func (r *WorkerRepository) Add(ctx context.Context, aggregate *worker.Worker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.write(ctx, func(tx *txState) error {
		return workersTable.stageInsert(r.uow.store.workers, tx.workers,
			aggregate.ID().Bytes(), workerRowOf(aggregate), aggregate.Version())
	})
}

func (r *WorkerRepository) Update(ctx context.Context, aggregate *worker.Worker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.write(ctx, func(tx *txState) error {
		return workersTable.stageUpdate(r.uow.store.workers, tx.workers,
			aggregate.ID().Bytes(), workerRowOf(aggregate), aggregate.Version())
	})
}

func (r *WorkerRepository) Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error) {
	var (
		found entry[workerRow]
		ok    bool
	)
	if err := r.uow.read(ctx, func(tx *txState) {
		found, ok = workersTable.visible(r.uow.store.workers, tx.workers, id.Bytes())
	}); err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NewObjectNotFoundError("workerId", id)
	}
	return restoreWorker(id.Bytes(), found)
}

func (r *WorkerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return r.uow.write(ctx, func(tx *txState) error {
		return workersTable.stageDelete(r.uow.store.workers, tx.workers, id.Bytes())
	})
}

// GetRoster orders workers by creation time, then id, like the SQL adapter.
func (r *WorkerRepository) GetRoster(ctx context.Context) ([]*worker.Worker, error) {
	var (
		ids  []uuid.UUID
		rows map[uuid.UUID]entry[workerRow]
	)
	if err := r.uow.read(ctx, func(tx *txState) {
		rows = workersTable.snapshot(r.uow.store.workers, tx.workers)
	}); err != nil {
		return nil, err
	}

	for id := range rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := rows[ids[i]].row.createdAt, rows[ids[j]].row.createdAt
		if !a.Equal(b) {
			return a.Before(b)
		}
		return ids[i].String() < ids[j].String()
	})

	roster := make([]*worker.Worker, 0, len(ids))
	for _, id := range ids {
		w, err := restoreWorker(id, rows[id])
		if err != nil {
			return nil, err
		}
		roster = append(roster, w)
	}
	return roster, nil
}

func workerRowOf(w *worker.Worker) workerRow {
	return workerRow{
		name:           w.Name(),
		whatsappNumber: w.WhatsAppNumber(),
		status:         int(w.Status()),
		ordersCount:    w.OrdersCount(),
		lastOrderTime:  w.LastOrderTime(),
		createdAt:      w.CreatedAt(),
	}
}

func restoreWorker(id uuid.UUID, e entry[workerRow]) (*worker.Worker, error) {
	workerID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	var lastOrderTime *time.Time
	if e.row.lastOrderTime != nil {
		t := *e.row.lastOrderTime
		lastOrderTime = &t
	}

	return worker.RestoreWorker(
		workerID,
		e.row.name,
		e.row.whatsappNumber,
		worker.Status(e.row.status),
		e.row.ordersCount,
		lastOrderTime,
		e.row.createdAt,
		e.version,
	)
}

package memory

import (
	"context"
	"sort"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

type OrderRepository struct {
	uow *UnitOfWork
}

func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.write(ctx, func(tx *txState) error {
		return ordersTable.stageInsert(r.uow.store.orders, tx.orders,
			aggregate.ID().Bytes(), orderRowOf(aggregate), aggregate.Version())
	})
}

func (r *OrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.write(ctx, func(tx *txState) error {
		return ordersTable.stageUpdate(r.uow.store.orders, tx.orders,
			aggregate.ID().Bytes(), orderRowOf(aggregate), aggregate.Version())
	})
}

func (r *OrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	var (
		found entry[orderRow]
		ok    bool
	)
	if err := r.uow.read(ctx, func(tx *txState) {
		found, ok = ordersTable.visible(r.uow.store.orders, tx.orders, id.Bytes())
	}); err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id)
	}
	return restoreOrder(id.Bytes(), found)
}

func (r *OrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return r.uow.write(ctx, func(tx *txState) error {
		return ordersTable.stageDelete(r.uow.store.orders, tx.orders, id.Bytes())
	})
}

func (r *OrderRepository) GetOldestPending(ctx context.Context) (*order.Order, error) {
	var (
		oldestID uuid.UUID
		oldest   entry[orderRow]
		found    bool
	)
	if err := r.uow.read(ctx, func(tx *txState) {
		rows := ordersTable.snapshot(r.uow.store.orders, tx.orders)
		ids := make([]uuid.UUID, 0, len(rows))
		for id, e := range rows {
			if order.Status(e.row.status) == order.Pending {
				ids = append(ids, id)
			}
		}
		sort.Slice(ids, func(i, j int) bool {
			a, b := rows[ids[i]].row.createdAt, rows[ids[j]].row.createdAt
			if !a.Equal(b) {
				return a.Before(b)
			}
			return ids[i].String() < ids[j].String()
		})
		if len(ids) > 0 {
			oldestID, oldest, found = ids[0], rows[ids[0]], true
		}
	}); err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.NewObjectNotFoundError("orderId", "oldest pending")
	}
	return restoreOrder(oldestID, oldest)
}

func orderRowOf(o *order.Order) orderRow {
	return orderRow{
		customerName: o.CustomerName(),
		address:      o.Address(),
		phone:        o.Phone(),
		details:      o.Details(),
		createdAt:    o.CreatedAt(),
		status:       int(o.Status()),
		workerID:     o.WorkerID(),
	}
}

func restoreOrder(id uuid.UUID, e entry[orderRow]) (*order.Order, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	return order.RestoreOrder(
		orderID,
		e.row.customerName,
		e.row.address,
		e.row.phone,
		e.row.details,
		e.row.createdAt,
		order.Status(e.row.status),
		copyID(e.row.workerID),
		e.version,
	)
}

func copyID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

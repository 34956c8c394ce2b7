// Package orderrepo maps order aggregates to the orders table.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is one row of the orders table.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	CustomerName string     `gorm:"column:customer_name"`
	Address      string     `gorm:"column:address"`
	Phone        string     `gorm:"column:phone"`
	OrderDetails string     `gorm:"column:order_details"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	Status       int        `gorm:"column:status"`
	WorkerID     *uuid.UUID `gorm:"column:worker_id;type:uuid"`
	Version      int64      `gorm:"column:version"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:           o.ID().Bytes(),
		CustomerName: o.CustomerName(),
		Address:      o.Address(),
		Phone:        o.Phone(),
		OrderDetails: o.Details(),
		CreatedAt:    o.CreatedAt(),
		Status:       int(o.Status()),
		WorkerID:     workerIDColumn(o.WorkerID()),
		Version:      o.Version(),
	}
}

func workerIDColumn(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var workerID *kernel.UUID
	if dto.WorkerID != nil {
		wID, workerErr := kernel.UUIDFromBytes((*dto.WorkerID)[:])
		if workerErr != nil {
			return nil, workerErr
		}
		workerID = &wID
	}

	return order.RestoreOrder(
		id,
		dto.CustomerName,
		dto.Address,
		dto.Phone,
		dto.OrderDetails,
		dto.CreatedAt.UTC(),
		order.Status(dto.Status),
		workerID,
		dto.Version,
	)
}

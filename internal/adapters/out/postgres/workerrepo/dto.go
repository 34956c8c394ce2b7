// Package workerrepo maps worker aggregates to the workers table.
package workerrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"

	"github.com/google/uuid"
)

// WorkerDTO is one row of the workers table.
type WorkerDTO struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	Name           string     `gorm:"column:name"`
	WhatsAppNumber string     `gorm:"column:whatsapp_number"`
	Status         int        `gorm:"column:status"`
	OrdersCount    int        `gorm:"column:orders_count"`
	LastOrderTime  *time.Time `gorm:"column:last_order_time"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	Version        int64      `gorm:"column:version"`
}

func (WorkerDTO) TableName() string {
	return "workers"
}

func fromDomain(w *worker.Worker) WorkerDTO {
	return WorkerDTO{
		ID:             w.ID().Bytes(),
		Name:           w.Name(),
		WhatsAppNumber: w.WhatsAppNumber().String(),
		Status:         int(w.Status()),
		OrdersCount:    w.OrdersCount(),
		LastOrderTime:  w.LastOrderTime(),
		CreatedAt:      w.CreatedAt(),
		Version:        w.Version(),
	}
}

func toDomain(dto WorkerDTO) (*worker.Worker, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := kernel.NewPhoneNumber(dto.WhatsAppNumber)
	if err != nil {
		return nil, err
	}

	var lastOrderTime *time.Time
	if dto.LastOrderTime != nil {
		t := dto.LastOrderTime.UTC()
		lastOrderTime = &t
	}

	return worker.RestoreWorker(
		id,
		dto.Name,
		number,
		worker.Status(dto.Status),
		dto.OrdersCount,
		lastOrderTime,
		dto.CreatedAt.UTC(),
		dto.Version,
	)
}

package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetAllWorkersQueryHandler struct {
	db *gorm.DB
}

func NewGetAllWorkersQueryHandler(db *gorm.DB) GetAllWorkersQueryHandler {
	return GetAllWorkersQueryHandler{db: db}
}

// Handle returns every worker, active or not, by created_at then id.
func (h GetAllWorkersQueryHandler) Handle(
	ctx context.Context,
	query GetAllWorkersQuery,
) ([]GetAllWorkersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			whatsapp_number,
			status,
			orders_count,
			last_order_time,
			created_at
		FROM workers
		ORDER BY created_at, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workers := make([]GetAllWorkersQueryResponse, 0)
	for rows.Next() {
		var (
			resp   GetAllWorkersQueryResponse
			id     uuid.UUID
			status int
		)

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.WhatsAppNumber,
			&status,
			&resp.OrdersCount,
			&resp.LastOrderTime,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		resp.Status = worker.Status(status)
		resp.CreatedAt = resp.CreatedAt.UTC()
		if resp.LastOrderTime != nil {
			t := resp.LastOrderTime.UTC()
			resp.LastOrderTime = &t
		}

		workers = append(workers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return workers, nil
}

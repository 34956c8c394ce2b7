package queries

import (
	"context"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler reads orders straight from the database, joining the worker name.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle returns orders by created_at descending. Ties fall back to id so pages are stable.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		sql  strings.Builder
		args []any
	)
	sql.WriteString(`
		SELECT
			o.id,
			o.customer_name,
			o.address,
			o.phone,
			o.order_details,
			o.status,
			o.worker_id,
			w.name,
			o.created_at
		FROM orders o
		LEFT JOIN workers w ON w.id = o.worker_id`)
	if status := query.Status(); status != nil {
		sql.WriteString(`
		WHERE o.status = ?`)
		args = append(args, int(*status))
	}
	sql.WriteString(`
		ORDER BY o.created_at DESC, o.id DESC`)

	rows, err := h.db.WithContext(ctx).Raw(sql.String(), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetAllOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			resp       GetAllOrdersQueryResponse
			id         uuid.UUID
			status     int
			workerID   uuid.NullUUID
			workerName *string
		)

		err = rows.Scan(
			&id,
			&resp.CustomerName,
			&resp.Address,
			&resp.Phone,
			&resp.OrderDetails,
			&status,
			&workerID,
			&workerName,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if workerID.Valid {
			wid, idErr := kernel.UUIDFromBytes(workerID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.WorkerID = &wid
		}
		resp.Status = order.Status(status)
		resp.WorkerName = workerName
		resp.CreatedAt = resp.CreatedAt.UTC()

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

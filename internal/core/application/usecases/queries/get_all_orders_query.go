package queries

import (
	"errors"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery lists orders newest first for the admin dashboard, optionally narrowed to
// one status.
//
// Example:
//
//	query, err := NewGetAllOrdersQuery("pending")
//	if err != nil {
//	    return err // *errs.ValidationError naming "status"
//	}
//
//	orders, err := handler.Handle(ctx, query)
type GetAllOrdersQuery struct {
	status *order.Status
	guard  guard.ConstructorGuard
}

// NewGetAllOrdersQuery accepts a status name or an empty string for every order.
func NewGetAllOrdersQuery(status string) (GetAllOrdersQuery, error) {
	query := GetAllOrdersQuery{guard: guard.NewConstructorGuard()}

	name := strings.TrimSpace(status)
	if name == "" {
		return query, nil
	}

	parsed, err := order.ParseStatus(name)
	if err != nil {
		return GetAllOrdersQuery{}, errs.NewValidationError(err)
	}
	query.status = &parsed

	return query, nil
}

func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// Status is the filter, nil when every order is wanted.
func (q GetAllOrdersQuery) Status() *order.Status {
	return q.status
}

// GetAllOrdersQueryResponse is one order row. WorkerName is nil when the order is pending or
// its worker has since been deleted.
type GetAllOrdersQueryResponse struct {
	ID           kernel.UUID
	CustomerName string
	Address      string
	Phone        string
	OrderDetails string
	Status       order.Status
	WorkerID     *kernel.UUID
	WorkerName   *string
	CreatedAt    time.Time
}

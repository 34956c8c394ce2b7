package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetAllWorkersQueryIsNotConstructed = errors.New(
		"GetAllWorkersQuery must be created via NewGetAllWorkersQuery constructor",
	)
)

// GetAllWorkersQuery lists the roster in the same order the selector breaks ties with.
type GetAllWorkersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllWorkersQuery() GetAllWorkersQuery {
	return GetAllWorkersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllWorkersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllWorkersQueryIsNotConstructed)
}

type GetAllWorkersQueryResponse struct {
	ID             kernel.UUID
	Name           string
	WhatsAppNumber string
	Status         worker.Status
	OrdersCount    int
	LastOrderTime  *time.Time
	CreatedAt      time.Time
}

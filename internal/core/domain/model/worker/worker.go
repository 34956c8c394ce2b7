package worker

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrWorkerIsNotConstructed = errors.New("Worker must be created via NewWorker or RestoreWorker constructor")
	ErrWorkerIsInactive       = errors.New("worker is inactive")
)

// Worker is the aggregate root for a member of the delivery staff.
//
// Invariants:
//   - name is non-blank and whatsappNumber is a valid PhoneNumber
//   - ordersCount is never negative and only changes through TakeOrder, by exactly one
//   - lastOrderTime is nil until the first assignment
type Worker struct {
	id             kernel.UUID
	name           string
	whatsappNumber kernel.PhoneNumber
	status         Status
	ordersCount    int
	lastOrderTime  *time.Time
	createdAt      time.Time
	version        int64

	guard guard.ConstructorGuard
}

// NewWorker registers an active worker with no assignments.
//
// Example:
//
//	number, _ := kernel.NewPhoneNumber("+20 100 000 0001")
//	w, err := worker.NewWorker(kernel.NewUUID(), "Ahmed", number, clock.Now())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(w.IsActive(), w.OrdersCount()) // true 0
func NewWorker(id kernel.UUID, name string, whatsappNumber kernel.PhoneNumber, createdAt time.Time) (*Worker, error) {
	w := &Worker{
		status: Active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setName(name),
		w.setWhatsAppNumber(whatsappNumber),
		w.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// RestoreWorker rebuilds a worker read from storage, including its optimistic-lock version.
func RestoreWorker(
	id kernel.UUID,
	name string,
	whatsappNumber kernel.PhoneNumber,
	status Status,
	ordersCount int,
	lastOrderTime *time.Time,
	createdAt time.Time,
	version int64,
) (*Worker, error) {
	w := &Worker{
		version: version,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setName(name),
		w.setWhatsAppNumber(whatsappNumber),
		w.setStatus(status),
		w.setLoad(ordersCount, lastOrderTime),
		w.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return w, nil
}

func (w *Worker) Validate() error {
	if w == nil {
		return ErrWorkerIsNotConstructed
	}
	return w.guard.Validate(ErrWorkerIsNotConstructed)
}

func (w *Worker) IsEqual(other *Worker) bool {
	return other != nil && w.id.IsEqual(other.id)
}

func (w *Worker) ID() kernel.UUID                    { return w.id }
func (w *Worker) Name() string                       { return w.name }
func (w *Worker) WhatsAppNumber() kernel.PhoneNumber { return w.whatsappNumber }
func (w *Worker) Status() Status                     { return w.status }
func (w *Worker) IsActive() bool                     { return w.status == Active }
func (w *Worker) OrdersCount() int                   { return w.ordersCount }
func (w *Worker) CreatedAt() time.Time               { return w.createdAt }

// Version is the optimistic-lock version the worker was read at.
func (w *Worker) Version() int64 { return w.version }

// LastOrderTime returns a copy of the latest assignment instant, or nil if the worker never got one.
func (w *Worker) LastOrderTime() *time.Time {
	if w.lastOrderTime == nil {
		return nil
	}
	t := *w.lastOrderTime
	return &t
}

// TakeOrder records one more assignment at the given instant.
func (w *Worker) TakeOrder(at time.Time) error {
	if !w.IsActive() {
		return fmt.Errorf("%w: %s", ErrWorkerIsInactive, w.id)
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("lastOrderTime")
	}

	w.ordersCount++
	w.lastOrderTime = &at
	return nil
}

// Edit replaces the contact identity.
func (w *Worker) Edit(name string, whatsappNumber kernel.PhoneNumber) error {
	probe := *w
	if err := errors.Join(probe.setName(name), probe.setWhatsAppNumber(whatsappNumber)); err != nil {
		return err
	}

	w.name = probe.name
	w.whatsappNumber = probe.whatsappNumber
	return nil
}

// SetStatus switches between Active and Inactive.
func (w *Worker) SetStatus(status Status) error {
	return w.setStatus(status)
}

func (w *Worker) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Worker) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("name")
	}
	w.name = trimmed
	return nil
}

func (w *Worker) setWhatsAppNumber(number kernel.PhoneNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	w.whatsappNumber = number
	return nil
}

func (w *Worker) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	w.status = status
	return nil
}

func (w *Worker) setLoad(ordersCount int, lastOrderTime *time.Time) error {
	if ordersCount < 0 {
		return errs.NewValueIsOutOfRangeError("ordersCount", ordersCount, 0, "unbounded")
	}
	w.ordersCount = ordersCount
	if lastOrderTime != nil {
		t := *lastOrderTime
		w.lastOrderTime = &t
	}
	return nil
}

func (w *Worker) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	w.createdAt = createdAt
	return nil
}

package order

import (
	"errors"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is the aggregate root for a customer's delivery request.
//
// Invariants:
//   - customer name, address, phone and details are non-blank (stored trimmed)
//   - createdAt is set once by the server and never changes
//   - workerID is set iff status is Assigned or Completed
//   - version is the optimistic-lock version the order was read at
type Order struct {
	id           kernel.UUID
	customerName string
	address      string
	phone        string
	details      string
	createdAt    time.Time
	status       Status
	workerID     *kernel.UUID
	version      int64

	guard guard.ConstructorGuard
}

// NewOrder creates a pending order. Every blank field is reported in the joined error.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), "Mona", "12 Nile St", "01001234567", "2 shawarma", clock.Now())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(o.Status()) // pending
func NewOrder(
	id kernel.UUID,
	customerName, address, phone, details string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setAddress(address),
		o.setPhone(phone),
		o.setDetails(details),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order read from storage.
func RestoreOrder(
	id kernel.UUID,
	customerName, address, phone, details string,
	createdAt time.Time,
	status Status,
	workerID *kernel.UUID,
	version int64,
) (*Order, error) {
	o := &Order{
		version: version,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setAddress(address),
		o.setPhone(phone),
		o.setDetails(details),
		o.setCreatedAt(createdAt),
		o.setStatus(status, workerID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID      { return o.id }
func (o *Order) CustomerName() string { return o.customerName }
func (o *Order) Address() string      { return o.address }
func (o *Order) Phone() string        { return o.phone }
func (o *Order) Details() string      { return o.details }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) Status() Status       { return o.status }
func (o *Order) IsPending() bool      { return o.status == Pending }
func (o *Order) Version() int64       { return o.version }

// WorkerID returns a copy of the assigned worker's id, or nil while pending.
func (o *Order) WorkerID() *kernel.UUID {
	if o.workerID == nil {
		return nil
	}
	id := *o.workerID
	return &id
}

// Assign attaches the order to a worker. Only pending orders can be assigned.
func (o *Order) Assign(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	next, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = next
	o.workerID = &workerID
	return nil
}

// Complete closes an assigned order.
func (o *Order) Complete() error {
	next, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(name string) error {
	return setRequired(&o.customerName, "customerName", name)
}

func (o *Order) setAddress(address string) error {
	return setRequired(&o.address, "address", address)
}

func (o *Order) setPhone(phone string) error {
	return setRequired(&o.phone, "phone", phone)
}

func (o *Order) setDetails(details string) error {
	return setRequired(&o.details, "orderDetails", details)
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setStatus(status Status, workerID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := status.ValidateCanHaveWorker(workerID != nil); err != nil {
		return err
	}
	if workerID != nil {
		if err := workerID.Validate(); err != nil {
			return err
		}
		id := *workerID
		o.workerID = &id
	}
	o.status = status
	return nil
}

func setRequired(dst *string, paramName, value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	*dst = trimmed
	return nil
}

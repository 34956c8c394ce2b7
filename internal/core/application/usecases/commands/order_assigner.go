package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
)

var (
	ErrOrderIsNotPending   = errors.New("order is not pending")
	ErrAssignmentContended = errors.New("assignment kept losing to concurrent writers")
)

// Outcome tells the submitter what happened to their order.
type Outcome int

const (
	OutcomeUnassigned Outcome = iota + 1
	OutcomeAssigned
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAssigned:
		return "assigned"
	case OutcomeUnassigned:
		return "unassigned"
	default:
		return "unknown"
	}
}

// AssignmentResult reports the assignment phase of an order.
// WorkerID and WorkerName are set only for OutcomeAssigned. Warnings lists notifications that
// could not be delivered; they never undo the assignment.
type AssignmentResult struct {
	OrderID    kernel.UUID
	Outcome    Outcome
	WorkerID   kernel.UUID
	WorkerName string
	Warnings   []string
}

// AssignmentError means the order exists but its assignment phase failed, either because the
// store was unreachable or because every attempt lost a race. The order stays pending and the
// phase can be retried with RetryOrderAssignmentCommand.
type AssignmentError struct {
	OrderID kernel.UUID
	Cause   error
}

func (e *AssignmentError) Error() string {
	return fmt.Sprintf("order %s was saved but not assigned: %v", e.OrderID, e.Cause)
}

func (e *AssignmentError) Unwrap() error {
	return e.Cause
}

// AssignmentSettings tunes the optimistic retry loop and names the administrator to notify.
type AssignmentSettings struct {
	AdminNumber    kernel.PhoneNumber
	MaxAttempts    uint64
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

func (s AssignmentSettings) validate() error {
	var problems []error
	if err := s.AdminNumber.Validate(); err != nil {
		problems = append(problems, err)
	}
	if s.MaxAttempts == 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("maxAttempts", s.MaxAttempts, 1, "unbounded"))
	}
	if s.InitialBackoff < 0 || s.MaxBackoff < s.InitialBackoff {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("backoff",
			fmt.Errorf("need 0 <= initial (%s) <= max (%s)", s.InitialBackoff, s.MaxBackoff)))
	}
	return errors.Join(problems...)
}

// OrderAssigner runs the assignment phase of order intake: read the roster, pick a worker,
// and write both the order and the worker back in one transaction.
//
// Within a process, phases run one at a time through a single slot, so no two of them see
// the same roster snapshot. Across processes, the order and worker rows are written with an
// optimistic version check. A lost race discards the transaction and restarts from the
// roster read, with exponential backoff and a bounded number of attempts.
//
// Notifications are sent after commit and outside the slot.
type OrderAssigner struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	selector   services.WorkerSelector
	composer   services.MessageComposer
	clock      kernel.Clock
	settings   AssignmentSettings
	slot       chan struct{}
	logger     *slog.Logger
}

// NewOrderAssigner builds the assigner. One instance must be shared by every handler of the
// process, since the instance owns the in-process serialization slot.
func NewOrderAssigner(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	composer services.MessageComposer,
	clock kernel.Clock,
	settings AssignmentSettings,
	logger *slog.Logger,
) (*OrderAssigner, error) {
	if err := settings.validate(); err != nil {
		return nil, err
	}

	return &OrderAssigner{
		uowFactory: uowFactory,
		notifier:   notifier,
		selector:   services.NewWorkerSelector(),
		composer:   composer,
		clock:      clock,
		settings:   settings,
		slot:       make(chan struct{}, 1),
		logger:     logger.With("component", "order_assigner"),
	}, nil
}

type placement struct {
	order  *order.Order
	worker *worker.Worker
}

// Assign runs the assignment phase for a pending order. When announceUnassigned is set and no
// worker is available, the administrator is told about the waiting order.
//
// ErrOrderIsNotPending and ObjectNotFoundError are returned as is. Any other failure comes
// back as *AssignmentError carrying the order id.
func (a *OrderAssigner) Assign(ctx context.Context, orderID kernel.UUID, announceUnassigned bool) (AssignmentResult, error) {
	placed, err := a.place(ctx, orderID)
	if err != nil {
		if errors.Is(err, ErrOrderIsNotPending) || errors.Is(err, errs.ErrObjectNotFound) {
			return AssignmentResult{}, err
		}
		return AssignmentResult{}, &AssignmentError{OrderID: orderID, Cause: err}
	}

	result := AssignmentResult{
		OrderID: orderID,
		Outcome: OutcomeUnassigned,
	}

	if placed.worker == nil {
		a.logger.InfoContext(ctx, "no active worker, order stays pending", "order_id", orderID.String())
		if announceUnassigned {
			result.Warnings = a.notify(ctx, result.Warnings, "admin",
				a.settings.AdminNumber, a.composer.AdminUnassigned(placed.order))
		}
		return result, nil
	}

	result.Outcome = OutcomeAssigned
	result.WorkerID = placed.worker.ID()
	result.WorkerName = placed.worker.Name()

	a.logger.InfoContext(ctx, "order assigned",
		"order_id", orderID.String(),
		"worker_id", placed.worker.ID().String(),
		"worker_orders", placed.worker.OrdersCount(),
	)

	result.Warnings = a.notify(ctx, result.Warnings, "worker",
		placed.worker.WhatsAppNumber(), a.composer.WorkerAssignment(placed.order))
	result.Warnings = a.notify(ctx, result.Warnings, "admin",
		a.settings.AdminNumber, a.composer.AdminAssignment(placed.order, placed.worker))

	return result, nil
}

// AssignSubmitted runs the assignment phase for an order that was just persisted by intake.
// The pending-order sweep may have placed it between the insert and this call; the submitter
// then gets that assignment back instead of ErrOrderIsNotPending. Notifications were already
// sent by whoever placed the order.
func (a *OrderAssigner) AssignSubmitted(ctx context.Context, orderID kernel.UUID) (AssignmentResult, error) {
	result, err := a.Assign(ctx, orderID, true)
	if !errors.Is(err, ErrOrderIsNotPending) {
		return result, err
	}

	placed, readErr := a.current(ctx, orderID)
	if readErr != nil {
		return AssignmentResult{}, &AssignmentError{OrderID: orderID, Cause: readErr}
	}
	if placed.order.WorkerID() == nil {
		return AssignmentResult{}, err
	}

	result = AssignmentResult{
		OrderID:  orderID,
		Outcome:  OutcomeAssigned,
		WorkerID: *placed.order.WorkerID(),
	}
	if placed.worker != nil {
		result.WorkerName = placed.worker.Name()
	}

	a.logger.InfoContext(ctx, "order was placed before intake assigned it",
		"order_id", orderID.String(), "worker_id", result.WorkerID.String())
	return result, nil
}

// current reads the order and, if it has one, its worker. A worker deleted since the
// assignment leaves placement.worker nil.
func (a *OrderAssigner) current(ctx context.Context, orderID kernel.UUID) (placement, error) {
	uow := a.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return placement{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return placement{}, err
	}
	if o.WorkerID() == nil {
		return placement{order: o}, nil
	}

	w, err := uow.WorkerRepository().Get(ctx, *o.WorkerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return placement{order: o}, nil
	}
	if err != nil {
		return placement{}, err
	}

	return placement{order: o, worker: w}, nil
}

func (a *OrderAssigner) place(ctx context.Context, orderID kernel.UUID) (placement, error) {
	select {
	case a.slot <- struct{}{}:
	case <-ctx.Done():
		return placement{}, ctx.Err()
	}
	defer func() { <-a.slot }()

	var (
		placed   placement
		attempts uint64
	)

	operation := func() error {
		attempts++

		var err error
		placed, err = a.tryPlace(ctx, orderID)
		if errors.Is(err, errs.ErrConcurrencyConflict) {
			a.logger.DebugContext(ctx, "assignment lost a race",
				"order_id", orderID.String(), "attempt", attempts, "error", err)
			return err
		}
		if err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(a.newBackOff(), a.settings.MaxAttempts-1), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		if errors.Is(err, errs.ErrConcurrencyConflict) {
			return placement{}, fmt.Errorf("%w after %d attempts: %w", ErrAssignmentContended, attempts, err)
		}
		return placement{}, err
	}

	return placed, nil
}

func (a *OrderAssigner) tryPlace(ctx context.Context, orderID kernel.UUID) (placement, error) {
	uow := a.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return placement{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	workerRepo := uow.WorkerRepository()

	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return placement{}, err
	}
	if !o.IsPending() {
		return placement{}, fmt.Errorf("%w: %s is %s", ErrOrderIsNotPending, orderID, o.Status())
	}

	roster, err := workerRepo.GetRoster(ctx)
	if err != nil {
		return placement{}, err
	}

	chosen, err := a.selector.Select(roster)
	if errors.Is(err, services.ErrNoWorkerAvailable) {
		return placement{order: o}, nil
	}
	if err != nil {
		return placement{}, err
	}

	if err = o.Assign(chosen.ID()); err != nil {
		return placement{}, err
	}

	if err = chosen.TakeOrder(a.clock.Now()); err != nil {
		return placement{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return placement{}, err
	}

	if err = workerRepo.Update(ctx, chosen); err != nil {
		return placement{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return placement{}, err
	}

	return placement{order: o, worker: chosen}, nil
}

func (a *OrderAssigner) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = a.settings.InitialBackoff
	b.MaxInterval = a.settings.MaxBackoff
	b.MaxElapsedTime = 0
	return b
}

func (a *OrderAssigner) notify(
	ctx context.Context,
	warnings []string,
	recipient string,
	destination kernel.PhoneNumber,
	message string,
) []string {
	if err := a.notifier.Notify(ctx, destination, message); err != nil {
		a.logger.WarnContext(ctx, "notification failed", "recipient", recipient, "error", err)
		return append(warnings, fmt.Sprintf("%s notification failed: %v", recipient, err))
	}
	return warnings
}

package order

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
)

// ErrStatusTransitionIsNotAllowed is returned when a transition would move an order backward
// or skip a step.
var ErrStatusTransitionIsNotAllowed = errors.New("order status transition is not allowed")

// Status is the lifecycle state of an order. It is persisted as its integer value.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Pending
	Assigned
	Completed
)

var statusNames = map[Status]string{
	Pending:   "pending",
	Assigned:  "assigned",
	Completed: "completed",
}

// ParseStatus reads the lowercase API name of a status.
func ParseStatus(name string) (Status, error) {
	for status, statusName := range statusNames {
		if statusName == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not an order status", name))
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// ValidateCanHaveWorker checks that a worker is attached exactly in Assigned and Completed.
func (s Status) ValidateCanHaveWorker(hasWorker bool) error {
	needsWorker := s == Assigned || s == Completed
	switch {
	case hasWorker && !needsWorker:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%s order cannot have a worker", s))
	case !hasWorker && needsWorker:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%s order must have a worker", s))
	default:
		return nil
	}
}

// Assign moves Pending to Assigned.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return Unknown, fmt.Errorf("%w: %s -> %s", ErrStatusTransitionIsNotAllowed, s, Assigned)
	}
	return Assigned, nil
}

// Complete moves Assigned to Completed.
func (s Status) Complete() (Status, error) {
	if s != Assigned {
		return Unknown, fmt.Errorf("%w: %s -> %s", ErrStatusTransitionIsNotAllowed, s, Completed)
	}
	return Completed, nil
}

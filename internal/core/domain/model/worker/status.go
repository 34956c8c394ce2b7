package worker

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status tells whether a worker can receive orders.
type Status int

const (
	Unknown Status = iota
	Active
	Inactive
)

var statusNames = map[Status]string{
	Active:   "active",
	Inactive: "inactive",
}

func ParseStatus(name string) (Status, error) {
	for status, statusName := range statusNames {
		if statusName == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a worker status", name))
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

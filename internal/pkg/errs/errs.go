package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrValueIsRequired     = errors.New("value is required")
	ErrValidation          = errors.New("validation failed")
	ErrConcurrencyConflict = errors.New("concurrency conflict")
)

// ObjectNotFoundError reports a missing aggregate or record.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)", ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that is present but unacceptable.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid,
		sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	return withCause(msg, e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing or blank value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ConcurrencyConflictError reports that an aggregate changed since it was read.
// ExpectedVersion is the version the writer held when it tried to update.
type ConcurrencyConflictError struct {
	Aggregate       string
	ID              any
	ExpectedVersion int64
}

func NewConcurrencyConflictError(aggregate string, id any, expectedVersion int64) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{Aggregate: aggregate, ID: id, ExpectedVersion: expectedVersion}
}

func (e *ConcurrencyConflictError) Error() string {
	return fmt.Sprintf("%s: %s %v changed since version %d", ErrConcurrencyConflict, e.Aggregate, e.ID, e.ExpectedVersion)
}

func (e *ConcurrencyConflictError) Unwrap() error {
	return ErrConcurrencyConflict
}

// ValidationError groups input errors so that every offending field is reported at once.
//
// Example:
//
//	err := errs.NewValidationError(errors.Join(
//	    errs.NewValueIsRequiredError("customerName"),
//	    errs.NewValueIsRequiredError("phone"),
//	))
//	fmt.Println(err) // validation failed: customerName, phone
type ValidationError struct {
	Fields []string
	Cause  error
}

func NewValidationError(cause error) *ValidationError {
	return &ValidationError{
		Fields: collectFields(cause, nil),
		Cause:  cause,
	}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return withCause(ErrValidation.Error(), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Cause}
}

func collectFields(err error, fields []string) []string {
	switch e := err.(type) { //nolint:errorlint // walking the tree by hand to keep every field
	case nil:
		return fields
	case *ValueIsRequiredError:
		return append(fields, e.ParamName)
	case *ValueIsInvalidError:
		return append(fields, e.ParamName)
	case *ValueIsOutOfRangeError:
		return append(fields, e.ParamName)
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			fields = collectFields(inner, fields)
		}
		return fields
	case interface{ Unwrap() error }:
		return collectFields(e.Unwrap(), fields)
	default:
		return fields
	}
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}

func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// Package guard detects aggregates, value objects and commands that were declared as zero values
// instead of being built by their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded as a private field and set only by constructors.
//
// Example:
//
//	type SubmitOrderCommand struct {
//	    customerName string
//	    guard        guard.ConstructorGuard
//	}
//
//	func (c SubmitOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the owner was not built by its constructor.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}

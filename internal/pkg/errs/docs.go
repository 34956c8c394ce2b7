// Package errs provides the error taxonomy shared by the domain, the use cases and the adapters.
//
// Every error type wraps a sentinel so callers match it with errors.Is:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: a single bad input value
//   - ValidationError: a set of bad input values, reported together with their field names
//   - ObjectNotFoundError: a lookup by id found nothing
//   - ConcurrencyConflictError: an optimistic update lost a race against another writer
package errs

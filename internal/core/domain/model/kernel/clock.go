package kernel

import "time"

// Clock supplies the instants stamped on orders and assignments.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC, truncated to the microsecond precision
// Postgres keeps, so a stored instant compares equal to the one that was written.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

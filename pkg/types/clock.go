package types

import "time"

// Clock supplies timestamps for measuring elapsed time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system wall clock.
type SystemClock struct{}

// Now returns the current time, including its monotonic reading.
func (SystemClock) Now() time.Time {
	return time.Now()
}

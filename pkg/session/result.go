package session

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nicholas-fedor/bidsort/pkg/types"
)

// Result describes one timed operation.
type Result struct {
	Operation string        // Display name, e.g. "Merge Sort".
	Records   int           // Number of bids the operation processed.
	Elapsed   time.Duration // Wall-clock duration.
}

// Seconds returns Elapsed in fractional seconds.
func (r Result) Seconds() float64 {
	return r.Elapsed.Seconds()
}

// String renders the result as "<operation> completed in <seconds> seconds.".
func (r Result) String() string {
	return fmt.Sprintf("%s completed in %.6f seconds.", r.Operation, r.Seconds())
}

// Measure runs fn between two readings of clock.
//
// Parameters:
//   - clock: Timestamp source.
//   - operation: Display name recorded in the result.
//   - records: Number of bids fn processes.
//   - fn: Operation to time; it runs to completion.
//
// Returns:
//   - Result: The measured operation.
func Measure(clock types.Clock, operation string, records int, fn func()) Result {
	start := clock.Now()

	fn()

	result := Result{
		Operation: operation,
		Records:   records,
		Elapsed:   clock.Now().Sub(start),
	}

	logrus.WithFields(logrus.Fields{
		"operation": operation,
		"records":   records,
		"elapsed":   result.Elapsed,
	}).Debug("Measured operation")

	return result
}

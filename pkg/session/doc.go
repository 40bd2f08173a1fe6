// Package session times bidsort operations and collects the results of a run.
// Timing is observational: Measure wraps a call without influencing it.
//
// Key components:
//   - Result: Name, record count and elapsed time of one operation.
//   - Measure: Runs a function between two clock readings.
//   - Report: Ordered collection of results with a fastest lookup and summary.
//
// Usage example:
//
//	result := session.Measure(types.SystemClock{}, "Quick Sort", len(bids), func() {
//	    sorter.QuickSort(bids, 0, len(bids)-1)
//	})
//	report := &session.Report{}
//	report.Add(result)
//	fmt.Print(report.Summary())
//
// The package uses logrus for debug logging of measurements.
package session

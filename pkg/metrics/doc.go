// Package metrics records bidsort timings as Prometheus metrics.
// It tracks sort durations and counts per algorithm and the size and cost of the last load.
//
// Key components:
//   - Metrics: Holds the collectors and the registry they were registered with.
//   - ObserveSort / ObserveLoad: Record a timed session.Result.
//   - WriteTextfile: Export the registry in the node_exporter textfile format.
//
// Usage example:
//
//	m := metrics.Default()
//	m.ObserveSort("quick", result)
//	if err := m.WriteTextfile("/var/lib/node_exporter/bidsort.prom"); err != nil {
//	    logrus.WithError(err).Warn("Failed to write metrics")
//	}
//
// The package uses Prometheus client_golang for collectors and exposition.
package metrics

// Package types defines small interfaces shared across bidsort packages.
//
// Key components:
//   - Clock: Source of wall-clock timestamps for timing sort operations.
//   - SystemClock: Clock backed by time.Now.
//
// Usage example:
//
//	var clock types.Clock = types.SystemClock{}
//	start := clock.Now()
package types

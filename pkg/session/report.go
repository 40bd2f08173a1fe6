package session

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Report collects results in the order they were added.
//
// The zero value is ready to use.
type Report struct {
	results []Result
}

// Add appends a result.
func (r *Report) Add(result Result) {
	r.results = append(r.results, result)
}

// Len returns the number of collected results.
func (r *Report) Len() int {
	return len(r.results)
}

// Results returns a copy of the collected results.
func (r *Report) Results() []Result {
	return slices.Clone(r.results)
}

// Fastest returns the result with the smallest elapsed time; ties keep the earliest.
//
// Returns:
//   - Result: Fastest result.
//   - bool: False if the report is empty.
func (r *Report) Fastest() (Result, bool) {
	if len(r.results) == 0 {
		return Result{}, false
	}

	return lo.MinBy(r.results, func(a, b Result) bool {
		return a.Elapsed < b.Elapsed
	}), true
}

// Summary renders one line per result followed by the fastest operation.
func (r *Report) Summary() string {
	if len(r.results) == 0 {
		return "No operations recorded.\n"
	}

	var builder strings.Builder

	width := lo.Max(lo.Map(r.results, func(result Result, _ int) int {
		return len(result.Operation)
	}))

	for _, result := range r.results {
		fmt.Fprintf(&builder, "%-*s  %8d bids  %.6f seconds\n",
			width, result.Operation, result.Records, result.Seconds())
	}

	if fastest, ok := r.Fastest(); ok && len(r.results) > 1 {
		fmt.Fprintf(&builder, "Fastest: %s\n", fastest.Operation)
	}

	return builder.String()
}

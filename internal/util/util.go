// Package util provides small formatting helpers shared by the bidsort commands.
package util

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/samber/lo"
)

// timeUnit represents a single unit of time (hours, minutes, or seconds) with its value and labels.
type timeUnit struct {
	value    int64
	singular string
	plural   string
}

// FormatDuration converts a time.Duration into a human-readable string representation.
//
// Sub-second durations are reported as "0 seconds"; sorting times are reported
// separately with full precision.
//
// Parameters:
//   - duration: The time.Duration to convert into a readable string.
//
// Returns:
//   - string: A formatted string such as "1 hour, 2 minutes, 3 seconds".
func FormatDuration(duration time.Duration) string {
	const (
		minutesPerHour   = 60
		secondsPerMinute = 60
	)

	units := []timeUnit{
		{int64(duration.Hours()), "hour", "hours"},
		{int64(math.Mod(duration.Minutes(), minutesPerHour)), "minute", "minutes"},
		{int64(math.Mod(duration.Seconds(), secondsPerMinute)), "second", "seconds"},
	}

	parts := make([]string, 0, len(units))
	for i, unit := range units {
		parts = append(
			parts,
			FormatTimeUnit(unit.value, unit.singular, unit.plural, i == len(units)-1 && len(FilterEmpty(parts)) == 0),
		)
	}

	joined := strings.Join(FilterEmpty(parts), ", ")
	if joined == "" {
		return "0 seconds"
	}

	return joined
}

// FormatTimeUnit formats a single time unit into a string based on its value.
//
// Zero values are skipped unless forceInclude is set.
//
// Parameters:
//   - value: The numeric value of the unit.
//   - singular: The singular form of the unit (e.g., "hour").
//   - plural: The plural form of the unit (e.g., "hours").
//   - forceInclude: Include the unit even if zero.
//
// Returns:
//   - string: The formatted unit (e.g., "1 hour", "2 minutes") or empty string if skipped.
func FormatTimeUnit(value int64, singular, plural string, forceInclude bool) string {
	switch {
	case value == 1:
		return "1 " + singular
	case value > 1 || forceInclude:
		return fmt.Sprintf("%d %s", value, plural)
	default:
		return ""
	}
}

// FilterEmpty removes empty strings from a slice, returning only non-empty elements.
func FilterEmpty(parts []string) []string {
	return lo.Compact(parts)
}

// Package util provides small formatting helpers shared by the bidsort commands.
//
// Key components:
//   - FormatDuration: Renders a duration as "1 hour, 2 minutes, 3 seconds".
//   - FormatTimeUnit: Renders a single unit with singular or plural grammar.
//   - FilterEmpty: Drops empty strings from a slice.
//
// Usage example:
//
//	logrus.Info("Session lasted " + util.FormatDuration(time.Since(start)))
package util

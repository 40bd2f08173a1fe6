// Package logging provides functions for logging startup information in bidsort.
// It reports the version, the bid source and the selected algorithms before any work begins.
package logging

import (
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nicholas-fedor/bidsort/pkg/sorter"
)

// WriteStartupMessage logs startup information based on configuration flags.
//
// Parameters:
//   - c: The cobra.Command instance, providing access to flags like --no-startup-message.
//   - csvPath: The bid file that will be loaded.
//   - algorithms: The algorithms selected for this run, empty for the interactive menu.
//   - version: The version string of bidsort to include in the message.
func WriteStartupMessage(
	c *cobra.Command,
	csvPath string,
	algorithms []sorter.Algorithm,
	version string,
) {
	noStartupMessage, _ := c.Flags().GetBool("no-startup-message")
	if noStartupMessage {
		return
	}

	startupLog := logrus.NewEntry(logrus.StandardLogger())

	startupLog.Info("bidsort ", version)
	startupLog.WithField("path", csvPath).Info("Using bid file")

	LogAlgorithmInfo(startupLog, algorithms)
	LogMetricsInfo(startupLog, c)

	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		startupLog.Warn("Trace-level logging enabled: every sort dispatch will be logged")
	}
}

// LogAlgorithmInfo logs which sorting algorithms will run.
//
// Parameters:
//   - log: The logrus.Entry used to write the information.
//   - algorithms: The selected algorithms; empty means they are chosen from the menu.
func LogAlgorithmInfo(log *logrus.Entry, algorithms []sorter.Algorithm) {
	if len(algorithms) == 0 {
		log.Info("Interactive mode: choose algorithms from the menu")

		return
	}

	names := lo.Map(algorithms, func(a sorter.Algorithm, _ int) string {
		return a.DisplayName()
	})

	log.Info("Running algorithms: " + strings.Join(names, ", "))
}

// LogMetricsInfo reports whether a metrics textfile will be written on exit.
func LogMetricsInfo(log *logrus.Entry, c *cobra.Command) {
	path, _ := c.Flags().GetString("metrics-textfile")
	if path == "" {
		log.Debug("Metrics textfile export disabled")

		return
	}

	log.WithField("path", path).Info("Metrics will be written on exit")
}

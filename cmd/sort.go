package cmd

import (
	"errors"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nicholas-fedor/bidsort/internal/flags"
	"github.com/nicholas-fedor/bidsort/internal/logging"
	"github.com/nicholas-fedor/bidsort/internal/meta"
	"github.com/nicholas-fedor/bidsort/pkg/bid"
	"github.com/nicholas-fedor/bidsort/pkg/session"
	"github.com/nicholas-fedor/bidsort/pkg/sorter"
)

// errUnsortedResult indicates an algorithm left the bids out of title order.
var errUnsortedResult = errors.New("bids are not in title order after sorting")

// NewSortCommand creates the non-interactive sort subcommand with its flags.
func NewSortCommand() *cobra.Command {
	sortCmd := &cobra.Command{
		Use:   "sort [csv-path]",
		Short: "Sorts a bid file with one or all algorithms and prints their timings",
		Long: "\nLoads the bid file once, then runs the selected algorithm. With --algorithm all, " +
			"every algorithm sorts its own copy of the loaded bids and a timing summary is printed.",
		RunE: runSortCommand,
		Args: cobra.MaximumNArgs(1),
	}

	flags.RegisterSortFlags(sortCmd)

	return sortCmd
}

func runSortCommand(c *cobra.Command, args []string) error {
	cfg, err := newRunConfig(c, args)
	if err != nil {
		return err
	}

	cfg.Algorithms, err = flags.ReadAlgorithms(c.Flags())
	if err != nil {
		return err
	}

	cfg.Display, _ = c.Flags().GetBool("display")

	logging.WriteStartupMessage(c, cfg.CSVPath, cfg.Algorithms, meta.Version)

	if err := runSort(cfg); err != nil {
		return err
	}

	return writeMetrics(cfg)
}

// runSort loads cfg.CSVPath once and times every selected algorithm on a fresh copy.
//
// Parameters:
//   - cfg: Run configuration with Algorithms, Output and Clock set.
//
// Returns:
//   - error: Non-nil if loading fails or an algorithm leaves the bids unsorted.
func runSort(cfg RunConfig) error {
	var (
		loaded  []bid.Bid
		loadErr error
	)

	load := session.Measure(cfg.Clock, "Load Bids", 0, func() {
		loaded, loadErr = bid.LoadCSV(cfg.CSVPath)
	})
	if loadErr != nil {
		return loadErr
	}

	load.Records = len(loaded)
	if cfg.Metrics != nil {
		cfg.Metrics.ObserveLoad(load)
	}

	printf(cfg, "%d bids loaded from %s\n", len(loaded), cfg.CSVPath)
	printf(cfg, "%s\n", load)

	var (
		report session.Report
		sorted []bid.Bid
	)

	for _, algorithm := range cfg.Algorithms {
		work := slices.Clone(loaded)

		var sortErr error

		result := session.Measure(cfg.Clock, algorithm.DisplayName(), len(work), func() {
			sortErr = sorter.Sort(algorithm, work)
		})
		if sortErr != nil {
			return sortErr
		}

		if !bid.IsSorted(work) {
			return fmt.Errorf("%w: %s", errUnsortedResult, algorithm)
		}

		if cfg.Metrics != nil {
			cfg.Metrics.ObserveSort(algorithm.String(), result)
		}

		logrus.WithFields(logrus.Fields{
			"algorithm": algorithm,
			"records":   result.Records,
			"seconds":   result.Seconds(),
		}).Debug("Sort finished")

		report.Add(result)
		printf(cfg, "%s\n", result)

		sorted = work
	}

	printf(cfg, "\n%s", report.Summary())

	if cfg.Display {
		printf(cfg, "\n")

		for _, b := range sorted {
			printf(cfg, "%s\n", bid.Format(b))
		}
	}

	return nil
}

func printf(cfg RunConfig, format string, args ...any) {
	_, _ = fmt.Fprintf(cfg.Output, format, args...)
}

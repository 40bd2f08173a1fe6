package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nicholas-fedor/bidsort/internal/flags"
	"github.com/nicholas-fedor/bidsort/internal/logging"
	"github.com/nicholas-fedor/bidsort/internal/menu"
	"github.com/nicholas-fedor/bidsort/internal/meta"
	"github.com/nicholas-fedor/bidsort/internal/util"
	"github.com/nicholas-fedor/bidsort/pkg/metrics"
	"github.com/nicholas-fedor/bidsort/pkg/sorter"
	"github.com/nicholas-fedor/bidsort/pkg/types"
)

// rootCmd is the bidsort entry point; subcommands are attached in init.
var rootCmd = NewRootCommand()

// RunConfig encapsulates the settings of one bidsort invocation.
type RunConfig struct {
	// Command is the executed cobra.Command, providing access to parsed flags.
	Command *cobra.Command
	// CSVPath is the bid file to load.
	CSVPath string
	// Algorithms are the algorithms run by the sort subcommand.
	Algorithms []sorter.Algorithm
	// Display prints every bid after sorting.
	Display bool
	// MetricsTextfile is the Prometheus textfile written on exit, empty to disable.
	MetricsTextfile string
	// Input supplies menu choices.
	Input io.Reader
	// Output receives prompts, bids and timings.
	Output io.Writer
	// Clock times every operation.
	Clock types.Clock
	// Metrics records loads and sorts.
	Metrics *metrics.Metrics
}

// NewRootCommand creates the root command without flags or subcommands.
func NewRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bidsort [csv-path]",
		Short: "Loads auction bids and sorts them by title",
		Long: "\nbidsort loads auction bids from a CSV file and sorts them by title with selection sort, " +
			"quicksort, merge sort or the standard library sort, reporting how long each run took.",
		PersistentPreRun: preRun,
		RunE:             run,
		Args:             cobra.MaximumNArgs(1),
		SilenceUsage:     true,
		SilenceErrors:    true,
	}
}

// init registers flags and subcommands with the root command.
func init() {
	flags.SetDefaults()
	flags.RegisterSystemFlags(rootCmd)
	rootCmd.AddCommand(NewSortCommand())
}

// Execute runs the root command and exits on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Fatal("Failed to execute bidsort")
	}
}

// preRun applies logging flags before any command runs.
func preRun(cmd *cobra.Command, _ []string) {
	flagsSet := cmd.Flags()
	flags.ProcessFlagAliases(flagsSet)

	if err := flags.SetupLogging(flagsSet); err != nil {
		logrus.WithError(err).Fatal("Failed to initialize logging")
	}
}

// run starts the interactive menu.
func run(c *cobra.Command, args []string) error {
	cfg, err := newRunConfig(c, args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.WriteStartupMessage(c, cfg.CSVPath, nil, meta.Version)

	return runInteractive(ctx, cfg)
}

// newRunConfig reads the flags shared by every command.
func newRunConfig(c *cobra.Command, args []string) (RunConfig, error) {
	csvPath, err := flags.ReadCSVPath(c, args)
	if err != nil {
		return RunConfig{}, err
	}

	metricsTextfile, _ := c.Flags().GetString("metrics-textfile")

	return RunConfig{
		Command:         c,
		CSVPath:         csvPath,
		MetricsTextfile: metricsTextfile,
		Input:           c.InOrStdin(),
		Output:          c.OutOrStdout(),
		Clock:           types.SystemClock{},
		Metrics:         metrics.Default(),
	}, nil
}

// runInteractive drives the menu until it finishes or ctx is cancelled.
// Cancellation is treated as a normal exit so the metrics textfile is still written.
func runInteractive(ctx context.Context, cfg RunConfig) error {
	start := cfg.Clock.Now()

	m := menu.New(menu.Config{
		Input:   cfg.Input,
		Output:  cfg.Output,
		CSVPath: cfg.CSVPath,
		Clock:   cfg.Clock,
		Metrics: cfg.Metrics,
	})

	// The menu blocks on input reads, so cancellation is watched here as well.
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	var err error

	select {
	case err = <-done:
		if err == nil {
			logrus.WithField("operations", m.Report().Len()).
				Info("Session lasted " + util.FormatDuration(cfg.Clock.Now().Sub(start)))
		}
	case <-ctx.Done():
		err = ctx.Err()
	}

	if errors.Is(err, context.Canceled) {
		logrus.Info("Interrupted, leaving bidsort")

		err = nil
	}

	if err != nil {
		return err
	}

	return writeMetrics(cfg)
}

// writeMetrics exports collected metrics when a textfile path is configured.
func writeMetrics(cfg RunConfig) error {
	if cfg.MetricsTextfile == "" || cfg.Metrics == nil {
		return nil
	}

	if err := cfg.Metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
		return err
	}

	logrus.WithField("path", cfg.MetricsTextfile).Info("Wrote metrics textfile")

	return nil
}

package flags

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/nicholas-fedor/bidsort/pkg/sorter"
)

// DefaultCSVPath is the bid file loaded when no path is configured.
const DefaultCSVPath = "eBid_Monthly_Sales.csv"

// AllAlgorithms is the --algorithm value selecting every algorithm in turn.
const AllAlgorithms = "all"

// errInvalidLogFormat indicates an invalid log format was specified.
// It is used in SetupLogging to report configuration errors.
var errInvalidLogFormat = errors.New("invalid log format specified")

// errInvalidLogLevel indicates an invalid log level was specified.
// It is used in SetupLogging to report configuration errors.
var errInvalidLogLevel = errors.New("invalid log level specified")

// errSetFlagFailed indicates a failure to read or set a flag's value.
var errSetFlagFailed = errors.New("failed to set flag value")

// RegisterSystemFlags adds flags shared by every bidsort command to the root command.
// These flags control the bid source, logging and metrics export.
func RegisterSystemFlags(rootCmd *cobra.Command) {
	flags := rootCmd.PersistentFlags()

	flags.StringP(
		"csv-path",
		"f",
		envString("BIDSORT_CSV_PATH"),
		"Path of the bid CSV file to load")

	flags.BoolP(
		"no-startup-message",
		"",
		envBool("BIDSORT_NO_STARTUP_MESSAGE"),
		"Prevents bidsort from logging a startup message")

	flags.StringP(
		"metrics-textfile",
		"",
		envString("BIDSORT_METRICS_TEXTFILE"),
		"Write Prometheus metrics to this file on exit (node_exporter textfile format)")

	flags.StringP(
		"log-format",
		"l",
		viper.GetString("BIDSORT_LOG_FORMAT"),
		"Sets what logging format to use for console output. Possible values: Auto, LogFmt, Pretty, JSON",
	)

	flags.BoolP(
		"debug",
		"d",
		envBool("BIDSORT_DEBUG"),
		"Enable debug mode with verbose logging")

	flags.BoolP(
		"trace",
		"",
		envBool("BIDSORT_TRACE"),
		"Enable trace mode with very verbose logging")

	// https://no-color.org/
	flags.BoolP(
		"no-color",
		"",
		viper.IsSet("NO_COLOR"),
		"Disable ANSI color escape codes in log output")

	flags.String(
		"log-level",
		envString("BIDSORT_LOG_LEVEL"),
		"The maximum log level that will be written to STDERR. Possible values: panic, fatal, error, warn, info, debug or trace",
	)
}

// RegisterSortFlags adds the flags of the non-interactive sort command.
func RegisterSortFlags(sortCmd *cobra.Command) {
	flags := sortCmd.Flags()

	flags.StringP(
		"algorithm",
		"a",
		envString("BIDSORT_ALGORITHM"),
		"Algorithm to run. Possible values: selection, quick, merge, standard or all")

	flags.BoolP(
		"display",
		"",
		envBool("BIDSORT_DISPLAY"),
		"Print every bid after sorting")
}

// envString retrieves a string value from an environment variable via Viper.
// It binds the key to the environment and returns its value.
func envString(key string) string {
	viper.MustBindEnv(key)

	return viper.GetString(key)
}

// envBool retrieves a boolean value from an environment variable via Viper.
// It binds the key to the environment and returns its value.
func envBool(key string) bool {
	viper.MustBindEnv(key)

	return viper.GetBool(key)
}

// SetDefaults configures default values for environment variables.
// It ensures consistent fallback behavior when flags or environment variables are unset.
func SetDefaults() {
	viper.AutomaticEnv()
	viper.SetDefault("BIDSORT_CSV_PATH", DefaultCSVPath)
	viper.SetDefault("BIDSORT_ALGORITHM", AllAlgorithms)
	viper.SetDefault("BIDSORT_LOG_LEVEL", "info")
	viper.SetDefault("BIDSORT_LOG_FORMAT", "auto")
}

// ReadCSVPath returns the bid file to load.
// A positional argument takes precedence over --csv-path.
func ReadCSVPath(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}

	path, err := cmd.Flags().GetString("csv-path")
	if err != nil {
		return "", fmt.Errorf("%w: %w", errSetFlagFailed, err)
	}

	if path == "" {
		return DefaultCSVPath, nil
	}

	return path, nil
}

// ReadAlgorithms resolves the --algorithm flag.
//
// Returns:
//   - []sorter.Algorithm: The selected algorithm, or all of them for "all".
//   - error: Non-nil if the flag is missing or names an unknown algorithm.
func ReadAlgorithms(flags *pflag.FlagSet) ([]sorter.Algorithm, error) {
	name, err := flags.GetString("algorithm")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errSetFlagFailed, err)
	}

	if name == "" || strings.EqualFold(name, AllAlgorithms) {
		return sorter.Algorithms(), nil
	}

	algorithm, err := sorter.ParseAlgorithm(name)
	if err != nil {
		return nil, fmt.Errorf("invalid --algorithm: %w", err)
	}

	return []sorter.Algorithm{algorithm}, nil
}

// ProcessFlagAliases synchronizes the log level with the --debug and --trace helper flags.
func ProcessFlagAliases(flags *pflag.FlagSet) {
	if flagIsEnabled(flags, "debug") {
		if err := flags.Set("log-level", "debug"); err != nil {
			logrus.Errorf("Failed to set log-level flag: %v", err)
		}
	}

	if flagIsEnabled(flags, "trace") {
		if err := flags.Set("log-level", "trace"); err != nil {
			logrus.Errorf("Failed to set log-level flag: %v", err)
		}
	}
}

// SetupLogging configures the global logger based on log-related flags.
// It sets the log format and level, returning an error for invalid configurations.
func SetupLogging(flags *pflag.FlagSet) error {
	logFormat, err := flags.GetString("log-format")
	if err != nil {
		return fmt.Errorf("%w: %w", errSetFlagFailed, err)
	}

	noColor, err := flags.GetBool("no-color")
	if err != nil {
		return fmt.Errorf("%w: %w", errSetFlagFailed, err)
	}

	if err := configureLogFormat(logFormat, noColor); err != nil {
		return err
	}

	rawLogLevel, err := flags.GetString("log-level")
	if err != nil {
		return fmt.Errorf("%w: %w", errSetFlagFailed, err)
	}

	logLevel, err := logrus.ParseLevel(rawLogLevel)
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidLogLevel, err)
	}

	logrus.SetLevel(logLevel)

	return nil
}

// configureLogFormat sets the logrus formatter based on the specified format and color preference.
// It returns an error if the format is invalid.
func configureLogFormat(logFormat string, noColor bool) error {
	switch strings.ToLower(logFormat) {
	case "auto":
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableColors:             noColor,
			EnvironmentOverrideColors: true,
		})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "logfmt":
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	case "pretty":
		logrus.SetFormatter(&logrus.TextFormatter{
			ForceColors:   !noColor,
			FullTimestamp: false,
		})
	default:
		return fmt.Errorf("%w: %s", errInvalidLogFormat, logFormat)
	}

	return nil
}

// flagIsEnabled checks if a boolean flag is set to true.
// It exits with a fatal error if the flag is not defined.
func flagIsEnabled(flags *pflag.FlagSet, name string) bool {
	value, err := flags.GetBool(name)
	if err != nil {
		logrus.Fatalf("The flag %q is not defined", name)
	}

	return value
}

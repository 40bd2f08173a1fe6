// Package flags manages command-line flags and environment variables for bidsort configuration.
// It configures the bid source, algorithm selection, metrics export and logging via Cobra and Viper.
//
// Key components:
//   - RegisterSystemFlags: Adds input, logging and metrics flags to the root command.
//   - RegisterSortFlags: Adds algorithm and display flags to the sort subcommand.
//   - ProcessFlagAliases: Applies --debug and --trace to the log level.
//   - SetupLogging: Configures logrus based on flags.
//
// Usage example:
//
//	cmd := &cobra.Command{}
//	flags.SetDefaults()
//	flags.RegisterSystemFlags(cmd)
//	err := flags.SetupLogging(cmd.PersistentFlags())
//	if err != nil {
//	    logrus.WithError(err).Fatal("Logging setup failed")
//	}
//
// The package integrates with Cobra for flag parsing, Viper for environment variable binding,
// and logrus for logging configuration errors.
package flags

// Package cmd contains the command-line interface (CLI) definitions and execution logic for bidsort.
// It provides the root command, which runs the interactive menu, and the sort subcommand, which
// loads a bid file once and times the selected algorithms non-interactively.
//
// Key components:
//   - rootCmd: Interactive menu over stdin and stdout.
//   - sort: Subcommand that runs one or all algorithms and prints a timing summary.
//   - RunConfig: Struct for configuring execution.
//
// Usage examples:
//   - Run the CLI from main.go:
//     cmd.Execute()
//   - Time every algorithm against a file:
//     bidsort sort --algorithm all eBid_Monthly_Sales.csv
//
// The package integrates with the flags, logging, menu, session and metrics packages,
// using Cobra for CLI parsing and logrus for logging.
package cmd

// =============================================================================
// CSV to Excel Merger - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (merger)
//   ├── combineCmd (merger combine)
//   └── versionCmd (merger version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose)
//   2. Printing errors exactly once and setting the exit code
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/CSV-to-Excel-merge/internal/config"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
// This is the entry point for the CLI application.
var rootCmd = &cobra.Command{
	// Use is the one-line usage message.
	// This is what appears in help text and error messages.
	Use: "merger",

	// Short is a short description shown in the 'help' output.
	Short: "CSV to Excel Merger - Combine a folder of CSV files into one workbook",

	// Long is a longer description shown in the 'help <command>' output.
	Long: `CSV to Excel Merger is a CLI tool that collects every CSV file in a folder
into a single Excel workbook, with one worksheet per file.

Key Features:
  - One worksheet per CSV file, named after the file
  - Worksheet names sanitized to Excel's rules (31 characters, no [ ] * ? : / \)
  - Malformed files are reported and skipped, the rest still merge
  - Re-running replaces the previous workbook

Example Usage:
  merger combine ./exports                  # Merge all CSVs from ./exports
  merger combine ./exports -o report.xlsx   # Pick the output file name
  merger combine                            # Ask for folder and name interactively`,

	// Errors are printed once, by Execute, instead of by every failing
	// command up the chain.
	SilenceUsage:  true,
	SilenceErrors: true,

	// Run is the function that will be executed when the root command is
	// called without any subcommands. In this case, we just print the help
	// message.
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init is called automatically when the package is loaded.
// It sets up the global flags.
func init() {
	// ==========================================================================
	// PERSISTENT FLAGS
	// ==========================================================================
	// Persistent flags are available to this command and all subcommands.

	// --config flag: Allows the user to specify a custom configuration file.
	// The default config.yaml is optional; a named file must exist.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultConfigFile,
		"Path to the configuration file (default is config.yaml)",
	)

	// --verbose flag: Enables verbose/debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// =============================================================================
// CSV to Excel Merger - Combine Command
// =============================================================================
//
// This file defines the 'combine' command, the main command of the merger.
// It collects every CSV file in a folder into a single Excel workbook, one
// worksheet per file.
//
// COMMAND USAGE:
//   merger combine [folder] [flags]
//
// FLAGS:
//   --output, -o : Name of the output workbook (default combined_data.xlsx)
//   --dry-run    : Show what would be merged without writing the workbook
//
// INPUT RESOLUTION:
//   The folder comes from the positional argument, then the config file,
//   then an interactive prompt. The output name comes from the --output
//   flag, then the config file, then an interactive prompt (interactive
//   runs only). Pressing enter at a prompt accepts the default.
//
// =============================================================================

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/CSV-to-Excel-merge/internal/config"
	"github.com/ginjaninja78/CSV-to-Excel-merge/internal/converter"
	"github.com/ginjaninja78/CSV-to-Excel-merge/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// outputName is the name of the output workbook.
var outputName string

// dryRun shows the merge plan without writing the workbook.
var dryRun bool

// =============================================================================
// COMBINE COMMAND DEFINITION
// =============================================================================

// combineCmd represents the 'combine' command.
var combineCmd = &cobra.Command{
	Use:   "combine [folder]",
	Short: "Combine all CSV files in a folder into a single Excel workbook",
	Long: `The combine command scans a folder for CSV files and merges them into one
Excel workbook. Each CSV file becomes its own worksheet, named after the
file (truncated to 31 characters, with characters Excel forbids replaced
by underscores). The workbook is written into the same folder.

Files that cannot be parsed are reported and skipped; the remaining files
still merge. The run only fails outright when the folder is missing, when
it contains no CSV files at all, or when the finished workbook cannot be
written.

When no folder argument is given and the config file names none, the
command asks for the folder and the output file name interactively.`,
	Args: cobra.MaximumNArgs(1),

	// RunE is like Run but returns an error. This is preferred for commands
	// that can fail, as it allows Cobra to handle the error gracefully.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCombine(cmd, args)
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the combine command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(combineCmd)

	// --output flag: Name of the output workbook, created inside the
	// input folder. The .xlsx extension is appended when missing.
	combineCmd.Flags().StringVarP(
		&outputName,
		"output",
		"o",
		converter.DefaultOutputFileName,
		"Name of the output Excel file, created inside the folder",
	)

	// --dry-run flag: Plan the merge without writing the workbook.
	combineCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Show what would be merged without writing the workbook",
	)
}

// =============================================================================
// MAIN COMMAND FUNCTION
// =============================================================================

// runCombine resolves the inputs, runs the merge and prints the outcome.
func runCombine(cmd *cobra.Command, args []string) error {
	// =========================================================================
	// STEP 1: LOAD CONFIGURATION
	// =========================================================================

	mainConfig, err := config.LoadMainConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// =========================================================================
	// STEP 2: RESOLVE FOLDER AND OUTPUT NAME
	// =========================================================================

	folder, output, err := resolveInputs(cmd, args, mainConfig)
	if err != nil {
		return err
	}

	// =========================================================================
	// STEP 3: RUN THE MERGE
	// =========================================================================

	logger := converter.NewConsoleLogger(verbose || mainConfig.LogLevel == "debug")
	conv := converter.New(folder, output,
		converter.WithLogger(logger),
		converter.WithDryRun(dryRun),
	)

	summary, runErr := conv.Run()

	// =========================================================================
	// STEP 4: REPORT
	// =========================================================================
	// Per-file failures are reported even when the run as a whole failed,
	// so the user sees why no worksheet was left to write.

	if summary != nil {
		printFileResults(cmd, summary)
	}
	if runErr != nil {
		return runErr
	}

	printSummary(cmd, summary)
	return nil
}

// =============================================================================
// INPUT RESOLUTION
// =============================================================================

// resolveInputs determines the input folder and the output file name.
// Precedence: argument/flag, then config file, then interactive prompt.
func resolveInputs(cmd *cobra.Command, args []string, mainConfig *config.MainConfig) (string, string, error) {
	reader := bufio.NewReader(cmd.InOrStdin())

	var folder string
	switch {
	case len(args) > 0:
		folder = strings.TrimSpace(args[0])
	case mainConfig.InputDir != "":
		folder = mainConfig.InputDir
	default:
		answer, err := prompt(cmd, reader, "Enter the folder path containing CSV files: ")
		if err != nil {
			return "", "", err
		}
		folder = answer
	}
	if folder == "" {
		return "", "", fmt.Errorf("no folder path provided")
	}

	output := outputName
	if !cmd.Flags().Changed("output") {
		switch {
		case mainConfig.OutputFileName != "":
			output = mainConfig.OutputFileName
		case len(args) == 0 && mainConfig.InputDir == "":
			// Fully interactive run: ask for the name too. An empty
			// answer keeps the default.
			message := fmt.Sprintf("Enter the output Excel file name (default: %s): ", converter.DefaultOutputFileName)
			answer, err := prompt(cmd, reader, message)
			if err != nil {
				return "", "", err
			}
			if answer != "" {
				output = answer
			}
		}
	}

	return folder, output, nil
}

// prompt writes a message and reads one trimmed line of input. End of input
// counts as an empty answer.
func prompt(cmd *cobra.Command, reader *bufio.Reader, message string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), message)

	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// =============================================================================
// OUTPUT
// =============================================================================

// printFileResults prints one line per skipped file, and in verbose mode a
// line per merged file as well.
func printFileResults(cmd *cobra.Command, summary *converter.Summary) {
	out := cmd.OutOrStdout()

	for _, result := range summary.Results {
		if result.Success {
			if verbose {
				fmt.Fprintf(out, "  ✓ %s -> sheet '%s' (%d rows)\n", result.FileName(), result.SheetName, result.Rows)
			}
			continue
		}
		fmt.Fprintf(out, "Error processing '%s': %v\n", result.FileName(), result.Cause())
	}
}

// printSummary prints the outcome of a successful run.
func printSummary(cmd *cobra.Command, summary *converter.Summary) {
	out := cmd.OutOrStdout()

	if summary.DryRun {
		fmt.Fprintf(out, "\n=== Dry Run ===\n")
		fmt.Fprintf(out, "Files found:    %d\n", summary.FilesFound)
		fmt.Fprintf(out, "Would write:    %d worksheet(s)\n", summary.SheetsWritten)
		fmt.Fprintf(out, "Skipped:        %d file(s)\n", summary.FilesFailed)
		fmt.Fprintf(out, "Output file:    %s\n", summary.OutputPath)
		return
	}

	fmt.Fprintf(out, "Success! Combined Excel file saved as: %s\n", summary.OutputPath)

	if verbose {
		fmt.Fprintf(out, "\n=== Merge Complete ===\n")
		fmt.Fprintf(out, "Files found:    %d\n", summary.FilesFound)
		fmt.Fprintf(out, "Sheets written: %d\n", summary.SheetsWritten)
		fmt.Fprintf(out, "Failed:         %d\n", summary.FilesFailed)
		if size, err := utils.GetFileSize(summary.OutputPath); err == nil {
			fmt.Fprintf(out, "Output size:    %d bytes\n", size)
		}
		fmt.Fprintf(out, "Time elapsed:   %s\n", summary.Elapsed)
	}
}

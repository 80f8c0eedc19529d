// =============================================================================
// CSV to Excel Merger - Converter Module
// =============================================================================
//
// This module contains the core merge logic. It orchestrates the entire
// pipeline for one run: validate the input folder, discover the CSV files,
// parse each file, and build the combined workbook.
//
// MERGE PIPELINE:
//   1. Validate the input folder
//   2. Discover the CSV files
//   3. Parse each file and add its worksheet to the workbook
//   4. Save the workbook
//
// FAILURE MODEL:
//   Steps 1, 2 and 4 are fatal: the run produces no output file. Step 3
//   failures are per-file: the file is skipped, recorded in the summary, and
//   the remaining files still merge. Files are processed strictly in
//   discovery order so worksheet order matches file order.
//
// =============================================================================

package converter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ginjaninja78/CSV-to-Excel-merge/internal/csvparser"
	"github.com/ginjaninja78/CSV-to-Excel-merge/internal/types"
	"github.com/ginjaninja78/CSV-to-Excel-merge/internal/validation"
	"github.com/ginjaninja78/CSV-to-Excel-merge/internal/xlsxwriter"
	"github.com/ginjaninja78/CSV-to-Excel-merge/pkg/utils"
)

// DefaultOutputFileName is used when the caller does not name the output
// workbook.
const DefaultOutputFileName = "combined_data.xlsx"

// csvPattern matches the files the merger picks up. Matching is done on the
// file name only; subfolders are never entered.
const csvPattern = "*.csv"

// =============================================================================
// RESULT STRUCTURES
// =============================================================================

// Result represents the outcome of processing a single CSV file.
type Result struct {
	// FilePath is the path to the source file.
	FilePath string

	// SheetName is the worksheet the file was written to.
	// This is empty if processing failed.
	SheetName string

	// Rows is the number of data rows written to the worksheet.
	Rows int

	// Success indicates whether the file produced a worksheet.
	Success bool

	// Error contains the failure if processing failed, as a *FileError.
	// This is nil if processing was successful.
	Error error
}

// FileName returns the base name of the source file.
func (r Result) FileName() string {
	return filepath.Base(r.FilePath)
}

// Cause returns the underlying per-file failure without the FileError
// wrapper, or nil for successful results.
func (r Result) Cause() error {
	if fe, ok := r.Error.(*FileError); ok {
		return fe.Err
	}
	return r.Error
}

// Summary represents the outcome of a whole run.
type Summary struct {
	// RunID is a unique identifier for this run, useful for correlating
	// debug output.
	RunID string

	// FolderPath is the validated input folder.
	FolderPath string

	// OutputPath is the full path of the output workbook.
	OutputPath string

	// DryRun indicates the workbook was planned but not written.
	DryRun bool

	// Results holds the per-file outcomes in processing order.
	Results []Result

	// FilesFound is the number of CSV files discovered.
	FilesFound int

	// SheetsWritten is the number of worksheets in the workbook. In a dry
	// run it is the number that would have been written.
	SheetsWritten int

	// FilesFailed is the number of files that produced no worksheet.
	FilesFailed int

	// Elapsed is the total run duration.
	Elapsed time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter merges the CSV files of one folder into a single workbook.
type Converter struct {
	// folderPath is the input folder as given by the caller.
	folderPath string

	// outputName is the normalized output file name, always ending in
	// .xlsx. The file is created inside folderPath.
	outputName string

	// dryRun skips writing the workbook.
	dryRun bool

	// logger is used for debug logging.
	logger Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger replaces the default console logger.
func WithLogger(logger Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDryRun makes Run stop short of writing the workbook. Discovery,
// parsing and worksheet naming still happen, so the summary shows what a
// real run would produce.
func WithDryRun(dryRun bool) Option {
	return func(c *Converter) {
		c.dryRun = dryRun
	}
}

// New creates a Converter for the CSV files in folderPath.
//
// PARAMETERS:
//   - folderPath: The folder to scan for CSV files. The output workbook is
//     written into this folder as well.
//   - outputFileName: The output file name. An empty name selects
//     DefaultOutputFileName; a name without the .xlsx extension gets it
//     appended.
//   - opts: Optional configuration.
func New(folderPath, outputFileName string, opts ...Option) *Converter {
	if outputFileName == "" {
		outputFileName = DefaultOutputFileName
	}

	c := &Converter{
		folderPath: folderPath,
		outputName: validation.NormalizeOutputFileName(outputFileName),
		logger:     NewConsoleLogger(false),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the merge pipeline.
//
// RETURNS:
//   - A Summary of the run, and the fatal error if the run aborted.
//
// A missing folder or a folder without CSV files returns a nil Summary and
// an error satisfying IsNotFound. A failed save returns the error together
// with the Summary collected so far, so callers can still report which
// files had already failed. Per-file failures alone never produce an error;
// they are visible in the Summary only.
func (c *Converter) Run() (*Summary, error) {
	startTime := time.Now()
	runID := uuid.New().String()

	c.logger.Debug("run %s: merging CSV files from '%s'", runID, c.folderPath)

	// =========================================================================
	// STEP 1: VALIDATE INPUT FOLDER
	// =========================================================================
	// The folder must exist and actually be a folder before anything else
	// happens.

	folder, err := c.validateFolder()
	if err != nil {
		return nil, err
	}

	// =========================================================================
	// STEP 2: DISCOVER CSV FILES
	// =========================================================================
	// Collect the *.csv files of the folder, top level only. An empty
	// result is fatal: there is nothing to merge.

	files, err := utils.DiscoverFiles(folder, csvPattern)
	if err != nil {
		return nil, fmt.Errorf("failed to scan folder '%s': %w", folder, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in '%s'", ErrNoCSVFiles, folder)
	}

	c.logger.Debug("run %s: found %d CSV file(s)", runID, len(files))

	// =========================================================================
	// STEP 3: BUILD THE WORKBOOK
	// =========================================================================
	// One worksheet per file, in discovery order. A file that fails to
	// parse or to write is recorded and skipped; the loop never aborts.

	outputPath := filepath.Join(folder, c.outputName)
	workbook := xlsxwriter.New(outputPath)
	defer workbook.Close()

	names := validation.NewNameRegistry()
	results := make([]Result, 0, len(files))

	for _, path := range files {
		results = append(results, c.processFile(workbook, names, path))
	}

	summary := &Summary{
		RunID:      runID,
		FolderPath: folder,
		OutputPath: outputPath,
		DryRun:     c.dryRun,
		Results:    results,
		FilesFound: len(files),
	}
	for _, result := range results {
		if result.Success {
			summary.SheetsWritten++
		} else {
			summary.FilesFailed++
		}
	}

	// =========================================================================
	// STEP 4: SAVE THE WORKBOOK
	// =========================================================================
	// The output file is written exactly once, here. Saving replaces any
	// previous workbook at the output path. A save failure is fatal, and
	// so is a workbook with no worksheets at all.

	if c.dryRun {
		c.logger.Debug("run %s: dry run, workbook not written", runID)
		summary.Elapsed = time.Since(startTime)
		return summary, nil
	}

	if err := workbook.Save(); err != nil {
		summary.Elapsed = time.Since(startTime)
		return summary, fmt.Errorf("error creating Excel file: %w", err)
	}

	c.logger.Debug("run %s: saved %d worksheet(s) to '%s'", runID, summary.SheetsWritten, outputPath)

	summary.Elapsed = time.Since(startTime)
	return summary, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// validateFolder checks that the input folder exists and is a directory.
//
// RETURNS:
//   - The cleaned folder path.
//   - An error wrapping ErrFolderNotFound if the path is missing or not a
//     directory.
func (c *Converter) validateFolder() (string, error) {
	folder := filepath.Clean(c.folderPath)

	info, err := os.Stat(folder)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("'%s': %w", folder, ErrFolderNotFound)
		}
		return "", fmt.Errorf("failed to access '%s': %w", folder, err)
	}

	if !info.IsDir() {
		return "", fmt.Errorf("'%s': %w", folder, ErrFolderNotFound)
	}

	return folder, nil
}

// processFile parses one CSV file and adds its worksheet to the workbook.
// All failures are captured in the returned Result; this function never
// aborts the run.
func (c *Converter) processFile(workbook *xlsxwriter.Writer, names *validation.NameRegistry, path string) Result {
	source := types.SourceFile{Path: path}
	result := Result{FilePath: path}

	table, err := csvparser.Parse(path)
	if err != nil {
		result.Error = &FileError{File: source.Name(), Err: err}
		c.logger.Debug("skipping '%s': %v", source.Name(), err)
		return result
	}

	// The worksheet name comes from the file stem, sanitized and made
	// unique within this workbook. A file that fails from here on releases
	// its claim, so the name stays available for a later file.
	sheetName := names.Claim(validation.SheetName(source.Stem()))
	if sheetName == "" {
		names.Release(sheetName)
		result.Error = &FileError{File: source.Name(), Err: fmt.Errorf("file name '%s' yields an empty worksheet name", source.Name())}
		c.logger.Debug("skipping '%s': empty worksheet name", source.Name())
		return result
	}

	if !c.dryRun {
		if err := workbook.AddSheet(sheetName, table); err != nil {
			names.Release(sheetName)
			result.Error = &FileError{File: source.Name(), Err: err}
			c.logger.Debug("skipping '%s': %v", source.Name(), err)
			return result
		}
	}

	result.SheetName = sheetName
	result.Rows = table.RowCount
	result.Success = true
	c.logger.Debug("added sheet '%s' (%d rows) from '%s'", sheetName, table.RowCount, source.Name())

	return result
}

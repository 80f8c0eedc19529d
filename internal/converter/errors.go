// =============================================================================
// CSV to Excel Merger - Error Types
// =============================================================================
//
// Failures split into two classes. Fatal errors abort the run before any
// output is written: the input folder is missing, no CSV files are found, or
// the finished workbook cannot be saved. Per-file errors never abort the
// run; the offending file simply contributes no worksheet and the failure is
// reported in the run summary.
//
// =============================================================================

package converter

import (
	"errors"
	"fmt"
)

// ErrFolderNotFound indicates the input folder does not exist or is not a
// directory.
var ErrFolderNotFound = errors.New("folder does not exist")

// ErrNoCSVFiles indicates the input folder contains no CSV files.
var ErrNoCSVFiles = errors.New("no CSV files found")

// IsNotFound reports whether err is one of the "nothing to merge" failures:
// a missing input folder or a folder without CSV files. Both abort the run
// before any output is written.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrFolderNotFound) || errors.Is(err, ErrNoCSVFiles)
}

// FileError records the failure of a single source file.
type FileError struct {
	// File is the base name of the failing file.
	File string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *FileError) Error() string {
	return fmt.Sprintf("error processing '%s': %v", e.File, e.Err)
}

// Unwrap returns the underlying cause, so errors.Is and errors.As see
// through the per-file wrapper.
func (e *FileError) Unwrap() error {
	return e.Err
}

// =============================================================================
// CSV to Excel Merger - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - converter
//   - csvparser
//   - xlsxwriter
//
// =============================================================================

package types

import (
	"path/filepath"
	"strings"
)

// =============================================================================
// SOURCE FILE
// =============================================================================

// SourceFile represents a single CSV file discovered in the input folder.
type SourceFile struct {
	// Path is the file path exactly as returned by folder enumeration.
	Path string
}

// Name returns the base name of the file, including the extension.
func (s SourceFile) Name() string {
	return filepath.Base(s.Path)
}

// Stem returns the base name of the file without its extension.
// A file named "sales_2024.csv" has the stem "sales_2024". The stem is the
// raw material for the worksheet name of the file.
func (s SourceFile) Stem() string {
	name := s.Name()
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// =============================================================================
// TABLE
// =============================================================================

// Table represents the parsed contents of one CSV file.
type Table struct {
	// Headers contains the column headers from the CSV header row, in order.
	// Blank headers are replaced with generated names and duplicate headers
	// are suffixed, so every entry is unique and non-empty.
	Headers []string

	// Rows contains the data rows as maps of header -> value.
	// Using maps allows for easy field access by name.
	Rows []map[string]string

	// SourceFile is the path to the CSV file this table was parsed from.
	// Useful for error reporting.
	SourceFile string

	// RowCount is the total number of data rows (excluding the header).
	RowCount int

	// ColumnCount is the number of columns in the CSV.
	ColumnCount int
}

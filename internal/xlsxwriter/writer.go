// =============================================================================
// CSV to Excel Merger - XLSX Workbook Writer
// =============================================================================
//
// This module builds the combined output workbook. Each parsed CSV table
// becomes one worksheet: the header row first, then the data rows in file
// order. No index or row-number column is written.
//
// WORKBOOK LIFECYCLE:
//   A new workbook starts with one default worksheet. The first table takes
//   that sheet over (rename), every following table gets a fresh sheet. The
//   workbook is held in memory and written to disk exactly once, by Save;
//   nothing touches the output path before that.
//
// CELL TYPES:
//   CSV fields are plain text. Values that parse as integers or decimal
//   numbers are written as numeric cells so spreadsheet formulas work on
//   them; everything else is written as text.
//
// =============================================================================

package xlsxwriter

import (
	"fmt"
	"math"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/CSV-to-Excel-merge/internal/types"
)

// =============================================================================
// WRITER
// =============================================================================

// Writer accumulates worksheets for one output workbook.
type Writer struct {
	file   *excelize.File
	path   string
	sheets int
}

// New creates a Writer that will save the workbook to path.
func New(path string) *Writer {
	return &Writer{
		file: excelize.NewFile(),
		path: path,
	}
}

// Path returns the path the workbook will be saved to.
func (w *Writer) Path() string {
	return w.path
}

// SheetCount returns the number of worksheets added so far.
func (w *Writer) SheetCount() int {
	return w.sheets
}

// AddSheet appends a worksheet named name containing the table.
//
// PARAMETERS:
//   - name: The worksheet name. Must satisfy the xlsx naming rules and be
//     unique within the workbook; callers derive it via the validation
//     package, which guarantees both.
//   - table: The parsed CSV table to write.
//
// RETURNS:
//   - An error if the sheet cannot be created or a row cannot be written.
//     A rejected name fails before anything is written, leaving the
//     workbook unchanged and usable for further AddSheet calls.
func (w *Writer) AddSheet(name string, table *types.Table) error {
	if w.sheets == 0 {
		// Take over the default sheet the new workbook starts with, so
		// the output does not carry an empty "Sheet1" around.
		if err := w.file.SetSheetName(w.file.GetSheetName(0), name); err != nil {
			return fmt.Errorf("failed to create sheet '%s': %w", name, err)
		}
	} else {
		if _, err := w.file.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet '%s': %w", name, err)
		}
	}

	// Header row.
	header := make([]interface{}, len(table.Headers))
	for i, h := range table.Headers {
		header[i] = h
	}
	if err := w.file.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	// Data rows, in table order, starting at row 2.
	for rowIndex, row := range table.Rows {
		cells := make([]interface{}, len(table.Headers))
		for colIndex, headerName := range table.Headers {
			cells[colIndex] = cellValue(row[headerName])
		}

		cell, err := excelize.CoordinatesToCellName(1, rowIndex+2)
		if err != nil {
			return fmt.Errorf("failed to locate row %d: %w", rowIndex+2, err)
		}
		if err := w.file.SetSheetRow(name, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", rowIndex+2, err)
		}
	}

	w.sheets++
	return nil
}

// Save writes the workbook to disk, replacing any existing file at the
// output path. It refuses to write a workbook with no worksheets: a run in
// which every source file failed must not leave an empty workbook behind.
func (w *Writer) Save() error {
	if w.sheets == 0 {
		return fmt.Errorf("no worksheets were created")
	}
	if err := w.file.SaveAs(w.path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// Close releases the in-memory workbook. It is safe to call after Save and
// after failed AddSheet calls.
func (w *Writer) Close() error {
	return w.file.Close()
}

// =============================================================================
// CELL VALUE CONVERSION
// =============================================================================

// cellValue converts a CSV field to the value written into its cell.
// Integer and decimal strings become numeric cells; NaN and infinities are
// not representable as xlsx numbers and stay text, as does everything else.
func cellValue(s string) interface{} {
	if s == "" {
		return ""
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return s
		}
		return f
	}

	return s
}

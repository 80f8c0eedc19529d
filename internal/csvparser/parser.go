// =============================================================================
// CSV to Excel Merger - CSV Parser Module
// =============================================================================
//
// This module is responsible for parsing the source CSV files. The merger
// accepts one fixed dialect:
//   - Comma delimiter
//   - One header row, data from the second row onward
//   - Quoted fields with embedded commas and newlines
//
// The reader is deliberately lenient: variable field counts and sloppy quotes
// are accepted so that a ragged export still produces a worksheet. A file
// only fails parsing when it cannot be read at all or contains no rows.
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/ginjaninja78/CSV-to-Excel-merge/internal/types"
)

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads a CSV file and returns the parsed table.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//
// RETURNS:
//   - A pointer to the Table containing headers and data rows.
//   - An error if the file cannot be read, cannot be parsed, or is empty.
//
// PARSING PROCESS:
//   1. Open the file
//   2. Read all rows with the lenient reader configuration
//   3. Clean the header row (trim, name blank columns, deduplicate)
//   4. Convert each data row to a map of header -> value
func Parse(filePath string) (*types.Table, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	csvReader := csv.NewReader(bufio.NewReader(file))
	configureReader(csvReader)

	allRows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	// A file with no rows at all cannot produce a worksheet.
	if len(allRows) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	headers := cleanHeaders(allRows[0])
	dataRows := extractDataRows(allRows, headers)

	table := &types.Table{
		Headers:     headers,
		Rows:        dataRows,
		SourceFile:  filePath,
		RowCount:    len(dataRows),
		ColumnCount: len(headers),
	}

	return table, nil
}

// configureReader applies the merger's reader configuration.
func configureReader(reader *csv.Reader) {
	reader.Comma = ','

	// Allow variable number of fields per row.
	// This is useful for CSVs with inconsistent column counts.
	reader.FieldsPerRecord = -1

	// Allow lazy quotes (quotes that don't follow strict CSV rules).
	reader.LazyQuotes = true

	// Trim leading space from fields.
	reader.TrimLeadingSpace = true
}

// cleanHeaders cleans and normalizes the header row.
//
// CLEANING OPERATIONS:
//   - Trim whitespace
//   - Replace blank headers with a generated "Column_N" name
//   - Suffix duplicate headers with the first free numeric suffix so no
//     column is lost when rows are converted to maps
func cleanHeaders(raw []string) []string {
	cleaned := make([]string, len(raw))
	used := make(map[string]bool)

	for i, header := range raw {
		header = strings.TrimSpace(header)

		if header == "" {
			header = fmt.Sprintf("Column_%d", i+1)
		}

		name := header
		for n := 2; used[name]; n++ {
			name = fmt.Sprintf("%s_%d", header, n)
		}

		used[name] = true
		cleaned[i] = name
	}

	return cleaned
}

// extractDataRows converts the data rows to maps keyed by header.
// Rows shorter than the header are padded with empty values; cells beyond
// the last header are dropped. Fully empty rows are skipped.
func extractDataRows(allRows [][]string, headers []string) []map[string]string {
	dataRows := make([]map[string]string, 0, len(allRows)-1)

	for _, row := range allRows[1:] {
		if isRowEmpty(row) {
			continue
		}

		rowMap := make(map[string]string, len(headers))
		for colIndex, header := range headers {
			if colIndex < len(row) {
				rowMap[header] = row[colIndex]
			} else {
				rowMap[header] = ""
			}
		}

		dataRows = append(dataRows, rowMap)
	}

	return dataRows
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

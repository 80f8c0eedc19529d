// =============================================================================
// CSV to Excel Merger - Naming Rules
// =============================================================================
//
// This module provides the pure naming rules the merger applies before any
// file is touched:
//   - Output file name normalization (canonical .xlsx extension)
//   - Worksheet name derivation from a source file stem (length limit and
//     forbidden character set of the xlsx format)
//   - Worksheet name collision handling within a single workbook
//
// WORKSHEET NAME RULES:
//   A worksheet name may be at most 31 characters long and may not contain
//   any of: [ ] * ? : / \
//   The name is derived from the source file's stem by truncating to the
//   length limit first and then replacing each forbidden character with an
//   underscore.
//
// COLLISION HANDLING:
//   Worksheet names are unique per workbook, case-insensitively. When two
//   source files sanitize to the same name, later claims receive a numeric
//   suffix (_2, _3, ...) and the base is re-truncated so the suffixed name
//   still fits within the length limit.
//
// =============================================================================

package validation

import (
	"strconv"
	"strings"
)

// =============================================================================
// CONSTANTS
// =============================================================================

// SheetNameMaxLength is the maximum worksheet name length the xlsx format
// allows.
const SheetNameMaxLength = 31

// OutputExtension is the canonical extension of the output workbook.
const OutputExtension = ".xlsx"

// invalidSheetChars are the characters the xlsx format forbids in worksheet
// names. Each occurrence is replaced with an underscore.
const invalidSheetChars = `[]*?:/\`

// =============================================================================
// OUTPUT FILE NAME
// =============================================================================

// NormalizeOutputFileName ensures the output file name carries the canonical
// .xlsx extension. Names that already end in ".xlsx" are returned unchanged;
// anything else gets the extension appended. The check is case-sensitive, so
// "report.XLSX" becomes "report.XLSX.xlsx".
func NormalizeOutputFileName(name string) string {
	if !strings.HasSuffix(name, OutputExtension) {
		return name + OutputExtension
	}
	return name
}

// =============================================================================
// WORKSHEET NAMES
// =============================================================================

// SheetName derives a worksheet name from a source file stem. The stem is
// truncated to SheetNameMaxLength characters first, then every forbidden
// character in the truncated result is replaced with an underscore. The
// order matters: truncation never re-exposes characters that replacement
// already handled, and the result always fits the length limit.
func SheetName(stem string) string {
	name := truncate(stem, SheetNameMaxLength)
	for _, ch := range invalidSheetChars {
		name = strings.ReplaceAll(name, string(ch), "_")
	}
	return name
}

// truncate shortens s to at most max characters. Truncation operates on
// runes, not bytes, so multi-byte characters are never split in half.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// =============================================================================
// NAME REGISTRY
// =============================================================================

// NameRegistry tracks the worksheet names already used in a workbook and
// resolves collisions. Names are compared case-insensitively because the
// xlsx format treats "Sales" and "SALES" as the same worksheet.
type NameRegistry struct {
	used map[string]struct{}
}

// NewNameRegistry creates an empty registry for a new workbook.
func NewNameRegistry() *NameRegistry {
	return &NameRegistry{
		used: make(map[string]struct{}),
	}
}

// Claim reserves name in the registry and returns the name to use. If the
// name is free it is returned as-is. If it is already taken, Claim appends
// the first free numeric suffix (_2, _3, ...), re-truncating the base so the
// suffixed name still fits SheetNameMaxLength.
func (r *NameRegistry) Claim(name string) string {
	if r.reserve(name) {
		return name
	}

	for n := 2; ; n++ {
		suffix := "_" + strconv.Itoa(n)
		base := truncate(name, SheetNameMaxLength-len(suffix))
		candidate := base + suffix
		if r.reserve(candidate) {
			return candidate
		}
	}
}

// Release frees a previously claimed name. A file that fails after its name
// was claimed releases it, so a later file with the same name does not get a
// needless suffix.
func (r *NameRegistry) Release(name string) {
	delete(r.used, strings.ToLower(name))
}

// reserve marks name as used and reports whether it was free.
func (r *NameRegistry) reserve(name string) bool {
	key := strings.ToLower(name)
	if _, taken := r.used[key]; taken {
		return false
	}
	r.used[key] = struct{}{}
	return true
}

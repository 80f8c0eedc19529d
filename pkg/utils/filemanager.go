// =============================================================================
// CSV to Excel Merger - File Utilities
// =============================================================================
//
// This module provides the file discovery and inspection helpers used by the
// merger. Discovery is deliberately flat: only the top level of the input
// folder is scanned, subfolders and hidden files are ignored.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// =============================================================================
// FILE DISCOVERY
// =============================================================================

// DiscoverFiles scans a directory for files matching the pattern.
//
// PARAMETERS:
//   - dir: The directory to scan. Subdirectories are not entered. The path
//     is taken literally; a folder named "data [2024]" is read as-is.
//   - pattern: A glob pattern matched against each file name (e.g.,
//     "*.csv"). If empty, defaults to "*.csv".
//
// RETURNS:
//   - The matching file paths, in name-sorted directory order.
//   - An error if the directory cannot be read or the pattern is malformed.
//
// The pattern is applied per name, never to the directory path, so glob
// metacharacters in the folder name cannot redirect discovery to a sibling
// folder. Directories that happen to match the pattern are filtered out, as
// are hidden files (names starting with a dot).
func DiscoverFiles(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = "*.csv"
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory: %w", err)
	}

	var result []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		matched, err := filepath.Match(pattern, name)
		if err != nil {
			return nil, fmt.Errorf("invalid file pattern '%s': %w", pattern, err)
		}
		if !matched {
			continue
		}

		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			result = append(result, path)
		}
	}

	return result, nil
}

// =============================================================================
// FILE INSPECTION
// =============================================================================

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// GetFileSize returns the size of a file in bytes.
func GetFileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

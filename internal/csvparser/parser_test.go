package csvparser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeCSV writes content to a file in dir and returns its path.
func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParse(t *testing.T) {
	dir := t.TempDir()

	t.Run("basic file", func(t *testing.T) {
		path := writeCSV(t, dir, "basic.csv", "id,name,amount\n1,Alice,10.50\n2,Bob,20\n")

		table, err := Parse(path)
		require.NoError(t, err)

		assert.Equal(t, []string{"id", "name", "amount"}, table.Headers)
		assert.Equal(t, 2, table.RowCount)
		assert.Equal(t, 3, table.ColumnCount)
		assert.Equal(t, path, table.SourceFile)
		assert.Equal(t, "Alice", table.Rows[0]["name"])
		assert.Equal(t, "20", table.Rows[1]["amount"])
	})

	t.Run("quoted fields keep commas and newlines", func(t *testing.T) {
		path := writeCSV(t, dir, "quoted.csv", "id,note\n1,\"hello, world\"\n2,\"line1\nline2\"\n")

		table, err := Parse(path)
		require.NoError(t, err)

		require.Equal(t, 2, table.RowCount)
		assert.Equal(t, "hello, world", table.Rows[0]["note"])
		assert.Equal(t, "line1\nline2", table.Rows[1]["note"])
	})

	t.Run("header only file has zero rows", func(t *testing.T) {
		path := writeCSV(t, dir, "headeronly.csv", "id,name\n")

		table, err := Parse(path)
		require.NoError(t, err)

		assert.Equal(t, []string{"id", "name"}, table.Headers)
		assert.Equal(t, 0, table.RowCount)
		assert.Empty(t, table.Rows)
	})

	t.Run("zero byte file fails", func(t *testing.T) {
		path := writeCSV(t, dir, "empty.csv", "")

		_, err := Parse(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty")
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := Parse(filepath.Join(dir, "does-not-exist.csv"))
		require.Error(t, err)
	})
}

func TestParseHeaderCleaning(t *testing.T) {
	dir := t.TempDir()

	t.Run("blank headers get generated names", func(t *testing.T) {
		path := writeCSV(t, dir, "blanks.csv", "id,,amount\n1,x,2\n")

		table, err := Parse(path)
		require.NoError(t, err)

		assert.Equal(t, []string{"id", "Column_2", "amount"}, table.Headers)
		assert.Equal(t, "x", table.Rows[0]["Column_2"])
	})

	t.Run("duplicate headers are suffixed", func(t *testing.T) {
		path := writeCSV(t, dir, "dupes.csv", "id,amount,amount\n1,first,second\n")

		table, err := Parse(path)
		require.NoError(t, err)

		assert.Equal(t, []string{"id", "amount", "amount_2"}, table.Headers)
		assert.Equal(t, "first", table.Rows[0]["amount"])
		assert.Equal(t, "second", table.Rows[0]["amount_2"])
	})

	t.Run("suffix skips names already present in the header", func(t *testing.T) {
		path := writeCSV(t, dir, "tricky.csv", "a,a_2,a\n1,2,3\n")

		table, err := Parse(path)
		require.NoError(t, err)

		assert.Equal(t, []string{"a", "a_2", "a_3"}, table.Headers)
		assert.Equal(t, "3", table.Rows[0]["a_3"])
	})

	t.Run("surrounding whitespace is trimmed from headers", func(t *testing.T) {
		path := writeCSV(t, dir, "padded.csv", "id , name\n1,Alice\n")

		table, err := Parse(path)
		require.NoError(t, err)

		assert.Equal(t, []string{"id", "name"}, table.Headers)
	})
}

func TestParseRaggedRows(t *testing.T) {
	dir := t.TempDir()

	t.Run("short rows are padded with empty values", func(t *testing.T) {
		path := writeCSV(t, dir, "short.csv", "id,name,amount\n1,Alice\n")

		table, err := Parse(path)
		require.NoError(t, err)

		require.Equal(t, 1, table.RowCount)
		assert.Equal(t, "Alice", table.Rows[0]["name"])
		assert.Equal(t, "", table.Rows[0]["amount"])
	})

	t.Run("extra cells beyond the header are dropped", func(t *testing.T) {
		path := writeCSV(t, dir, "long.csv", "id,name\n1,Alice,overflow\n")

		table, err := Parse(path)
		require.NoError(t, err)

		require.Equal(t, 1, table.RowCount)
		assert.Len(t, table.Rows[0], 2)
	})

	t.Run("blank and empty rows are skipped", func(t *testing.T) {
		// The first blank line is dropped by the reader itself; the
		// commas-only row comes through as empty cells and is dropped
		// by the row filter.
		path := writeCSV(t, dir, "blanklines.csv", "id,name\n1,Alice\n\n,\n2,Bob\n")

		table, err := Parse(path)
		require.NoError(t, err)

		assert.Equal(t, 2, table.RowCount)
	})
}

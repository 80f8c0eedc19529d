package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// chdir switches the test into dir and restores the previous working
// directory on cleanup. It stands in for testing.T.Chdir, which requires a
// Go 1.24 toolchain; dir must be absolute, which t.TempDir guarantees.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			panic("chdir: " + err.Error())
		}
	})
}

func TestLoadMainConfig(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		path := writeConfig(t, `
input_dir: ./exports
output_file_name: merged.xlsx
log_level: debug
`)

		cfg, err := LoadMainConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "./exports", cfg.InputDir)
		assert.Equal(t, "merged.xlsx", cfg.OutputFileName)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("partial file gets defaults", func(t *testing.T) {
		path := writeConfig(t, "input_dir: ./exports\n")

		cfg, err := LoadMainConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "./exports", cfg.InputDir)
		assert.Equal(t, "", cfg.OutputFileName)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("missing default file falls back to defaults", func(t *testing.T) {
		chdir(t, t.TempDir())

		cfg, err := LoadMainConfig(DefaultConfigFile)
		require.NoError(t, err)

		assert.Equal(t, "", cfg.InputDir)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("missing explicit file fails", func(t *testing.T) {
		_, err := LoadMainConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("malformed yaml fails", func(t *testing.T) {
		path := writeConfig(t, "input_dir: [unclosed\n")

		_, err := LoadMainConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("invalid log level fails", func(t *testing.T) {
		path := writeConfig(t, "log_level: loud\n")

		_, err := LoadMainConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log_level")
	})
}

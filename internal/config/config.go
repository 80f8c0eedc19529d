// =============================================================================
// CSV to Excel Merger - Configuration Module
// =============================================================================
//
// This module loads the optional application configuration. The merger works
// without any configuration file at all; config.yaml only pre-answers the
// questions the CLI would otherwise ask (which folder, which output name)
// and tunes logging.
//
// PRECEDENCE:
//   Command-line arguments and flags beat config values, config values beat
//   interactive prompts and built-in defaults. The precedence is applied by
//   the CLI layer; this module only loads and validates the file.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file looked up when the user does
// not pass --config. It is allowed to be absent.
const DefaultConfigFile = "config.yaml"

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the application configuration.
// This is loaded from config.yaml (or the file named by --config).
type MainConfig struct {
	// InputDir is the folder scanned for CSV files. When set, the CLI
	// does not prompt for a folder.
	// Default: "" (unset, the CLI asks or uses its argument)
	InputDir string `yaml:"input_dir"`

	// OutputFileName is the name of the combined workbook, created inside
	// the input folder. A name without the .xlsx extension gets it
	// appended. When set, the CLI does not prompt for a name.
	// Default: "" (unset)
	OutputFileName string `yaml:"output_file_name"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// "debug" has the same effect as the --verbose flag.
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// LoadMainConfig loads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file.
//
// RETURNS:
//   - A pointer to the MainConfig struct.
//   - An error if the file cannot be read or parsed.
//
// A missing file is only an error when the caller asked for a specific
// file. The default config.yaml is optional, so a merger run in a folder
// without one falls back to pure defaults.
func LoadMainConfig(configPath string) (*MainConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) && configPath == DefaultConfigFile {
			config := &MainConfig{}
			applyMainConfigDefaults(config)
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config MainConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyMainConfigDefaults(&config)

	if err := validateMainConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyMainConfigDefaults sets default values for any unset configuration
// options.
func applyMainConfigDefaults(config *MainConfig) {
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
}

// validateMainConfig validates the configuration.
func validateMainConfig(config *MainConfig) error {
	switch config.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level '%s' (valid: debug, info, warn, error)", config.LogLevel)
	}

	return nil
}

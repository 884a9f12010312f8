// File: config.go
// Title: Application Configuration
// Description: Loads the application configuration from a TOML or YAML
//              file, detected by extension, with built-in defaults and
//              environment variable overrides.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// envPrefix is prepended to upper-cased field names for environment
// overrides, e.g. TUTORBASE_DATA_PATH.
const envPrefix = "TUTORBASE_"

// Config holds the runtime settings of the application.
type Config struct {
	// DataPath is the SQLite database file. An empty value disables
	// persistence.
	DataPath string `toml:"data_path" yaml:"data_path"`

	// LogFile receives structured logs during interactive shell runs.
	LogFile string `toml:"log_file" yaml:"log_file"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// Default returns the built-in configuration, rooted in the user's home
// directory.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	dir := filepath.Join(home, ".tutorbase")
	return Config{
		DataPath: filepath.Join(dir, "tutorbase.db"),
		LogFile:  filepath.Join(dir, "tutorbase.log"),
		LogLevel: "info",
	}
}

// Load reads the configuration file at path on top of the defaults and
// applies environment overrides last. An empty path skips the file and
// uses defaults plus environment only.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

// loadFile parses the file into cfg, choosing the decoder by extension.
// TOML is the default for unknown extensions.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parsing YAML config %s: %w", path, err)
		}
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parsing TOML config %s: %w", path, err)
		}
	}
	return nil
}

// applyEnv overrides cfg fields from TUTORBASE_* environment variables.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(envPrefix + "DATA_PATH"); ok {
		cfg.DataPath = v
	}
	if v, ok := os.LookupEnv(envPrefix + "LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := os.LookupEnv(envPrefix + "LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
}

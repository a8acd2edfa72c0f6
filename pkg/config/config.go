// Package config loads optional user configuration for the installer.
// Configuration is read-only: the installer never writes config or any other
// state of its own.
package config

import (
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/clyp-lang/clyp-installer/pkg/errors"
)

// Config represents the application configuration.
type Config struct {
	Settings Settings `yaml:"settings"`
}

// Settings represents general application settings. Command-line flags take
// precedence over everything here.
type Settings struct {
	// PythonPath pins the interpreter to use, like the --python flag.
	PythonPath string `yaml:"python_path,omitempty"`

	// Version pins the package version to install, like the --version flag.
	Version string `yaml:"version,omitempty"`

	// Output settings
	NoColor  bool   `yaml:"no_color,omitempty"`
	LogLevel string `yaml:"log_level"` // error, warn, info, debug
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Settings: Settings{
			LogLevel: "info",
		},
	}
}

// LoadConfig loads configuration from a file. A missing file is not an
// error; defaults are returned instead.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to open config file: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config data")
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrConfigValidation, err.Error())
	}

	return &config, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.Settings.LogLevel {
	case "", "error", "warn", "warning", "info", "debug":
		return nil
	default:
		return errors.Wrapf(errors.ErrConfigValidation, "unknown log level: %s", c.Settings.LogLevel)
	}
}

// GetDefaultConfigPath returns the default path for the configuration file.
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user config directory")
	}

	return filepath.Join(configDir, "clyp-installer", "config.yaml"), nil
}

func (c *Config) applyDefaults() {
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = "info"
	}
}

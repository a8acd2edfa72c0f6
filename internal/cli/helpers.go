package cli

import (
	"github.com/gookit/color"

	"github.com/clyp-lang/clyp-installer/internal/logger"
	"github.com/clyp-lang/clyp-installer/pkg/config"
	"github.com/clyp-lang/clyp-installer/pkg/errors"
)

// These variables will be set by the main package
var (
	ConfigPath *string
	Verbose    *bool
	NoColor    *bool
)

// loadConfig loads the configuration honoring the --config flag, then applies
// the global output flags on top of it.
func loadConfig() (*config.Config, error) {
	configPath := ""
	if ConfigPath != nil {
		configPath = *ConfigPath
	}

	var cfg *config.Config
	var err error

	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
	} else {
		defaultPath, pathErr := config.GetDefaultConfigPath()
		if pathErr != nil {
			return nil, errors.Wrap(pathErr, "failed to get default config path")
		}
		cfg, err = config.LoadConfig(defaultPath)
	}

	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	// Override config with CLI flags if provided
	if NoColor != nil && *NoColor {
		cfg.Settings.NoColor = true
	}
	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}

	logger.InitLogger(cfg.Settings.LogLevel)
	if cfg.Settings.NoColor {
		color.Disable()
	}

	return cfg, nil
}

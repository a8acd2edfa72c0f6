package errors

import "fmt"

// Common error types.
var (
	// Config errors.
	ErrEmptyConfigPath   = fmt.Errorf("config file path cannot be empty")
	ErrInvalidConfigPath = fmt.Errorf("invalid config file path")
	ErrConfigParse       = fmt.Errorf("failed to parse config")
	ErrConfigValidation  = fmt.Errorf("invalid configuration")

	// Interpreter errors.
	ErrPythonNotFound = fmt.Errorf("python interpreter not found")
	ErrPipMissing     = fmt.Errorf("pip is not available for the selected interpreter")

	// Package-manager errors.
	ErrPipInstall   = fmt.Errorf("pip install failed")
	ErrPipUninstall = fmt.Errorf("pip uninstall failed")

	// Build errors.
	ErrToolchainMissing = fmt.Errorf("compiler toolchain is not invocable")
	ErrCompileFailed    = fmt.Errorf("compilation failed")

	// Flag validation errors.
	ErrValidation = fmt.Errorf("validation error")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Package pip drives the pip (and, as a fallback, uv) invocations that
// install or remove the clyp package for a chosen interpreter.
package pip

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	goversion "github.com/hashicorp/go-version"

	"github.com/clyp-lang/clyp-installer/internal/logger"
	"github.com/clyp-lang/clyp-installer/pkg/errors"
	"github.com/clyp-lang/clyp-installer/pkg/pyenv"
	"github.com/clyp-lang/clyp-installer/pkg/runner"
)

// PackageName is the single package this tool manages.
const PackageName = "clyp"

// Manager shells out to pip for the install/uninstall actions.
type Manager struct {
	run    runner.Runner
	stdout io.Writer
	stderr io.Writer
}

// NewManager creates a manager that streams pip output to the process streams.
func NewManager(run runner.Runner) *Manager {
	return &Manager{run: run, stdout: os.Stdout, stderr: os.Stderr}
}

// NewManagerWithOutput creates a manager with explicit output streams.
func NewManagerWithOutput(run runner.Runner, stdout, stderr io.Writer) *Manager {
	return &Manager{run: run, stdout: stdout, stderr: stderr}
}

// InstallOptions describe a single install action.
type InstallOptions struct {
	Interpreter pyenv.Interpreter
	// Version pins the package version; empty means latest.
	Version string
}

// UninstallOptions describe a single uninstall action.
type UninstallOptions struct {
	Interpreter pyenv.Interpreter
}

// Requirement returns the pip requirement specifier for the given pin.
func Requirement(pin string) string {
	if pin == "" {
		return PackageName
	}
	return fmt.Sprintf("%s==%s", PackageName, pin)
}

// Install runs `<python> -m pip install clyp[==version]`. A non-zero pip exit
// surfaces pip's own stderr; pip remains authoritative for version errors.
func (m *Manager) Install(ctx context.Context, opts InstallOptions) error {
	if opts.Version != "" {
		if _, err := goversion.NewVersion(opts.Version); err != nil {
			// Not fatal: pip accepts specifiers go-version does not.
			logger.Warn("version pin does not look like a release version", logger.Fields{
				"version": opts.Version,
			})
		}
	}

	req := Requirement(opts.Version)
	logger.Debug("running pip install", logger.Fields{
		"python":      opts.Interpreter.Path,
		"requirement": req,
	})

	result, err := m.run.RunStream(ctx, m.stdout, m.stderr, opts.Interpreter.Path, "-m", "pip", "install", req)
	if err != nil {
		return errors.Wrap(errors.ErrPipInstall, err.Error())
	}
	if !result.Success() {
		return &errors.ExitError{
			Code: result.ExitCode,
			Err:  errors.Wrapf(errors.ErrPipInstall, "pip exited with code %d: %s", result.ExitCode, strings.TrimSpace(result.Stderr)),
		}
	}
	return nil
}

// InstallWithUV retries the install through `<python> -m uv pip install`. Used
// only for virtualenv interpreters where uv is present and pip came up empty.
func (m *Manager) InstallWithUV(ctx context.Context, opts InstallOptions) error {
	req := Requirement(opts.Version)
	logger.Debug("running uv pip install", logger.Fields{
		"python":      opts.Interpreter.Path,
		"requirement": req,
	})

	result, err := m.run.RunStream(ctx, m.stdout, m.stderr, opts.Interpreter.Path, "-m", "uv", "pip", "install", req)
	if err != nil {
		return errors.Wrap(errors.ErrPipInstall, err.Error())
	}
	if !result.Success() {
		return &errors.ExitError{
			Code: result.ExitCode,
			Err:  errors.Wrapf(errors.ErrPipInstall, "uv exited with code %d: %s", result.ExitCode, strings.TrimSpace(result.Stderr)),
		}
	}
	return nil
}

// Uninstall runs `<python> -m pip uninstall -y clyp`. Confirmation has already
// happened (or been waived) at the CLI layer, so -y is always passed.
func (m *Manager) Uninstall(ctx context.Context, opts UninstallOptions) error {
	logger.Debug("running pip uninstall", logger.Fields{
		"python": opts.Interpreter.Path,
	})

	result, err := m.run.RunStream(ctx, m.stdout, m.stderr, opts.Interpreter.Path, "-m", "pip", "uninstall", "-y", PackageName)
	if err != nil {
		return errors.Wrap(errors.ErrPipUninstall, err.Error())
	}
	if !result.Success() {
		return &errors.ExitError{
			Code: result.ExitCode,
			Err:  errors.Wrapf(errors.ErrPipUninstall, "pip exited with code %d: %s", result.ExitCode, strings.TrimSpace(result.Stderr)),
		}
	}
	return nil
}

// Verify checks the install actually took by importing the package.
func (m *Manager) Verify(ctx context.Context, interp pyenv.Interpreter) bool {
	result, err := m.run.Run(ctx, interp.Path, "-c", fmt.Sprintf("import %s", PackageName))
	return err == nil && result.Success()
}

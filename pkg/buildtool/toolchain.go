// Package buildtool wraps the ahead-of-time compiler used to turn the
// installer into a standalone executable. It is build-time only machinery:
// a single check-then-compile sequence with no retry or rollback.
package buildtool

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/clyp-lang/clyp-installer/internal/logger"
	"github.com/clyp-lang/clyp-installer/pkg/errors"
	"github.com/clyp-lang/clyp-installer/pkg/pyenv"
	"github.com/clyp-lang/clyp-installer/pkg/runner"
)

// compilerModule is the Python module name of the AOT compiler.
const compilerModule = "nuitka"

// Toolchain invokes the compiler through a Python interpreter.
type Toolchain struct {
	run    runner.Runner
	interp pyenv.Interpreter
	stdout io.Writer
	stderr io.Writer
}

// New creates a toolchain bound to the given interpreter.
func New(run runner.Runner, interp pyenv.Interpreter) *Toolchain {
	return &Toolchain{run: run, interp: interp, stdout: os.Stdout, stderr: os.Stderr}
}

// NewWithOutput creates a toolchain with explicit output streams.
func NewWithOutput(run runner.Runner, interp pyenv.Interpreter, stdout, stderr io.Writer) *Toolchain {
	return &Toolchain{run: run, interp: interp, stdout: stdout, stderr: stderr}
}

// Check verifies the compiler is invocable for the bound interpreter.
func (t *Toolchain) Check(ctx context.Context) error {
	result, err := t.run.Run(ctx, t.interp.Path, "-m", compilerModule, "--version")
	if err != nil {
		return errors.Wrap(errors.ErrToolchainMissing, err.Error())
	}
	if !result.Success() {
		return errors.Wrapf(errors.ErrToolchainMissing, "%s -m %s --version exited with code %d", t.interp.Path, compilerModule, result.ExitCode)
	}

	logger.Debug("compiler toolchain found", logger.Fields{
		"compiler": compilerModule,
		"version":  strings.TrimSpace(result.Stdout),
	})
	return nil
}

// Compile runs the compiler on the given script and propagates its exit
// status verbatim through the returned error.
func (t *Toolchain) Compile(ctx context.Context, script, outputDir string) error {
	args := []string{"-m", compilerModule, "--onefile", "--assume-yes-for-downloads"}
	if outputDir != "" {
		args = append(args, "--output-dir="+outputDir)
	}
	args = append(args, script)

	result, err := t.run.RunStream(ctx, t.stdout, t.stderr, t.interp.Path, args...)
	if err != nil {
		return errors.Wrap(errors.ErrCompileFailed, err.Error())
	}
	if !result.Success() {
		return &errors.ExitError{
			Code: result.ExitCode,
			Err:  errors.Wrapf(errors.ErrCompileFailed, "compiler exited with code %d", result.ExitCode),
		}
	}
	return nil
}

package pyenv

import (
	"context"
	"strings"

	"github.com/clyp-lang/clyp-installer/pkg/errors"
	"github.com/clyp-lang/clyp-installer/pkg/runner"
)

// venvProbe asks the interpreter itself whether it lives inside a virtualenv.
const venvProbe = "import sys; print(hasattr(sys, 'real_prefix') or (hasattr(sys, 'base_prefix') and sys.base_prefix != sys.prefix))"

// HasPip reports whether pip is importable for the given interpreter.
func HasPip(ctx context.Context, run runner.Runner, interp Interpreter) bool {
	result, err := run.Run(ctx, interp.Path, "-m", "pip", "--version")
	return err == nil && result.Success()
}

// EnsurePip bootstraps pip via the stdlib ensurepip module.
func EnsurePip(ctx context.Context, run runner.Runner, interp Interpreter) error {
	result, err := run.Run(ctx, interp.Path, "-m", "ensurepip", "--upgrade")
	if err != nil {
		return errors.Wrap(errors.ErrPipMissing, err.Error())
	}
	if !result.Success() {
		return errors.Wrapf(errors.ErrPipMissing, "ensurepip exited with code %d: %s", result.ExitCode, strings.TrimSpace(result.Stderr))
	}
	return nil
}

// InVirtualEnv reports whether the interpreter runs inside a virtualenv.
func InVirtualEnv(ctx context.Context, run runner.Runner, interp Interpreter) bool {
	result, err := run.Run(ctx, interp.Path, "-c", venvProbe)
	if err != nil || !result.Success() {
		return false
	}
	return strings.TrimSpace(result.Stdout) == "True"
}

// HasUV reports whether the uv package manager is available in the
// interpreter's environment.
func HasUV(ctx context.Context, run runner.Runner, interp Interpreter) bool {
	result, err := run.Run(ctx, interp.Path, "-m", "uv", "--version")
	return err == nil && result.Success()
}

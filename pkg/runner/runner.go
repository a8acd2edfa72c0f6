package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"

	pkgerrors "github.com/clyp-lang/clyp-installer/pkg/errors"
)

// ExecRunner runs commands through os/exec.
type ExecRunner struct{}

// New creates a runner backed by os/exec.
func New() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command and captures stdout and stderr.
func (e *ExecRunner) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	return e.RunStream(ctx, io.Discard, io.Discard, name, args...)
}

// RunStream executes the command, teeing stdout and stderr to the given
// writers while capturing both for the Result.
func (e *ExecRunner) RunStream(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) (*Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &outBuf)
	cmd.Stderr = io.MultiWriter(stderr, &errBuf)

	err := cmd.Run()
	result := &Result{
		Stdout: outBuf.String(),
		Stderr: errBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, pkgerrors.Wrapf(err, "failed to run %s", name)
	}

	return result, nil
}

//go:generate mockgen -destination=mocks/runner.go . Runner

package runner

import (
	"context"
	"io"
)

// Runner abstracts subprocess execution so command construction can be tested
// without spawning real processes.
type Runner interface {
	// Run executes a command with captured output. A non-zero exit status is
	// reported through Result.ExitCode, not through the returned error; the
	// error is reserved for failures to start the process at all.
	Run(ctx context.Context, name string, args ...string) (*Result, error)

	// RunStream executes a command wired to the given writers while still
	// capturing a copy of both streams in the Result.
	RunStream(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) (*Result, error)
}

// Result holds the outcome of a finished subprocess.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the process exited with status zero.
func (r *Result) Success() bool {
	return r.ExitCode == 0
}

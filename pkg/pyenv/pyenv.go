// Package pyenv locates Python interpreters on the host and probes their
// capabilities (pip, uv, virtualenv membership) through subprocess calls.
package pyenv

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/clyp-lang/clyp-installer/pkg/errors"
	"github.com/clyp-lang/clyp-installer/pkg/runner"
)

// lookPath is swapped out in tests to avoid depending on the host PATH.
var lookPath = exec.LookPath

// Interpreter is a usable Python executable together with its reported version.
type Interpreter struct {
	Path    string
	Version string
}

// String renders the interpreter the way it is shown in selection prompts.
func (i Interpreter) String() string {
	return fmt.Sprintf("%s (%s)", i.Version, i.Path)
}

// CandidateNames returns the interpreter names to try for the current OS, in
// preference order. Windows ships the `py` launcher first.
func CandidateNames() []string {
	if runtime.GOOS == "windows" {
		return []string{"py", "python", "python3"}
	}
	return []string{"python3", "python"}
}

// Discover walks the candidate names, keeps every executable that answers a
// version probe, and deduplicates names that resolve to the same binary.
func Discover(ctx context.Context, run runner.Runner) []Interpreter {
	seen := make(map[string]bool)
	var found []Interpreter

	for _, name := range CandidateNames() {
		path, err := lookPath(name)
		if err != nil {
			continue
		}
		if seen[path] {
			continue
		}

		version, err := probeVersion(ctx, run, path)
		if err != nil {
			continue
		}

		seen[path] = true
		found = append(found, Interpreter{Path: path, Version: version})
	}

	return found
}

// Resolve validates an explicit interpreter path (the --python override). The
// path may be a bare name on PATH or a direct filesystem path.
func Resolve(ctx context.Context, run runner.Runner, path string) (Interpreter, error) {
	resolved, err := lookPath(path)
	if err != nil {
		if _, statErr := os.Stat(path); statErr != nil {
			return Interpreter{}, errors.Wrapf(errors.ErrPythonNotFound, "specified python executable not found: %s", path)
		}
		resolved = path
	}

	version, err := probeVersion(ctx, run, resolved)
	if err != nil {
		return Interpreter{}, errors.Wrapf(errors.ErrPythonNotFound, "%s is not a working python interpreter", path)
	}

	return Interpreter{Path: resolved, Version: version}, nil
}

// probeVersion runs `<python> --version` and returns the trimmed banner.
// Python 2 printed the banner on stderr, Python 3 prints it on stdout.
func probeVersion(ctx context.Context, run runner.Runner, path string) (string, error) {
	result, err := run.Run(ctx, path, "--version")
	if err != nil {
		return "", err
	}
	if !result.Success() {
		return "", errors.Wrapf(errors.ErrPythonNotFound, "%s --version exited with code %d", path, result.ExitCode)
	}

	banner := strings.TrimSpace(result.Stdout)
	if banner == "" {
		banner = strings.TrimSpace(result.Stderr)
	}
	if banner == "" {
		return "", errors.Wrapf(errors.ErrPythonNotFound, "%s reported no version", path)
	}
	return banner, nil
}

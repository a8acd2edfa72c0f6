package errors

import "errors"

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return errors.As(err, target) }

// ExitError carries the exit status of a failed subprocess so the process can
// propagate it verbatim instead of collapsing every failure to 1.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error to a process exit status. Subprocess failures keep
// their original status; any other error becomes 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if As(err, &exitErr) && exitErr.Code != 0 {
		return exitErr.Code
	}
	return 1
}

package cli

import (
	"errors"
	"fmt"
	"os/exec"
)

// UsageError marks a mistake on the command line. The caller prints a
// help hint on top of the message itself.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string { return e.Message }

func usagef(format string, args ...any) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// IsUsage reports whether err stems from bad command-line usage.
func IsUsage(err error) bool {
	var usageErr *UsageError
	return errors.As(err, &usageErr)
}

// ExitCode maps err to the process exit status. When a backend command
// failed, its own exit code passes through unchanged.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code > 0 {
			return code
		}
	}
	return 1
}

package backend

import (
	"fmt"
	"strings"
)

// NotFoundError reports that no supported package manager was detected.
type NotFoundError struct {
	Probed []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no supported package manager found (probed: %s)", strings.Join(e.Probed, ", "))
}

// UnknownError reports a backend override naming an unsupported manager.
type UnknownError struct {
	Name      string
	Supported []string
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("unsupported backend %q (supported: %s)", e.Name, strings.Join(e.Supported, ", "))
}

// Package history records package operations in a local bolt database.
package history

import (
	"strings"
	"time"
)

// Operation names one recorded command.
type Operation string

const (
	OpInstall   Operation = "install"
	OpRemove    Operation = "remove"
	OpUpgrade   Operation = "upgrade"
	OpRefresh   Operation = "refresh"
	OpBootstrap Operation = "bootstrap"
)

// Entry is one recorded operation with its outcome.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Operation Operation `json:"operation"`
	Backend   string    `json:"backend"`
	Packages  []string  `json:"packages,omitempty"`
	Success   bool      `json:"success"`
	Error     string    `json:"error,omitempty"`
}

// NewEntry stamps a new entry for an operation about to run.
func NewEntry(op Operation, backend string, packages []string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Operation: op,
		Backend:   backend,
		Packages:  packages,
	}
}

// Finish records the operation's outcome.
func (e *Entry) Finish(err error) {
	e.Success = err == nil
	if err != nil {
		e.Error = err.Error()
	}
}

// Summary renders the entry as one history line.
func (e *Entry) Summary() string {
	status := "ok"
	if !e.Success {
		status = "failed"
	}

	line := e.Timestamp.Format("2006-01-02 15:04:05") + "  " + string(e.Operation)
	if len(e.Packages) > 0 {
		line += " " + strings.Join(e.Packages, " ")
	}
	return line + "  [" + e.Backend + "] (" + status + ")"
}

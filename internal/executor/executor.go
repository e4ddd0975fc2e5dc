// Package executor handles child process execution with privilege
// escalation support.
package executor

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Runner abstracts command execution so command construction can be tested
// without spawning processes.
type Runner interface {
	// Run executes an interactive command, wiring the caller's terminal
	// through to the child.
	Run(ctx context.Context, name string, args ...string) error

	// RunPrivileged behaves like Run but prepends the escalation command
	// when one is configured.
	RunPrivileged(ctx context.Context, name string, args ...string) error

	// Output runs a command and returns its stdout, passing stderr through.
	Output(ctx context.Context, name string, args ...string) (string, error)

	// OutputQuiet runs a command and returns its stdout, discarding stderr.
	OutputQuiet(ctx context.Context, name string, args ...string) (string, error)
}

// Executor is the Runner used outside of tests.
type Executor struct {
	sudo    string // escalation command, empty when none is used
	verbose bool
}

// New creates an Executor. sudo is the escalation command resolved at
// startup; empty disables escalation.
func New(sudo string, verbose bool) *Executor {
	return &Executor{sudo: sudo, verbose: verbose}
}

// Run executes a command with the terminal wired through.
func (e *Executor) Run(ctx context.Context, name string, args ...string) error {
	e.trace(name, args)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

// RunPrivileged executes a command through the escalation command when one
// is configured. Without one the command runs as the current user and any
// permission failure surfaces from the child itself.
func (e *Executor) RunPrivileged(ctx context.Context, name string, args ...string) error {
	if e.sudo == "" {
		return e.Run(ctx, name, args...)
	}
	return e.Run(ctx, e.sudo, append([]string{name}, args...)...)
}

// Output runs a command and returns its stdout.
func (e *Executor) Output(ctx context.Context, name string, args ...string) (string, error) {
	e.trace(name, args)

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	return stdout.String(), err
}

// OutputQuiet runs a command and returns its stdout, suppressing stderr.
func (e *Executor) OutputQuiet(ctx context.Context, name string, args ...string) (string, error) {
	e.trace(name, args)

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err := cmd.Run()
	return stdout.String(), err
}

// trace reports the command on the diagnostic stream in verbose mode.
// Stdout stays clean for composed output.
func (e *Executor) trace(name string, args []string) {
	if e.verbose {
		fmt.Fprintf(os.Stderr, "pm: exec: %s %s\n", name, strings.Join(args, " "))
	}
}

// ResolveEscalation determines the privilege escalation command. An
// explicit override wins, including an empty one that disables escalation.
// Otherwise escalation is skipped for root and in environments that have
// none, and the usual suspects are probed in order.
func ResolveEscalation(override *string) string {
	if override != nil {
		return *override
	}
	if isRoot() || isConstrained() {
		return ""
	}
	for _, name := range []string{"sudo", "doas"} {
		if _, err := exec.LookPath(name); err == nil {
			return name
		}
	}
	return ""
}

// isConstrained reports environments where privilege escalation is neither
// available nor needed, such as Termux.
func isConstrained() bool {
	return os.Getenv("TERMUX_VERSION") != ""
}

package backend

import (
	"context"
	"os/exec"

	"github.com/jpikl/pm/internal/executor"
)

// base carries what every adapter shares: identity, binary name, and the
// executor used to shell out.
type base struct {
	name        string
	displayName string
	binary      string
	needsSudo   bool
	run         executor.Runner
}

func newBase(name, displayName, binary string, needsSudo bool, run executor.Runner) base {
	return base{
		name:        name,
		displayName: displayName,
		binary:      binary,
		needsSudo:   needsSudo,
		run:         run,
	}
}

// Name returns the backend identifier.
func (b *base) Name() string {
	return b.name
}

// DisplayName returns the human-readable name.
func (b *base) DisplayName() string {
	return b.displayName
}

// NeedsSudo reports whether mutating operations require escalation.
func (b *base) NeedsSudo() bool {
	return b.needsSudo
}

// Available reports whether the manager's binary is on PATH.
func (b *base) Available() bool {
	_, err := exec.LookPath(b.binary)
	return err == nil
}

// mutate runs a state-changing command, escalated when the manager
// requires it. Queries go through b.run directly; they never need
// elevated rights.
func (b *base) mutate(ctx context.Context, args ...string) error {
	if b.needsSudo {
		return b.run.RunPrivileged(ctx, b.binary, args...)
	}
	return b.run.Run(ctx, b.binary, args...)
}

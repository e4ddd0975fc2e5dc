// Package backend implements the supported package managers behind one
// capability interface. Each adapter translates the shared operations into
// its manager's command grammar and parses listings into normalized rows.
package backend

import "context"

// Package is one normalized row of a package listing. Fields a manager
// cannot supply stay empty.
type Package struct {
	Name      string
	Repo      string
	Version   string
	Installed bool
}

// Backend is the operation set every supported package manager implements.
// Exactly one backend is active per invocation.
type Backend interface {
	// Name returns the identifier used for detection, caching and the
	// which command.
	Name() string

	// DisplayName returns the human-readable name.
	DisplayName() string

	// NeedsSudo reports whether mutating operations run through the
	// privilege escalation command.
	NeedsSudo() bool

	// Available reports whether the manager's binary is on PATH.
	Available() bool

	Install(ctx context.Context, names []string) error
	Remove(ctx context.Context, names []string) error
	Upgrade(ctx context.Context) error

	// Refresh updates the manager's metadata index.
	Refresh(ctx context.Context) error

	// Info prints the manager's own package details.
	Info(ctx context.Context, name string) error

	// ListAll returns every known package, installed ones annotated.
	ListAll(ctx context.Context) ([]Package, error)

	// ListInstalled returns the installed set.
	ListInstalled(ctx context.Context) ([]Package, error)
}

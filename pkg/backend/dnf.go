package backend

import (
	"bufio"
	"context"
	"strings"

	"github.com/jpikl/pm/internal/executor"
)

// Dnf adapts Fedora's dnf.
type Dnf struct {
	base
}

// NewDnf returns the dnf adapter.
func NewDnf(run executor.Runner) *Dnf {
	return &Dnf{newBase("dnf", "dnf (Fedora)", "dnf", true, run)}
}

// Install installs packages.
func (d *Dnf) Install(ctx context.Context, names []string) error {
	return d.mutate(ctx, append([]string{"install"}, names...)...)
}

// Remove removes packages.
func (d *Dnf) Remove(ctx context.Context, names []string) error {
	return d.mutate(ctx, append([]string{"remove"}, names...)...)
}

// Upgrade upgrades all installed packages.
func (d *Dnf) Upgrade(ctx context.Context) error {
	return d.mutate(ctx, "upgrade")
}

// Refresh rebuilds the metadata cache.
func (d *Dnf) Refresh(ctx context.Context) error {
	return d.mutate(ctx, "makecache")
}

// Info prints package details.
func (d *Dnf) Info(ctx context.Context, name string) error {
	return d.run.Run(ctx, d.binary, "info", name)
}

// ListAll parses dnf list output, which groups rows under "Installed
// Packages" and "Available Packages" section headers.
func (d *Dnf) ListAll(ctx context.Context) ([]Package, error) {
	out, err := d.run.Output(ctx, d.binary, "-q", "list", "--all")
	if err != nil {
		return nil, err
	}
	return parseDnfList(out), nil
}

// ListInstalled lists installed packages only.
func (d *Dnf) ListInstalled(ctx context.Context) ([]Package, error) {
	out, err := d.run.Output(ctx, d.binary, "-q", "list", "--installed")
	if err != nil {
		return nil, err
	}
	return parseDnfList(out), nil
}

// parseDnfList reads "name.arch version repo" rows, tracking which section
// header they appeared under. Rows before any header are treated as
// installed, matching the --installed listing which may omit its header
// in quiet mode.
func parseDnfList(out string) []Package {
	var packages []Package
	installed := true

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "Installed Packages"):
			installed = true
			continue
		case strings.HasPrefix(line, "Available Packages"):
			installed = false
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		packages = append(packages, Package{
			Name:      fields[0],
			Version:   fields[1],
			Repo:      fields[2],
			Installed: installed,
		})
	}

	return packages
}

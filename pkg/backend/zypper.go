package backend

import (
	"bufio"
	"context"
	"strings"

	"github.com/jpikl/pm/internal/executor"
)

// Zypper adapts openSUSE's zypper.
type Zypper struct {
	base
}

// NewZypper returns the zypper adapter.
func NewZypper(run executor.Runner) *Zypper {
	return &Zypper{newBase("zypper", "zypper (openSUSE)", "zypper", true, run)}
}

// Install installs packages.
func (z *Zypper) Install(ctx context.Context, names []string) error {
	return z.mutate(ctx, append([]string{"install"}, names...)...)
}

// Remove removes packages.
func (z *Zypper) Remove(ctx context.Context, names []string) error {
	return z.mutate(ctx, append([]string{"remove"}, names...)...)
}

// Upgrade updates all installed packages.
func (z *Zypper) Upgrade(ctx context.Context) error {
	return z.mutate(ctx, "update")
}

// Refresh refreshes all repositories.
func (z *Zypper) Refresh(ctx context.Context) error {
	return z.mutate(ctx, "refresh")
}

// Info prints package details.
func (z *Zypper) Info(ctx context.Context, name string) error {
	return z.run.Run(ctx, z.binary, "info", name)
}

// ListAll parses the pipe-separated search table with version details.
func (z *Zypper) ListAll(ctx context.Context) ([]Package, error) {
	out, err := z.run.Output(ctx, z.binary, "-q", "se", "-s", "-t", "package")
	if err != nil {
		return nil, err
	}
	return parseZypperTable(out), nil
}

// ListInstalled restricts the search table to installed packages.
func (z *Zypper) ListInstalled(ctx context.Context) ([]Package, error) {
	out, err := z.run.Output(ctx, z.binary, "-q", "se", "-s", "-i", "-t", "package")
	if err != nil {
		return nil, err
	}
	return parseZypperTable(out), nil
}

// parseZypperTable reads "S | Name | Type | Version | Arch | Repository"
// rows. The status column carries "i" when some version is installed.
func parseZypperTable(out string) []Package {
	var packages []Package

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "--") || !strings.Contains(line, "|") {
			continue
		}

		cols := strings.Split(line, "|")
		if len(cols) < 6 {
			continue
		}
		for i := range cols {
			cols[i] = strings.TrimSpace(cols[i])
		}
		if cols[0] == "S" { // header row
			continue
		}

		packages = append(packages, Package{
			Name:      cols[1],
			Version:   cols[3],
			Repo:      cols[5],
			Installed: strings.Contains(cols[0], "i"),
		})
	}

	return packages
}

package backend

import (
	"bufio"
	"context"
	"sort"
	"strings"

	"github.com/jpikl/pm/internal/executor"
)

// Brew adapts Homebrew. Brew refuses to run as root, so nothing is
// escalated.
type Brew struct {
	base
}

// NewBrew returns the brew adapter.
func NewBrew(run executor.Runner) *Brew {
	return &Brew{newBase("brew", "Homebrew", "brew", false, run)}
}

// Install installs formulae.
func (b *Brew) Install(ctx context.Context, names []string) error {
	return b.mutate(ctx, append([]string{"install"}, names...)...)
}

// Remove uninstalls formulae.
func (b *Brew) Remove(ctx context.Context, names []string) error {
	return b.mutate(ctx, append([]string{"uninstall"}, names...)...)
}

// Upgrade upgrades all installed formulae.
func (b *Brew) Upgrade(ctx context.Context) error {
	return b.mutate(ctx, "upgrade")
}

// Refresh updates Homebrew itself and its formula index.
func (b *Brew) Refresh(ctx context.Context) error {
	return b.mutate(ctx, "update")
}

// Info prints formula details.
func (b *Brew) Info(ctx context.Context, name string) error {
	return b.run.Run(ctx, b.binary, "info", name)
}

// ListAll merges the full formula name list with the installed set.
func (b *Brew) ListAll(ctx context.Context) ([]Package, error) {
	out, err := b.run.Output(ctx, b.binary, "formulae")
	if err != nil {
		return nil, err
	}
	installed, err := b.ListInstalled(ctx)
	if err != nil {
		return nil, err
	}

	versions := make(map[string]string, len(installed))
	for _, p := range installed {
		versions[p.Name] = p.Version
	}

	var packages []Package
	seen := make(map[string]bool)
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		version, ok := versions[name]
		packages = append(packages, Package{Name: name, Version: version, Installed: ok})
		seen[name] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// Formulae installed from taps are missing from the main index.
	var extra []string
	for name := range versions {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		packages = append(packages, Package{Name: name, Version: versions[name], Installed: true})
	}

	return packages, nil
}

// ListInstalled parses brew list output: "name version [version...]".
// The first version is the one reported.
func (b *Brew) ListInstalled(ctx context.Context) ([]Package, error) {
	out, err := b.run.Output(ctx, b.binary, "list", "--formula", "--versions")
	if err != nil {
		return nil, err
	}

	var packages []Package
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		p := Package{Name: fields[0], Installed: true}
		if len(fields) > 1 {
			p.Version = fields[1]
		}
		packages = append(packages, p)
	}

	return packages, scanner.Err()
}

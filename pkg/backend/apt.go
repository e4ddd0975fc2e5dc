package backend

import (
	"bufio"
	"context"
	"sort"
	"strings"

	"github.com/jpikl/pm/internal/executor"
)

// Apt adapts the Debian/Ubuntu apt family. Listings come from apt-cache
// and dpkg-query, whose output is stable where apt's own is not.
type Apt struct {
	base
}

// NewApt returns the apt adapter.
func NewApt(run executor.Runner) *Apt {
	return &Apt{newBase("apt", "apt (Debian/Ubuntu)", "apt", true, run)}
}

// Install installs packages.
func (a *Apt) Install(ctx context.Context, names []string) error {
	return a.mutate(ctx, append([]string{"install"}, names...)...)
}

// Remove removes packages.
func (a *Apt) Remove(ctx context.Context, names []string) error {
	return a.mutate(ctx, append([]string{"remove"}, names...)...)
}

// Upgrade upgrades all installed packages.
func (a *Apt) Upgrade(ctx context.Context) error {
	return a.mutate(ctx, "upgrade")
}

// Refresh updates the package index.
func (a *Apt) Refresh(ctx context.Context) error {
	return a.mutate(ctx, "update")
}

// Info prints package details via apt-cache.
func (a *Apt) Info(ctx context.Context, name string) error {
	return a.run.Run(ctx, "apt-cache", "show", name)
}

// ListAll merges the full apt-cache name list with the installed set so
// installed packages carry their version and marker.
func (a *Apt) ListAll(ctx context.Context) ([]Package, error) {
	out, err := a.run.Output(ctx, "apt-cache", "pkgnames")
	if err != nil {
		return nil, err
	}
	installed, err := a.installedSet(ctx)
	if err != nil {
		return nil, err
	}

	names := strings.Fields(out)
	sort.Strings(names)

	packages := make([]Package, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		version, ok := installed[name]
		packages = append(packages, Package{Name: name, Version: version, Installed: ok})
		seen[name] = true
	}

	// Locally installed packages unknown to the cache still belong in
	// the listing.
	var extra []string
	for name := range installed {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		packages = append(packages, Package{Name: name, Version: installed[name], Installed: true})
	}

	return packages, nil
}

// ListInstalled parses dpkg-query -W output: "name<tab>version".
func (a *Apt) ListInstalled(ctx context.Context) ([]Package, error) {
	out, err := a.run.Output(ctx, "dpkg-query", "-W")
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

func (a *Apt) installedSet(ctx context.Context) (map[string]string, error) {
	pkgs, err := a.ListInstalled(ctx)
	if err != nil {
		return nil, err
	}

	set := make(map[string]string, len(pkgs))
	for _, p := range pkgs {
		set[p.Name] = p.Version
	}
	return set, nil
}

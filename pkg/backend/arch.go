package backend

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jpikl/pm/internal/executor"
)

// Arch is the shared adapter behind pacman and the AUR helpers, which all
// speak pacman's command grammar.
type Arch struct {
	base
}

// NewPacman returns the pacman adapter.
func NewPacman(run executor.Runner) *Arch {
	return &Arch{newBase("pacman", "pacman (Arch Linux)", "pacman", true, run)}
}

// NewParu returns the paru adapter. Helpers invoke sudo themselves, so
// they run unescalated.
func NewParu(run executor.Runner) *Arch {
	return &Arch{newBase("paru", "paru (AUR helper)", "paru", false, run)}
}

// NewYay returns the yay adapter.
func NewYay(run executor.Runner) *Arch {
	return &Arch{newBase("yay", "yay (AUR helper)", "yay", false, run)}
}

// Install installs packages with -S.
func (a *Arch) Install(ctx context.Context, names []string) error {
	return a.mutate(ctx, append([]string{"-S"}, names...)...)
}

// Remove removes packages and their unneeded dependencies with -Rs.
func (a *Arch) Remove(ctx context.Context, names []string) error {
	return a.mutate(ctx, append([]string{"-Rs"}, names...)...)
}

// Upgrade syncs the database and upgrades the system with -Syu.
func (a *Arch) Upgrade(ctx context.Context) error {
	return a.mutate(ctx, "-Syu")
}

// Refresh syncs the package database with -Sy.
func (a *Arch) Refresh(ctx context.Context) error {
	return a.mutate(ctx, "-Sy")
}

// Info prints package details, preferring the sync database and falling
// back to the local one for packages built outside it.
func (a *Arch) Info(ctx context.Context, name string) error {
	out, err := a.run.OutputQuiet(ctx, a.binary, "-Si", name)
	if err != nil {
		return a.run.Run(ctx, a.binary, "-Qi", name)
	}
	fmt.Fprint(os.Stdout, out)
	return nil
}

// ListAll parses -Sl output: "repo name version [installed]".
func (a *Arch) ListAll(ctx context.Context) ([]Package, error) {
	out, err := a.run.Output(ctx, a.binary, "-Sl")
	if err != nil {
		return nil, err
	}

	var packages []Package
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}
		packages = append(packages, Package{
			Name:      fields[1],
			Repo:      fields[0],
			Version:   fields[2],
			Installed: len(fields) > 3 && strings.HasPrefix(fields[3], "[installed"),
		})
	}

	return packages, scanner.Err()
}

// ListInstalled parses -Q output: "name version".
func (a *Arch) ListInstalled(ctx context.Context) ([]Package, error) {
	out, err := a.run.Output(ctx, a.binary, "-Q")
	if err != nil {
		return nil, err
	}

	var packages []Package
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		packages = append(packages, Package{
			Name:      fields[0],
			Version:   fields[1],
			Installed: true,
		})
	}

	return packages, scanner.Err()
}

package backend

import (
	"bufio"
	"context"
	"strings"

	"github.com/jpikl/pm/internal/executor"
)

// Apk adapts Alpine's apk.
type Apk struct {
	base
}

// NewApk returns the apk adapter.
func NewApk(run executor.Runner) *Apk {
	return &Apk{newBase("apk", "apk (Alpine)", "apk", true, run)}
}

// Install installs packages.
func (a *Apk) Install(ctx context.Context, names []string) error {
	return a.mutate(ctx, append([]string{"add"}, names...)...)
}

// Remove removes packages.
func (a *Apk) Remove(ctx context.Context, names []string) error {
	return a.mutate(ctx, append([]string{"del"}, names...)...)
}

// Upgrade upgrades all installed packages.
func (a *Apk) Upgrade(ctx context.Context) error {
	return a.mutate(ctx, "upgrade")
}

// Refresh updates the repository indexes.
func (a *Apk) Refresh(ctx context.Context) error {
	return a.mutate(ctx, "update")
}

// Info prints all available package details.
func (a *Apk) Info(ctx context.Context, name string) error {
	return a.run.Run(ctx, a.binary, "info", "-a", name)
}

// ListAll parses apk list output: "name-ver-rel arch {origin} (license)"
// with an "[installed]" tag on installed rows.
func (a *Apk) ListAll(ctx context.Context) ([]Package, error) {
	out, err := a.run.Output(ctx, a.binary, "list", "--available")
	if err != nil {
		return nil, err
	}
	return parseApkList(out), nil
}

// ListInstalled lists installed packages only.
func (a *Apk) ListInstalled(ctx context.Context) ([]Package, error) {
	out, err := a.run.Output(ctx, a.binary, "list", "--installed")
	if err != nil {
		return nil, err
	}
	return parseApkList(out), nil
}

func parseApkList(out string) []Package {
	var packages []Package

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		name, version := splitApkName(fields[0])
		p := Package{Name: name, Version: version}
		for _, f := range fields[1:] {
			switch {
			case strings.HasPrefix(f, "{") && strings.HasSuffix(f, "}"):
				p.Repo = strings.Trim(f, "{}")
			case f == "[installed]":
				p.Installed = true
			}
		}
		packages = append(packages, p)
	}

	return packages
}

// splitApkName splits "name-version-release" on the last two dashes. The
// name itself may contain dashes.
func splitApkName(pkgver string) (name, version string) {
	parts := strings.Split(pkgver, "-")
	if len(parts) < 3 {
		return pkgver, ""
	}
	return strings.Join(parts[:len(parts)-2], "-"), strings.Join(parts[len(parts)-2:], "-")
}

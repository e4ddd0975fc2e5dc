package backend

import (
	"bufio"
	"context"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"

	"github.com/jpikl/pm/internal/cache"
	"github.com/jpikl/pm/internal/executor"
)

// Scoop adapts Windows' scoop. Scoop has no fast full listing, so the
// result of an unrestricted search is cached for the rest of the day;
// the installed set is always queried live.
type Scoop struct {
	base
	cache *cache.Cache
}

// NewScoop returns the scoop adapter.
func NewScoop(run executor.Runner, c *cache.Cache) *Scoop {
	return &Scoop{
		base:  newBase("scoop", "Scoop (Windows)", "scoop", false, run),
		cache: c,
	}
}

// Install installs apps.
func (s *Scoop) Install(ctx context.Context, names []string) error {
	return s.mutate(ctx, append([]string{"install"}, names...)...)
}

// Remove uninstalls apps.
func (s *Scoop) Remove(ctx context.Context, names []string) error {
	return s.mutate(ctx, append([]string{"uninstall"}, names...)...)
}

// Upgrade updates all installed apps. The asterisk is scoop's own
// all-apps selector, passed through literally.
func (s *Scoop) Upgrade(ctx context.Context) error {
	return s.mutate(ctx, "update", "*")
}

// Refresh updates scoop and its buckets.
func (s *Scoop) Refresh(ctx context.Context) error {
	return s.mutate(ctx, "update")
}

// Info prints app details.
func (s *Scoop) Info(ctx context.Context, name string) error {
	return s.run.Run(ctx, s.binary, "info", name)
}

// ListAll merges the day-cached bucket listing with the live installed
// set.
func (s *Scoop) ListAll(ctx context.Context) ([]Package, error) {
	available, ok := s.cachedListing()
	if !ok {
		var err error
		available, err = s.buildListing(ctx)
		if err != nil {
			return nil, err
		}
	}

	installed, err := s.ListInstalled(ctx)
	if err != nil {
		return nil, err
	}

	versions := make(map[string]string, len(installed))
	for _, p := range installed {
		versions[p.Name] = p.Version
	}

	packages := make([]Package, 0, len(available))
	seen := make(map[string]bool, len(available))
	for _, p := range available {
		if version, ok := versions[p.Name]; ok {
			p.Installed = true
			if p.Version == "" {
				p.Version = version
			}
		}
		packages = append(packages, p)
		seen[p.Name] = true
	}

	// Apps installed from since-removed buckets are absent from the
	// listing.
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

// ListInstalled parses the scoop list table.
func (s *Scoop) ListInstalled(ctx context.Context) ([]Package, error) {
	out, err := s.run.Output(ctx, s.binary, "list")
	if err != nil {
		return nil, err
	}

	packages := parseScoopTable(out)
	for i := range packages {
		packages[i].Installed = true
	}
	return packages, nil
}

// buildListing runs an unrestricted scoop search, which walks every
// bucket manifest and takes a while, then caches the rows for the day.
func (s *Scoop) buildListing(ctx context.Context) ([]Package, error) {
	var sp *spinner.Spinner
	if isatty.IsTerminal(os.Stderr.Fd()) {
		sp = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
		sp.Suffix = " building scoop package listing (reused for the rest of the day)"
		sp.Start()
	}

	out, err := s.run.OutputQuiet(ctx, s.binary, "search")

	if sp != nil {
		sp.Stop()
	}
	if err != nil {
		return nil, err
	}

	packages := parseScoopTable(out)
	if s.cache != nil {
		// Best effort: a failed cache write only costs the next run
		// another search.
		_ = s.cache.SaveListing(s.name, encodeListing(packages))
	}
	return packages, nil
}

func (s *Scoop) cachedListing() ([]Package, bool) {
	if s.cache == nil {
		return nil, false
	}
	lines, ok := s.cache.LoadListing(s.name)
	if !ok {
		return nil, false
	}
	return decodeListing(lines), true
}

// parseScoopTable reads scoop's header tables: everything before the
// "----" separator line is preamble, rows after it are
// "name version source ...".
func parseScoopTable(out string) []Package {
	var packages []Package
	inTable := false

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		if !inTable {
			if strings.HasPrefix(strings.TrimSpace(line), "----") {
				inTable = true
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		p := Package{Name: fields[0]}
		if len(fields) > 1 {
			p.Version = fields[1]
		}
		if len(fields) > 2 {
			p.Repo = fields[2]
		}
		packages = append(packages, p)
	}

	return packages
}

func encodeListing(packages []Package) []string {
	lines := make([]string, len(packages))
	for i, p := range packages {
		lines[i] = p.Name + "\t" + p.Version + "\t" + p.Repo
	}
	return lines
}

func decodeListing(lines []string) []Package {
	packages := make([]Package, 0, len(lines))
	for _, line := range lines {
		cols := strings.Split(line, "\t")
		p := Package{Name: cols[0]}
		if len(cols) > 1 {
			p.Version = cols[1]
		}
		if len(cols) > 2 {
			p.Repo = cols[2]
		}
		packages = append(packages, p)
	}
	return packages
}

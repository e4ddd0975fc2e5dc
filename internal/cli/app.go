package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jpikl/pm/internal/cache"
	"github.com/jpikl/pm/internal/config"
	"github.com/jpikl/pm/internal/history"
	"github.com/jpikl/pm/internal/selector"
	"github.com/jpikl/pm/internal/ui"
	"github.com/jpikl/pm/pkg/backend"
)

// Sources accepted by list and search.
const (
	sourceAll       = "all"
	sourceInstalled = "installed"
)

// Bootstrapper builds a package outside the regular backend path.
type Bootstrapper interface {
	Install(ctx context.Context, name string) error
}

// App bundles the collaborators resolved once at startup. Commands read
// from it instead of the environment, so behavior cannot drift while a
// command runs.
type App struct {
	cfg         *config.Config
	sudo        string
	registry    *backend.Registry
	cache       *cache.Cache
	sel         selector.Selector
	boot        Bootstrapper
	historyPath string
	out         io.Writer
	stdin       io.Reader
	stdinTTY    bool
	assumeYes   bool

	active backend.Backend
}

// Backend returns the active backend, resolving it on first use. The
// choice sticks for the rest of the process.
func (a *App) Backend() (backend.Backend, error) {
	if a.active == nil {
		b, err := backend.Detect(a.cfg.General.Backend, a.registry)
		if err != nil {
			return nil, err
		}
		a.active = b
	}
	return a.active, nil
}

// ensureFresh refreshes backend metadata the first time pm touches the
// backend on a given UTC day.
func (a *App) ensureFresh(ctx context.Context, b backend.Backend) error {
	if !a.cache.IsStale(b.Name()) {
		return nil
	}

	ui.InfoMsg("Refreshing %s package databases", b.DisplayName())
	if err := b.Refresh(ctx); err != nil {
		return err
	}
	if err := a.cache.MarkFresh(b.Name()); err != nil {
		ui.WarningMsg("Cannot record metadata freshness: %v", err)
	}
	return nil
}

// record appends an entry to the operation log. History failures never
// fail the operation they describe.
func (a *App) record(entry *history.Entry) {
	store, err := history.Open(a.historyPath)
	if err != nil {
		return
	}
	_ = store.Record(entry) //nolint:errcheck
	_ = store.Close()       //nolint:errcheck
}

// listSource fetches the package rows for a list/search source.
func listSource(ctx context.Context, b backend.Backend, source string) ([]backend.Package, error) {
	if source == sourceInstalled {
		return b.ListInstalled(ctx)
	}
	return b.ListAll(ctx)
}

// formatFor returns the row formatter matching a source.
func formatFor(source string) func(backend.Package) string {
	if source == sourceInstalled {
		return ui.FormatInstalled
	}
	return ui.FormatAll
}

// parseSource validates the source argument of list and search.
func parseSource(args []string) (string, error) {
	if len(args) != 1 {
		return "", usagef("expected one source argument: all or installed")
	}
	switch args[0] {
	case sourceAll, sourceInstalled:
		return args[0], nil
	default:
		return "", usagef("unknown source %q (expected all or installed)", args[0])
	}
}

// pickRows runs the interactive selection pipeline: list the source,
// narrow it by stdin patterns when pm is part of a pipeline, then hand
// the rows to the selector.
func (a *App) pickRows(ctx context.Context, b backend.Backend, source string) ([]string, error) {
	packages, err := listSource(ctx, b, source)
	if err != nil {
		return nil, err
	}

	if !a.stdinTTY {
		set, err := selector.Compile(a.stdin)
		if err != nil {
			return nil, err
		}
		kept := packages[:0]
		for _, p := range packages {
			if set.Match(p.Name) {
				kept = append(kept, p)
			}
		}
		packages = kept
	}

	lines := ui.Lines(packages, formatFor(source))
	return a.sel.Select(ctx, lines, a.preview(b))
}

// pickNames reduces selected rows to bare package names.
func (a *App) pickNames(ctx context.Context, b backend.Backend, source string) ([]string, error) {
	rows, err := a.pickRows(ctx, b, source)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(rows))
	for _, row := range rows {
		if name := firstField(row); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// preview builds the fzf preview command. The active backend is pinned
// so the pane matches the listing even when it came from detection.
func (a *App) preview(b backend.Backend) string {
	exe, err := os.Executable()
	if err != nil {
		exe = "pm"
	}
	return fmt.Sprintf("%s --backend %s info {1}", exe, b.Name())
}

// firstField returns the text before the first whitespace.
func firstField(s string) string {
	if fields := strings.Fields(s); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

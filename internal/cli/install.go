package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jpikl/pm/internal/history"
	"github.com/jpikl/pm/internal/ui"
	"github.com/jpikl/pm/pkg/aur"
)

var installCmd = &cobra.Command{
	Use:   "install [packages...]",
	Short: "Install packages",
	Long: `Install packages with the active backend.

Without arguments an fzf picker opens over everything the backend
knows, installed packages marked. When stdin is a pipe, it is read as
one regex pattern per line and only matching packages reach the picker.

On Arch, installing paru or yay builds the helper from the AUR first;
the helper then takes over as the backend on the next run.

Examples:
  pm install bat fd            # install straight away
  pm install                   # pick interactively
  echo '^bat' | pm install     # pick from a narrowed listing
  pm install paru              # bootstrap an AUR helper`,
	Args: cobra.ArbitraryArgs,
	RunE: runInstall,
}

func runInstall(cmd *cobra.Command, args []string) error {
	return app.Install(context.Background(), args)
}

// Install installs the named packages, or interactively picked ones when
// names is empty.
func (a *App) Install(ctx context.Context, names []string) error {
	b, err := a.Backend()
	if err != nil {
		return err
	}

	if len(names) == 0 {
		names, err = a.pickNames(ctx, b, sourceAll)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			ui.InfoMsg("No packages selected")
			return nil
		}
	}

	if b.Name() == "pacman" {
		names, err = a.bootstrapHelpers(ctx, names)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			return nil
		}
	}

	if err := a.ensureFresh(ctx, b); err != nil {
		return err
	}

	entry := history.NewEntry(history.OpInstall, b.Name(), names)
	err = b.Install(ctx, names)
	entry.Finish(err)
	a.record(entry)
	if err != nil {
		return err
	}

	ui.SuccessMsg("Installed %s with %s", strings.Join(names, " "), b.DisplayName())
	return nil
}

// bootstrapHelpers builds any requested AUR helpers from source and
// returns the remaining names. Each helper is built at most once even
// when repeated on the command line.
func (a *App) bootstrapHelpers(ctx context.Context, names []string) ([]string, error) {
	var remaining []string
	built := make(map[string]bool)

	for _, name := range names {
		if !aur.IsHelper(name) {
			remaining = append(remaining, name)
			continue
		}
		if built[name] {
			continue
		}
		built[name] = true
		if err := a.bootstrapHelper(ctx, name); err != nil {
			return nil, err
		}
	}

	return remaining, nil
}

func (a *App) bootstrapHelper(ctx context.Context, name string) error {
	if !a.assumeYes {
		ok, err := ui.Confirm(fmt.Sprintf("Build %s from the AUR", name), true)
		if err != nil {
			return err
		}
		if !ok {
			ui.WarningMsg("Skipping %s", name)
			return nil
		}
	}

	ui.InfoMsg("Bootstrapping %s from the AUR", name)
	entry := history.NewEntry(history.OpBootstrap, "pacman", []string{name})
	err := a.boot.Install(ctx, name)
	entry.Finish(err)
	a.record(entry)
	if err != nil {
		return err
	}

	ui.SuccessMsg("%s is installed and takes over as the backend on the next run", name)
	return nil
}

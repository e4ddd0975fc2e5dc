package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jpikl/pm/internal/history"
	"github.com/jpikl/pm/internal/ui"
)

var removeCmd = &cobra.Command{
	Use:   "remove [packages...]",
	Short: "Remove packages",
	Long: `Remove installed packages with the active backend.

Without arguments an fzf picker opens over the installed set. When
stdin is a pipe, it is read as one regex pattern per line and only
matching packages reach the picker.

Examples:
  pm remove bat                # remove straight away
  pm remove                    # pick interactively
  echo '^old-' | pm remove     # pick from a narrowed listing`,
	Args: cobra.ArbitraryArgs,
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	return app.Remove(context.Background(), args)
}

// Remove removes the named packages, or interactively picked ones when
// names is empty. Removal never triggers a metadata refresh.
func (a *App) Remove(ctx context.Context, names []string) error {
	b, err := a.Backend()
	if err != nil {
		return err
	}

	if len(names) == 0 {
		names, err = a.pickNames(ctx, b, sourceInstalled)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			ui.InfoMsg("No packages selected")
			return nil
		}
	}

	entry := history.NewEntry(history.OpRemove, b.Name(), names)
	err = b.Remove(ctx, names)
	entry.Finish(err)
	a.record(entry)
	if err != nil {
		return err
	}

	ui.SuccessMsg("Removed %s with %s", strings.Join(names, " "), b.DisplayName())
	return nil
}

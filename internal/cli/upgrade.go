package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jpikl/pm/internal/history"
	"github.com/jpikl/pm/internal/ui"
)

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade all installed packages",
	Long: `Fetch fresh metadata, then upgrade everything the active backend
manages.

Examples:
  pm upgrade`,
	Args: noArgs,
	RunE: runUpgrade,
}

func runUpgrade(cmd *cobra.Command, args []string) error {
	return app.Upgrade(context.Background())
}

// Upgrade refreshes metadata unconditionally before running the
// backend's full upgrade, so upgrades never act on yesterday's index.
func (a *App) Upgrade(ctx context.Context) error {
	b, err := a.Backend()
	if err != nil {
		return err
	}

	ui.InfoMsg("Refreshing %s package databases", b.DisplayName())
	if err := b.Refresh(ctx); err != nil {
		return err
	}
	if err := a.cache.MarkFresh(b.Name()); err != nil {
		ui.WarningMsg("Cannot record metadata freshness: %v", err)
	}

	entry := history.NewEntry(history.OpUpgrade, b.Name(), nil)
	err = b.Upgrade(ctx)
	entry.Finish(err)
	a.record(entry)
	if err != nil {
		return err
	}

	ui.SuccessMsg("Upgraded all packages with %s", b.DisplayName())
	return nil
}

package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jpikl/pm/internal/history"
	"github.com/jpikl/pm/internal/ui"
)

var refreshCmd = &cobra.Command{
	Use:     "refresh",
	Aliases: []string{"fetch"},
	Short:   "Fetch fresh package metadata",
	Long: `Fetch the latest package metadata from the backend's repositories
and mark it fresh for the rest of the UTC day.

Examples:
  pm refresh
  pm fetch       # same thing`,
	Args: noArgs,
	RunE: runRefresh,
}

func runRefresh(cmd *cobra.Command, args []string) error {
	return app.Refresh(context.Background())
}

// Refresh forces a metadata fetch regardless of the freshness marker.
func (a *App) Refresh(ctx context.Context) error {
	b, err := a.Backend()
	if err != nil {
		return err
	}

	entry := history.NewEntry(history.OpRefresh, b.Name(), nil)
	err = b.Refresh(ctx)
	entry.Finish(err)
	a.record(entry)
	if err != nil {
		return err
	}

	if err := a.cache.MarkFresh(b.Name()); err != nil {
		ui.WarningMsg("Cannot record metadata freshness: %v", err)
	}
	ui.SuccessMsg("Refreshed %s package databases", b.DisplayName())
	return nil
}

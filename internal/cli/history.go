package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpikl/pm/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past pm operations",
	Long: `Show recorded install, remove, upgrade, refresh and bootstrap
operations, newest first.

Examples:
  pm history
  pm history -n 5`,
	Args: noArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of entries to show, 0 for all")
}

func runHistory(cmd *cobra.Command, args []string) error {
	return app.History(historyLimit)
}

// History prints the newest entries of the operation log.
func (a *App) History(limit int) error {
	store, err := history.Open(a.historyPath)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(limit)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		fmt.Fprintln(a.out, entry.Summary())
	}
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <all|installed>",
	Short: "Fuzzy-search packages",
	Long: `Open an fzf picker over a package source and print the selected
rows to stdout.

When stdin is a pipe, it is read as one regex pattern per line and
only matching packages reach the picker. Cancelling the picker prints
nothing and succeeds.

Examples:
  pm search all
  pm sa                              # same thing
  echo '^lib' | pm search installed`,
	RunE: runSearch,
}

var searchInstalledCmd = &cobra.Command{
	Use:    "si",
	Short:  "Shorthand for 'search installed'",
	Hidden: true,
	Args:   noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Search(context.Background(), sourceInstalled)
	},
}

var searchAllCmd = &cobra.Command{
	Use:    "sa",
	Short:  "Shorthand for 'search all'",
	Hidden: true,
	Args:   noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Search(context.Background(), sourceAll)
	},
}

func runSearch(cmd *cobra.Command, args []string) error {
	source, err := parseSource(args)
	if err != nil {
		return err
	}
	return app.Search(context.Background(), source)
}

// Search prints the rows the user picked from a source.
func (a *App) Search(ctx context.Context, source string) error {
	b, err := a.Backend()
	if err != nil {
		return err
	}

	rows, err := a.pickRows(ctx, b, source)
	if err != nil {
		return err
	}

	for _, row := range rows {
		fmt.Fprintln(a.out, row)
	}
	return nil
}

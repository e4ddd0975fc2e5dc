package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpikl/pm/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list <all|installed>",
	Short: "Print package rows",
	Long: `Print one normalized row per package to stdout.

The source picks between everything the backend knows (all) and what
is currently installed (installed). Rows are plain text when stdout is
not a terminal, so they compose with grep and friends.

Examples:
  pm list installed
  pm li                    # same thing
  pm list all | grep fzf`,
	RunE: runList,
}

// The shorthands are ordinary subcommands, so 'pm li' dispatches exactly
// like 'pm list installed'.
var listInstalledCmd = &cobra.Command{
	Use:    "li",
	Short:  "Shorthand for 'list installed'",
	Hidden: true,
	Args:   noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.List(context.Background(), sourceInstalled)
	},
}

var listAllCmd = &cobra.Command{
	Use:    "la",
	Short:  "Shorthand for 'list all'",
	Hidden: true,
	Args:   noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.List(context.Background(), sourceAll)
	},
}

func runList(cmd *cobra.Command, args []string) error {
	source, err := parseSource(args)
	if err != nil {
		return err
	}
	return app.List(context.Background(), source)
}

// List prints the formatted rows of a source to stdout.
func (a *App) List(ctx context.Context, source string) error {
	b, err := a.Backend()
	if err != nil {
		return err
	}

	packages, err := listSource(ctx, b, source)
	if err != nil {
		return err
	}

	for _, line := range ui.Lines(packages, formatFor(source)) {
		fmt.Fprintln(a.out, line)
	}
	return nil
}

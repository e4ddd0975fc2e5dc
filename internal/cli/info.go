package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <package>",
	Short: "Show package details",
	Long: `Show the backend's detail view for a single package.

Examples:
  pm info bat`,
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return usagef("info needs exactly one package name")
	}
	return app.Info(context.Background(), args[0])
}

// Info prints the backend's package details to stdout.
func (a *App) Info(ctx context.Context, name string) error {
	b, err := a.Backend()
	if err != nil {
		return err
	}
	return b.Info(ctx, name)
}

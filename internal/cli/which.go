package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whichCmd = &cobra.Command{
	Use:   "which",
	Short: "Print the active backend name",
	Long: `Print which backend pm resolved, either by probing or from the
--backend flag, PM_BACKEND or the config file.

Examples:
  pm which
  pm --backend apt which`,
	Args: noArgs,
	RunE: runWhich,
}

func runWhich(cmd *cobra.Command, args []string) error {
	return app.Which()
}

// Which prints the resolved backend name to stdout.
func (a *App) Which() error {
	b, err := a.Backend()
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, b.Name())
	return nil
}

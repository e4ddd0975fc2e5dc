package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/jpikl/pm/internal/ui"
	"github.com/jpikl/pm/pkg/backend"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose pm's view of the system",
	Long: `Check backend detection, fzf availability, privilege escalation and
the cache directory.

Examples:
  pm doctor`,
	Args: noArgs,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	return app.Doctor()
}

// Doctor reports what pm resolved at startup and flags anything that
// would make a later command fail.
func (a *App) Doctor() error {
	issues := 0

	if b, err := a.Backend(); err != nil {
		ui.ErrorMsg("No usable backend: %v", err)
		issues++
	} else {
		ui.SuccessMsg("Active backend: %s", b.DisplayName())
	}

	for _, name := range backend.ProbeOrder {
		if b, ok := a.registry.Get(name); ok && b.Available() {
			ui.InfoMsg("Found %s", name)
		}
	}

	if _, err := exec.LookPath("fzf"); err != nil {
		ui.WarningMsg("fzf is not installed, interactive selection will not work")
		issues++
	} else {
		ui.SuccessMsg("fzf is installed")
	}

	if a.sudo != "" {
		ui.SuccessMsg("Privilege escalation: %s", a.sudo)
	} else {
		ui.InfoMsg("Privilege escalation: none")
	}

	if err := os.MkdirAll(a.cache.Root(), 0o755); err != nil {
		ui.ErrorMsg("Cache root %s is not writable: %v", a.cache.Root(), err)
		issues++
	} else {
		ui.SuccessMsg("Cache root: %s", a.cache.Root())
	}

	if issues > 0 {
		return fmt.Errorf("found %d issue(s)", issues)
	}
	ui.SuccessMsg("Everything looks good")
	return nil
}

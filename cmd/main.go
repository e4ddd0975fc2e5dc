// Command pm is a uniform front-end over the host's package manager.
package main

import (
	"fmt"
	"os"

	"github.com/jpikl/pm/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pm: %v\n", err)
		if cli.IsUsage(err) {
			fmt.Fprintln(os.Stderr, "run 'pm help' for usage")
		}
		os.Exit(cli.ExitCode(err))
	}
}

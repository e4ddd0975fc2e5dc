// Package cli implements the command-line interface for pm.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/jpikl/pm/internal/cache"
	"github.com/jpikl/pm/internal/config"
	"github.com/jpikl/pm/internal/executor"
	"github.com/jpikl/pm/internal/selector"
	"github.com/jpikl/pm/internal/ui"
	"github.com/jpikl/pm/pkg/aur"
	"github.com/jpikl/pm/pkg/backend"
)

var (
	// Global flags
	backendFlag string
	colorFlag   string
	yes         bool
	verbose     bool

	// Global state resolved once by initializeApp
	app *App
)

// Build metadata - set at build time via ldflags
var (
	Version   = "0.3.0-dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "pm",
	Short: "Uniform front-end for the system package manager",
	Long: `pm drives whatever package manager the host already has through one
small command set. It probes for a supported backend, keeps the
backend's metadata fresh once per day, and turns install and remove
without arguments into an interactive fzf picker.

Supported backends:
  Arch:     paru, yay, pacman (with AUR helper bootstrap)
  Linux:    apt, dnf, zypper, apk
  macOS:    brew
  Windows:  scoop

Shorthands:
  li = list installed     la = list all
  si = search installed   sa = search all
  fetch = refresh

Examples:
  pm install bat fd            # install straight away
  pm install                   # pick packages with fzf
  echo '^bat' | pm install     # pick from a narrowed listing
  pm la | grep fzf             # plain rows compose with pipes
  pm which                     # print the detected backend`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeApp()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&backendFlag, "backend", "b", "", "force a backend instead of probing for one")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "color mode: auto, always or never")
	rootCmd.PersistentFlags().BoolVarP(&yes, "yes", "y", false, "assume yes to all prompts")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace executed commands")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Message: err.Error()}
	})

	// Add subcommands
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(upgradeCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(listInstalledCmd)
	rootCmd.AddCommand(listAllCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(searchInstalledCmd)
	rootCmd.AddCommand(searchAllCmd)
	rootCmd.AddCommand(whichCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && strings.HasPrefix(err.Error(), "unknown command") {
		return &UsageError{Message: err.Error()}
	}
	return err
}

// initializeApp resolves the configuration and wires the collaborators.
// Everything environment-dependent is read here, exactly once; commands
// only see the resulting App. Tests preinstall their own App.
func initializeApp() error {
	if app != nil {
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Apply(backendFlag, colorFlag); err != nil {
		return err
	}

	ui.Init(cfg.ColorEnabled())

	sudo := executor.ResolveEscalation(cfg.General.Sudo)
	run := executor.New(sudo, verbose)
	c := cache.New(cfg.CacheRoot())
	stdinFd := os.Stdin.Fd()

	app = &App{
		cfg:         cfg,
		sudo:        sudo,
		registry:    backend.NewRegistry(run, c),
		cache:       c,
		sel:         selector.Fzf{},
		boot:        aur.NewBootstrap(run),
		historyPath: config.HistoryPath(),
		out:         os.Stdout,
		stdin:       os.Stdin,
		stdinTTY:    isatty.IsTerminal(stdinFd) || isatty.IsCygwinTerminal(stdinFd),
		assumeYes:   yes,
	}
	return nil
}

// noArgs rejects stray arguments with a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usagef("%s takes no arguments", cmd.Name())
	}
	return nil
}

// Version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print pm version",
	Args:  noArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pm %s\n", Version)
		if Commit != "unknown" {
			fmt.Printf("  commit: %s\n", Commit)
		}
		if BuildTime != "unknown" {
			fmt.Printf("  built:  %s\n", BuildTime)
		}
	},
}

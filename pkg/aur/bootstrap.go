package aur

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/jpikl/pm/internal/executor"
)

// Helpers are the AUR helper backends the bootstrap knows how to build.
var Helpers = []string{"paru", "yay"}

// ErrBuildFailed is returned when makepkg fails.
var ErrBuildFailed = errors.New("package build failed")

// IsHelper reports whether name is a bootstrappable AUR helper.
func IsHelper(name string) bool {
	for _, h := range Helpers {
		if h == name {
			return true
		}
	}
	return false
}

// Bootstrap builds AUR helpers on a pacman system that has none yet.
type Bootstrap struct {
	client *Client
	run    executor.Runner
}

// NewBootstrap creates a Bootstrap using the given runner for the
// privileged prerequisite install.
func NewBootstrap(run executor.Runner) *Bootstrap {
	return &Bootstrap{client: NewClient(), run: run}
}

// NewBootstrapWithClient creates a Bootstrap with a custom RPC client.
func NewBootstrapWithClient(client *Client, run executor.Runner) *Bootstrap {
	return &Bootstrap{client: client, run: run}
}

// Install builds and installs one AUR package: look it up, make sure the
// build toolchain is present, clone its recipe into a temp dir and run
// makepkg -si there. The temp dir is removed on every exit path.
func (b *Bootstrap) Install(ctx context.Context, name string) error {
	pkg, err := b.client.Lookup(ctx, name)
	if err != nil {
		return err
	}

	// makepkg refuses to run without base-devel; git fetches the recipe.
	err = b.run.RunPrivileged(ctx, "pacman", "-S", "--needed", "base-devel", "git")
	if err != nil {
		return fmt.Errorf("installing build prerequisites: %w", err)
	}

	dir, err := os.MkdirTemp("", "pm-aur-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	buildDir := filepath.Join(dir, pkg.PackageBase)
	if err := b.run.Run(ctx, "git", "clone", pkg.CloneURL(), buildDir); err != nil {
		return fmt.Errorf("cloning %s: %w", pkg.CloneURL(), err)
	}

	// makepkg -si installs build dependencies, builds, and installs the
	// result through pacman, prompting the user as usual.
	cmd := exec.CommandContext(ctx, "makepkg", "-si")
	cmd.Dir = buildDir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %v", ErrBuildFailed, err)
	}

	return nil
}

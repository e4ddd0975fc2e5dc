// Package selector drives the external fuzzy-finder and the stdin
// pattern pre-filter applied before it.
package selector

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrUnavailable reports that the external fuzzy-finder is missing.
var ErrUnavailable = errors.New("interactive selection needs fzf, install it first")

// Selector runs interactive multi-selection over candidate lines.
type Selector interface {
	Select(ctx context.Context, lines []string, preview string) ([]string, error)
}

// Fzf selects lines through the fzf binary. Fzf opens the terminal
// itself, so stdin stays free for the candidate list and stdout for the
// selection.
type Fzf struct{}

// Select feeds lines to fzf and returns the chosen ones. Cancelling the
// finder yields an empty selection, not an error.
func (Fzf) Select(ctx context.Context, lines []string, preview string) ([]string, error) {
	if _, err := exec.LookPath("fzf"); err != nil {
		return nil, ErrUnavailable
	}

	args := []string{"--multi", "--no-sort", "--exact", "--cycle", "--ansi"}
	if preview != "" {
		args = append(args, "--preview", preview)
	}

	cmd := exec.CommandContext(ctx, "fzf", args...)
	cmd.Stdin = strings.NewReader(strings.Join(lines, "\n"))
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// 1 means no match, 130 means interrupted. Both are an
			// empty selection, not a failure.
			if code := exitErr.ExitCode(); code == 1 || code == 130 {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("fzf: %w", err)
	}

	return splitLines(out.String()), nil
}

func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

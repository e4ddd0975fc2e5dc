package selector

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func fakeFzf(t *testing.T, script string) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake fzf is a shell script")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "fzf")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestSelectWithoutFzf(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := Fzf{}.Select(context.Background(), []string{"bat"}, "")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Select() error = %v, want ErrUnavailable", err)
	}
}

func TestSelectReturnsChosenLines(t *testing.T) {
	fakeFzf(t, "head -n 2")

	got, err := Fzf{}.Select(context.Background(), []string{"bat 0.24.0", "fd 10.2.0", "ripgrep 14.1.0"}, "")
	if err != nil {
		t.Fatalf("Select() error: %v", err)
	}
	if len(got) != 2 || got[0] != "bat 0.24.0" || got[1] != "fd 10.2.0" {
		t.Errorf("Select() = %v, want the first two lines", got)
	}
}

func TestSelectCancelledIsEmpty(t *testing.T) {
	fakeFzf(t, "exit 130")

	got, err := Fzf{}.Select(context.Background(), []string{"bat"}, "")
	if err != nil {
		t.Fatalf("Select() error: %v, want none for a cancelled finder", err)
	}
	if len(got) != 0 {
		t.Errorf("Select() = %v, want empty selection", got)
	}
}

func TestSelectNoMatchIsEmpty(t *testing.T) {
	fakeFzf(t, "exit 1")

	got, err := Fzf{}.Select(context.Background(), []string{"bat"}, "")
	if err != nil {
		t.Fatalf("Select() error: %v, want none when nothing matched", err)
	}
	if len(got) != 0 {
		t.Errorf("Select() = %v, want empty selection", got)
	}
}

func TestSelectFailure(t *testing.T) {
	fakeFzf(t, "exit 2")

	_, err := Fzf{}.Select(context.Background(), []string{"bat"}, "")
	if err == nil {
		t.Error("Select() should surface fzf failures other than cancel/no-match")
	}
}

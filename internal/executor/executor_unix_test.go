//go:build !windows

package executor

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// fakeBinary installs a shell script under a temp dir on PATH and returns
// the directory holding it.
func fakeBinary(t *testing.T, name, script string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	return dir
}

func TestResolveEscalationProbe(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("escalation is skipped for root")
	}

	dir := fakeBinary(t, "doas", "exit 0")
	t.Setenv("PATH", dir)

	if got := ResolveEscalation(nil); got != "doas" {
		t.Errorf("ResolveEscalation() = %q, want doas", got)
	}
}

func TestRunPrivilegedPrependsEscalation(t *testing.T) {
	dir := fakeBinary(t, "fakesudo", `printf '%s\n' "$@" > "$PM_TEST_RECORD"`)
	record := filepath.Join(dir, "record")
	t.Setenv("PM_TEST_RECORD", record)

	e := New("fakesudo", false)
	if err := e.RunPrivileged(context.Background(), "pkgtool", "install", "bat"); err != nil {
		t.Fatalf("RunPrivileged() error = %v", err)
	}

	data, err := os.ReadFile(record)
	if err != nil {
		t.Fatal(err)
	}
	want := "pkgtool\ninstall\nbat\n"
	if string(data) != want {
		t.Errorf("escalated argv = %q, want %q", data, want)
	}
}

func TestRunPrivilegedWithoutEscalation(t *testing.T) {
	dir := fakeBinary(t, "pkgtool", `printf '%s\n' "$@" > "$PM_TEST_RECORD"`)
	record := filepath.Join(dir, "record")
	t.Setenv("PM_TEST_RECORD", record)

	e := New("", false)
	if err := e.RunPrivileged(context.Background(), "pkgtool", "remove", "fd"); err != nil {
		t.Fatalf("RunPrivileged() error = %v", err)
	}

	data, err := os.ReadFile(record)
	if err != nil {
		t.Fatal(err)
	}
	want := "remove\nfd\n"
	if string(data) != want {
		t.Errorf("argv = %q, want %q", data, want)
	}
}

func TestRunReportsExitCode(t *testing.T) {
	fakeBinary(t, "failing", "exit 7")

	e := New("", false)
	err := e.Run(context.Background(), "failing")

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Run() error = %v, want *exec.ExitError", err)
	}
	if code := exitErr.ExitCode(); code != 7 {
		t.Errorf("exit code = %d, want 7", code)
	}
}

func TestOutputCapturesStdoutOnly(t *testing.T) {
	fakeBinary(t, "chatty", `echo data; echo noise >&2`)

	e := New("", false)
	out, err := e.Output(context.Background(), "chatty")
	if err != nil {
		t.Fatalf("Output() error = %v", err)
	}
	if out != "data\n" {
		t.Errorf("Output() = %q, want %q", out, "data\n")
	}
}

func TestOutputQuiet(t *testing.T) {
	fakeBinary(t, "chatty", `echo data; echo noise >&2`)

	e := New("", false)
	out, err := e.OutputQuiet(context.Background(), "chatty")
	if err != nil {
		t.Fatalf("OutputQuiet() error = %v", err)
	}
	if !strings.Contains(out, "data") {
		t.Errorf("OutputQuiet() = %q, want it to contain %q", out, "data")
	}
}

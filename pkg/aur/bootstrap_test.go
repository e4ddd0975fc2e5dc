package aur

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/jpikl/pm/internal/executor"
)

func fakeTool(t *testing.T, dir, name, script string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatal(err)
	}
}

func TestBootstrapInstall(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake tools are shell scripts")
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"resultcount": 1,
			"results": [{"Name": "paru", "PackageBase": "paru", "Version": "2.0.4-1"}]
		}`))
	}))
	defer srv.Close()

	bin := t.TempDir()
	record := filepath.Join(bin, "record")
	fakeTool(t, bin, "pacman", `echo pacman "$@" >> `+record)
	fakeTool(t, bin, "git", `echo git "$@" >> `+record+`
mkdir -p "$3"`)
	fakeTool(t, bin, "makepkg", `echo makepkg "$PWD" >> `+record)
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))

	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)

	client := NewClientWithOptions(srv.URL, time.Second)
	b := NewBootstrapWithClient(client, executor.New("", false))
	if err := b.Install(context.Background(), "paru"); err != nil {
		t.Fatalf("Install() error: %v", err)
	}

	data, err := os.ReadFile(record)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("recorded %d commands, want 3: %v", len(lines), lines)
	}

	if lines[0] != "pacman -S --needed base-devel git" {
		t.Errorf("prerequisite install = %q", lines[0])
	}

	clonePrefix := "git clone https://aur.archlinux.org/paru.git "
	if !strings.HasPrefix(lines[1], clonePrefix) {
		t.Fatalf("clone command = %q", lines[1])
	}
	cloneDir := strings.TrimPrefix(lines[1], clonePrefix)

	if lines[2] != "makepkg "+cloneDir {
		t.Errorf("makepkg ran in %q, want the clone dir %q", lines[2], cloneDir)
	}

	entries, err := os.ReadDir(tmp)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("build temp dir leaked: %v", entries)
	}
}

func TestBootstrapInstallUnknownPackage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"resultcount": 0, "results": []}`))
	}))
	defer srv.Close()

	client := NewClientWithOptions(srv.URL, time.Second)
	b := NewBootstrapWithClient(client, executor.New("", false))

	err := b.Install(context.Background(), "no-such-helper")
	if err == nil {
		t.Fatal("Install() should fail before building when the AUR lookup finds nothing")
	}
	if !strings.Contains(err.Error(), "no-such-helper") {
		t.Errorf("error %q should name the missing package", err)
	}
}

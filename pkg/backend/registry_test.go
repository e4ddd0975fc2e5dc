package backend

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestNewRegistryCoversProbeOrder(t *testing.T) {
	reg := NewRegistry(&fakeRunner{}, nil)

	for _, name := range ProbeOrder {
		b, ok := reg.Get(name)
		if !ok {
			t.Errorf("Get(%q) should find a registered backend", name)
			continue
		}
		if b.Name() != name {
			t.Errorf("backend registered under %q reports Name() = %q", name, b.Name())
		}
	}
}

func TestDetectOverride(t *testing.T) {
	reg := NewRegistry(&fakeRunner{}, nil)

	for _, name := range ProbeOrder {
		b, err := Detect(name, reg)
		if err != nil {
			t.Errorf("Detect(%q) error: %v", name, err)
			continue
		}
		if b.Name() != name {
			t.Errorf("Detect(%q) returned %q", name, b.Name())
		}
	}
}

func TestDetectOverrideUnknown(t *testing.T) {
	reg := NewRegistry(&fakeRunner{}, nil)

	_, err := Detect("portage", reg)
	if err == nil {
		t.Fatal("Detect() should fail for an unsupported override")
	}

	var unknown *UnknownError
	if !errors.As(err, &unknown) {
		t.Fatalf("Detect() error = %v, want *UnknownError", err)
	}
	if !strings.Contains(err.Error(), "pacman") {
		t.Errorf("error %q should list the supported backends", err)
	}
}

func TestDetectProbeOrder(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake binaries are shell scripts")
	}

	// yay comes before apt in the probe order, so it must win even
	// though both are present.
	dir := t.TempDir()
	for _, name := range []string{"apt", "yay"} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	t.Setenv("PATH", dir)

	reg := NewRegistry(&fakeRunner{}, nil)
	b, err := Detect("", reg)
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}
	if b.Name() != "yay" {
		t.Errorf("Detect() = %q, want yay", b.Name())
	}
}

func TestDetectNoneAvailable(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	reg := NewRegistry(&fakeRunner{}, nil)
	_, err := Detect("", reg)
	if err == nil {
		t.Fatal("Detect() should fail with no manager on PATH")
	}

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Detect() error = %v, want *NotFoundError", err)
	}
	for _, name := range ProbeOrder {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q should name probed backend %q", err, name)
		}
	}
}

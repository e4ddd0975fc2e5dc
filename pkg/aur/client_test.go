package aur

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/info" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("arg[]"); got != "paru" {
			t.Errorf("arg[] = %q, want paru", got)
		}
		w.Write([]byte(`{
			"resultcount": 1,
			"results": [{"Name": "paru", "PackageBase": "paru", "Version": "2.0.4-1"}]
		}`))
	}))
	defer srv.Close()

	client := NewClientWithOptions(srv.URL, time.Second)
	pkg, err := client.Lookup(context.Background(), "paru")
	if err != nil {
		t.Fatalf("Lookup() error: %v", err)
	}

	if pkg.Name != "paru" {
		t.Errorf("Name = %q, want paru", pkg.Name)
	}
	if got := pkg.CloneURL(); got != "https://aur.archlinux.org/paru.git" {
		t.Errorf("CloneURL() = %q", got)
	}
}

func TestLookupUnknownPackage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"resultcount": 0, "results": []}`))
	}))
	defer srv.Close()

	client := NewClientWithOptions(srv.URL, time.Second)
	_, err := client.Lookup(context.Background(), "no-such-helper")
	if !errors.Is(err, ErrPackageNotFound) {
		t.Errorf("Lookup() error = %v, want ErrPackageNotFound", err)
	}
}

func TestLookupAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"resultcount": 0, "results": [], "error": "Incorrect request type specified."}`))
	}))
	defer srv.Close()

	client := NewClientWithOptions(srv.URL, time.Second)
	_, err := client.Lookup(context.Background(), "paru")
	if err == nil {
		t.Fatal("Lookup() should surface API errors")
	}
	if errors.Is(err, ErrPackageNotFound) {
		t.Error("API errors should not be reported as missing packages")
	}
}

func TestIsHelper(t *testing.T) {
	for _, name := range []string{"paru", "yay"} {
		if !IsHelper(name) {
			t.Errorf("IsHelper(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"pacman", "bat", ""} {
		if IsHelper(name) {
			t.Errorf("IsHelper(%q) = true, want false", name)
		}
	}
}

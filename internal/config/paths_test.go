package config

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestPathsNameTheApp(t *testing.T) {
	for name, dir := range map[string]string{
		"ConfigDir": ConfigDir(),
		"CacheDir":  CacheDir(),
		"DataDir":   DataDir(),
	} {
		if dir == "" {
			t.Errorf("%s() returned an empty path", name)
		}
		if !strings.Contains(dir, "pm") {
			t.Errorf("%s() = %q, want it to contain 'pm'", name, dir)
		}
	}

	if got := ConfigPath(); !strings.HasSuffix(got, "config.toml") {
		t.Errorf("ConfigPath() = %q, want a config.toml path", got)
	}
	if got := HistoryPath(); !strings.HasSuffix(got, "history.db") {
		t.Errorf("HistoryPath() = %q, want a history.db path", got)
	}
}

func TestXDGOverrides(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG paths are not used on this platform")
	}

	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(tmp, "cache"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmp, "data"))

	if got := ConfigDir(); !strings.HasPrefix(got, filepath.Join(tmp, "config")) {
		t.Errorf("ConfigDir() = %q, want it under XDG_CONFIG_HOME", got)
	}
	if got := CacheDir(); !strings.HasPrefix(got, filepath.Join(tmp, "cache")) {
		t.Errorf("CacheDir() = %q, want it under XDG_CACHE_HOME", got)
	}
	if got := DataDir(); !strings.HasPrefix(got, filepath.Join(tmp, "data")) {
		t.Errorf("DataDir() = %q, want it under XDG_DATA_HOME", got)
	}
}

package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/mattn/go-isatty"
)

// Environment variables recognized by pm. Flags win over these, and these
// win over the config file.
const (
	EnvBackend  = "PM_BACKEND"
	EnvColor    = "PM_COLOR"
	EnvSudo     = "PM_SUDO"
	EnvCacheDir = "PM_CACHE_DIR"
)

// Color modes accepted by the --color flag, PM_COLOR and the config file.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the complete pm configuration. It is resolved once at
// startup (flags > environment > config file > defaults) and treated as
// immutable afterwards.
type Config struct {
	General GeneralConfig `toml:"general"`
}

// GeneralConfig contains general pm settings.
type GeneralConfig struct {
	// Backend forces a specific package manager instead of probing for one.
	Backend string `toml:"backend"`

	// Color is one of "auto", "always" or "never".
	Color string `toml:"color"`

	// Sudo overrides the privilege escalation command. An explicit empty
	// string disables escalation entirely; nil means probe for one.
	Sudo *string `toml:"sudo"`

	// CacheDir overrides the per-backend cache root.
	CacheDir string `toml:"cache_dir"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			Color: ColorAuto,
		},
	}
}

// Load loads the configuration from the default path and applies
// environment overrides.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom loads the configuration from a specific path. A missing config
// file is not an error; a malformed one is.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv layers the PM_* environment variables over the file values.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvBackend); v != "" {
		c.General.Backend = v
	}
	if v := os.Getenv(EnvColor); v != "" {
		c.General.Color = v
	}
	if v, ok := os.LookupEnv(EnvSudo); ok {
		c.General.Sudo = &v
	}
	if v := os.Getenv(EnvCacheDir); v != "" {
		c.General.CacheDir = v
	}
}

// Apply layers command-line overrides on top of the loaded values and
// re-validates. Empty strings leave the loaded values alone.
func (c *Config) Apply(backend, color string) error {
	if backend != "" {
		c.General.Backend = backend
	}
	if color != "" {
		c.General.Color = color
	}
	return c.validate()
}

func (c *Config) validate() error {
	switch c.General.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (expected auto, always or never)", c.General.Color)
	}
}

// ColorEnabled resolves the configured color mode against the terminal.
// Respects the NO_COLOR convention.
func (c *Config) ColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	switch c.General.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		fd := os.Stdout.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
}

// CacheRoot returns the cache root directory, honoring the override.
func (c *Config) CacheRoot() string {
	if c.General.CacheDir != "" {
		return c.General.CacheDir
	}
	return CacheDir()
}

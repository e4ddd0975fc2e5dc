// Package cache tracks per-backend metadata freshness and cached listings.
//
// Each backend owns one directory under the cache root. A marker file
// records the UTC date of the last successful metadata refresh; a backend
// is stale when the marker is absent or carries a different date. Backends
// without a fast native search additionally cache their full package
// listing for the same day.
package cache

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	markerFile  = "fetched"
	listingFile = "listing"
	dayFormat   = "2006-01-02"
)

// Cache manages freshness markers under a single root directory.
type Cache struct {
	root string
}

// New creates a Cache rooted at dir. The directory is created lazily.
func New(dir string) *Cache {
	return &Cache{root: dir}
}

// Root returns the cache root directory.
func (c *Cache) Root() string {
	return c.root
}

func (c *Cache) dir(backend string) string {
	return filepath.Join(c.root, backend)
}

func today() string {
	return time.Now().UTC().Format(dayFormat)
}

// IsStale reports whether the backend's metadata refresh marker is missing
// or from a previous UTC day.
func (c *Cache) IsStale(backend string) bool {
	data, err := os.ReadFile(filepath.Join(c.dir(backend), markerFile))
	if err != nil {
		return true
	}
	return strings.TrimSpace(string(data)) != today()
}

// MarkFresh records the current UTC date for the backend. The marker is
// written to a unique temp file and renamed into place so a concurrent
// reader never sees a partial write.
func (c *Cache) MarkFresh(backend string) error {
	return c.write(backend, markerFile, today()+"\n")
}

// SaveListing stores a package listing for the backend, valid for the rest
// of the current UTC day.
func (c *Cache) SaveListing(backend string, lines []string) error {
	content := today() + "\n" + strings.Join(lines, "\n") + "\n"
	return c.write(backend, listingFile, content)
}

// LoadListing returns the cached listing when one was saved earlier the
// same UTC day.
func (c *Cache) LoadListing(backend string) ([]string, bool) {
	data, err := os.ReadFile(filepath.Join(c.dir(backend), listingFile))
	if err != nil {
		return nil, false
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) < 2 || lines[0] != today() {
		return nil, false
	}
	return lines[1:], true
}

func (c *Cache) write(backend, name, content string) error {
	dir := c.dir(backend)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, name+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), filepath.Join(dir, name))
}

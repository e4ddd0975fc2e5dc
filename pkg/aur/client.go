// Package aur bootstraps AUR helpers: it looks packages up through the
// AUR RPC, clones their build recipe and builds them with makepkg.
package aur

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the AUR RPC API endpoint.
	DefaultBaseURL = "https://aur.archlinux.org/rpc/v5"

	// DefaultTimeout bounds RPC lookups. Clone and build times are
	// unbounded like any other package operation.
	DefaultTimeout = 30 * time.Second
)

// ErrPackageNotFound is returned when the AUR does not know the package.
var ErrPackageNotFound = errors.New("package not found in AUR")

// Client is a minimal AUR RPC API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Package is the subset of AUR package metadata the bootstrap needs.
type Package struct {
	Name        string `json:"Name"`
	PackageBase string `json:"PackageBase"`
	Version     string `json:"Version"`
	Description string `json:"Description"`
}

type response struct {
	ResultCount int       `json:"resultcount"`
	Results     []Package `json:"results"`
	Error       string    `json:"error,omitempty"`
}

// NewClient creates a client against the real AUR.
func NewClient() *Client {
	return NewClientWithOptions(DefaultBaseURL, DefaultTimeout)
}

// NewClientWithOptions creates a client with a custom endpoint and
// timeout.
func NewClientWithOptions(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Lookup fetches metadata for one package, so an unknown name fails
// before any cloning or building starts.
func (c *Client) Lookup(ctx context.Context, name string) (*Package, error) {
	endpoint := fmt.Sprintf("%s/info?arg[]=%s", c.baseURL, url.QueryEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "pm/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("AUR request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("AUR API error (status %d): %s", resp.StatusCode, body)
	}

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("parsing AUR response: %w", err)
	}
	if r.Error != "" {
		return nil, fmt.Errorf("AUR API error: %s", r.Error)
	}
	if r.ResultCount == 0 || len(r.Results) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrPackageNotFound, name)
	}

	return &r.Results[0], nil
}

// CloneURL returns the git URL of the package's build recipe.
func (p *Package) CloneURL() string {
	return fmt.Sprintf("https://aur.archlinux.org/%s.git", p.PackageBase)
}

package backend

import (
	"github.com/jpikl/pm/internal/cache"
	"github.com/jpikl/pm/internal/executor"
)

// ProbeOrder is the fixed detection priority. The AUR helpers come before
// pacman so a freshly bootstrapped helper takes over on the next
// invocation.
var ProbeOrder = []string{
	"paru",
	"yay",
	"pacman",
	"apt",
	"dnf",
	"zypper",
	"apk",
	"brew",
	"scoop",
}

// Registry holds one adapter per supported package manager.
type Registry struct {
	backends map[string]Backend
}

// NewRegistry builds the full adapter set. The cache is used by backends
// that maintain a local package listing.
func NewRegistry(run executor.Runner, c *cache.Cache) *Registry {
	r := &Registry{backends: make(map[string]Backend)}

	for _, b := range []Backend{
		NewParu(run),
		NewYay(run),
		NewPacman(run),
		NewApt(run),
		NewDnf(run),
		NewZypper(run),
		NewApk(run),
		NewBrew(run),
		NewScoop(run, c),
	} {
		r.backends[b.Name()] = b
	}

	return r
}

// Register adds an adapter, replacing any previous one with the same name.
func (r *Registry) Register(b Backend) {
	r.backends[b.Name()] = b
}

// Get returns the adapter registered under name.
func (r *Registry) Get(name string) (Backend, bool) {
	b, ok := r.backends[name]
	return b, ok
}

// Detect resolves the active backend. A non-empty override wins without
// checking that its binary is installed; operations fail on their own if
// it is not. Otherwise the probe order decides: the first backend whose
// binary is on PATH is the one.
func Detect(override string, r *Registry) (Backend, error) {
	if override != "" {
		b, ok := r.Get(override)
		if !ok {
			return nil, &UnknownError{Name: override, Supported: ProbeOrder}
		}
		return b, nil
	}

	for _, name := range ProbeOrder {
		if b, ok := r.Get(name); ok && b.Available() {
			return b, nil
		}
	}

	return nil, &NotFoundError{Probed: ProbeOrder}
}

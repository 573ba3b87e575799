package catalog

import "sync"

// Provider lazily loads a catalog exactly once per process. Concurrent
// first callers block until the single load completes; every caller then
// shares the same read-only catalog. A failed load is latched and
// returned to all subsequent callers.
type Provider struct {
	path string

	once sync.Once
	cat  *Catalog
	err  error
}

// NewProvider creates a lazy provider for the catalog at path. The file
// is not touched until the first Get call.
func NewProvider(path string) *Provider {
	return &Provider{path: path}
}

// Get returns the shared catalog, loading it on first use.
func (p *Provider) Get() (*Catalog, error) {
	p.once.Do(func() {
		p.cat, p.err = Load(p.path)
	})
	return p.cat, p.err
}

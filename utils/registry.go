// utils/registry.go
package utils

import (
	"fmt"
	"strings"

	"sniperlink/models"
)

// Registry is the read-only catalog of known providers. It is built once at
// startup and safe for concurrent use without locking.
type Registry struct {
	providers []*models.Provider
	byDomain  map[string]*models.Provider
	byID      map[models.ProviderID]*models.Provider
}

// NewRegistry indexes providers by domain. A domain claimed twice, an empty or
// repeated ID, or a provider without desktop or Android builders is rejected.
func NewRegistry(providers []*models.Provider) (*Registry, error) {
	r := &Registry{
		providers: make([]*models.Provider, 0, len(providers)),
		byDomain:  make(map[string]*models.Provider),
		byID:      make(map[models.ProviderID]*models.Provider, len(providers)),
	}

	for _, p := range providers {
		if p == nil || p.ID == "" {
			return nil, fmt.Errorf("provider without id")
		}
		if _, dup := r.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate provider id %q", p.ID)
		}
		if p.Desktop == nil || p.Android == nil {
			return nil, fmt.Errorf("provider %q must define desktop and android links", p.ID)
		}

		for _, domain := range p.Domains {
			domain = strings.ToLower(strings.TrimSpace(domain))
			if domain == "" {
				return nil, fmt.Errorf("provider %q has an empty domain", p.ID)
			}
			if owner, dup := r.byDomain[domain]; dup {
				return nil, fmt.Errorf("domain %q is claimed by both %q and %q", domain, owner.ID, p.ID)
			}
			r.byDomain[domain] = p
		}

		r.byID[p.ID] = p
		r.providers = append(r.providers, p)
	}

	return r, nil
}

// LookupByDomain returns the provider owning domain, or nil
func (r *Registry) LookupByDomain(domain string) *models.Provider {
	return r.byDomain[domain]
}

// LookupByMxHost returns the provider whose domain equals host or is a parent
// domain of it. Matching is done on whole labels, so "ilovegmail.com" does not
// match "gmail.com". The most specific owned domain wins.
func (r *Registry) LookupByMxHost(host string) *models.Provider {
	host = strings.ToLower(host)
	for host != "" {
		if p, ok := r.byDomain[host]; ok {
			return p
		}
		dot := strings.IndexByte(host, '.')
		if dot < 0 {
			break
		}
		host = host[dot+1:]
	}
	return nil
}

// Provider returns the provider registered under id, or nil
func (r *Registry) Provider(id models.ProviderID) *models.Provider {
	return r.byID[id]
}

// Providers returns all providers in catalog order
func (r *Registry) Providers() []*models.Provider {
	out := make([]*models.Provider, len(r.providers))
	copy(out, r.providers)
	return out
}

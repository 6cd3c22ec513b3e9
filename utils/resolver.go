// utils/resolver.go
package utils

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/idna"
	"golang.org/x/sync/singleflight"

	"sniperlink/models"
)

// Resolver determines the provider behind a recipient address
type Resolver struct {
	registry *Registry
	dns      MXLookup
	flights  singleflight.Group
}

func NewResolver(registry *Registry, lookup MXLookup) *Resolver {
	return &Resolver{
		registry: registry,
		dns:      lookup,
	}
}

// Resolve returns the provider for recipient. A nil provider with a nil error
// means the provider is unknown or ambiguous; a non-nil error means the DNS
// lookup itself failed. Callers treat both as unresolved.
func (r *Resolver) Resolve(ctx context.Context, recipient string) (*models.Provider, error) {
	domain := ExtractDomain(recipient)
	if domain == "" {
		return nil, nil
	}

	if p := r.registry.LookupByDomain(domain); p != nil {
		return p, nil
	}

	return r.resolveViaDNS(ctx, domain)
}

func (r *Resolver) resolveViaDNS(ctx context.Context, domain string) (*models.Provider, error) {
	name, err := idna.ToASCII(domain)
	if err != nil || name == "" {
		logrus.WithFields(logrus.Fields{
			"domain": domain,
			"error":  err,
		}).Debug("Domain cannot be queried")
		return nil, nil
	}

	// Concurrent requests for the same domain share one query. Nothing is kept
	// after the query returns.
	v, err, _ := r.flights.Do(name, func() (interface{}, error) {
		return r.dns.LookupMX(ctx, name)
	})
	if err != nil {
		return nil, err
	}

	resp := v.(*models.DNSResponse)
	if resp == nil || resp.Status != 0 || resp.Answer == nil {
		return nil, nil
	}

	return MatchProviderFromMxRecords(r.registry, ParseMxRecords(resp.Answer)), nil
}

// MatchProviderFromMxRecords finds the provider using priority-based matching.
//
// It returns a provider only if the best (lowest) priority containing a
// recognized provider holds exactly one distinct value. An unrecognized
// exchange at that priority counts as a distinct value, so split routing or a
// half-migrated MX setup resolves to nil rather than a guess.
func MatchProviderFromMxRecords(registry *Registry, records []models.MxRecord) *models.Provider {
	var (
		best  uint16
		found bool
	)
	// nil is the "no provider" marker inside a set
	byPriority := make(map[uint16]map[*models.Provider]struct{})

	for _, rec := range records {
		if found && rec.Priority > best {
			continue
		}

		provider := registry.LookupByMxHost(rec.Exchange)
		set, ok := byPriority[rec.Priority]
		if !ok {
			set = make(map[*models.Provider]struct{})
			byPriority[rec.Priority] = set
		}
		set[provider] = struct{}{}

		if provider != nil && (!found || rec.Priority < best) {
			best = rec.Priority
			found = true
		}
	}

	if !found {
		return nil
	}

	candidates := byPriority[best]
	if len(candidates) != 1 {
		return nil
	}
	for p := range candidates {
		return p
	}
	return nil
}

// ExtractDomain returns the lowercased part after the last '@', or "" when the
// address has none.
func ExtractDomain(email string) string {
	at := strings.LastIndexByte(email, '@')
	if at < 0 {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(email[at+1:]))
}

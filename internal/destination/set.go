// Package destination holds the published and draft destination
// snapshots of an article opened in the publish panel.
package destination

import (
	"fmt"

	"github.com/thedemodev/superdesk-publisher/internal/domain"
	"github.com/thedemodev/superdesk-publisher/internal/snapdiff"
)

// DefaultLiveURLScheme is used to build live URLs of published destinations.
const DefaultLiveURLScheme = "http"

// Snapshot is a read-only view of destination configurations by tenant code.
type Snapshot = snapdiff.Snapshot[string, domain.DestinationConfig]

type configMap = snapdiff.OrderedMap[string, domain.DestinationConfig]

// Option configures a Set.
type Option func(*Set)

// WithLiveURLScheme overrides the scheme of live URLs.
func WithLiveURLScheme(scheme string) Option {
	return func(s *Set) {
		if scheme != "" {
			s.liveURLScheme = scheme
		}
	}
}

// Set is the destination state of one article for one session.
// It is not safe for concurrent use; callers serialize access.
type Set struct {
	articleID     int64
	liveURLScheme string

	sites     []domain.Site
	published *configMap
	draft     *configMap
	available []domain.AvailableSite
}

// Open builds the published snapshot from the article's publication history,
// derives the available sites and copies published into the draft.
func Open(article domain.Article, sites []domain.Site, opts ...Option) *Set {
	s := &Set{
		articleID:     article.ID,
		liveURLScheme: DefaultLiveURLScheme,
		sites:         append([]domain.Site(nil), sites...),
		published:     snapdiff.NewOrderedMap[string, domain.DestinationConfig](),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, item := range article.Articles {
		code := item.Tenant.Code
		if code == "" {
			continue
		}
		s.published.Set(code, s.fromPublication(item))
	}

	for _, site := range s.sites {
		if !s.published.Has(site.Code) {
			s.available = append(s.available, domain.AvailableSite{Code: site.Code, Name: site.Name})
		}
	}

	s.draft = s.published.Clone(domain.DestinationConfig.Clone)
	return s
}

func (s *Set) fromPublication(item domain.ArticlePublication) domain.DestinationConfig {
	cfg := domain.DestinationConfig{
		TenantCode:      item.Tenant.Code,
		Tenant:          item.Tenant,
		Route:           item.Route,
		IsPublishedFbia: item.IsPublishedFbia,
		PaywallSecured:  item.PaywallSecured,
		Status:          item.Status,
		UpdatedAt:       item.UpdatedAt,
		ContentLists:    item.ContentLists,
	}
	// A destination without a route can never be live.
	if cfg.Status == domain.DestinationStatusPublished && !cfg.HasRoute() {
		cfg.Status = domain.DestinationStatusUnpublished
	}
	if cfg.Status == domain.DestinationStatusPublished {
		cfg.LiveURL = s.liveURLScheme + "://" + item.Tenant.Host() + item.OnlineHref()
	}
	return cfg.Clone()
}

// ArticleID returns the id of the article the set was opened for.
func (s *Set) ArticleID() int64 {
	return s.articleID
}

// Published returns the last server-confirmed snapshot.
func (s *Set) Published() Snapshot {
	return s.published
}

// Draft returns the user-edited snapshot.
func (s *Set) Draft() Snapshot {
	return s.draft
}

// PublishedConfigs returns copies of the published configurations in order.
func (s *Set) PublishedConfigs() []domain.DestinationConfig {
	return cloneValues(s.published)
}

// DraftConfigs returns copies of the draft configurations in order.
func (s *Set) DraftConfigs() []domain.DestinationConfig {
	return cloneValues(s.draft)
}

// Available returns the sites that are not yet destinations of the draft.
func (s *Set) Available() []domain.AvailableSite {
	return append([]domain.AvailableSite{}, s.available...)
}

// Changed returns the tenant codes whose draft differs from the published state.
func (s *Set) Changed() []string {
	return snapdiff.Diff[string, domain.DestinationConfig](s.draft, s.published)
}

// Add turns an available site into a new draft destination placed first.
func (s *Set) Add(code string) error {
	idx := s.availableIndex(code)
	if idx < 0 {
		return fmt.Errorf("%w: site %q is not available", domain.ErrInvalidState, code)
	}
	site, ok := s.site(code)
	if !ok {
		return fmt.Errorf("%w: site %q is not in the registry", domain.ErrInvalidState, code)
	}

	s.available = append(s.available[:idx], s.available[idx+1:]...)
	s.draft.PushFront(code, domain.NewDestination(site))
	return nil
}

// Remove drops a destination from the draft and makes its site available again.
// The published snapshot is left untouched.
func (s *Set) Remove(code string) error {
	cfg, ok := s.draft.Get(code)
	if !ok {
		return fmt.Errorf("%w: destination %q is not in the draft", domain.ErrInvalidState, code)
	}
	s.draft.Delete(code)
	s.restoreAvailable(domain.AvailableSite{Code: code, Name: cfg.Tenant.Name})
	return nil
}

// MarkForUnpublish flags a draft destination for retraction.
func (s *Set) MarkForUnpublish(code string, flag bool) error {
	return s.Update(code, func(cfg *domain.DestinationConfig) {
		cfg.Unpublish = flag
	})
}

// Update applies fn to a copy of the draft destination and stores the result.
// The tenant code cannot be changed.
func (s *Set) Update(code string, fn func(cfg *domain.DestinationConfig)) error {
	cfg, ok := s.draft.Get(code)
	if !ok {
		return fmt.Errorf("%w: destination %q is not in the draft", domain.ErrInvalidState, code)
	}
	next := cfg.Clone()
	fn(&next)
	next.TenantCode = code
	s.draft.Set(code, next.Clone())
	return nil
}

// Commit records a successful submission for the given tenants when the
// article could not be reloaded. After a publish the draft becomes the
// published state and every sent destination is published when it has a
// route and unpublished otherwise. After an unpublish only the sent
// destinations change; other draft edits stay pending.
func (s *Set) Commit(kind domain.JobKind, tenants []string) {
	sent := make(map[string]struct{}, len(tenants))
	for _, code := range tenants {
		sent[code] = struct{}{}
	}

	if kind == domain.JobKindUnpublish {
		for _, code := range tenants {
			if cfg, ok := s.draft.Get(code); ok {
				s.draft.Set(code, retracted(cfg))
			}
			if cfg, ok := s.published.Get(code); ok {
				s.published.Set(code, retracted(cfg))
			} else if cfg, ok := s.draft.Get(code); ok {
				s.published.Set(code, cfg.Clone())
			}
		}
		return
	}

	published := s.draft.Clone(func(cfg domain.DestinationConfig) domain.DestinationConfig {
		c := cfg.Clone()
		if _, ok := sent[c.TenantCode]; ok {
			c = s.settled(c)
		}
		c.Unpublish = false
		return c
	})
	s.published = published
	s.draft = published.Clone(domain.DestinationConfig.Clone)
}

// settled is the state of a destination the backend accepted for publishing.
// A live URL is only known for destinations that were already live; the
// public path of a first publication comes from the next reload.
func (s *Set) settled(cfg domain.DestinationConfig) domain.DestinationConfig {
	if !cfg.HasRoute() {
		cfg.Status = domain.DestinationStatusUnpublished
		cfg.LiveURL = ""
		return cfg
	}
	if prev, ok := s.published.Get(cfg.TenantCode); ok && prev.Status == domain.DestinationStatusPublished {
		cfg.LiveURL = prev.LiveURL
	}
	cfg.Status = domain.DestinationStatusPublished
	return cfg
}

func retracted(cfg domain.DestinationConfig) domain.DestinationConfig {
	c := cfg.Clone()
	c.Status = domain.DestinationStatusUnpublished
	c.Unpublish = false
	c.LiveURL = ""
	return c
}

func (s *Set) availableIndex(code string) int {
	for i, site := range s.available {
		if site.Code == code {
			return i
		}
	}
	return -1
}

func (s *Set) site(code string) (domain.Site, bool) {
	for _, site := range s.sites {
		if site.Code == code {
			return site, true
		}
	}
	if cfg, ok := s.published.Get(code); ok {
		return cfg.Tenant, true
	}
	return domain.Site{}, false
}

// restoreAvailable puts a site back at its registry position.
func (s *Set) restoreAvailable(site domain.AvailableSite) {
	if s.availableIndex(site.Code) >= 0 {
		return
	}
	rank := s.registryRank(site.Code)
	for i, other := range s.available {
		if s.registryRank(other.Code) > rank {
			s.available = append(s.available[:i], append([]domain.AvailableSite{site}, s.available[i:]...)...)
			return
		}
	}
	s.available = append(s.available, site)
}

// registryRank orders unknown sites after every registry site.
func (s *Set) registryRank(code string) int {
	for i, site := range s.sites {
		if site.Code == code {
			return i
		}
	}
	return len(s.sites)
}

func cloneValues(m *configMap) []domain.DestinationConfig {
	out := m.Values()
	for i := range out {
		out[i] = out[i].Clone()
	}
	return out
}

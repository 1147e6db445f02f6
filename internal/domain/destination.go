package domain

import "time"

// DestinationStatus is the lifecycle of one destination of an article.
type DestinationStatus string

const (
	DestinationStatusNew         DestinationStatus = "new"
	DestinationStatusPublished   DestinationStatus = "published"
	DestinationStatusUnpublished DestinationStatus = "unpublished"
	DestinationStatusCanceled    DestinationStatus = "canceled"
)

// ValidDestinationStatuses contains all valid destination statuses.
var ValidDestinationStatuses = []DestinationStatus{
	DestinationStatusNew,
	DestinationStatusPublished,
	DestinationStatusUnpublished,
	DestinationStatusCanceled,
}

// IsValidDestinationStatus checks if a destination status is valid.
func IsValidDestinationStatus(status DestinationStatus) bool {
	for _, s := range ValidDestinationStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Site is a tenant as known by the site registry.
type Site struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	DomainName string `json:"domainName"`
	Subdomain  string `json:"subdomain,omitempty"`
}

// Host returns the public host name of the site.
func (s Site) Host() string {
	if s.Subdomain != "" {
		return s.Subdomain + "." + s.DomainName
	}
	return s.DomainName
}

// AvailableSite is a site that can still be added as a destination.
type AvailableSite struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// RouteRef references a collection route of a tenant.
type RouteRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

// ContentListRef places an article into a manual content list.
type ContentListRef struct {
	ID       int64  `json:"id"`
	Position int    `json:"position"`
	Name     string `json:"name,omitempty"`
}

// DestinationConfig is the publication state of the selected article on one tenant.
type DestinationConfig struct {
	TenantCode      string            `json:"tenantCode"`
	Tenant          Site              `json:"tenant"`
	Route           *RouteRef         `json:"route"`
	IsPublishedFbia bool              `json:"isPublishedFbia"`
	PaywallSecured  bool              `json:"paywallSecured"`
	Status          DestinationStatus `json:"status"`
	UpdatedAt       *time.Time        `json:"updatedAt,omitempty"`
	ContentLists    []ContentListRef  `json:"contentLists"`
	Unpublish       bool              `json:"unpublish,omitempty"`
	LiveURL         string            `json:"liveUrl,omitempty"`
}

// NewDestination returns the default configuration of a freshly added destination.
func NewDestination(site Site) DestinationConfig {
	return DestinationConfig{
		TenantCode:   site.Code,
		Tenant:       site,
		Status:       DestinationStatusNew,
		ContentLists: []ContentListRef{},
	}
}

// HasRoute reports whether a route with a usable id is assigned.
func (d DestinationConfig) HasRoute() bool {
	return d.Route != nil && d.Route.ID != 0
}

// Clone returns a deep copy. Nil and empty content lists are preserved as such.
func (d DestinationConfig) Clone() DestinationConfig {
	c := d
	if d.Route != nil {
		route := *d.Route
		c.Route = &route
	}
	if d.UpdatedAt != nil {
		at := *d.UpdatedAt
		c.UpdatedAt = &at
	}
	if d.ContentLists != nil {
		c.ContentLists = make([]ContentListRef, len(d.ContentLists))
		copy(c.ContentLists, d.ContentLists)
	}
	return c
}

package domain

import "time"

// SessionView is the state of a publish session as shown to the editor.
type SessionView struct {
	ID        string              `json:"id"`
	ArticleID int64               `json:"articleId"`
	Published []DestinationConfig `json:"published"`
	Draft     []DestinationConfig `json:"draft"`
	Available []AvailableSite     `json:"available"`
	Changed   []string            `json:"changed"`
	OpenedAt  time.Time           `json:"openedAt"`
}

// DestinationPatch carries the editable fields of a draft destination.
// Nil fields are left untouched.
type DestinationPatch struct {
	Route           *RouteRef         `json:"route,omitempty"`
	ClearRoute      bool              `json:"clearRoute,omitempty"`
	IsPublishedFbia *bool             `json:"isPublishedFbia,omitempty"`
	PaywallSecured  *bool             `json:"paywallSecured,omitempty"`
	ContentLists    *[]ContentListRef `json:"contentLists,omitempty"`
	Unpublish       *bool             `json:"unpublish,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p DestinationPatch) IsEmpty() bool {
	return p.Route == nil && !p.ClearRoute && p.IsPublishedFbia == nil &&
		p.PaywallSecured == nil && p.ContentLists == nil && p.Unpublish == nil
}

// Apply writes the patch onto cfg.
func (p DestinationPatch) Apply(cfg *DestinationConfig) {
	if p.ClearRoute {
		cfg.Route = nil
	}
	if p.Route != nil {
		route := *p.Route
		cfg.Route = &route
	}
	if p.IsPublishedFbia != nil {
		cfg.IsPublishedFbia = *p.IsPublishedFbia
	}
	if p.PaywallSecured != nil {
		cfg.PaywallSecured = *p.PaywallSecured
	}
	if p.ContentLists != nil {
		lists := make([]ContentListRef, len(*p.ContentLists))
		copy(lists, *p.ContentLists)
		cfg.ContentLists = lists
	}
	if p.Unpublish != nil {
		cfg.Unpublish = *p.Unpublish
	}
}

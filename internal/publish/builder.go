// Package publish turns destination snapshots into publish and unpublish requests.
package publish

import (
	"github.com/thedemodev/superdesk-publisher/internal/domain"
	"github.com/thedemodev/superdesk-publisher/internal/snapdiff"
)

// Snapshot is a read-only view of destination configurations by tenant code.
type Snapshot = snapdiff.Snapshot[string, domain.DestinationConfig]

// BuildPublish returns one record per destination whose draft differs from
// the published state. New destinations are always included, even when all
// their fields still hold default values. An empty request must not be sent.
func BuildPublish(draft, published Snapshot) domain.PublishRequest {
	changed := changedWithNew(draft, published)

	req := domain.PublishRequest{Destinations: make([]domain.DestinationRecord, 0, len(changed))}
	for _, code := range changed {
		cfg, _ := draft.Get(code)
		req.Destinations = append(req.Destinations, record(code, cfg))
	}
	return req
}

// BuildUnpublish returns the changed draft destinations flagged for unpublishing.
func BuildUnpublish(draft, published Snapshot) domain.UnpublishRequest {
	req := domain.UnpublishRequest{Tenants: make([]string, 0)}
	for _, code := range snapdiff.Diff[string, domain.DestinationConfig](draft, published) {
		if cfg, _ := draft.Get(code); cfg.Unpublish {
			req.Tenants = append(req.Tenants, code)
		}
	}
	return req
}

// changedWithNew unions the diff with every new destination, in draft order.
func changedWithNew(draft, published Snapshot) []string {
	changed := make(map[string]struct{})
	for _, code := range snapdiff.Diff[string, domain.DestinationConfig](draft, published) {
		changed[code] = struct{}{}
	}

	var out []string
	for _, code := range draft.Keys() {
		cfg, _ := draft.Get(code)
		if _, ok := changed[code]; ok || cfg.Status == domain.DestinationStatusNew {
			out = append(out, code)
		}
	}
	return out
}

func record(code string, cfg domain.DestinationConfig) domain.DestinationRecord {
	rec := domain.DestinationRecord{
		Tenant:          code,
		IsPublishedFbia: cfg.IsPublishedFbia,
		PaywallSecured:  cfg.PaywallSecured,
	}
	if cfg.HasRoute() {
		id := cfg.Route.ID
		rec.Route = &id
		rec.Published = true
	}
	if cfg.Status == domain.DestinationStatusNew && len(cfg.ContentLists) > 0 {
		rec.ContentLists = append([]domain.ContentListRef(nil), cfg.ContentLists...)
	}
	return rec
}

package domain

// DestinationRecord is one destination of a publish request.
type DestinationRecord struct {
	Tenant          string           `json:"tenant"`
	Route           *int64           `json:"route"`
	IsPublishedFbia bool             `json:"isPublishedFbia"`
	Published       bool             `json:"published"`
	PaywallSecured  bool             `json:"paywallSecured"`
	ContentLists    []ContentListRef `json:"contentLists,omitempty"`
}

// PublishRequest lists the destinations whose configuration changed.
type PublishRequest struct {
	Destinations []DestinationRecord `json:"destinations"`
}

// IsEmpty reports whether there is nothing to submit.
func (r PublishRequest) IsEmpty() bool {
	return len(r.Destinations) == 0
}

// Tenants returns the tenant codes of the request in order.
func (r PublishRequest) Tenants() []string {
	tenants := make([]string, 0, len(r.Destinations))
	for _, d := range r.Destinations {
		tenants = append(tenants, d.Tenant)
	}
	return tenants
}

// UnpublishRequest lists the tenants an article is retracted from.
type UnpublishRequest struct {
	Tenants []string `json:"tenants"`
}

// IsEmpty reports whether there is nothing to retract.
func (r UnpublishRequest) IsEmpty() bool {
	return len(r.Tenants) == 0
}

// PublishEnvelope is the body of the outbound publish call.
type PublishEnvelope struct {
	Publish PublishRequest `json:"publish"`
}

// UnpublishEnvelope is the body of the outbound unpublish call.
type UnpublishEnvelope struct {
	Unpublish UnpublishRequest `json:"unpublish"`
}

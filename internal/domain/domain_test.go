package domain

import (
	"errors"
	"testing"
	"time"
)

func TestIsValidDestinationStatus(t *testing.T) {
	tests := []struct {
		status DestinationStatus
		valid  bool
	}{
		{"new", true},
		{"published", true},
		{"unpublished", true},
		{"canceled", true},
		{"draft", false},
		{"", false},
		{"NEW", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := IsValidDestinationStatus(tt.status); got != tt.valid {
				t.Errorf("IsValidDestinationStatus(%q) = %v, want %v", tt.status, got, tt.valid)
			}
		})
	}
}

func TestIsValidJobKind(t *testing.T) {
	tests := []struct {
		kind  JobKind
		valid bool
	}{
		{"publish", true},
		{"unpublish", true},
		{"retract", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := IsValidJobKind(tt.kind); got != tt.valid {
				t.Errorf("IsValidJobKind(%q) = %v, want %v", tt.kind, got, tt.valid)
			}
		})
	}
}

func TestSite_Host(t *testing.T) {
	if got := (Site{DomainName: "example.com"}).Host(); got != "example.com" {
		t.Errorf("Host() = %q, want example.com", got)
	}
	if got := (Site{DomainName: "example.com", Subdomain: "news"}).Host(); got != "news.example.com" {
		t.Errorf("Host() = %q, want news.example.com", got)
	}
}

func TestDestinationConfig_CloneDoesNotAlias(t *testing.T) {
	now := time.Now()
	orig := DestinationConfig{
		TenantCode:   "a",
		Route:        &RouteRef{ID: 1, Name: "news"},
		UpdatedAt:    &now,
		ContentLists: []ContentListRef{{ID: 3, Position: 0}},
	}

	c := orig.Clone()
	c.Route.ID = 2
	c.ContentLists[0].Position = 5
	*c.UpdatedAt = now.Add(time.Hour)

	if orig.Route.ID != 1 {
		t.Errorf("route aliased: got %d", orig.Route.ID)
	}
	if orig.ContentLists[0].Position != 0 {
		t.Errorf("content lists aliased: got %d", orig.ContentLists[0].Position)
	}
	if !orig.UpdatedAt.Equal(now) {
		t.Errorf("updatedAt aliased")
	}
}

func TestDestinationConfig_ClonePreservesNilLists(t *testing.T) {
	if c := (DestinationConfig{}).Clone(); c.ContentLists != nil {
		t.Errorf("nil content lists became %v", c.ContentLists)
	}
	if c := (DestinationConfig{ContentLists: []ContentListRef{}}).Clone(); c.ContentLists == nil {
		t.Errorf("empty content lists became nil")
	}
}

func TestNewDestination(t *testing.T) {
	d := NewDestination(Site{Code: "siteA", Name: "Site A"})

	if d.Status != DestinationStatusNew {
		t.Errorf("Status = %q, want new", d.Status)
	}
	if d.Route != nil || d.IsPublishedFbia || d.PaywallSecured {
		t.Errorf("expected default toggles and no route, got %+v", d)
	}
	if d.ContentLists == nil || len(d.ContentLists) != 0 {
		t.Errorf("expected empty content lists, got %v", d.ContentLists)
	}
	if d.HasRoute() {
		t.Errorf("HasRoute() = true for new destination")
	}
}

func TestPublishJob_Finish(t *testing.T) {
	now := time.Now()

	ok := &PublishJob{Status: JobStatusPending}
	ok.Finish(nil, now)
	if ok.Status != JobStatusCompleted || ok.CompletedAt == nil || ok.ErrorMessage != nil {
		t.Errorf("unexpected completed job: %+v", ok)
	}

	failed := &PublishJob{Status: JobStatusPending}
	failed.Finish(errors.New("boom"), now)
	if failed.Status != JobStatusFailed || failed.ErrorMessage == nil || *failed.ErrorMessage != "boom" {
		t.Errorf("unexpected failed job: %+v", failed)
	}
}

func TestRequests_IsEmpty(t *testing.T) {
	if !(PublishRequest{}).IsEmpty() {
		t.Error("empty publish request should be empty")
	}
	if (PublishRequest{Destinations: []DestinationRecord{{Tenant: "a"}}}).IsEmpty() {
		t.Error("non-empty publish request reported empty")
	}
	if !(UnpublishRequest{}).IsEmpty() {
		t.Error("empty unpublish request should be empty")
	}
}

func TestDestinationPatch_Apply(t *testing.T) {
	yes := true
	lists := []ContentListRef{{ID: 4, Position: 2}}
	cfg := DestinationConfig{TenantCode: "abc", Route: &RouteRef{ID: 1}}

	patch := DestinationPatch{
		Route:           &RouteRef{ID: 9, Name: "sport"},
		IsPublishedFbia: &yes,
		ContentLists:    &lists,
	}
	if patch.IsEmpty() {
		t.Fatalf("IsEmpty() = true for a non-empty patch")
	}
	patch.Apply(&cfg)

	if cfg.Route == nil || cfg.Route.ID != 9 {
		t.Errorf("Route = %v, want id 9", cfg.Route)
	}
	if !cfg.IsPublishedFbia {
		t.Errorf("IsPublishedFbia = false, want true")
	}
	if cfg.PaywallSecured {
		t.Errorf("PaywallSecured changed by a nil field")
	}
	lists[0].ID = 99
	patch.Route.ID = 100
	if cfg.ContentLists[0].ID != 4 || cfg.Route.ID != 9 {
		t.Errorf("Apply() aliased the patch values")
	}
}

func TestDestinationPatch_ClearRoute(t *testing.T) {
	cfg := DestinationConfig{Route: &RouteRef{ID: 1}}
	DestinationPatch{ClearRoute: true}.Apply(&cfg)
	if cfg.Route != nil {
		t.Errorf("Route = %v, want nil", cfg.Route)
	}
	if !(DestinationPatch{}).IsEmpty() {
		t.Errorf("zero patch should be empty")
	}
}

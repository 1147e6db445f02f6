package validator

import (
	"errors"
	"strings"
	"testing"

	"github.com/thedemodev/superdesk-publisher/internal/domain"
)

func routeID(id int64) *int64 {
	return &id
}

func TestValidateSite(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		site    *domain.Site
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid site",
			site:    &domain.Site{Code: "abc123", Name: "Daily", DomainName: "daily.example.com"},
			wantErr: false,
		},
		{
			name:    "valid site with subdomain",
			site:    &domain.Site{Code: "abc123", Name: "Daily", DomainName: "example.com", Subdomain: "daily"},
			wantErr: false,
		},
		{
			name:    "missing code",
			site:    &domain.Site{Name: "Daily", DomainName: "example.com"},
			wantErr: true,
			errMsg:  "code",
		},
		{
			name:    "code with spaces",
			site:    &domain.Site{Code: "a b", Name: "Daily", DomainName: "example.com"},
			wantErr: true,
			errMsg:  "code",
		},
		{
			name:    "missing name",
			site:    &domain.Site{Code: "abc", DomainName: "example.com"},
			wantErr: true,
			errMsg:  "name",
		},
		{
			name:    "missing domain name",
			site:    &domain.Site{Code: "abc", Name: "Daily"},
			wantErr: true,
			errMsg:  "domainName",
		},
		{
			name:    "invalid domain name",
			site:    &domain.Site{Code: "abc", Name: "Daily", DomainName: "not a domain"},
			wantErr: true,
			errMsg:  "domainName",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateSite(tt.site)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSite() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && tt.errMsg != "" && err != nil {
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("ValidateSite() error = %v, should contain %v", err, tt.errMsg)
				}
			}
		})
	}
}

func TestValidatePublishRequest(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		req     *domain.PublishRequest
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid request",
			req: &domain.PublishRequest{Destinations: []domain.DestinationRecord{
				{Tenant: "abc", Route: routeID(5), Published: true},
				{Tenant: "def", Published: false},
			}},
			wantErr: false,
		},
		{
			name: "valid request with content lists",
			req: &domain.PublishRequest{Destinations: []domain.DestinationRecord{
				{Tenant: "abc", Route: routeID(5), Published: true, ContentLists: []domain.ContentListRef{{ID: 3, Position: 0}}},
			}},
			wantErr: false,
		},
		{
			name:    "no destinations",
			req:     &domain.PublishRequest{},
			wantErr: true,
			errMsg:  "destinations",
		},
		{
			name: "missing tenant",
			req: &domain.PublishRequest{Destinations: []domain.DestinationRecord{
				{Route: routeID(5), Published: true},
			}},
			wantErr: true,
			errMsg:  "tenant",
		},
		{
			name: "published without route",
			req: &domain.PublishRequest{Destinations: []domain.DestinationRecord{
				{Tenant: "abc", Published: true},
			}},
			wantErr: true,
			errMsg:  "route",
		},
		{
			name: "duplicate tenant",
			req: &domain.PublishRequest{Destinations: []domain.DestinationRecord{
				{Tenant: "abc"},
				{Tenant: "abc"},
			}},
			wantErr: true,
			errMsg:  "listed twice",
		},
		{
			name: "content list without id",
			req: &domain.PublishRequest{Destinations: []domain.DestinationRecord{
				{Tenant: "abc", Route: routeID(5), Published: true, ContentLists: []domain.ContentListRef{{Position: 1}}},
			}},
			wantErr: true,
			errMsg:  "content_list_id_required",
		},
		{
			name: "content list with negative position",
			req: &domain.PublishRequest{Destinations: []domain.DestinationRecord{
				{Tenant: "abc", Route: routeID(5), Published: true, ContentLists: []domain.ContentListRef{{ID: 2, Position: -1}}},
			}},
			wantErr: true,
			errMsg:  "invalid_position",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidatePublishRequest(tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePublishRequest() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && tt.errMsg != "" && err != nil {
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("ValidatePublishRequest() error = %v, should contain %v", err, tt.errMsg)
				}
			}
		})
	}
}

func TestValidateUnpublishRequest(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		req     *domain.UnpublishRequest
		wantErr bool
		errMsg  string
	}{
		{"valid request", &domain.UnpublishRequest{Tenants: []string{"abc", "def"}}, false, ""},
		{"no tenants", &domain.UnpublishRequest{Tenants: []string{}}, true, "tenants"},
		{"blank tenant", &domain.UnpublishRequest{Tenants: []string{"abc", ""}}, true, "tenant_required"},
		{"duplicate tenant", &domain.UnpublishRequest{Tenants: []string{"abc", "abc"}}, true, "listed twice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateUnpublishRequest(tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUnpublishRequest() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && tt.errMsg != "" && err != nil {
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("ValidateUnpublishRequest() error = %v, should contain %v", err, tt.errMsg)
				}
			}
		})
	}
}

func TestFieldErrors(t *testing.T) {
	v := NewValidator()

	t.Run("nested errors are flattened", func(t *testing.T) {
		err := v.ValidatePublishRequest(&domain.PublishRequest{Destinations: []domain.DestinationRecord{
			{Tenant: "abc", Published: true},
		}})
		fields := FieldErrors(err)
		if _, ok := fields["destinations.0.route"]; !ok {
			t.Errorf("FieldErrors() = %v, want key destinations.0.route", fields)
		}
		if !IsValidationError(err) {
			t.Errorf("IsValidationError() = false, want true")
		}
	})

	t.Run("non validation error", func(t *testing.T) {
		err := errors.New("boom")
		fields := FieldErrors(err)
		if fields["unknown"] != "boom" {
			t.Errorf("FieldErrors() = %v, want unknown=boom", fields)
		}
		if IsValidationError(err) {
			t.Errorf("IsValidationError() = true, want false")
		}
	})

	t.Run("nil error", func(t *testing.T) {
		if len(FieldErrors(nil)) != 0 {
			t.Errorf("FieldErrors(nil) should be empty")
		}
	})
}

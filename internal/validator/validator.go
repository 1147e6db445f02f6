package validator

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/thedemodev/superdesk-publisher/internal/domain"
)

var tenantCodeRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Validator provides validation methods for outbound requests and registry data.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSite validates a site returned by the registry.
func (v *Validator) ValidateSite(s *domain.Site) error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Code,
			validation.Required.Error("code_required"),
			validation.Match(tenantCodeRegex).Error("invalid_code_format"),
		),
		validation.Field(&s.Name,
			validation.Required.Error("name_required"),
		),
		validation.Field(&s.DomainName,
			validation.Required.Error("domain_name_required"),
			is.Domain.Error("invalid_domain_name"),
		),
		validation.Field(&s.Subdomain,
			is.Subdomain.Error("invalid_subdomain"),
		),
	)
}

// ValidatePublishRequest validates a publish request before it is sent.
func (v *Validator) ValidatePublishRequest(r *domain.PublishRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Destinations,
			validation.Required.Error("destinations_required"),
			validation.By(uniqueTenants),
			validation.Each(validation.By(destinationRule)),
		),
	)
}

// ValidateUnpublishRequest validates an unpublish request before it is sent.
func (v *Validator) ValidateUnpublishRequest(r *domain.UnpublishRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Tenants,
			validation.Required.Error("tenants_required"),
			validation.By(uniqueTenants),
			validation.Each(
				validation.Required.Error("tenant_required"),
				validation.Match(tenantCodeRegex).Error("invalid_tenant_format"),
			),
		),
	)
}

func destinationRule(value interface{}) error {
	d, ok := value.(domain.DestinationRecord)
	if !ok {
		return nil
	}
	err := validation.ValidateStruct(&d,
		validation.Field(&d.Tenant,
			validation.Required.Error("tenant_required"),
			validation.Match(tenantCodeRegex).Error("invalid_tenant_format"),
		),
		validation.Field(&d.ContentLists,
			validation.Each(validation.By(contentListRule)),
		),
	)
	if err != nil {
		return err
	}

	// Custom rule: a published destination needs a route
	if d.Published && (d.Route == nil || *d.Route <= 0) {
		return validation.Errors{
			"route": validation.NewError("published_requires_route", "published destinations must have a route"),
		}
	}

	return nil
}

func contentListRule(value interface{}) error {
	l, ok := value.(domain.ContentListRef)
	if !ok {
		return nil
	}
	return validation.ValidateStruct(&l,
		validation.Field(&l.ID,
			validation.Required.Error("content_list_id_required"),
			validation.Min(int64(1)).Error("invalid_content_list_id"),
		),
		validation.Field(&l.Position,
			validation.Min(0).Error("invalid_position"),
		),
	)
}

// uniqueTenants rejects a list naming the same tenant twice.
func uniqueTenants(value interface{}) error {
	var tenants []string
	switch list := value.(type) {
	case []domain.DestinationRecord:
		for _, d := range list {
			tenants = append(tenants, d.Tenant)
		}
	case []string:
		tenants = list
	}
	seen := make(map[string]struct{}, len(tenants))
	for _, tenant := range tenants {
		if _, dup := seen[tenant]; dup {
			return validation.NewError("duplicate_tenant", "tenant "+tenant+" is listed twice")
		}
		seen[tenant] = struct{}{}
	}
	return nil
}

// IsValidationError reports whether err came from a validation rule.
func IsValidationError(err error) bool {
	var ve validation.Errors
	if errors.As(err, &ve) {
		return true
	}
	var e validation.Error
	return errors.As(err, &e)
}

// FieldErrors flattens ozzo validation errors into a field -> reason map.
func FieldErrors(err error) map[string]string {
	out := make(map[string]string)
	var ve validation.Errors
	if !errors.As(err, &ve) {
		if err != nil {
			out["unknown"] = err.Error()
		}
		return out
	}
	flatten("", ve, out)
	return out
}

func flatten(prefix string, ve validation.Errors, out map[string]string) {
	for field, fieldErr := range ve {
		key := field
		if prefix != "" {
			key = prefix + "." + field
		}
		if nested, ok := fieldErr.(validation.Errors); ok {
			flatten(key, nested, out)
			continue
		}
		out[key] = fieldErr.Error()
	}
}

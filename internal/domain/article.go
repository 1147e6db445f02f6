package domain

import "time"

// Article is a package of the publishing backend together with its
// per-tenant publication history.
type Article struct {
	ID       int64                `json:"id"`
	GUID     string               `json:"guid,omitempty"`
	Headline string               `json:"headline,omitempty"`
	Status   string               `json:"status,omitempty"`
	Articles []ArticlePublication `json:"articles"`
}

// ArticlePublication is the record of an article on a single tenant.
type ArticlePublication struct {
	Tenant          Site              `json:"tenant"`
	Route           *RouteRef         `json:"route"`
	IsPublishedFbia bool              `json:"isPublishedFbia"`
	PaywallSecured  bool              `json:"paywallSecured"`
	Status          DestinationStatus `json:"status"`
	UpdatedAt       *time.Time        `json:"updatedAt,omitempty"`
	ContentLists    []ContentListRef  `json:"contentLists"`
	Links           Links             `json:"_links"`
}

// Links holds the HAL links of a publication record.
type Links struct {
	Online *Link `json:"online,omitempty"`
}

// Link is a single HAL link.
type Link struct {
	Href string `json:"href"`
}

// OnlineHref returns the public path of the publication, if any.
func (p ArticlePublication) OnlineHref() string {
	if p.Links.Online == nil {
		return ""
	}
	return p.Links.Online.Href
}

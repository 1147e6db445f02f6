package domain

import (
	"encoding/json"
	"time"
)

// TopicPackageCreated is the push topic for newly ingested packages.
const TopicPackageCreated = "package_created"

// PackageCreated is emitted when the ingestion pipeline announces a new package.
type PackageCreated struct {
	Package json.RawMessage `json:"package"`
	State   string          `json:"state"`
}

// Refresh reasons sent to browsers.
const (
	RefreshReasonPackageCreated = "package_created"
	RefreshReasonPublished      = "article_published"
	RefreshReasonUnpublished    = "article_unpublished"
)

// RefreshSignal tells browsers that their article list is stale.
type RefreshSignal struct {
	Reason     string          `json:"reason"`
	ArticleID  int64           `json:"articleId,omitempty"`
	Package    json.RawMessage `json:"package,omitempty"`
	State      string          `json:"state,omitempty"`
	ReceivedAt time.Time       `json:"received_at"`
}

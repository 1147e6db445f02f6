package service

import (
	"context"

	"github.com/thedemodev/superdesk-publisher/internal/domain"
)

// PublisherAPI is the publishing backend as seen by the services.
type PublisherAPI interface {
	// Sites returns the site registry.
	Sites(ctx context.Context) ([]domain.Site, error)
	// Article returns a package with its publication history.
	Article(ctx context.Context, id int64) (*domain.Article, error)
	// Publish submits the changed destinations of an article.
	Publish(ctx context.Context, articleID int64, req domain.PublishRequest) error
	// Unpublish retracts an article from tenants.
	Unpublish(ctx context.Context, articleID int64, req domain.UnpublishRequest) error
}

// PackageSource delivers package_created events from the push channel.
type PackageSource interface {
	Subscribe() (<-chan domain.PackageCreated, func())
}

// Notifier receives refresh signals for browsers.
type Notifier interface {
	Notify(signal domain.RefreshSignal)
}

// SessionServiceInterface defines the interface for publish session operations.
// Used for dependency injection and mocking in tests.
type SessionServiceInterface interface {
	// OpenSession loads an article and opens its destination set.
	OpenSession(ctx context.Context, articleID int64) (*domain.SessionView, error)
	// GetSession returns the current state of a session.
	GetSession(ctx context.Context, id string) (*domain.SessionView, error)
	// CloseSession discards a session and its draft.
	CloseSession(ctx context.Context, id string) error
	// AddDestination adds an available site to the draft.
	AddDestination(ctx context.Context, id, code string) (*domain.SessionView, error)
	// RemoveDestination drops a destination from the draft.
	RemoveDestination(ctx context.Context, id, code string) (*domain.SessionView, error)
	// UpdateDestination edits a draft destination.
	UpdateDestination(ctx context.Context, id, code string, patch domain.DestinationPatch) (*domain.SessionView, error)
	// MarkForUnpublish flags a draft destination for retraction.
	MarkForUnpublish(ctx context.Context, id, code string, flag bool) (*domain.SessionView, error)
	// Publish submits the changed destinations of the session.
	Publish(ctx context.Context, id, requestID string) (*domain.PublishJob, error)
	// Unpublish retracts the article from the flagged destinations.
	Unpublish(ctx context.Context, id, requestID string) (*domain.PublishJob, error)
	// GetJob retrieves a publish job by ID.
	GetJob(ctx context.Context, id string) (*domain.PublishJob, error)
	// ListJobs returns the recent jobs of the session's article.
	ListJobs(ctx context.Context, id string) ([]domain.PublishJob, error)
	// Close discards every open session.
	Close()
}

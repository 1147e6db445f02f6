package repository

import (
	"context"

	"github.com/thedemodev/superdesk-publisher/internal/domain"
)

// PublishJobRepository defines methods for publish job data access.
type PublishJobRepository interface {
	Create(ctx context.Context, job *domain.PublishJob) error
	Get(ctx context.Context, id string) (*domain.PublishJob, error)
	Update(ctx context.Context, job *domain.PublishJob) error
	ListByArticle(ctx context.Context, articleID int64, limit int) ([]domain.PublishJob, error)
}

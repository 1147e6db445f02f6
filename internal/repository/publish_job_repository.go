package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thedemodev/superdesk-publisher/internal/domain"
)

// DefaultListLimit caps ListByArticle when no positive limit is given.
const DefaultListLimit = 50

const publishJobColumns = `id, session_id, article_id, kind, status, tenants, payload,
	request_id, error_message, created_at, updated_at, completed_at`

// PostgresPublishJobRepository implements PublishJobRepository using PostgreSQL.
type PostgresPublishJobRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPublishJobRepository creates a new PostgresPublishJobRepository.
func NewPostgresPublishJobRepository(pool *pgxpool.Pool) *PostgresPublishJobRepository {
	return &PostgresPublishJobRepository{pool: pool}
}

// Create inserts a new publish job.
func (r *PostgresPublishJobRepository) Create(ctx context.Context, job *domain.PublishJob) error {
	tenants := job.Tenants
	if tenants == nil {
		tenants = []string{}
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO publish_jobs (id, session_id, article_id, kind, status, tenants, payload,
			request_id, error_message, created_at, updated_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, job.ID, job.SessionID, job.ArticleID, job.Kind, job.Status, tenants, []byte(job.Payload),
		job.RequestID, job.ErrorMessage, job.CreatedAt, job.UpdatedAt, job.CompletedAt)
	if err != nil {
		return fmt.Errorf("insert publish job: %w", err)
	}

	return nil
}

// Get retrieves a publish job by ID. It returns nil when the job does not exist.
func (r *PostgresPublishJobRepository) Get(ctx context.Context, id string) (*domain.PublishJob, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+publishJobColumns+` FROM publish_jobs WHERE id = $1`, id)

	job, err := scanPublishJob(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get publish job: %w", err)
	}

	return job, nil
}

// Update persists the status, error and timestamps of a job.
func (r *PostgresPublishJobRepository) Update(ctx context.Context, job *domain.PublishJob) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE publish_jobs
		SET status = $2, error_message = $3, updated_at = $4, completed_at = $5
		WHERE id = $1
	`, job.ID, job.Status, job.ErrorMessage, job.UpdatedAt, job.CompletedAt)
	if err != nil {
		return fmt.Errorf("update publish job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update publish job %s: %w", job.ID, pgx.ErrNoRows)
	}

	return nil
}

// ListByArticle returns the most recent jobs of an article, newest first.
func (r *PostgresPublishJobRepository) ListByArticle(ctx context.Context, articleID int64, limit int) ([]domain.PublishJob, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+publishJobColumns+`
		FROM publish_jobs
		WHERE article_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2
	`, articleID, limit)
	if err != nil {
		return nil, fmt.Errorf("list publish jobs: %w", err)
	}
	defer rows.Close()

	jobs := []domain.PublishJob{}
	for rows.Next() {
		job, err := scanPublishJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan publish job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate publish jobs: %w", err)
	}

	return jobs, nil
}

func scanPublishJob(row pgx.Row) (*domain.PublishJob, error) {
	var job domain.PublishJob
	var payload []byte

	err := row.Scan(&job.ID, &job.SessionID, &job.ArticleID, &job.Kind, &job.Status, &job.Tenants, &payload,
		&job.RequestID, &job.ErrorMessage, &job.CreatedAt, &job.UpdatedAt, &job.CompletedAt)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		job.Payload = payload
	}

	return &job, nil
}

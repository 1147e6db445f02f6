package domain

import (
	"encoding/json"
	"time"
)

// JobStatus represents the status of a publish/unpublish job.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// JobKind distinguishes publish from unpublish submissions.
type JobKind string

const (
	JobKindPublish   JobKind = "publish"
	JobKindUnpublish JobKind = "unpublish"
)

// PublishJob is the journal entry of one submission to the publishing backend.
type PublishJob struct {
	ID           string          `json:"id"`
	SessionID    string          `json:"session_id"`
	ArticleID    int64           `json:"article_id"`
	Kind         JobKind         `json:"kind"`
	Status       JobStatus       `json:"status"`
	Tenants      []string        `json:"tenants"`
	Payload      json.RawMessage `json:"payload,omitempty"`
	RequestID    string          `json:"request_id,omitempty"`
	ErrorMessage *string         `json:"error_message,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	CompletedAt  *time.Time      `json:"completed_at,omitempty"`
}

// Finish marks the job completed, or failed when err is not nil.
func (j *PublishJob) Finish(err error, now time.Time) {
	j.UpdatedAt = now
	j.CompletedAt = &now
	if err != nil {
		msg := err.Error()
		j.Status = JobStatusFailed
		j.ErrorMessage = &msg
		return
	}
	j.Status = JobStatusCompleted
}

// ValidJobKinds contains all valid job kinds.
var ValidJobKinds = []JobKind{JobKindPublish, JobKindUnpublish}

// IsValidJobKind checks if a job kind is valid.
func IsValidJobKind(kind JobKind) bool {
	for _, k := range ValidJobKinds {
		if k == kind {
			return true
		}
	}
	return false
}

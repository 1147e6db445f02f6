package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/thedemodev/superdesk-publisher/internal/domain"
	"github.com/thedemodev/superdesk-publisher/internal/logger"
	"github.com/thedemodev/superdesk-publisher/internal/middleware"
	"github.com/thedemodev/superdesk-publisher/internal/service"
	"github.com/thedemodev/superdesk-publisher/internal/validator"
)

// SessionHandler handles publish session HTTP requests.
type SessionHandler struct {
	sessions service.SessionServiceInterface
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessions service.SessionServiceInterface) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// OpenSessionRequest is the body of POST /api/v1/sessions.
type OpenSessionRequest struct {
	ArticleID int64 `json:"articleId"`
}

// AddDestinationRequest is the body of POST /api/v1/sessions/:id/destinations.
type AddDestinationRequest struct {
	Code string `json:"code"`
}

// PublishJobResponse represents a publish job in the API response.
type PublishJobResponse struct {
	ID           string   `json:"id"`
	SessionID    string   `json:"session_id"`
	ArticleID    int64    `json:"article_id"`
	Kind         string   `json:"kind"`
	Status       string   `json:"status"`
	Tenants      []string `json:"tenants"`
	RequestID    string   `json:"request_id,omitempty"`
	ErrorMessage *string  `json:"error_message,omitempty"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
	CompletedAt  *string  `json:"completed_at,omitempty"`
}

// SubmissionResponse is returned by publish and unpublish.
type SubmissionResponse struct {
	Job     PublishJobResponse  `json:"job"`
	Session *domain.SessionView `json:"session,omitempty"`
}

func toPublishJobResponse(job *domain.PublishJob) PublishJobResponse {
	response := PublishJobResponse{
		ID:           job.ID,
		SessionID:    job.SessionID,
		ArticleID:    job.ArticleID,
		Kind:         string(job.Kind),
		Status:       string(job.Status),
		Tenants:      job.Tenants,
		RequestID:    job.RequestID,
		ErrorMessage: job.ErrorMessage,
		CreatedAt:    job.CreatedAt.Format(TimeFormat),
		UpdatedAt:    job.UpdatedAt.Format(TimeFormat),
	}
	if response.Tenants == nil {
		response.Tenants = []string{}
	}
	if job.CompletedAt != nil {
		completedAt := job.CompletedAt.Format(TimeFormat)
		response.CompletedAt = &completedAt
	}
	return response
}

// Register mounts the session and job routes on an /api/v1 group.
func (h *SessionHandler) Register(v1 *gin.RouterGroup) {
	sessions := v1.Group("/sessions")
	{
		sessions.POST("", h.OpenSession)
		sessions.GET("/:id", h.GetSession)
		sessions.DELETE("/:id", h.CloseSession)
		sessions.POST("/:id/destinations", h.AddDestination)
		sessions.PATCH("/:id/destinations/:code", h.UpdateDestination)
		sessions.DELETE("/:id/destinations/:code", h.RemoveDestination)
		sessions.POST("/:id/destinations/:code/unpublish", h.MarkForUnpublish)
		sessions.DELETE("/:id/destinations/:code/unpublish", h.UnmarkForUnpublish)
		sessions.POST("/:id/publish", h.Publish)
		sessions.POST("/:id/unpublish", h.Unpublish)
		sessions.GET("/:id/jobs", h.ListJobs)
	}
	v1.GET("/jobs/:id", h.GetJob)
}

// OpenSession handles POST /api/v1/sessions
func (h *SessionHandler) OpenSession(c *gin.Context) {
	var req OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.ArticleID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "articleId must be a positive integer"})
		return
	}

	view, err := h.sessions.OpenSession(c.Request.Context(), req.ArticleID)
	if err != nil {
		h.fail(c, err, "failed to open session")
		return
	}

	c.JSON(http.StatusCreated, view)
}

// GetSession handles GET /api/v1/sessions/:id
func (h *SessionHandler) GetSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	view, err := h.sessions.GetSession(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to retrieve session")
		return
	}

	c.JSON(http.StatusOK, view)
}

// CloseSession handles DELETE /api/v1/sessions/:id
func (h *SessionHandler) CloseSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	if err := h.sessions.CloseSession(c.Request.Context(), id); err != nil {
		h.fail(c, err, "failed to close session")
		return
	}

	c.Status(http.StatusNoContent)
}

// AddDestination handles POST /api/v1/sessions/:id/destinations
func (h *SessionHandler) AddDestination(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req AddDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
		return
	}

	view, err := h.sessions.AddDestination(c.Request.Context(), id, req.Code)
	if err != nil {
		h.fail(c, err, "failed to add destination")
		return
	}

	c.JSON(http.StatusOK, view)
}

// UpdateDestination handles PATCH /api/v1/sessions/:id/destinations/:code
func (h *SessionHandler) UpdateDestination(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var patch domain.DestinationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if patch.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "patch changes nothing"})
		return
	}

	view, err := h.sessions.UpdateDestination(c.Request.Context(), id, c.Param("code"), patch)
	if err != nil {
		h.fail(c, err, "failed to update destination")
		return
	}

	c.JSON(http.StatusOK, view)
}

// RemoveDestination handles DELETE /api/v1/sessions/:id/destinations/:code
func (h *SessionHandler) RemoveDestination(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	view, err := h.sessions.RemoveDestination(c.Request.Context(), id, c.Param("code"))
	if err != nil {
		h.fail(c, err, "failed to remove destination")
		return
	}

	c.JSON(http.StatusOK, view)
}

// MarkForUnpublish handles POST /api/v1/sessions/:id/destinations/:code/unpublish
func (h *SessionHandler) MarkForUnpublish(c *gin.Context) {
	h.markForUnpublish(c, true)
}

// UnmarkForUnpublish handles DELETE /api/v1/sessions/:id/destinations/:code/unpublish
func (h *SessionHandler) UnmarkForUnpublish(c *gin.Context) {
	h.markForUnpublish(c, false)
}

func (h *SessionHandler) markForUnpublish(c *gin.Context, flag bool) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	view, err := h.sessions.MarkForUnpublish(c.Request.Context(), id, c.Param("code"), flag)
	if err != nil {
		h.fail(c, err, "failed to mark destination")
		return
	}

	c.JSON(http.StatusOK, view)
}

// Publish handles POST /api/v1/sessions/:id/publish
func (h *SessionHandler) Publish(c *gin.Context) {
	h.submit(c, h.sessions.Publish, "failed to publish article")
}

// Unpublish handles POST /api/v1/sessions/:id/unpublish
func (h *SessionHandler) Unpublish(c *gin.Context) {
	h.submit(c, h.sessions.Unpublish, "failed to unpublish article")
}

func (h *SessionHandler) submit(
	c *gin.Context,
	fn func(ctx context.Context, id, requestID string) (*domain.PublishJob, error),
	message string,
) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	job, err := fn(ctx, id, middleware.GetRequestID(c))
	if err != nil {
		if job != nil && errors.Is(err, domain.ErrRequestFailed) {
			c.JSON(http.StatusBadGateway, gin.H{"error": message, "job": toPublishJobResponse(job)})
			return
		}
		h.fail(c, err, message)
		return
	}

	response := SubmissionResponse{Job: toPublishJobResponse(job)}
	if view, err := h.sessions.GetSession(ctx, id); err == nil {
		response.Session = view
	}

	c.JSON(http.StatusOK, response)
}

// ListJobs handles GET /api/v1/sessions/:id/jobs
func (h *SessionHandler) ListJobs(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	jobs, err := h.sessions.ListJobs(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to list jobs")
		return
	}

	response := make([]PublishJobResponse, 0, len(jobs))
	for i := range jobs {
		response = append(response, toPublishJobResponse(&jobs[i]))
	}
	c.JSON(http.StatusOK, gin.H{"jobs": response})
}

// GetJob handles GET /api/v1/jobs/:id
func (h *SessionHandler) GetJob(c *gin.Context) {
	id := c.Param("id")

	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	job, err := h.sessions.GetJob(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to retrieve job")
		return
	}

	c.JSON(http.StatusOK, toPublishJobResponse(job))
}

// fail maps service errors to HTTP responses.
func (h *SessionHandler) fail(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, domain.ErrJobNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
	case errors.Is(err, domain.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNothingToPublish), errors.Is(err, domain.ErrNothingToUnpublish):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case validator.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": validator.FieldErrors(err)})
	case errors.Is(err, domain.ErrRequestFailed):
		logger.FromContext(c.Request.Context()).Error(message, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": message})
	default:
		logger.FromContext(c.Request.Context()).Error(message, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
	}
}

// sessionID validates the :id parameter and writes a 400 when it is malformed.
func sessionID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return "", false
	}
	return id, true
}

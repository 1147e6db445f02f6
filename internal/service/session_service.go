package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/thedemodev/superdesk-publisher/internal/destination"
	"github.com/thedemodev/superdesk-publisher/internal/domain"
	"github.com/thedemodev/superdesk-publisher/internal/logger"
	"github.com/thedemodev/superdesk-publisher/internal/metrics"
	"github.com/thedemodev/superdesk-publisher/internal/publish"
	"github.com/thedemodev/superdesk-publisher/internal/repository"
	"github.com/thedemodev/superdesk-publisher/internal/validator"
)

const (
	// DefaultBackendTimeout bounds a publish or unpublish call when the caller sets no deadline.
	DefaultBackendTimeout = 30 * time.Second

	// JournalTimeout bounds journal writes that must survive a cancelled request.
	JournalTimeout = 5 * time.Second
)

// SessionOption configures a SessionService.
type SessionOption func(*SessionService)

// WithLiveURLScheme sets the scheme used for live URLs of published destinations.
func WithLiveURLScheme(scheme string) SessionOption {
	return func(s *SessionService) {
		s.liveURLScheme = scheme
	}
}

// WithNotifier sets the receiver of article refresh signals.
func WithNotifier(n Notifier) SessionOption {
	return func(s *SessionService) {
		s.notifier = n
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) SessionOption {
	return func(s *SessionService) {
		if now != nil {
			s.now = now
		}
	}
}

type session struct {
	mu       sync.Mutex
	id       string
	sites    []domain.Site
	set      *destination.Set
	openedAt time.Time
}

// SessionService keeps one destination set per open publish panel.
// Operations on the same session are serialized.
type SessionService struct {
	api       PublisherAPI
	jobRepo   repository.PublishJobRepository
	validator *validator.Validator
	notifier  Notifier

	liveURLScheme string
	now           func() time.Time

	sessions *xsync.MapOf[string, *session]
}

// NewSessionService creates a new SessionService.
func NewSessionService(
	api PublisherAPI,
	jobRepo repository.PublishJobRepository,
	v *validator.Validator,
	opts ...SessionOption,
) *SessionService {
	s := &SessionService{
		api:           api,
		jobRepo:       jobRepo,
		validator:     v,
		liveURLScheme: destination.DefaultLiveURLScheme,
		now:           time.Now,
		sessions:      xsync.NewMapOf[string, *session](),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OpenSession loads the site registry and the article, then opens a new session.
func (s *SessionService) OpenSession(ctx context.Context, articleID int64) (*domain.SessionView, error) {
	sites, err := s.loadSites(ctx)
	if err != nil {
		return nil, err
	}

	article, err := s.api.Article(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("load article %d: %w", articleID, err)
	}

	sess := &session{
		id:       uuid.New().String(),
		sites:    sites,
		set:      s.open(*article, sites),
		openedAt: s.now(),
	}

	s.sessions.Store(sess.id, sess)
	metrics.SessionsOpen.Inc()

	s.log(sess).Info("Publish session opened",
		"destinations", len(sess.set.PublishedConfigs()),
		"available", len(sess.set.Available()),
	)

	return view(sess), nil
}

// GetSession returns the current state of a session.
func (s *SessionService) GetSession(_ context.Context, id string) (*domain.SessionView, error) {
	var out *domain.SessionView
	err := s.withSession(id, func(sess *session) error {
		out = view(sess)
		return nil
	})
	return out, err
}

// CloseSession discards a session and its draft.
func (s *SessionService) CloseSession(_ context.Context, id string) error {
	if _, ok := s.sessions.LoadAndDelete(id); !ok {
		return domain.ErrSessionNotFound
	}
	metrics.SessionsOpen.Dec()
	logger.WithSessionID(id).Info("Publish session closed")
	return nil
}

// Close discards every open session.
func (s *SessionService) Close() {
	n := 0
	s.sessions.Range(func(id string, _ *session) bool {
		if _, ok := s.sessions.LoadAndDelete(id); ok {
			n++
		}
		return true
	})
	metrics.SessionsOpen.Sub(float64(n))
}

// AddDestination adds an available site to the draft.
func (s *SessionService) AddDestination(_ context.Context, id, code string) (*domain.SessionView, error) {
	return s.edit(id, func(set *destination.Set) error {
		return set.Add(code)
	})
}

// RemoveDestination drops a destination from the draft.
func (s *SessionService) RemoveDestination(_ context.Context, id, code string) (*domain.SessionView, error) {
	return s.edit(id, func(set *destination.Set) error {
		return set.Remove(code)
	})
}

// UpdateDestination applies an editor patch to a draft destination.
func (s *SessionService) UpdateDestination(_ context.Context, id, code string, patch domain.DestinationPatch) (*domain.SessionView, error) {
	return s.edit(id, func(set *destination.Set) error {
		return set.Update(code, patch.Apply)
	})
}

// MarkForUnpublish flags a draft destination for retraction.
func (s *SessionService) MarkForUnpublish(_ context.Context, id, code string, flag bool) (*domain.SessionView, error) {
	return s.edit(id, func(set *destination.Set) error {
		return set.MarkForUnpublish(code, flag)
	})
}

// Publish submits every changed destination of the session in one call.
func (s *SessionService) Publish(ctx context.Context, id, requestID string) (*domain.PublishJob, error) {
	var job *domain.PublishJob
	err := s.withSession(id, func(sess *session) error {
		req := publish.BuildPublish(sess.set.Draft(), sess.set.Published())
		if req.IsEmpty() {
			return domain.ErrNothingToPublish
		}
		if err := s.validator.ValidatePublishRequest(&req); err != nil {
			return fmt.Errorf("invalid publish request: %w", err)
		}

		var err error
		job, err = s.submit(ctx, sess, domain.JobKindPublish, requestID, req.Tenants(), domain.PublishEnvelope{Publish: req},
			func(ctx context.Context) error {
				return s.api.Publish(ctx, sess.set.ArticleID(), req)
			})
		return err
	})
	return job, err
}

// Unpublish retracts the article from every destination flagged for it.
func (s *SessionService) Unpublish(ctx context.Context, id, requestID string) (*domain.PublishJob, error) {
	var job *domain.PublishJob
	err := s.withSession(id, func(sess *session) error {
		req := publish.BuildUnpublish(sess.set.Draft(), sess.set.Published())
		if req.IsEmpty() {
			return domain.ErrNothingToUnpublish
		}
		if err := s.validator.ValidateUnpublishRequest(&req); err != nil {
			return fmt.Errorf("invalid unpublish request: %w", err)
		}

		var err error
		job, err = s.submit(ctx, sess, domain.JobKindUnpublish, requestID, req.Tenants, domain.UnpublishEnvelope{Unpublish: req},
			func(ctx context.Context) error {
				return s.api.Unpublish(ctx, sess.set.ArticleID(), req)
			})
		return err
	})
	return job, err
}

// GetJob retrieves a publish job by ID.
func (s *SessionService) GetJob(ctx context.Context, id string) (*domain.PublishJob, error) {
	job, err := s.jobRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get publish job: %w", err)
	}
	if job == nil {
		return nil, domain.ErrJobNotFound
	}
	return job, nil
}

// ListJobs returns the most recent jobs of the session's article.
func (s *SessionService) ListJobs(ctx context.Context, id string) ([]domain.PublishJob, error) {
	var articleID int64
	err := s.withSession(id, func(sess *session) error {
		articleID = sess.set.ArticleID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.ListByArticle(ctx, articleID, repository.DefaultListLimit)
	if err != nil {
		return nil, fmt.Errorf("list publish jobs: %w", err)
	}
	return jobs, nil
}

// submit journals a job, performs the single backend call and settles the session.
func (s *SessionService) submit(
	ctx context.Context,
	sess *session,
	kind domain.JobKind,
	requestID string,
	tenants []string,
	envelope any,
	call func(ctx context.Context) error,
) (*domain.PublishJob, error) {
	log := s.log(sess).With("request_id", requestID, "kind", string(kind))

	payload, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", kind, err)
	}

	now := s.now()
	job := &domain.PublishJob{
		ID:        uuid.New().String(),
		SessionID: sess.id,
		ArticleID: sess.set.ArticleID(),
		Kind:      kind,
		Status:    domain.JobStatusPending,
		Tenants:   tenants,
		Payload:   payload,
		RequestID: requestID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create publish job: %w", err)
	}

	callCtx := ctx
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, DefaultBackendTimeout)
		defer cancel()
	}

	timer := metrics.NewTimer()
	callErr := call(callCtx)
	if callErr != nil && !errors.Is(callErr, domain.ErrRequestFailed) {
		callErr = fmt.Errorf("%w: %v", domain.ErrRequestFailed, callErr)
	}

	result := "success"
	if callErr != nil {
		result = "failure"
	}
	metrics.ObservePublish(string(kind), result, timer.Seconds(), len(tenants))

	job.Finish(callErr, s.now())
	s.journal(log, job)

	if callErr != nil {
		log.Error("Submission to publishing backend failed", "tenants", tenants, "error", callErr)
		return job, fmt.Errorf("%s article %d: %w", kind, job.ArticleID, callErr)
	}

	log.Info("Submission to publishing backend completed", "tenants", tenants, "duration_seconds", timer.Seconds())
	s.settle(ctx, log, sess, kind, tenants)
	s.notify(kind, job.ArticleID)

	return job, nil
}

// journal persists the final job state even if the request was cancelled.
func (s *SessionService) journal(log *slog.Logger, job *domain.PublishJob) {
	ctx, cancel := context.WithTimeout(context.Background(), JournalTimeout)
	defer cancel()
	if err := s.jobRepo.Update(ctx, job); err != nil {
		log.Warn("Failed to update publish job", "job_id", job.ID, "error", err)
	}
}

// settle reloads the article so the session reflects the backend; when the
// reload fails the sent destinations are committed locally.
func (s *SessionService) settle(ctx context.Context, log *slog.Logger, sess *session, kind domain.JobKind, tenants []string) {
	article, err := s.api.Article(ctx, sess.set.ArticleID())
	if err != nil {
		log.Warn("Failed to reload article after submission, committing draft", "error", err)
		sess.set.Commit(kind, tenants)
		return
	}
	sess.set = s.open(*article, sess.sites)
}

func (s *SessionService) notify(kind domain.JobKind, articleID int64) {
	if s.notifier == nil {
		return
	}
	reason := domain.RefreshReasonPublished
	if kind == domain.JobKindUnpublish {
		reason = domain.RefreshReasonUnpublished
	}
	s.notifier.Notify(domain.RefreshSignal{
		Reason:     reason,
		ArticleID:  articleID,
		ReceivedAt: s.now(),
	})
}

// loadSites fetches the registry and skips entries that fail validation.
func (s *SessionService) loadSites(ctx context.Context) ([]domain.Site, error) {
	sites, err := s.api.Sites(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sites: %w", err)
	}

	valid := make([]domain.Site, 0, len(sites))
	for i := range sites {
		if err := s.validator.ValidateSite(&sites[i]); err != nil {
			logger.Warn("Skipping invalid site", "code", sites[i].Code, "errors", validator.FieldErrors(err))
			continue
		}
		valid = append(valid, sites[i])
	}
	return valid, nil
}

func (s *SessionService) open(article domain.Article, sites []domain.Site) *destination.Set {
	return destination.Open(article, sites, destination.WithLiveURLScheme(s.liveURLScheme))
}

func (s *SessionService) edit(id string, fn func(set *destination.Set) error) (*domain.SessionView, error) {
	var out *domain.SessionView
	err := s.withSession(id, func(sess *session) error {
		if err := fn(sess.set); err != nil {
			return err
		}
		out = view(sess)
		return nil
	})
	return out, err
}

// withSession runs fn while holding the session lock.
func (s *SessionService) withSession(id string, fn func(sess *session) error) error {
	sess, ok := s.sessions.Load(id)
	if !ok {
		return domain.ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return fn(sess)
}

func (s *SessionService) log(sess *session) *slog.Logger {
	return logger.WithSessionID(sess.id).With("article_id", sess.set.ArticleID())
}

func view(sess *session) *domain.SessionView {
	return &domain.SessionView{
		ID:        sess.id,
		ArticleID: sess.set.ArticleID(),
		Published: sess.set.PublishedConfigs(),
		Draft:     sess.set.DraftConfigs(),
		Available: sess.set.Available(),
		Changed:   sess.set.Changed(),
		OpenedAt:  sess.openedAt,
	}
}

// Package client talks to the publishing backend over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/thedemodev/superdesk-publisher/internal/domain"
	"github.com/thedemodev/superdesk-publisher/internal/logger"
)

// DefaultTimeout bounds a single backend call.
const DefaultTimeout = 15 * time.Second

// RequestIDHeader carries the inbound request id to the backend.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody caps how much of an error response is kept in HTTPError.
const maxErrorBody = 512

// HTTPError represents a non-2xx response of the backend.
type HTTPError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("HTTP %d for %s: %s", e.StatusCode, e.URL, e.Body)
}

// Unwrap lets callers match every backend failure with domain.ErrRequestFailed.
func (e *HTTPError) Unwrap() error {
	return domain.ErrRequestFailed
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithToken sets the bearer token sent with every request.
func WithToken(token string) Option {
	return func(c *HTTPClient) {
		c.token = token
	}
}

// HTTPClient is the publishing backend API. Each call is attempted exactly once.
type HTTPClient struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewHTTPClient creates a client for the API rooted at baseURL.
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// tenantList accepts both a bare array and the paginated HAL envelope.
type tenantList struct {
	Embedded struct {
		Items []domain.Site `json:"_items"`
	} `json:"_embedded"`
}

// Sites returns the site registry.
func (c *HTTPClient) Sites(ctx context.Context) ([]domain.Site, error) {
	body, err := c.do(ctx, http.MethodGet, "/tenants/", nil)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var sites []domain.Site
		if err := json.Unmarshal(trimmed, &sites); err != nil {
			return nil, fmt.Errorf("%w: decoding tenants: %v", domain.ErrRequestFailed, err)
		}
		return sites, nil
	}

	var list tenantList
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return nil, fmt.Errorf("%w: decoding tenants: %v", domain.ErrRequestFailed, err)
	}
	return list.Embedded.Items, nil
}

// Article returns a package together with its publication history.
func (c *HTTPClient) Article(ctx context.Context, id int64) (*domain.Article, error) {
	body, err := c.do(ctx, http.MethodGet, packagePath(id, ""), nil)
	if err != nil {
		return nil, err
	}
	var article domain.Article
	if err := json.Unmarshal(body, &article); err != nil {
		return nil, fmt.Errorf("%w: decoding package %d: %v", domain.ErrRequestFailed, id, err)
	}
	return &article, nil
}

// Publish submits the changed destinations of an article.
func (c *HTTPClient) Publish(ctx context.Context, articleID int64, req domain.PublishRequest) error {
	_, err := c.do(ctx, http.MethodPost, packagePath(articleID, "publish/"), domain.PublishEnvelope{Publish: req})
	return err
}

// Unpublish retracts an article from the given tenants.
func (c *HTTPClient) Unpublish(ctx context.Context, articleID int64, req domain.UnpublishRequest) error {
	_, err := c.do(ctx, http.MethodPost, packagePath(articleID, "unpublish/"), domain.UnpublishEnvelope{Unpublish: req})
	return err
}

func packagePath(id int64, action string) string {
	p := "/packages/" + strconv.FormatInt(id, 10)
	if action != "" {
		p += "/" + action
	}
	return p
}

func (c *HTTPClient) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if id := logger.RequestIDFromContext(ctx); id != "" {
		req.Header.Set(RequestIDHeader, id)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", domain.ErrRequestFailed, method, url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", domain.ErrRequestFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet := strings.TrimSpace(string(data))
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}
		return nil, &HTTPError{StatusCode: resp.StatusCode, URL: url, Body: snippet}
	}

	return data, nil
}

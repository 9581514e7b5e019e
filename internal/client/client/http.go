package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/portfolio/internal/client/models"
	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/logging"
	"github.com/google/uuid"
)

var (
	ErrInvalidBaseURL = errors.New("invalid API base URL")
	ErrMissingID      = errors.New("id is required")
)

const maxBodySize = 4 << 20

type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  logging.Logger
	timeout time.Duration
}

type Option func(*HTTPClient)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

// WithTimeout bounds every request; zero means no bound beyond the caller's
// context.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.timeout = d }
}

// NewHTTPClient returns a client for the API rooted at baseURL, e.g.
// "http://localhost:8081/api". tokens may be nil when only public calls are
// made.
func NewHTTPClient(baseURL string, tokens TokenSource, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		tokens:  tokens,
		logger:  logging.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	c.logger = c.logger.With("module", "api_client")
	return c, nil
}

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/login", false, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) SendContact(ctx context.Context, form models.ContactForm) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := c.do(ctx, http.MethodPost, "/contact", false, form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) GetHome(ctx context.Context) ([]models.Home, error) {
	var items []models.Home
	if err := c.do(ctx, http.MethodGet, "/home", false, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) GetAbout(ctx context.Context) ([]models.About, error) {
	var items []models.About
	if err := c.do(ctx, http.MethodGet, "/about", false, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) GetProjects(ctx context.Context) ([]models.Project, error) {
	var items []models.Project
	if err := c.do(ctx, http.MethodGet, "/projects", false, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) ListContacts(ctx context.Context) ([]models.ContactMessage, error) {
	var items []models.ContactMessage
	if err := c.do(ctx, http.MethodGet, "/admin/contact", true, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) DeleteContact(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrMissingID
	}
	return c.do(ctx, http.MethodDelete, "/admin/contact/"+strconv.Itoa(id), true, nil, nil)
}

func (c *HTTPClient) CreateHome(ctx context.Context, h models.Home) error {
	return c.do(ctx, http.MethodPost, "/admin/home", true, h, nil)
}

func (c *HTTPClient) UpdateHome(ctx context.Context, h models.Home) error {
	return c.do(ctx, http.MethodPut, "/admin/home", true, h, nil)
}

func (c *HTTPClient) CreateAbout(ctx context.Context, a models.About) error {
	return c.do(ctx, http.MethodPost, "/admin/about", true, a, nil)
}

func (c *HTTPClient) UpdateAbout(ctx context.Context, a models.About) error {
	return c.do(ctx, http.MethodPut, "/admin/about", true, a, nil)
}

func (c *HTTPClient) CreateProject(ctx context.Context, p models.Project) error {
	p.ID = 0
	return c.do(ctx, http.MethodPost, "/admin/projects", true, p, nil)
}

func (c *HTTPClient) UpdateProject(ctx context.Context, p models.Project) error {
	if p.ID <= 0 {
		return ErrMissingID
	}
	return c.do(ctx, http.MethodPut, "/admin/projects/"+strconv.Itoa(p.ID), true, p, nil)
}

func (c *HTTPClient) DeleteProject(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrMissingID
	}
	return c.do(ctx, http.MethodDelete, "/admin/projects/"+strconv.Itoa(id), true, nil, nil)
}

func (c *HTTPClient) token() string {
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}

// do performs one request. in is JSON-encoded when non-nil; a 2xx body is
// decoded into out when out is non-nil and the body is not empty.
func (c *HTTPClient) do(ctx context.Context, method, path string, privileged bool, in, out any) error {
	var token string
	if privileged {
		if token = c.token(); token == "" {
			return &Error{Kind: KindNoSession, Detail: "please login first"}
		}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthHeaderName, common.BearerPrefix+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		kind := KindTransport
		if errors.Is(err, context.Canceled) {
			kind = KindCanceled
		}
		c.logger.Debug(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return &Error{Kind: kind, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return &Error{Kind: KindTransport, Status: resp.StatusCode, Err: err}
	}

	c.logger.Debug(ctx, "request done",
		"method", method, "path", path, "status", resp.StatusCode,
		"request_id", requestID, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{
			Kind:   kindForStatus(resp.StatusCode),
			Status: resp.StatusCode,
			Detail: errorDetail(resp.StatusCode, data),
		}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Kind: KindDecode, Status: resp.StatusCode, Err: err}
	}
	return nil
}

// errorDetail extracts the "error" field of a failure body, falling back to
// a short plain-text body and then to the status text.
func errorDetail(status int, body []byte) string {
	var payload models.MessageResponse
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}

	text := strings.TrimSpace(string(body))
	if text != "" && len(text) <= 200 && !strings.HasPrefix(text, "{") && !strings.HasPrefix(text, "<") {
		return text
	}
	return http.StatusText(status)
}

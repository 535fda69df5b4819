package planka

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// maxResponseSize caps upstream response bodies.
const maxResponseSize = 10 * 1024 * 1024 // 10MB

// Client is the single choke point for every upstream call. It holds the
// cached bearer token and admin user ID; both are resolved lazily, at most
// once per Client, and never refreshed.
type Client struct {
	baseURL  string
	email    string
	password string

	adminID       string
	adminEmail    string
	adminUsername string

	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time

	tokenMu sync.Mutex
	token   string

	adminMu       sync.Mutex
	adminResolved bool
	cachedAdminID string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithAdminID sets the admin user ID directly, skipping lookup.
func WithAdminID(id string) Option {
	return func(c *Client) { c.adminID = id }
}

// WithAdminEmail sets the email used to look up the admin user.
func WithAdminEmail(email string) Option {
	return func(c *Client) { c.adminEmail = email }
}

// WithAdminUsername sets the username used to look up the admin user.
func WithAdminUsername(username string) Option {
	return func(c *Client) { c.adminUsername = username }
}

// WithClock overrides the time source, used by stopwatch tests.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// NewClient creates a client for the Planka instance at baseURL,
// authenticating as the agent account identified by email/password.
// A trailing "/api" on baseURL is tolerated and stripped.
func NewClient(baseURL, email, password string, opts ...Option) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	baseURL = strings.TrimSuffix(baseURL, "/api")

	c := &Client{
		baseURL:  baseURL,
		email:    email,
		password: password,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Multipart is a pre-encoded multipart body. It is passed through to the
// upstream unmodified, with its own content type instead of JSON.
type Multipart struct {
	Body        io.Reader
	ContentType string
}

type reqOptions struct {
	skipAuth  bool
	query     []queryParam
	multipart *Multipart
}

type queryParam struct {
	key   string
	value string
}

// url joins the base URL and path with exactly one /api/ prefix.
func (c *Client) url(path string) string {
	path = strings.TrimPrefix(path, "/")
	path = strings.TrimPrefix(path, "api/")
	return c.baseURL + "/api/" + path
}

// appendQuery appends the given params in order, skipping empty values.
func appendQuery(rawURL string, params []queryParam) string {
	var sb strings.Builder
	sb.WriteString(rawURL)
	sep := "?"
	for _, p := range params {
		if p.value == "" {
			continue
		}
		sb.WriteString(sep)
		sb.WriteString(url.QueryEscape(p.key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.value))
		sep = "&"
	}
	return sb.String()
}

// do performs one upstream request. A non-2xx response becomes a taxonomy
// error wrapped with the failing method and URL; a credential resolution
// failure is surfaced as a CredentialError so callers can tell "could not
// authenticate" apart from "authenticated call rejected".
func (c *Client) do(ctx context.Context, method, path string, body, out any, opts reqOptions) error {
	reqURL := appendQuery(c.url(path), opts.query)

	var reader io.Reader
	contentType := ""
	switch {
	case opts.multipart != nil:
		reader = opts.multipart.Body
		contentType = opts.multipart.ContentType
	case body != nil:
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode body: %w", method, reqURL, err)
		}
		reader = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, reqURL, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	if !opts.skipAuth {
		token, err := c.Token(ctx)
		if err != nil {
			return newCredentialError(err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	requestID := uuid.New().String()
	c.logger.Debug("planka request",
		"request_id", requestID,
		"method", method,
		"url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, reqURL, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, reqURL, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := classifyResponse(resp.StatusCode, respBody)
		c.logger.Debug("planka request failed",
			"request_id", requestID,
			"status", resp.StatusCode,
			"kind", apiErr.Kind)
		return fmt.Errorf("%s %s: %w", method, reqURL, apiErr)
	}

	if out == nil {
		return nil
	}

	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(respBody, out); err != nil {
			return newSchemaError("decode %s %s response: %v", method, reqURL, err)
		}
		return nil
	}
	if s, ok := out.(*string); ok {
		*s = string(respBody)
		return nil
	}
	return newSchemaError("unexpected content type %q from %s %s",
		resp.Header.Get("Content-Type"), method, reqURL)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out, reqOptions{})
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out, reqOptions{})
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out, reqOptions{})
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, reqOptions{})
}

// Token returns the cached bearer token, logging in on first use.
// The mutex is held across the login call so concurrent first callers
// trigger a single login. The token is never refreshed: a 401 after
// caching is surfaced to the caller, not retried.
func (c *Client) Token(ctx context.Context) (string, error) {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()

	if c.token != "" {
		return c.token, nil
	}

	var env itemEnvelope[string]
	err := c.do(ctx, http.MethodPost, "access-tokens", map[string]string{
		"emailOrUsername": c.email,
		"password":        c.password,
	}, &env, reqOptions{skipAuth: true})
	if err != nil {
		return "", fmt.Errorf("login as %s: %w", c.email, err)
	}
	if env.Item == "" {
		return "", newSchemaError("login response missing token item")
	}

	c.token = env.Item
	c.logger.Debug("planka agent authenticated")
	return c.token, nil
}

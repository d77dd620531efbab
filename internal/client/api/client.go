package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/bankfront/internal/logging"
	"github.com/google/uuid"
)

// DefaultTimeout bounds every request unless overridden.
const DefaultTimeout = 15 * time.Second

const RequestIDHeader = "X-Request-ID"

// SessionStore gives the adapter access to the persisted session.
type SessionStore interface {
	Token(ctx context.Context) (string, error)
	ClearSession(ctx context.Context) error
}

// Notifier shows user-facing notifications.
type Notifier interface {
	Error(title, message string, d time.Duration) int
	Warning(title, message string, d time.Duration) int
}

// Redirector sends the user to the login route. It returns false when the
// user is already there.
type Redirector interface {
	RedirectToLogin() bool
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	session    SessionStore
	notifier   Notifier
	redirector Redirector
	onExpired  func(ctx context.Context)
	log        logging.Logger
	requestID  func() string
}

type Option func(*Client)

func WithSessionStore(s SessionStore) Option { return func(c *Client) { c.session = s } }
func WithNotifier(n Notifier) Option         { return func(c *Client) { c.notifier = n } }
func WithRedirector(r Redirector) Option     { return func(c *Client) { c.redirector = r } }
func WithLogger(l logging.Logger) Option     { return func(c *Client) { c.log = l } }

// WithUnauthorizedHook registers fn to run on every 401, after the persisted
// session is cleared and before any redirect to login.
func WithUnauthorizedHook(fn func(ctx context.Context)) Option {
	return func(c *Client) { c.onExpired = fn }
}

// WithHTTPClient replaces the underlying *http.Client; its Timeout is kept.
func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.httpClient = h } }

// NewClient builds a Client for the API rooted at baseURL. A zero timeout
// means DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		session:    noSession{},
		notifier:   noNotifier{},
		redirector: noRedirect{},
		log:        logging.Discard(),
		requestID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, nil, body, out)
}

// Do performs one request. body, when non-nil, is sent as JSON; a 2xx
// response body is decoded into out when out is non-nil. Any failure is
// returned as *Error.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return c.requestFailed(ctx, method, path, err)
	}

	log := c.log.With("method", method, "path", path, "request_id", req.Header.Get(RequestIDHeader))
	log.Debug(ctx, "api request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			log.Debug(ctx, "api request canceled", "error", err)
			return &Error{Code: CodeCanceled, Message: "Request canceled", kind: ErrCanceled, cause: ctxErr}
		}
		return c.networkFailed(ctx, log, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.networkFailed(ctx, log, err)
	}

	log.Debug(ctx, "api response", "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		authed := req.Header.Get("Authorization") != ""
		return c.responseFailed(ctx, log, resp.StatusCode, authed, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Warn(ctx, "undecodable response", "error", err)
		c.notifier.Error("Request error", "An error occurred while processing your request.", 0)
		return &Error{
			Status:   resp.StatusCode,
			Code:     CodeInvalidResponse,
			Message:  "Unexpected response from server",
			Notified: true,
			Body:     data,
			kind:     ErrRequest,
			cause:    err,
		}
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, c.requestID())

	token, err := c.session.Token(ctx)
	if err != nil {
		c.log.Warn(ctx, "cannot read session token", "error", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (c *Client) requestFailed(ctx context.Context, method, path string, err error) error {
	c.log.Error(ctx, "cannot build request", "method", method, "path", path, "error", err)
	c.notifier.Error("Request error", "An error occurred while processing your request.", 0)
	return &Error{
		Status:   http.StatusInternalServerError,
		Code:     CodeRequestError,
		Message:  err.Error(),
		Notified: true,
		kind:     ErrRequest,
		cause:    err,
	}
}

func (c *Client) networkFailed(ctx context.Context, log logging.Logger, err error) error {
	log.Warn(ctx, "api unreachable", "error", err)
	c.notifier.Error("Connection lost", "Could not reach the server. Check your connection.", 0)
	return &Error{
		Status:   http.StatusServiceUnavailable,
		Code:     CodeServiceUnavailable,
		Message:  "Service unavailable. Check that the API is running.",
		Notified: true,
		kind:     ErrUnavailable,
		cause:    err,
	}
}

// responseFailed maps a non-2xx response. authed reports whether the request
// carried a bearer token.
func (c *Client) responseFailed(ctx context.Context, log logging.Logger, status int, authed bool, body []byte) error {
	message, code := parseErrorBody(body)
	apiErr := &Error{Status: status, Code: code, Message: message, Body: body}

	switch {
	case status == http.StatusUnauthorized:
		apiErr.kind = ErrUnauthorized
		if err := c.session.ClearSession(ctx); err != nil {
			log.Error(ctx, "cannot clear session", "error", err)
		}
		if c.onExpired != nil {
			c.onExpired(ctx)
		}
		// Without a bearer token there was no session to expire.
		if authed && c.redirector.RedirectToLogin() {
			c.notifier.Warning("Session expired", "Please log in again to continue.", 0)
			apiErr.Notified = true
		}

	case status == http.StatusServiceUnavailable:
		apiErr.kind = ErrUnavailable
		c.notifier.Error("Service unavailable", "The service is temporarily unavailable.", 0)
		apiErr.Notified = true

	case status >= http.StatusInternalServerError:
		apiErr.kind = ErrServer
		c.notifier.Error("Server error", "An internal error occurred. Please try again later.", 0)
		apiErr.Notified = true

	default:
		apiErr.kind = ErrRejected
	}

	log.Warn(ctx, "api error", "status", status, "code", code, "message", message)
	return apiErr
}

type noSession struct{}

func (noSession) Token(context.Context) (string, error) { return "", nil }
func (noSession) ClearSession(context.Context) error    { return nil }

type noNotifier struct{}

func (noNotifier) Error(string, string, time.Duration) int   { return 0 }
func (noNotifier) Warning(string, string, time.Duration) int { return 0 }

type noRedirect struct{}

func (noRedirect) RedirectToLogin() bool { return false }

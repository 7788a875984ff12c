package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jiraclone/jiraclient/internal/client/notify"
	"github.com/jiraclone/jiraclient/internal/client/session"
	"github.com/jiraclone/jiraclient/internal/common"
	"github.com/jiraclone/jiraclient/internal/logging"
)

// maxErrorBody caps how much of a failed response is read looking for a message.
const maxErrorBody = 64 << 10

// Client is the shared HTTP client. Construct it with NewClient.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    session.Manager
	notifier   notify.Notifier
	navigator  notify.Navigator
	log        logging.Logger

	interceptors []RequestInterceptor
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds every request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			hc := *c.httpClient
			hc.Timeout = d
			c.httpClient = &hc
		}
	}
}

func WithNotifier(n notify.Notifier) Option {
	return func(c *Client) { c.notifier = n }
}

func WithNavigator(n notify.Navigator) Option {
	return func(c *Client) { c.navigator = n }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithRequestInterceptor appends fn after the built-in interceptors.
func WithRequestInterceptor(fn RequestInterceptor) Option {
	return func(c *Client) { c.interceptors = append(c.interceptors, fn) }
}

// NewClient returns a Client for the backend at baseURL. An empty baseURL
// selects common.DefaultBaseURL.
func NewClient(baseURL string, sm session.Manager, opts ...Option) (*Client, error) {
	if sm == nil {
		return nil, errors.New("api: session manager is required")
	}
	if baseURL == "" {
		baseURL = common.DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("api: invalid base url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api: base url %q must be http or https", baseURL)
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		session:    sm,
		notifier:   notify.Nop{},
		navigator:  notify.Nop{},
		log:        logging.NewSlogLogger(nil),
	}
	c.interceptors = []RequestInterceptor{c.injectToken, injectRequestID}

	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the backend base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends one request. path is relative to the base URL; body, if non-nil,
// is sent as JSON; out, if non-nil, receives the decoded 2xx body. Failures
// have already been through the inbound handler when Do returns.
func (c *Client) Do(ctx context.Context, method, path string, q Query, body, out any) error {
	err := c.do(ctx, method, path, q, body, out)
	if err != nil {
		c.handleFailure(ctx, err)
	}
	return err
}

func (c *Client) do(ctx context.Context, method, path string, q Query, body, out any) error {
	req, err := c.newRequest(ctx, method, path, q, body)
	if err != nil {
		return err
	}
	for _, fn := range c.interceptors {
		if err := fn(req); err != nil {
			return err
		}
	}

	log := c.log.With("method", method, "path", path, "request_id", req.Header.Get(common.RequestIDHeaderName))
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Warn(ctx, "request failed", "error", err)
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	log.Debug(ctx, "response received", "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{StatusCode: resp.StatusCode, Method: method, Path: path}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		var p errorPayload
		if json.Unmarshal(raw, &p) == nil {
			apiErr.Message = p.text()
		}
		log.Warn(ctx, "request rejected", "status", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, q Query, body any) (*http.Request, error) {
	target := c.baseURL + path
	if enc := q.Encode(); enc != "" {
		target += "?" + enc
	}

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, r)
	if err != nil {
		return nil, fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set(common.ContentTypeHeaderName, common.ContentTypeJSON)
	req.Header.Set("Accept", common.ContentTypeJSON)
	return req, nil
}

// call is the typed helper used by the endpoint groups.
func call[T any](ctx context.Context, c *Client, method, path string, q Query, body any) (T, error) {
	var out T
	err := c.Do(ctx, method, path, q, body, &out)
	return out, err
}

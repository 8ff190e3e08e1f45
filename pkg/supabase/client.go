package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// maxErrorBody bounds how much of a failed response is kept for the error message.
const maxErrorBody = 4 << 10

var tablePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Doer executes retryable requests. *retryablehttp.Client implements it.
type Doer interface {
	Do(*retryablehttp.Request) (*http.Response, error)
}

var _ Doer = (*retryablehttp.Client)(nil)

// Client reads rows through the Supabase PostgREST API.
type Client struct {
	http    Doer
	baseURL *url.URL
	key     string
}

// Option configures the underlying retryable client.
type Option func(*retryablehttp.Client)

// WithLogger routes retry logs to log.
func WithLogger(log *slog.Logger) Option {
	return func(c *retryablehttp.Client) {
		if log != nil {
			c.Logger = log
		}
	}
}

// WithHTTPClient replaces the transport client, mostly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *retryablehttp.Client) {
		if hc != nil {
			c.HTTPClient = hc
		}
	}
}

// WithRetryWait sets the backoff bounds between attempts.
func WithRetryWait(minWait, maxWait time.Duration) Option {
	return func(c *retryablehttp.Client) {
		c.RetryWaitMin = minWait
		c.RetryWaitMax = maxWait
	}
}

// New creates a client for the project at cfg.URL using cfg.Key as API key.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.URL == "" {
		return nil, ErrMissingURL
	}
	if cfg.Key == "" {
		return nil, ErrMissingKey
	}

	base, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: %q is not absolute", ErrMissingURL, cfg.URL)
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.RetryMax
	rc.Logger = nil
	if cfg.Timeout > 0 {
		rc.HTTPClient.Timeout = cfg.Timeout
	}
	for _, opt := range opts {
		opt(rc)
	}

	return &Client{http: rc, baseURL: base, key: cfg.Key}, nil
}

// Select runs GET /rest/v1/{table} with the given PostgREST query and
// decodes the JSON array response into dst.
//
//	q := url.Values{"select": {"*"}, "order": {"contributions.desc"}}
//	err := client.Select(ctx, "contributors", q, &rows)
func (c *Client) Select(ctx context.Context, table string, query url.Values, dst any) error {
	if !tablePattern.MatchString(table) {
		return fmt.Errorf("%w: %q", ErrInvalidTable, table)
	}

	u := c.baseURL.JoinPath("rest", "v1", table)
	u.RawQuery = query.Encode()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := expectStatus2xx(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return errors.Join(ErrDecodeFailed, err)
	}
	return nil
}

func expectStatus2xx(resp *http.Response) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, string(body))
	}
	return nil
}

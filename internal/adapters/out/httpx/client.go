// Package httpx provides the outbound HTTP transport used by carrier
// adapters in live mode: JSON requests with a bounded timeout and a small
// retry budget on 5xx and network failures. 4xx responses are never retried.
package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

const (
	// DefaultTimeout bounds one outbound call end to end.
	DefaultTimeout = 20 * time.Second

	// DefaultRetries is the retry budget on 5xx/network failures.
	DefaultRetries = 2

	connectTimeout = 8 * time.Second
	userAgent      = "freightgate/1.0"
	backoffStep    = 120 * time.Millisecond
)

// Response is the decoded outcome of an outbound call. Status 0 with a
// non-nil error means the endpoint was unreachable after the retry budget.
type Response struct {
	Status int
	Body   []byte
}

// JSON unmarshals the response body into out.
func (r *Response) JSON(out any) error {
	return json.Unmarshal(r.Body, out)
}

// Client is a reusable outbound HTTP client. It is safe for concurrent use;
// construct one per process and inject it into the adapters.
type Client struct {
	httpClient *http.Client
	timeout    time.Duration
	retries    int
	sleep      func(time.Duration)
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout overrides the per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithRetries overrides the retry budget.
func WithRetries(n int) Option {
	return func(c *Client) { c.retries = n }
}

// WithSleep overrides the inter-attempt backoff sleeper, used by tests to
// avoid real waits.
func WithSleep(fn func(time.Duration)) Option {
	return func(c *Client) { c.sleep = fn }
}

// NewClient creates an outbound client with pooled connections.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: connectTimeout,
				}).DialContext,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
			},
		},
		timeout: DefaultTimeout,
		retries: DefaultRetries,
		sleep:   time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do issues a JSON request. body may be nil; non-nil bodies are marshalled to
// JSON. Headers default to Content-Type application/json and the gateway
// user agent. 5xx responses and network errors are retried with a growing
// backoff up to the budget; anything else returns immediately.
func (c *Client) Do(ctx context.Context, method, url string, headers map[string]string, body any) (*Response, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
	}

	var lastErr error
	for attempt := 1; attempt <= c.retries+1; attempt++ {
		resp, err := c.attempt(ctx, method, url, headers, payload)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.sleep(backoffStep * time.Duration(attempt))
			continue
		}
		if resp.Status >= 500 {
			lastErr = fmt.Errorf("carrier endpoint returned %d", resp.Status)
			c.sleep(backoffStep * time.Duration(attempt))
			continue
		}
		return resp, nil
	}
	return nil, lastErr
}

func (c *Client) attempt(ctx context.Context, method, url string, headers map[string]string, payload []byte) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{Status: resp.StatusCode, Body: raw}, nil
}

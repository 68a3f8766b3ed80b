package cms

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

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxResponseBytes = 8 << 20

// DefaultTimeout bounds every CMS round trip unless the caller supplies its own http.Client.
const DefaultTimeout = 10 * time.Second

// Client talks to the headless CMS REST API.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	token   string
	metrics *Metrics
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient replaces the default instrumented http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithAPIToken sets the bearer token sent on every request.
func WithAPIToken(token string) Option {
	return func(c *Client) {
		c.token = strings.TrimSpace(token)
	}
}

// WithMetrics records request counters and latencies.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient instantiates the CMS client. The base URL usually ends in /api.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("cms base URL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse cms base URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("cms base URL %q must be absolute", baseURL)
	}
	c := &Client{
		baseURL: parsed,
		http: &http.Client{
			Timeout:   DefaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// Get fetches path with an optional query and decodes the JSON body into out.
func (c *Client) Get(ctx context.Context, path string, q *Query, out any) error {
	raw := ""
	if q != nil {
		encoded, err := q.Encode()
		if err != nil {
			return err
		}
		raw = encoded
	}
	return c.do(ctx, http.MethodGet, path, raw, nil, out)
}

// Post creates a resource.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, "", body, out)
}

// Put updates a resource.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, "", body, out)
}

// Delete removes a resource; out may be nil.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, "", nil, out)
}

func (c *Client) do(ctx context.Context, method, path, rawQuery string, body, out any) error {
	if c == nil || c.http == nil || c.baseURL == nil {
		return errors.New("cms client not configured")
	}
	endpoint := c.baseURL.JoinPath(path)
	endpoint.RawQuery = rawQuery

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode cms request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("build cms request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resource := resourceLabel(path)
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.observe(method, resource, 0, time.Since(start))
		return fmt.Errorf("call cms %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	c.metrics.observe(method, resource, resp.StatusCode, time.Since(start))

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read cms response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp.StatusCode, resp.Status, payload)
	}
	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode cms response from %s: %w", path, err)
	}
	return nil
}

// resourceLabel keeps metric cardinality low: "/orders/12" -> "orders".
func resourceLabel(path string) string {
	path = strings.Trim(path, "/")
	if head, _, ok := strings.Cut(path, "/"); ok {
		return head
	}
	if path == "" {
		return "root"
	}
	return path
}

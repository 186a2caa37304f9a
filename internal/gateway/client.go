// Package gateway implements the HTTP content-service client behind the
// catalog and site service contracts. It owns transport, response
// normalization, and the advisory TTL read cache.
package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goliatone/go-storefront/catalog"
	"github.com/goliatone/go-storefront/internal/identity"
	"github.com/goliatone/go-storefront/internal/logging"
	"github.com/goliatone/go-storefront/pkg/interfaces"
	"github.com/goliatone/go-storefront/query"
)

// Client performs cached JSON reads against the content service. All state is
// read-only after construction except the injected cache, which is shared
// process-wide and safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	cache      interfaces.CacheProvider
	defaultTTL time.Duration
	logger     interfaces.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient overrides the transport. Timeouts are the transport's
// responsibility; a timeout surfaces as the same unavailable failure as any
// other transport error.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithCache injects the read cache. Defaults to no caching.
func WithCache(provider interfaces.CacheProvider, defaultTTL time.Duration) ClientOption {
	return func(c *Client) {
		if provider != nil {
			c.cache = provider
		}
		if defaultTTL > 0 {
			c.defaultTTL = defaultTTL
		}
	}
}

// WithLogger injects the gateway logger.
func WithLogger(logger interfaces.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient constructs a content-service client for the given origin.
func NewClient(baseURL, token string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		defaultTTL: 60 * time.Second,
		logger:     logging.NoOp(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// fetch performs one cached read. The cache key derives from the path and the
// canonical query encoding, so equal descriptors share an entry. A zero ttl
// uses the client default; a negative ttl bypasses the cache entirely.
func (c *Client) fetch(ctx context.Context, path string, q query.Query, ttl time.Duration) ([]byte, error) {
	encoded := q.String()
	key := identity.ReadKey(path, encoded)

	if c.cache != nil && ttl >= 0 {
		if cached, err := c.cache.Get(ctx, key); err == nil && cached != nil {
			if body, ok := cached.([]byte); ok {
				c.logger.Debug("gateway.cache.hit", "path", path)
				return body, nil
			}
		}
	}

	body, err := c.do(ctx, path, encoded)
	if err != nil {
		return nil, err
	}

	if c.cache != nil && ttl >= 0 {
		if ttl == 0 {
			ttl = c.defaultTTL
		}
		if err := c.cache.Set(ctx, key, body, ttl); err != nil {
			c.logger.Warn("gateway.cache.store_failed", "path", path, "error", err)
		}
	}

	return body, nil
}

func (c *Client) do(ctx context.Context, path, encodedQuery string) ([]byte, error) {
	url := c.baseURL + "/api" + path
	if encodedQuery != "" {
		url += "?" + encodedQuery
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &catalog.UnavailableError{URL: url, Err: err}
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.logger.Debug("gateway.request", "url", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("gateway.request.failed", "url", url, "error", err)
		return nil, &catalog.UnavailableError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("gateway.request.status", "url", url, "status", resp.StatusCode)
		return nil, &catalog.UnavailableError{URL: url, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &catalog.UnavailableError{URL: url, Err: fmt.Errorf("read response: %w", err)}
	}
	return body, nil
}

// InvalidateAll clears the gateway read cache.
func (c *Client) InvalidateAll(ctx context.Context) error {
	if c.cache == nil {
		return nil
	}
	return c.cache.Clear(ctx)
}

// Package meili implements the search contracts against a Meilisearch server
// over its JSON HTTP API.
package meili

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goliatone/go-storefront/internal/logging"
	"github.com/goliatone/go-storefront/pkg/interfaces"
	"github.com/goliatone/go-storefront/search"
)

// Client talks to one Meilisearch index. Safe for concurrent use.
type Client struct {
	host       string
	apiKey     string
	index      string
	httpClient *http.Client
	logger     interfaces.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout overrides the request deadline on the transport.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithLogger injects the search logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New builds a client for the given host and index.
func New(host, apiKey, index string, opts ...Option) *Client {
	c := &Client{
		host:       strings.TrimRight(host, "/"),
		apiKey:     apiKey,
		index:      index,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		logger:     logging.NoOp(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ search.Client = (*Client)(nil)

type searchRequest struct {
	Query                 string   `json:"q"`
	Filter                []string `json:"filter,omitempty"`
	Limit                 int      `json:"limit"`
	Offset                int      `json:"offset,omitempty"`
	AttributesToHighlight []string `json:"attributesToHighlight,omitempty"`
	HighlightPreTag       string   `json:"highlightPreTag,omitempty"`
	HighlightPostTag      string   `json:"highlightPostTag,omitempty"`
}

type searchResponse struct {
	Hits               []search.Hit `json:"hits"`
	EstimatedTotalHits int64        `json:"estimatedTotalHits"`
	ProcessingTimeMs   int64        `json:"processingTimeMs"`
}

// Search runs one full-text query. The locale filter is always applied so a
// query never crosses locale boundaries; hits come back in the service's
// relevance order, untouched.
func (c *Client) Search(ctx context.Context, req search.Request) (*search.Result, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = search.DefaultLimit
	}

	filters := []string{fmt.Sprintf("locale = %q", req.Locale)}
	if req.Category != "" {
		filters = append(filters, fmt.Sprintf("categorySlug = %q", req.Category))
	}

	payload := searchRequest{
		Query:                 req.Query,
		Filter:                filters,
		Limit:                 limit,
		Offset:                req.Offset,
		AttributesToHighlight: []string{"name", "shortDescription"},
		HighlightPreTag:       search.HighlightPreTag,
		HighlightPostTag:      search.HighlightPostTag,
	}

	var resp searchResponse
	if err := c.post(ctx, "/indexes/"+c.index+"/search", payload, &resp); err != nil {
		return nil, err
	}

	return &search.Result{
		Hits:             resp.Hits,
		TotalHits:        resp.EstimatedTotalHits,
		ProcessingTimeMs: resp.ProcessingTimeMs,
	}, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	return c.send(ctx, http.MethodPost, path, payload, out)
}

func (c *Client) send(ctx context.Context, method, path string, payload, out any) error {
	url := c.host + path

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return &search.UnavailableError{URL: url, Err: fmt.Errorf("encode request: %w", err)}
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return &search.UnavailableError{URL: url, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("search.request.failed", "url", url, "error", err)
		return &search.UnavailableError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("search.request.status", "url", url, "status", resp.StatusCode)
		return &search.UnavailableError{URL: url, Status: resp.StatusCode}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &search.UnavailableError{URL: url, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

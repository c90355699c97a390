package integration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultRequestTimeout = 15 * time.Second
	// maxResponseBytes caps list responses; external systems return full
	// collections, but a runaway body should not exhaust memory.
	maxResponseBytes = 16 << 20
)

// ClientOptions groups construction parameters for Client.
type ClientOptions struct {
	BaseURL    string
	HTTPClient *http.Client // Optional: custom HTTP client
	Logger     *slog.Logger // Optional: structured logger
}

// Client is a small REST client for external HR system list endpoints.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *slog.Logger
}

// NewClient validates the base URL and returns a Client.
func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, errors.New("integration client: BaseURL is required")
	}
	u, err := url.Parse(opts.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("integration client: invalid base URL %q", opts.BaseURL)
	}

	httpc := opts.HTTPClient
	if httpc == nil {
		httpc = &http.Client{Timeout: defaultRequestTimeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		httpc:   httpc,
		logger:  logger.With("component", "integration_client"),
	}, nil
}

// FetchListParams groups per-call parameters for FetchList.
type FetchListParams struct {
	// Path is the endpoint path relative to the base URL.
	Path string
	// Expr selects the collection in keyed responses; empty accepts only
	// bare arrays.
	Expr string
}

// FetchList retrieves one full collection from an external list endpoint.
func (c *Client) FetchList(ctx context.Context, p FetchListParams) ([]json.RawMessage, error) {
	extractor, err := NewListExtractor(ListExtractorOptions{Expr: p.Expr})
	if err != nil {
		return nil, err
	}

	target := c.baseURL + "/" + strings.TrimLeft(p.Path, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build list request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", p.Path, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("close response body", "path", p.Path, "error", closeErr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", p.Path, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", p.Path, err)
	}

	return extractor.Extract(body)
}

// FetchListAs retrieves a collection and decodes it into a typed slice.
func FetchListAs[T any](ctx context.Context, c *Client, p FetchListParams) ([]T, error) {
	raw, err := c.FetchList(ctx, p)
	if err != nil {
		return nil, err
	}
	return DecodeItems[T](raw)
}

// Package searchproxy forwards legacy method params to the search backend
// and decodes its raw response. Query construction happens in the backend;
// this client is a pass-through.
package searchproxy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/lgtm-migrator/search-api2/internal/domain"
	"github.com/lgtm-migrator/search-api2/internal/metrics"
)

const service = "search"

// Client submits legacy method queries to the search backend.
type Client struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

// NewClient creates a search backend client.
func NewClient(url string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// SearchObjects executes an object search.
func (c *Client) SearchObjects(ctx context.Context, params map[string]any) (*domain.SearchResponse, error) {
	return c.run(ctx, "search_objects", params)
}

// SearchTypes executes a type-count aggregation query.
func (c *Client) SearchTypes(ctx context.Context, params map[string]any) (*domain.SearchResponse, error) {
	return c.run(ctx, "search_types", params)
}

// GetObjects executes a direct object-by-id retrieval.
func (c *Client) GetObjects(ctx context.Context, params map[string]any) (*domain.SearchResponse, error) {
	return c.run(ctx, "get_objects", params)
}

// HealthCheck verifies the backend answers HTTP requests at all.
func (c *Client) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, http.NoBody)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("search backend unreachable: %w", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("search backend returned status %d", resp.StatusCode)
	}
	return nil
}

// run posts one method's params and decodes the raw search response.
func (c *Client) run(ctx context.Context, method string, params map[string]any) (*domain.SearchResponse, error) {
	body, err := json.Marshal(map[string]any{"method": method, "params": params})
	if err != nil {
		return nil, fmt.Errorf("marshal %s query: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.countError(method, "transport")
		return nil, fmt.Errorf("%s %s: %v: %w", service, method, err, domain.ErrUpstream)
	}
	defer func() { _ = resp.Body.Close() }()

	metrics.ServiceRequestDuration.WithLabelValues(service, method).Observe(time.Since(start).Seconds())

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		c.countError(method, "read_body")
		return nil, fmt.Errorf("%s %s: read body: %v: %w", service, method, err, domain.ErrUpstream)
	}
	if resp.StatusCode != http.StatusOK {
		c.countError(method, "http_status")
		return nil, fmt.Errorf("%s %s: status %d: %w", service, method, resp.StatusCode, domain.ErrUpstream)
	}

	var result domain.SearchResponse
	if err := json.Unmarshal(payload, &result); err != nil {
		c.countError(method, "decode")
		return nil, fmt.Errorf("%s %s: decode response: %v: %w", service, method, err, domain.ErrUpstream)
	}

	metrics.ServiceRequestsTotal.WithLabelValues(service, method, "success").Inc()
	return &result, nil
}

func (c *Client) countError(method, errorType string) {
	metrics.ServiceRequestsTotal.WithLabelValues(service, method, "error").Inc()
	metrics.ServiceErrorsTotal.WithLabelValues(service, method, errorType).Inc()
}

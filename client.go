// Package searchapi2 provides a Go client for the legacy search RPC API.
package searchapi2

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Client is the legacy search API SDK entry point.
type Client struct {
	url    string
	token  string
	client *http.Client
}

// New creates a client for the API at the given base URL. The URL should
// point at the RPC endpoint, e.g. "http://localhost:5000/rpc".
func New(url string, opts ...Option) *Client {
	cfg := &clientConfig{timeout: 60 * time.Second}
	for _, o := range opts {
		o(cfg)
	}

	hc := cfg.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.timeout}
	}

	return &Client{url: url, token: cfg.token, client: hc}
}

// SearchObjects runs an object search and returns the converted legacy result.
func (c *Client) SearchObjects(ctx context.Context, params map[string]any) (*SearchObjectsResult, error) {
	var result SearchObjectsResult
	if err := c.call(ctx, "search_objects", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchTypes runs a type-count query.
func (c *Client) SearchTypes(ctx context.Context, params map[string]any) (*SearchTypesResult, error) {
	var result SearchTypesResult
	if err := c.call(ctx, "search_types", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetObjects retrieves objects by id and returns the converted legacy result.
func (c *Client) GetObjects(ctx context.Context, params map[string]any) (*GetObjectsResult, error) {
	var result GetObjectsResult
	if err := c.call(ctx, "get_objects", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// rpcError is the error member of the RPC response envelope.
type rpcError struct {
	Name    string `json:"name"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Name, e.Code, e.Message)
}

func (c *Client) call(ctx context.Context, method string, params map[string]any, out any) error {
	if params == nil {
		params = map[string]any{}
	}
	body, err := json.Marshal(map[string]any{
		"version": "1.1",
		"id":      uuid.NewString(),
		"method":  method,
		"params":  []any{params},
	})
	if err != nil {
		return fmt.Errorf("searchapi2: marshal %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("searchapi2: build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("searchapi2: %s: %w", method, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var envelope struct {
		Result []json.RawMessage `json:"result"`
		Error  *rpcError         `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("searchapi2: decode %s response: %w", method, err)
	}
	if envelope.Error != nil {
		return fmt.Errorf("searchapi2: %s: %w", method, envelope.Error)
	}
	if len(envelope.Result) == 0 {
		return fmt.Errorf("searchapi2: %s: empty result (status %d)", method, resp.StatusCode)
	}
	if err := json.Unmarshal(envelope.Result[0], out); err != nil {
		return fmt.Errorf("searchapi2: decode %s result: %w", method, err)
	}
	return nil
}

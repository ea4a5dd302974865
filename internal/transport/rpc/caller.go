// Package rpc implements the minimal legacy JSON-RPC 1.1 envelope spoken by
// the workspace and user-profile services.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgtm-migrator/search-api2/internal/domain"
	"github.com/lgtm-migrator/search-api2/internal/metrics"
)

// Request is a JSON-RPC 1.1 call envelope.
type Request struct {
	Version string `json:"version"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

// Error is the error member of a JSON-RPC 1.1 response.
type Error struct {
	Name    string `json:"name"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Name, e.Code, e.Message)
}

// response is the wire shape of a JSON-RPC 1.1 reply.
type response struct {
	Result []json.RawMessage `json:"result"`
	Error  *Error            `json:"error"`
}

// Caller posts JSON-RPC 1.1 requests to a single service endpoint.
type Caller struct {
	service string
	url     string
	client  *http.Client
	logger  *zap.Logger
}

// Config holds the caller settings.
type Config struct {
	Service string // short service name used in logs and metrics
	URL     string
	Timeout time.Duration
	Logger  *zap.Logger
}

// NewCaller creates a JSON-RPC caller for one upstream service.
func NewCaller(cfg *Config) *Caller {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Caller{
		service: cfg.Service,
		url:     cfg.URL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Call posts one method call and decodes the first result slot into out
// (skipped when out is nil). token, when non-empty, is forwarded verbatim in
// the Authorization header. All failures wrap domain.ErrUpstream.
func (c *Caller) Call(ctx context.Context, method string, params []any, token string, out any) error {
	body, err := json.Marshal(Request{
		Version: "1.1",
		ID:      uuid.NewString(),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.countError(method, "transport")
		return fmt.Errorf("%s %s: %v: %w", c.service, method, err, domain.ErrUpstream)
	}
	defer func() { _ = resp.Body.Close() }()

	metrics.ServiceRequestDuration.WithLabelValues(c.service, method).Observe(time.Since(start).Seconds())

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		c.countError(method, "read_body")
		return fmt.Errorf("%s %s: read body: %v: %w", c.service, method, err, domain.ErrUpstream)
	}

	var rpcResp response
	decodeErr := json.Unmarshal(payload, &rpcResp)

	if rpcResp.Error != nil {
		c.countError(method, "rpc_error")
		c.logger.Warn("upstream rpc error",
			zap.String("service", c.service),
			zap.String("method", method),
			zap.Int("code", rpcResp.Error.Code),
			zap.String("name", rpcResp.Error.Name),
		)
		return fmt.Errorf("%s %s: %w: %w", c.service, method, rpcResp.Error, domain.ErrUpstream)
	}
	if resp.StatusCode != http.StatusOK {
		c.countError(method, "http_status")
		return fmt.Errorf("%s %s: status %d: %w", c.service, method, resp.StatusCode, domain.ErrUpstream)
	}
	if decodeErr != nil {
		c.countError(method, "decode")
		return fmt.Errorf("%s %s: decode response: %v: %w", c.service, method, decodeErr, domain.ErrUpstream)
	}

	if out != nil {
		if len(rpcResp.Result) == 0 {
			c.countError(method, "empty_result")
			return fmt.Errorf("%s %s: empty result: %w", c.service, method, domain.ErrUpstream)
		}
		if err := json.Unmarshal(rpcResp.Result[0], out); err != nil {
			c.countError(method, "decode")
			return fmt.Errorf("%s %s: decode result: %v: %w", c.service, method, err, domain.ErrUpstream)
		}
	}

	metrics.ServiceRequestsTotal.WithLabelValues(c.service, method, "success").Inc()
	return nil
}

func (c *Caller) countError(method, errorType string) {
	metrics.ServiceRequestsTotal.WithLabelValues(c.service, method, "error").Inc()
	metrics.ServiceErrorsTotal.WithLabelValues(c.service, method, errorType).Inc()
}

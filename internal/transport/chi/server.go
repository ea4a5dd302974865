// Package chi wires the legacy JSON-RPC surface onto a chi router.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lgtm-migrator/search-api2/internal/domain"
	"github.com/lgtm-migrator/search-api2/internal/metrics"
	healthuc "github.com/lgtm-migrator/search-api2/internal/usecase/health"
)

// SearchRunner executes legacy method queries against the search backend.
type SearchRunner interface {
	SearchObjects(ctx context.Context, params map[string]any) (*domain.SearchResponse, error)
	SearchTypes(ctx context.Context, params map[string]any) (*domain.SearchResponse, error)
	GetObjects(ctx context.Context, params map[string]any) (*domain.SearchResponse, error)
}

// Converter turns raw search responses into legacy result shapes.
type Converter interface {
	SearchObjects(ctx context.Context, params map[string]any, res *domain.SearchResponse, auth string) (map[string]any, error)
	SearchTypes(ctx context.Context, res *domain.SearchResponse) (map[string]any, error)
	GetObjects(ctx context.Context, params map[string]any, res *domain.SearchResponse, auth string) (map[string]any, error)
}

// HealthChecker runs aggregated component checks.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// Server hosts the legacy JSON-RPC API.
type Server struct {
	runner    SearchRunner
	converter Converter
	health    HealthChecker
	logger    *zap.Logger
}

// NewServer creates the API server.
func NewServer(runner SearchRunner, converter Converter, health HealthChecker, logger *zap.Logger) *Server {
	return &Server{runner: runner, converter: converter, health: health, logger: logger}
}

// Routes registers all handlers on the router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/rpc", s.handleRPC)
	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// rpcRequest is the legacy JSON-RPC 1.1 call envelope. The legacy clients
// send a single params object per call.
type rpcRequest struct {
	Version string           `json:"version"`
	ID      any              `json:"id"`
	Method  string           `json:"method"`
	Params  []map[string]any `json:"params"`
}

func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRPCError(w, nil, http.StatusBadRequest, -32700, "invalid request body: "+err.Error())
		return
	}

	params := map[string]any{}
	if len(req.Params) > 0 && req.Params[0] != nil {
		params = req.Params[0]
	}
	auth := r.Header.Get("Authorization")
	ctx := r.Context()
	method := methodName(req.Method)

	var (
		result map[string]any
		res    *domain.SearchResponse
		err    error
	)
	switch method {
	case "search_objects":
		if res, err = s.runner.SearchObjects(ctx, params); err == nil {
			result, err = s.converter.SearchObjects(ctx, params, res, auth)
		}
	case "search_types":
		if res, err = s.runner.SearchTypes(ctx, params); err == nil {
			result, err = s.converter.SearchTypes(ctx, res)
		}
	case "get_objects":
		if res, err = s.runner.GetObjects(ctx, params); err == nil {
			result, err = s.converter.GetObjects(ctx, params, res, auth)
		}
	default:
		err = fmt.Errorf("%w: %q", domain.ErrUnknownMethod, req.Method)
	}

	if err != nil {
		metrics.ObserveRPC(method, "error")
		s.writeMethodError(w, req.ID, req.Method, err)
		return
	}

	metrics.ObserveRPC(method, "success")
	writeJSON(w, http.StatusOK, map[string]any{
		"version": "1.1",
		"id":      req.ID,
		"result":  []any{result},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())
	status := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, report)
}

// writeMethodError maps a method failure to the legacy error envelope.
func (s *Server) writeMethodError(w http.ResponseWriter, id any, method string, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownMethod):
		writeRPCError(w, id, http.StatusBadRequest, -32601, err.Error())
	case errors.Is(err, domain.ErrUpstream), errors.Is(err, domain.ErrMissingAggregation):
		s.logger.Error("upstream failure",
			zap.String("method", method),
			zap.Error(err),
		)
		writeRPCError(w, id, http.StatusBadGateway, -32002, err.Error())
	default:
		s.logger.Error("conversion failure",
			zap.String("method", method),
			zap.Error(err),
		)
		writeRPCError(w, id, http.StatusInternalServerError, -32000, err.Error())
	}
}

// methodName strips an optional service prefix from a legacy method name,
// e.g. "KBaseSearchEngine.search_objects" -> "search_objects".
func methodName(method string) string {
	if i := strings.LastIndex(method, "."); i >= 0 {
		return method[i+1:]
	}
	return method
}

func writeRPCError(w http.ResponseWriter, id any, status, code int, message string) {
	writeJSON(w, status, map[string]any{
		"version": "1.1",
		"id":      id,
		"error": map[string]any{
			"name":    "JSONRPCError",
			"code":    code,
			"message": message,
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

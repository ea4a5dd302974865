package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsMiddleware_RecordsDurationAndCount(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware())
	r.Post("/rpc", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{}"))
	})

	req := httptest.NewRequest("POST", "/rpc", http.NoBody)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != 200 {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	requestsVal := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("POST", "/rpc", "200"))
	if requestsVal < 1 {
		t.Errorf("expected http_requests_total >= 1, got %f", requestsVal)
	}

	durationCount := testutil.CollectAndCount(httpRequestDuration)
	if durationCount == 0 {
		t.Error("expected http_request_duration_seconds to have observations")
	}
}

func TestMetricsMiddleware_DifferentStatusCodes(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware())

	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/bad", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	tests := []struct {
		path           string
		expectedStatus string
	}{
		{"/ok", "200"},
		{"/bad", "502"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest("GET", tt.path, http.NoBody)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		val := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", tt.path, tt.expectedStatus))
		if val < 1 {
			t.Errorf("expected http_requests_total{path=%q,status=%s} >= 1, got %f",
				tt.path, tt.expectedStatus, val)
		}
	}
}

func TestObserveRPC(t *testing.T) {
	ObserveRPC("search_objects", "success")

	val := testutil.ToFloat64(rpcRequestsTotal.WithLabelValues("search_objects", "success"))
	if val < 1 {
		t.Errorf("expected rpc_requests_total >= 1, got %f", val)
	}
}

package searchproxy

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lgtm-migrator/search-api2/internal/domain"
)

func TestSearchObjects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string         `json:"method"`
			Params map[string]any `json:"params"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Method != "search_objects" {
			t.Errorf("method = %q", req.Method)
		}
		if req.Params["query"] != "ecoli" {
			t.Errorf("params = %v", req.Params)
		}
		_, _ = w.Write([]byte(`{
			"count": 2,
			"search_time": 0.4,
			"hits": [
				{"id": "a", "index": "genome_1", "doc": {"obj_name": "one"}},
				{"id": "b", "index": "genome_1", "doc": {"obj_name": "two"}}
			]
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, nil)
	res, err := c.SearchObjects(context.Background(), map[string]any{"query": "ecoli"})
	if err != nil {
		t.Fatalf("SearchObjects: %v", err)
	}

	if res.Count != 2 || res.SearchTime != 0.4 {
		t.Errorf("count/search_time = %d/%v", res.Count, res.SearchTime)
	}
	if len(res.Hits) != 2 || res.Hits[0].Doc["obj_name"] != "one" {
		t.Errorf("hits = %v", res.Hits)
	}
}

func TestSearchTypes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string `json:"method"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Method != "search_types" {
			t.Errorf("method = %q", req.Method)
		}
		_, _ = w.Write([]byte(`{
			"search_time": 1.2,
			"aggregations": {
				"type_count": {"counts": [{"key": "Genome", "count": 3}]}
			}
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, nil)
	res, err := c.SearchTypes(context.Background(), map[string]any{})
	if err != nil {
		t.Fatalf("SearchTypes: %v", err)
	}

	agg, ok := res.Aggregations[domain.AggTypeCount]
	if !ok || len(agg.Counts) != 1 || agg.Counts[0].Key != "Genome" {
		t.Errorf("aggregations = %v", res.Aggregations)
	}
}

func TestRun_HTTPStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, nil)
	_, err := c.GetObjects(context.Background(), map[string]any{})
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("err = %v, want ErrUpstream", err)
	}
}

func TestRun_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, nil)
	_, err := c.SearchObjects(context.Background(), map[string]any{})
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("err = %v, want ErrUpstream", err)
	}
}

func TestHealthCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("health check method = %q", r.Method)
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	// Any response below 500 counts as alive.
	c := NewClient(srv.URL, 5*time.Second, nil)
	if err := c.HealthCheck(context.Background()); err != nil {
		t.Fatalf("HealthCheck: %v", err)
	}
}

func TestHealthCheck_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, nil)
	if err := c.HealthCheck(context.Background()); err == nil {
		t.Fatal("expected error for 500")
	}
}

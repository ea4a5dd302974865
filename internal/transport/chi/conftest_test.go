package chi

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/lgtm-migrator/search-api2/internal/domain"
	healthuc "github.com/lgtm-migrator/search-api2/internal/usecase/health"
)

// mockRunner implements SearchRunner for tests.
type mockRunner struct {
	res     *domain.SearchResponse
	err     error
	methods []string
	params  []map[string]any
}

func (m *mockRunner) run(method string, params map[string]any) (*domain.SearchResponse, error) {
	m.methods = append(m.methods, method)
	m.params = append(m.params, params)
	if m.err != nil {
		return nil, m.err
	}
	return m.res, nil
}

func (m *mockRunner) SearchObjects(_ context.Context, params map[string]any) (*domain.SearchResponse, error) {
	return m.run("search_objects", params)
}

func (m *mockRunner) SearchTypes(_ context.Context, params map[string]any) (*domain.SearchResponse, error) {
	return m.run("search_types", params)
}

func (m *mockRunner) GetObjects(_ context.Context, params map[string]any) (*domain.SearchResponse, error) {
	return m.run("get_objects", params)
}

// mockConverter implements Converter for tests.
type mockConverter struct {
	result map[string]any
	err    error
	auths  []string
}

func (m *mockConverter) SearchObjects(_ context.Context, _ map[string]any, _ *domain.SearchResponse, auth string) (map[string]any, error) {
	m.auths = append(m.auths, auth)
	return m.result, m.err
}

func (m *mockConverter) SearchTypes(_ context.Context, _ *domain.SearchResponse) (map[string]any, error) {
	return m.result, m.err
}

func (m *mockConverter) GetObjects(_ context.Context, _ map[string]any, _ *domain.SearchResponse, auth string) (map[string]any, error) {
	m.auths = append(m.auths, auth)
	return m.result, m.err
}

// mockHealth implements HealthChecker for tests.
type mockHealth struct {
	report healthuc.Report
}

func (m *mockHealth) Check(context.Context) healthuc.Report { return m.report }

func newTestServer(t *testing.T) (*httptest.Server, *mockRunner, *mockConverter, *mockHealth) {
	t.Helper()

	runner := &mockRunner{res: &domain.SearchResponse{}}
	converter := &mockConverter{result: map[string]any{"total": 0}}
	health := &mockHealth{report: healthuc.Report{
		Status: healthuc.Healthy,
		Checks: map[string]healthuc.CheckResult{"search": healthuc.CheckOK},
	}}

	s := NewServer(runner, converter, health, zap.NewNop())
	r := chi.NewRouter()
	s.Routes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, runner, converter, health
}

// Package convert translates raw search backend responses into the result
// shapes of the legacy search API methods.
package convert

import (
	"context"

	"github.com/lgtm-migrator/search-api2/internal/domain"
)

// Service converts search responses for the legacy API methods. It is
// stateless; every call operates on its own request-scoped data.
type Service struct {
	workspaces      WorkspaceReader
	profiles        ProfileReader
	suffixDelimiter string
}

// New creates a conversion service. suffixDelimiter separates the index name
// from its version suffix in backend index names.
func New(workspaces WorkspaceReader, profiles ProfileReader, suffixDelimiter string) *Service {
	return &Service{
		workspaces:      workspaces,
		profiles:        profiles,
		suffixDelimiter: suffixDelimiter,
	}
}

// SearchObjects converts a search response into the search_objects result
// shape: pagination and sorting rules echoed from the request params, the
// total hit count, the query time, the converted objects, and any requested
// enrichment sections.
func (s *Service) SearchObjects(
	ctx context.Context, params map[string]any, res *domain.SearchResponse, auth string,
) (map[string]any, error) {
	pp := resolvePostProcessing(params)

	objects, err := s.mapObjects(res, pp)
	if err != nil {
		return nil, err
	}

	pagination, ok := params["pagination"].(map[string]any)
	if !ok {
		pagination = map[string]any{}
	}
	sortingRules, ok := params["sorting_rules"].([]any)
	if !ok {
		sortingRules = []any{}
	}

	ret := map[string]any{
		"pagination":    pagination,
		"sorting_rules": sortingRules,
		"total":         res.Count,
		"search_time":   res.SearchTime,
		"objects":       objects,
	}
	if err := s.enrich(ctx, ret, res, pp, auth); err != nil {
		return nil, err
	}
	return ret, nil
}

// SearchTypes converts an aggregation-only response into the search_types
// result shape. A key appearing in several buckets accumulates its counts.
func (s *Service) SearchTypes(_ context.Context, res *domain.SearchResponse) (map[string]any, error) {
	agg, ok := res.Aggregations[domain.AggTypeCount]
	if !ok {
		return nil, domain.ErrMissingAggregation
	}

	counts := make(map[string]int, len(agg.Counts))
	for _, bucket := range agg.Counts {
		counts[bucket.Key] += bucket.Count
	}

	return map[string]any{
		"type_to_count": counts,
		"search_time":   int(res.SearchTime),
	}, nil
}

// GetObjects converts a direct object-retrieval response into the
// get_objects result shape. Same per-object conversion as SearchObjects but
// without pagination, sorting rules, or a total.
func (s *Service) GetObjects(
	ctx context.Context, params map[string]any, res *domain.SearchResponse, auth string,
) (map[string]any, error) {
	pp := resolvePostProcessing(params)

	objects, err := s.mapObjects(res, pp)
	if err != nil {
		return nil, err
	}

	ret := map[string]any{
		"search_time": res.SearchTime,
		"objects":     objects,
	}
	if err := s.enrich(ctx, ret, res, pp, auth); err != nil {
		return nil, err
	}
	return ret, nil
}

// Package domain holds the request-scoped data shapes exchanged between the
// search backend, the conversion layer, and the legacy API surface.
package domain

// SearchResponse is the raw outcome of a query against the search backend.
type SearchResponse struct {
	Hits         []Hit                      `json:"hits"`
	Count        int                        `json:"count"`
	SearchTime   float64                    `json:"search_time"`
	Aggregations map[string]TypeAggregation `json:"aggregations,omitempty"`
}

// Hit is one matched document: an identifier, the index it came from, the
// field-value mapping, and optional highlight snippets per field.
type Hit struct {
	ID        string              `json:"id"`
	Index     string              `json:"index"`
	Doc       map[string]any      `json:"doc"`
	Highlight map[string][]string `json:"highlight,omitempty"`
}

// TypeAggregation is a named bucket collection of per-type counts.
type TypeAggregation struct {
	Counts []Bucket `json:"counts"`
}

// Bucket is a single aggregation bucket.
type Bucket struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// AggTypeCount is the aggregation name carrying type counts.
const AggTypeCount = "type_count"

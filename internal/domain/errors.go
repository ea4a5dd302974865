package domain

import "errors"

// Sentinel errors mapped to RPC error codes at the transport edge.
var (
	// ErrUnknownMethod marks an RPC method outside the legacy surface.
	ErrUnknownMethod = errors.New("unknown method")

	// ErrMissingAggregation marks a type-count response without the
	// expected aggregation section.
	ErrMissingAggregation = errors.New("missing type_count aggregation")

	// ErrUpstream marks a failed call to one of the upstream services.
	ErrUpstream = errors.New("upstream service error")
)

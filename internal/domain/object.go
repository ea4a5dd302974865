package domain

// ObjectRecord is one converted object in the legacy result shape. The
// legacy schema mixes a fixed field set with per-index data and conditional
// sections, so records stay map-backed rather than struct-backed.
type ObjectRecord map[string]any

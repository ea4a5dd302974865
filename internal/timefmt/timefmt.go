// Package timefmt converts the timestamp formats emitted by the workspace
// service into epoch values.
package timefmt

import (
	"fmt"
	"time"
)

// Layouts accepted for workspace moddate values. Newer deployments emit
// RFC3339; older ones use a numeric offset or omit the zone entirely
// (treated as UTC).
var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
}

// EpochSeconds parses an ISO-8601 timestamp into epoch seconds.
func EpochSeconds(value string) (int64, error) {
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.Unix(), nil
		}
	}
	return 0, fmt.Errorf("unparseable timestamp %q", value)
}

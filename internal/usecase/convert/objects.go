package convert

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgtm-migrator/search-api2/internal/domain"
)

// keyMapping lists the search document fields renamed for the legacy API, in
// fixed order. Fields outside this table fall through into the nested data
// sub-object.
var keyMapping = []struct {
	source string
	legacy string
}{
	{"obj_name", "object_name"},
	{"access_group", "workspace_id"},
	{"obj_id", "object_id"},
	{"version", "object_version"},
	{"timestamp", "timestamp"},
	{"obj_type_name", "workspace_type_name"},
	{"creator", "creator"},
}

// legacyKey renames a document field to its legacy name, falling back to the
// field itself when no mapping exists.
func legacyKey(field string) string {
	for _, m := range keyMapping {
		if m.source == field {
			return m.legacy
		}
	}
	return field
}

func isMappedSource(field string) bool {
	for _, m := range keyMapping {
		if m.source == field {
			return true
		}
	}
	return false
}

// mapObjects converts every hit into a legacy object record, preserving hit
// order. A hit with missing fields degrades to null values; it is never
// dropped.
func (s *Service) mapObjects(res *domain.SearchResponse, pp domain.PostProcessing) ([]domain.ObjectRecord, error) {
	records := make([]domain.ObjectRecord, 0, len(res.Hits))
	for _, hit := range res.Hits {
		rec, err := s.mapObject(hit, pp)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *Service) mapObject(hit domain.Hit, pp domain.PostProcessing) (domain.ObjectRecord, error) {
	rec := domain.ObjectRecord{}
	for _, m := range keyMapping {
		rec[m.legacy] = hit.Doc[m.source]
	}

	// Everything outside the rename table is index-specific data.
	data := make(map[string]any)
	for k, v := range hit.Doc {
		if !isMappedSource(k) {
			data[k] = v
		}
	}
	if !pp.Flag(domain.OptSkipData) {
		rec["data"] = data
	}

	rec["id"] = hit.ID

	indexName, indexVersion, err := splitIndexName(hit.Index, s.suffixDelimiter)
	if err != nil {
		return nil, err
	}
	rec["index_name"] = indexName
	rec["index_version"] = indexVersion

	if pp.Flag(domain.OptIncludeHighlight) {
		highlight := make(map[string][]string, len(hit.Highlight))
		for k, v := range hit.Highlight {
			highlight[legacyKey(k)] = v
		}
		rec["highlight"] = highlight
	}

	// The legacy UI requires string values for these two even when the
	// document lacks them.
	rec["object_name"] = stringOrEmpty(rec["object_name"])
	rec["workspace_type_name"] = stringOrEmpty(rec["workspace_type_name"])

	// Genome feature sub-objects surface under their own type name instead
	// of the parent object's.
	if _, ok := hit.Doc["genome_feature_type"]; ok {
		rec["workspace_type_name"] = "GenomeFeature"
	}

	return rec, nil
}

// stringOrEmpty forces a value to a string, mapping absent or non-string
// values to "".
func stringOrEmpty(v any) string {
	s, _ := v.(string)
	return s
}

// splitIndexName splits a backend index name into its base name and numeric
// version suffix. A missing or empty suffix means version 0; a non-numeric
// suffix is an upstream defect and fails the conversion.
func splitIndexName(index, delimiter string) (string, int, error) {
	pieces := strings.Split(index, delimiter)
	if len(pieces) != 2 || pieces[1] == "" {
		return pieces[0], 0, nil
	}
	version, err := strconv.Atoi(pieces[1])
	if err != nil {
		return "", 0, fmt.Errorf("index %q: non-numeric version suffix: %w", index, err)
	}
	return pieces[0], version, nil
}

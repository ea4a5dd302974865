package searchapi2

// ObjectRecord is one converted object. The fixed legacy fields are always
// present; "data" and "highlight" appear depending on post-processing flags.
type ObjectRecord map[string]any

// SearchObjectsResult is the search_objects method result.
type SearchObjectsResult struct {
	Pagination   map[string]any `json:"pagination"`
	SortingRules []any          `json:"sorting_rules"`
	Total        int            `json:"total"`
	SearchTime   float64        `json:"search_time"`
	Objects      []ObjectRecord `json:"objects"`

	// Present only when the corresponding post-processing flag was set.
	AccessGroupsInfo         map[string][]any `json:"access_groups_info,omitempty"`
	AccessGroupNarrativeInfo map[string][]any `json:"access_group_narrative_info,omitempty"`
}

// SearchTypesResult is the search_types method result.
type SearchTypesResult struct {
	TypeToCount map[string]int `json:"type_to_count"`
	SearchTime  int            `json:"search_time"`
}

// GetObjectsResult is the get_objects method result.
type GetObjectsResult struct {
	SearchTime float64        `json:"search_time"`
	Objects    []ObjectRecord `json:"objects"`

	AccessGroupsInfo         map[string][]any `json:"access_groups_info,omitempty"`
	AccessGroupNarrativeInfo map[string][]any `json:"access_group_narrative_info,omitempty"`
}

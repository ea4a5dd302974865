package domain

// Option keys understood by the post-processing resolver. Values follow the
// legacy convention of integer flags where 1 means enabled.
const (
	OptIDsOnly            = "ids_only"
	OptIncludeHighlight   = "include_highlight"
	OptSkipInfo           = "skip_info"
	OptSkipData           = "skip_data"
	OptAddNarrativeInfo   = "add_narrative_info"
	OptAddAccessGroupInfo = "add_access_group_info"
)

// PostProcessing holds the caller-supplied output options. Unknown keys are
// carried as-is so flags added upstream pass through untouched.
type PostProcessing map[string]any

// Flag reports whether the named option is set to the integer 1. JSON
// decoding yields float64 for numbers, so both widths are accepted.
func (pp PostProcessing) Flag(key string) bool {
	switch v := pp[key].(type) {
	case int:
		return v == 1
	case int64:
		return v == 1
	case float64:
		return v == 1
	}
	return false
}

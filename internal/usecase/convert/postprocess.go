package convert

import "github.com/lgtm-migrator/search-api2/internal/domain"

// resolvePostProcessing normalizes the caller-supplied post-processing
// options. ids_only is a shortcut that forces both skips on and highlighting
// off, regardless of any explicitly passed values for those keys. The
// caller's map is copied, never mutated.
func resolvePostProcessing(params map[string]any) domain.PostProcessing {
	pp := domain.PostProcessing{}
	if raw, ok := params["post_processing"].(map[string]any); ok {
		for k, v := range raw {
			pp[k] = v
		}
	}
	if pp.Flag(domain.OptIDsOnly) {
		pp[domain.OptIncludeHighlight] = 0
		pp[domain.OptSkipInfo] = 1
		pp[domain.OptSkipData] = 1
	}
	return pp
}

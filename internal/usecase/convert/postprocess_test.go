package convert

import (
	"testing"

	"github.com/lgtm-migrator/search-api2/internal/domain"
)

func TestResolvePostProcessing_Absent(t *testing.T) {
	pp := resolvePostProcessing(map[string]any{})

	if len(pp) != 0 {
		t.Fatalf("expected empty options, got %v", pp)
	}
	if pp.Flag(domain.OptSkipData) || pp.Flag(domain.OptIncludeHighlight) {
		t.Error("no flag should be set for absent options")
	}
}

func TestResolvePostProcessing_IDsOnlyForcesSkips(t *testing.T) {
	params := map[string]any{
		"post_processing": map[string]any{
			"ids_only":          1,
			"include_highlight": 1,
			"skip_info":         0,
			"skip_data":         0,
		},
	}

	pp := resolvePostProcessing(params)

	if pp.Flag(domain.OptIncludeHighlight) {
		t.Error("ids_only must force include_highlight off")
	}
	if !pp.Flag(domain.OptSkipInfo) {
		t.Error("ids_only must force skip_info on")
	}
	if !pp.Flag(domain.OptSkipData) {
		t.Error("ids_only must force skip_data on")
	}
}

func TestResolvePostProcessing_IDsOnlyFromJSONNumber(t *testing.T) {
	// JSON decoding produces float64, not int.
	params := map[string]any{
		"post_processing": map[string]any{"ids_only": float64(1)},
	}

	pp := resolvePostProcessing(params)

	if !pp.Flag(domain.OptSkipData) {
		t.Error("float64(1) ids_only must trigger the shortcut")
	}
}

func TestResolvePostProcessing_IDsOnlyZeroIsNoOp(t *testing.T) {
	params := map[string]any{
		"post_processing": map[string]any{
			"ids_only":          0,
			"include_highlight": 1,
		},
	}

	pp := resolvePostProcessing(params)

	if !pp.Flag(domain.OptIncludeHighlight) {
		t.Error("ids_only=0 must not touch include_highlight")
	}
	if pp.Flag(domain.OptSkipData) {
		t.Error("ids_only=0 must not force skip_data")
	}
}

func TestResolvePostProcessing_UnknownKeysPassThrough(t *testing.T) {
	params := map[string]any{
		"post_processing": map[string]any{"future_flag": "x"},
	}

	pp := resolvePostProcessing(params)

	if pp["future_flag"] != "x" {
		t.Errorf("unknown key lost: %v", pp)
	}
}

func TestResolvePostProcessing_DoesNotMutateCaller(t *testing.T) {
	raw := map[string]any{"ids_only": 1}
	params := map[string]any{"post_processing": raw}

	_ = resolvePostProcessing(params)

	if _, ok := raw["skip_data"]; ok {
		t.Error("caller's options map was mutated")
	}
}

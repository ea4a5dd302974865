package convert

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/lgtm-migrator/search-api2/internal/domain"
	"github.com/lgtm-migrator/search-api2/internal/timefmt"
)

// enrich attaches workspace and narrative metadata to the result when the
// post-processing flags ask for either. Without the flags it leaves the
// result untouched and issues no lookups.
func (s *Service) enrich(
	ctx context.Context, ret map[string]any, res *domain.SearchResponse,
	pp domain.PostProcessing, auth string,
) error {
	wantNarratives := pp.Flag(domain.OptAddNarrativeInfo)
	wantWorkspaces := pp.Flag(domain.OptAddAccessGroupInfo)
	if !wantNarratives && !wantWorkspaces {
		return nil
	}

	wsInfos, narrInfos, err := s.fetchAccessGroupInfo(ctx, res, auth)
	if err != nil {
		return err
	}
	if wantNarratives {
		ret["access_group_narrative_info"] = narrInfos
	}
	if wantWorkspaces {
		ret["access_groups_info"] = wsInfos
	}
	return nil
}

// fetchAccessGroupInfo resolves workspace info for every distinct access
// group seen across the hits, then issues one bulk profile fetch for the
// distinct owners. Both returned maps are keyed by stringified workspace id.
// Lookup failures propagate as-is; there is no partial-result mode.
func (s *Service) fetchAccessGroupInfo(
	ctx context.Context, res *domain.SearchResponse, auth string,
) (map[string]domain.WorkspaceInfo, map[string]domain.NarrativeInfo, error) {
	workspaceIDs := make(map[int]struct{})
	for _, hit := range res.Hits {
		if id, ok := accessGroupID(hit.Doc); ok {
			workspaceIDs[id] = struct{}{}
		}
	}

	wsInfos := make(map[string]domain.WorkspaceInfo)
	narrInfos := make(map[string]domain.NarrativeInfo)
	if len(workspaceIDs) == 0 {
		return wsInfos, narrInfos, nil
	}

	// One lookup per workspace; the workspace service has no bulk call.
	owners := make(map[string]struct{})
	for _, id := range sortedIDs(workspaceIDs) {
		info, err := s.workspaces.WorkspaceInfo(ctx, id, auth)
		if err != nil {
			return nil, nil, fmt.Errorf("get workspace info %d: %w", id, err)
		}
		// Tuples too short to carry an owner are treated as absent.
		if len(info) < 3 {
			continue
		}
		owners[info.Owner()] = struct{}{}
		wsInfos[strconv.Itoa(id)] = info
	}

	profiles, err := s.profiles.UserProfiles(ctx, sortedNames(owners), auth)
	if err != nil {
		return nil, nil, fmt.Errorf("get user profiles: %w", err)
	}
	profileByUser := make(map[string]domain.UserProfile, len(profiles))
	for _, p := range profiles {
		if p != nil {
			profileByUser[p.Username()] = p
		}
	}

	for key, info := range wsInfos {
		meta := info.Metadata()
		narrative, ok := meta["narrative"]
		if !ok {
			continue
		}
		objectID, err := narrativeObjectID(narrative)
		if err != nil {
			return nil, nil, fmt.Errorf("workspace %s: %w", key, err)
		}
		savedAt, err := timefmt.EpochSeconds(info.Moddate())
		if err != nil {
			return nil, nil, fmt.Errorf("workspace %s: %w", key, err)
		}

		owner := info.Owner()
		displayName := owner
		if p, ok := profileByUser[owner]; ok && p.Realname() != "" {
			displayName = p.Realname()
		}
		name, _ := meta["narrative_nice_name"].(string)

		narrInfos[key] = domain.NewNarrativeInfo(name, objectID, savedAt*1000, owner, displayName)
	}

	return wsInfos, narrInfos, nil
}

// accessGroupID extracts the numeric access group from a document. JSON
// numbers decode as float64; documents built in-process may carry ints.
func accessGroupID(doc map[string]any) (int, bool) {
	switch v := doc["access_group"].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

// narrativeObjectID parses the narrative object id from workspace metadata,
// which stores it as text. A non-numeric value fails loudly.
func narrativeObjectID(v any) (int, error) {
	switch n := v.(type) {
	case string:
		id, err := strconv.Atoi(n)
		if err != nil {
			return 0, fmt.Errorf("non-numeric narrative object id %q", n)
		}
		return id, nil
	case int:
		return n, nil
	case float64:
		return int(n), nil
	}
	return 0, fmt.Errorf("non-numeric narrative object id %v", v)
}

func sortedIDs(set map[int]struct{}) []int {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func sortedNames(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

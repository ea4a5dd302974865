package convert

import (
	"context"
	"testing"

	"github.com/lgtm-migrator/search-api2/internal/domain"
)

// mockWorkspaces implements WorkspaceReader for tests.
type mockWorkspaces struct {
	infos map[int]domain.WorkspaceInfo
	err   error
	calls []int
}

func (m *mockWorkspaces) WorkspaceInfo(_ context.Context, id int, _ string) (domain.WorkspaceInfo, error) {
	m.calls = append(m.calls, id)
	if m.err != nil {
		return nil, m.err
	}
	return m.infos[id], nil
}

// mockProfiles implements ProfileReader for tests.
type mockProfiles struct {
	profiles []domain.UserProfile
	err      error
	calls    [][]string
}

func (m *mockProfiles) UserProfiles(_ context.Context, usernames []string, _ string) ([]domain.UserProfile, error) {
	m.calls = append(m.calls, usernames)
	if m.err != nil {
		return nil, m.err
	}
	return m.profiles, nil
}

func newTestService(t *testing.T, delimiter string) (*Service, *mockWorkspaces, *mockProfiles) {
	t.Helper()
	ws := &mockWorkspaces{infos: map[int]domain.WorkspaceInfo{}}
	ps := &mockProfiles{}
	return New(ws, ps, delimiter), ws, ps
}

// wsInfo builds a full 9-slot workspace tuple.
func wsInfo(id int, name, owner, moddate string, meta map[string]any) domain.WorkspaceInfo {
	return domain.WorkspaceInfo{id, name, owner, moddate, 0, "a", "n", "unlocked", meta}
}

func profileDoc(username, realname string) domain.UserProfile {
	return domain.UserProfile{"user": map[string]any{"username": username, "realname": realname}}
}

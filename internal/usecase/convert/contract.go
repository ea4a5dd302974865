package convert

import (
	"context"

	"github.com/lgtm-migrator/search-api2/internal/domain"
)

// WorkspaceReader fetches workspace metadata from the workspace service.
type WorkspaceReader interface {
	WorkspaceInfo(ctx context.Context, workspaceID int, token string) (domain.WorkspaceInfo, error)
}

// ProfileReader fetches user profiles in bulk from the user-profile service.
// The returned slice preserves request order; entries for unknown users are
// nil.
type ProfileReader interface {
	UserProfiles(ctx context.Context, usernames []string, token string) ([]domain.UserProfile, error)
}

// Package userprofile is the JSON-RPC client for the user-profile service.
package userprofile

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/lgtm-migrator/search-api2/internal/domain"
	"github.com/lgtm-migrator/search-api2/internal/transport/rpc"
)

// Client fetches user profiles in bulk. Implements convert.ProfileReader.
type Client struct {
	caller *rpc.Caller
}

// NewClient creates a user-profile service client.
func NewClient(url string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{caller: rpc.NewCaller(&rpc.Config{
		Service: "user_profile",
		URL:     url,
		Timeout: timeout,
		Logger:  logger,
	})}
}

// UserProfiles fetches profiles for the given usernames in one call. The
// service returns null for unknown users; those entries stay nil.
func (c *Client) UserProfiles(ctx context.Context, usernames []string, token string) ([]domain.UserProfile, error) {
	var profiles []domain.UserProfile
	params := []any{usernames}
	if err := c.caller.Call(ctx, "UserProfile.get_user_profile", params, token, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// HealthCheck verifies the service responds to its version method.
func (c *Client) HealthCheck(ctx context.Context) error {
	var ver string
	return c.caller.Call(ctx, "UserProfile.ver", []any{}, "", &ver)
}

// Package workspace is the JSON-RPC client for the workspace service.
package workspace

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/lgtm-migrator/search-api2/internal/domain"
	"github.com/lgtm-migrator/search-api2/internal/transport/rpc"
)

// Client fetches workspace metadata. Implements convert.WorkspaceReader.
type Client struct {
	caller *rpc.Caller
}

// NewClient creates a workspace service client.
func NewClient(url string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{caller: rpc.NewCaller(&rpc.Config{
		Service: "workspace",
		URL:     url,
		Timeout: timeout,
		Logger:  logger,
	})}
}

// WorkspaceInfo fetches the positional info tuple for one workspace, passing
// the caller's auth token through.
func (c *Client) WorkspaceInfo(ctx context.Context, workspaceID int, token string) (domain.WorkspaceInfo, error) {
	var info domain.WorkspaceInfo
	params := []any{map[string]any{"id": workspaceID}}
	if err := c.caller.Call(ctx, "Workspace.get_workspace_info", params, token, &info); err != nil {
		return nil, err
	}
	return info, nil
}

// HealthCheck verifies the service responds to its version method.
func (c *Client) HealthCheck(ctx context.Context) error {
	var ver string
	return c.caller.Call(ctx, "Workspace.ver", []any{}, "", &ver)
}

package telegram

import (
	"context"
	"net/url"
)

// GetMe returns information about the current user.
func (c *BasicClient) GetMe(ctx context.Context) (any, error) {
	return c.get(ctx, "/me", nil)
}

// GetUserStatus returns the online status of a user.
func (c *BasicClient) GetUserStatus(ctx context.Context, req *GetUserStatusRequest) (any, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	return c.get(ctx, "/users/"+url.PathEscape(req.UserID.String())+"/status", nil)
}

// ResolveUsername resolves a username to entity information.
func (c *BasicClient) ResolveUsername(ctx context.Context, req *ResolveUsernameRequest) (any, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	return c.get(ctx, "/resolve/"+url.PathEscape(req.Username), nil)
}

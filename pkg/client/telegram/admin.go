package telegram

import (
	"context"
	"net/url"
)

// GetAdmins returns the administrators of a chat.
func (c *BasicClient) GetAdmins(ctx context.Context, req *GetAdminsRequest) (any, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	return c.get(ctx, "/chats/"+url.PathEscape(req.ChatID.String())+"/admins", nil)
}

// PromoteAdmin promotes a user to admin, optionally with a custom title.
func (c *BasicClient) PromoteAdmin(ctx context.Context, req *PromoteAdminRequest) (any, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	return c.post(ctx, "/admin/promote", req)
}

// BanUser bans a user from a chat, optionally until a unix timestamp.
func (c *BasicClient) BanUser(ctx context.Context, req *BanUserRequest) (any, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	return c.post(ctx, "/admin/ban", req)
}

// UnbanUser lifts a ban from a chat.
func (c *BasicClient) UnbanUser(ctx context.Context, req *UnbanUserRequest) (any, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	return c.post(ctx, "/admin/unban", req)
}

package telegram

import (
	"context"
	"net/url"
)

// GetInviteLink returns the invite link for a chat.
func (c *BasicClient) GetInviteLink(ctx context.Context, req *GetInviteLinkRequest) (any, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	return c.get(ctx, "/chats/"+url.PathEscape(req.ChatID.String())+"/invite-link", nil)
}

package telegram

import (
	"context"
	"net/url"
)

// MuteChat mutes notifications for a chat, optionally until a unix
// timestamp; with a zero MuteUntil the chat stays muted until unmuted.
func (c *BasicClient) MuteChat(ctx context.Context, req *MuteChatRequest) (any, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	payload := struct {
		MuteUntil int64 `json:"mute_until,omitempty"`
	}{
		MuteUntil: req.MuteUntil,
	}

	return c.post(ctx, "/chats/"+url.PathEscape(req.ChatID.String())+"/mute", payload)
}

// UnmuteChat restores notifications for a chat.
func (c *BasicClient) UnmuteChat(ctx context.Context, req *UnmuteChatRequest) (any, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	return c.post(ctx, "/chats/"+url.PathEscape(req.ChatID.String())+"/unmute", nil)
}

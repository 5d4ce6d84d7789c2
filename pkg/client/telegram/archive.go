package telegram

import (
	"context"
	"net/url"
)

// ArchiveChat moves a chat into the archive folder.
func (c *BasicClient) ArchiveChat(ctx context.Context, req *ArchiveChatRequest) (any, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	return c.post(ctx, "/chats/"+url.PathEscape(req.ChatID.String())+"/archive", nil)
}

// UnarchiveChat moves a chat back out of the archive folder.
func (c *BasicClient) UnarchiveChat(ctx context.Context, req *UnarchiveChatRequest) (any, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	return c.post(ctx, "/chats/"+url.PathEscape(req.ChatID.String())+"/unarchive", nil)
}

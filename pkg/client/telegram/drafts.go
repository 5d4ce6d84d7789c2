package telegram

import (
	"context"
	"net/url"
)

// SaveDraft saves a draft message to a chat.
func (c *BasicClient) SaveDraft(ctx context.Context, req *SaveDraftRequest) (any, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	return c.post(ctx, "/drafts/save", req)
}

// ClearDraft clears the draft from a chat.
func (c *BasicClient) ClearDraft(ctx context.Context, req *ClearDraftRequest) (any, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	return c.delete(ctx, "/drafts/"+url.PathEscape(req.ChatID.String()), nil)
}

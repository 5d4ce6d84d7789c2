package telegram

import (
	"context"
	"net/url"
	"strconv"
)

const defaultSearchLimit = 20

// GetMessages returns paginated messages from a chat.
func (c *BasicClient) GetMessages(ctx context.Context, req *GetMessagesRequest) (any, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(intOrDefault(req.Page, defaultPage)))
	query.Set("page_size", strconv.Itoa(intOrDefault(req.PageSize, defaultPageSize)))

	return c.get(ctx, "/chats/"+url.PathEscape(req.ChatID.String())+"/messages", query)
}

// SendMessage sends a message to a chat.
func (c *BasicClient) SendMessage(ctx context.Context, req *SendMessageRequest) (any, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	return c.post(ctx, "/messages/send", req)
}

// EditMessage replaces the text of an existing message.
func (c *BasicClient) EditMessage(ctx context.Context, req *EditMessageRequest) (any, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	return c.put(ctx, "/messages/edit", req)
}

// DeleteMessage deletes a message. Revoke defaults to true, removing the
// message for everyone rather than just the current user.
func (c *BasicClient) DeleteMessage(ctx context.Context, req *DeleteMessageRequest) (any, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	revoke := true
	if req.Revoke != nil {
		revoke = *req.Revoke
	}

	payload := struct {
		ChatID    ChatID `json:"chat_id"`
		MessageID int64  `json:"message_id"`
		Revoke    bool   `json:"revoke"`
	}{
		ChatID:    req.ChatID,
		MessageID: req.MessageID,
		Revoke:    revoke,
	}

	return c.delete(ctx, "/messages/delete", payload)
}

// ForwardMessage forwards a message from one chat to another.
func (c *BasicClient) ForwardMessage(ctx context.Context, req *ForwardMessageRequest) (any, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	return c.post(ctx, "/messages/forward", req)
}

// SearchMessages searches for messages in a chat, optionally restricted to a
// single sender.
func (c *BasicClient) SearchMessages(ctx context.Context, req *SearchMessagesRequest) (any, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	payload := *req
	payload.Limit = intOrDefault(req.Limit, defaultSearchLimit)

	return c.post(ctx, "/messages/search", payload)
}

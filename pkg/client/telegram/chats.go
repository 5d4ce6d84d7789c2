package telegram

import (
	"context"
	"net/url"
	"strconv"
)

const (
	defaultPage      = 1
	defaultPageSize  = 20
	defaultChatLimit = 50
)

// GetChats returns a paginated list of chats. A nil request uses the API's
// default page and page size.
func (c *BasicClient) GetChats(ctx context.Context, req *GetChatsRequest) (any, error) {
	if req == nil {
		req = &GetChatsRequest{}
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(intOrDefault(req.Page, defaultPage)))
	query.Set("page_size", strconv.Itoa(intOrDefault(req.PageSize, defaultPageSize)))

	return c.get(ctx, "/chats", query)
}

// ListChats returns a filtered list of chats with metadata.
func (c *BasicClient) ListChats(ctx context.Context, req *ListChatsRequest) (any, error) {
	if req == nil {
		req = &ListChatsRequest{}
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(intOrDefault(req.Limit, defaultChatLimit)))
	query.Set("archived", strconv.FormatBool(req.Archived))
	query.Set("unread_only", strconv.FormatBool(req.UnreadOnly))
	if req.ChatType != "" {
		query.Set("chat_type", req.ChatType)
	}

	return c.get(ctx, "/chats/list", query)
}

// GetChat returns detailed information about a single chat.
func (c *BasicClient) GetChat(ctx context.Context, req *GetChatRequest) (any, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	return c.get(ctx, "/chats/"+url.PathEscape(req.ChatID.String()), nil)
}

// LeaveChat leaves a group or channel.
func (c *BasicClient) LeaveChat(ctx context.Context, req *LeaveChatRequest) (any, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	return c.post(ctx, "/chats/"+url.PathEscape(req.ChatID.String())+"/leave", nil)
}

func intOrDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

package telegram

import (
	"context"
	"net/url"
	"strconv"
)

const defaultParticipantLimit = 100

// CreateGroup creates a new group chat with the given members.
func (c *BasicClient) CreateGroup(ctx context.Context, req *CreateGroupRequest) (any, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	return c.post(ctx, "/groups", req)
}

// InviteToGroup invites users to a group or channel.
func (c *BasicClient) InviteToGroup(ctx context.Context, req *InviteToGroupRequest) (any, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	return c.post(ctx, "/groups/invite", req)
}

// GetParticipants returns participants of a group or channel.
func (c *BasicClient) GetParticipants(ctx context.Context, req *GetParticipantsRequest) (any, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(intOrDefault(req.Limit, defaultParticipantLimit)))
	query.Set("offset", strconv.Itoa(req.Offset))

	return c.get(ctx, "/chats/"+url.PathEscape(req.ChatID.String())+"/participants", query)
}

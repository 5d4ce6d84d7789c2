package telegram

import (
	"context"
	"net/url"
	"strconv"
)

const defaultContactLimit = 10

// ListContacts returns all contacts.
func (c *BasicClient) ListContacts(ctx context.Context) (any, error) {
	return c.get(ctx, "/contacts", nil)
}

// SearchContacts searches contacts by name or username.
func (c *BasicClient) SearchContacts(ctx context.Context, req *SearchContactsRequest) (any, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("query", req.Query)
	query.Set("limit", strconv.Itoa(intOrDefault(req.Limit, defaultContactLimit)))

	return c.get(ctx, "/contacts/search", query)
}

// AddContact adds a new contact by phone number.
func (c *BasicClient) AddContact(ctx context.Context, req *AddContactRequest) (any, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	return c.post(ctx, "/contacts", req)
}

// DeleteContact removes a contact.
func (c *BasicClient) DeleteContact(ctx context.Context, req *DeleteContactRequest) (any, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	return c.delete(ctx, "/contacts/"+url.PathEscape(req.UserID.String()), nil)
}

package telegram

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"
)

// Client defines the operations exposed by the Telegram HTTP API.
type Client interface {
	// Health check.
	Health(ctx context.Context) (any, error)

	// Chat operations.
	GetChats(ctx context.Context, req *GetChatsRequest) (any, error)
	ListChats(ctx context.Context, req *ListChatsRequest) (any, error)
	GetChat(ctx context.Context, req *GetChatRequest) (any, error)

	// Message operations.
	GetMessages(ctx context.Context, req *GetMessagesRequest) (any, error)
	SendMessage(ctx context.Context, req *SendMessageRequest) (any, error)
	EditMessage(ctx context.Context, req *EditMessageRequest) (any, error)
	DeleteMessage(ctx context.Context, req *DeleteMessageRequest) (any, error)
	ForwardMessage(ctx context.Context, req *ForwardMessageRequest) (any, error)
	SearchMessages(ctx context.Context, req *SearchMessagesRequest) (any, error)

	// Contact operations.
	ListContacts(ctx context.Context) (any, error)
	SearchContacts(ctx context.Context, req *SearchContactsRequest) (any, error)
	AddContact(ctx context.Context, req *AddContactRequest) (any, error)
	DeleteContact(ctx context.Context, req *DeleteContactRequest) (any, error)

	// User operations.
	GetMe(ctx context.Context) (any, error)
	GetUserStatus(ctx context.Context, req *GetUserStatusRequest) (any, error)
	ResolveUsername(ctx context.Context, req *ResolveUsernameRequest) (any, error)

	// Group operations.
	CreateGroup(ctx context.Context, req *CreateGroupRequest) (any, error)
	InviteToGroup(ctx context.Context, req *InviteToGroupRequest) (any, error)
	LeaveChat(ctx context.Context, req *LeaveChatRequest) (any, error)
	GetParticipants(ctx context.Context, req *GetParticipantsRequest) (any, error)

	// Admin operations.
	GetAdmins(ctx context.Context, req *GetAdminsRequest) (any, error)
	PromoteAdmin(ctx context.Context, req *PromoteAdminRequest) (any, error)
	BanUser(ctx context.Context, req *BanUserRequest) (any, error)
	UnbanUser(ctx context.Context, req *UnbanUserRequest) (any, error)

	// Channel operations.
	GetInviteLink(ctx context.Context, req *GetInviteLinkRequest) (any, error)

	// Notification operations.
	MuteChat(ctx context.Context, req *MuteChatRequest) (any, error)
	UnmuteChat(ctx context.Context, req *UnmuteChatRequest) (any, error)

	// Archive operations.
	ArchiveChat(ctx context.Context, req *ArchiveChatRequest) (any, error)
	UnarchiveChat(ctx context.Context, req *UnarchiveChatRequest) (any, error)

	// Draft operations.
	SaveDraft(ctx context.Context, req *SaveDraftRequest) (any, error)
	ClearDraft(ctx context.Context, req *ClearDraftRequest) (any, error)
}

// BasicClient talks to the Telegram HTTP API over a single http.Client.
// Responses are unwrapped from the API's {success,data,error} envelope and
// returned as plain decoded values; the shape of each result is defined by
// the remote service, not by this client.
type BasicClient struct {
	client *http.Client
	logger *slog.Logger
	cfg    *Config

	closed uint32
}

// NewBasicClient creates a client against cfg.BaseURL. A nil httpClient gets
// a fresh http.Client bound to cfg.Timeout and owned by the returned client.
func NewBasicClient(httpClient *http.Client, cfg *Config, log *slog.Logger) *BasicClient {
	cfg = cfg.withDefaults()

	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &BasicClient{
		client: httpClient,
		logger: log,
		cfg:    cfg,
	}
}

// Close releases idle connections held by the underlying http.Client.
// Safe to call multiple times; only the first call does any work.
func (c *BasicClient) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closed, 0, 1) {
		return nil
	}
	c.client.CloseIdleConnections()
	return nil
}

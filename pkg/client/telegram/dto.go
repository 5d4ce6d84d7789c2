package telegram

import (
	"context"
	"encoding/json"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ChatID identifies a chat by numeric ID or @username. Numeric values are
// serialized as JSON numbers, anything else as a string, matching what the
// API expects for peer references.
type ChatID string

func (id ChatID) MarshalJSON() ([]byte, error) {
	return marshalFlexibleID(string(id))
}

func (id ChatID) String() string { return string(id) }

// UserID identifies a user by numeric ID or @username, with the same
// serialization rules as ChatID.
type UserID string

func (id UserID) MarshalJSON() ([]byte, error) {
	return marshalFlexibleID(string(id))
}

func (id UserID) String() string { return string(id) }

func marshalFlexibleID(id string) ([]byte, error) {
	if n, err := strconv.ParseInt(id, 10, 64); err == nil {
		return strconv.AppendInt(nil, n, 10), nil
	}
	return json.Marshal(id)
}

// Chat operations.
type (
	GetChatsRequest struct {
		Page     int `json:"page"`
		PageSize int `json:"page_size"`
	}

	ListChatsRequest struct {
		Limit      int    `json:"limit"`
		ChatType   string `json:"chat_type,omitempty"`
		Archived   bool   `json:"archived"`
		UnreadOnly bool   `json:"unread_only"`
	}

	GetChatRequest struct {
		ChatID ChatID `json:"chat_id"`
	}
)

// Message operations. Optional fields are dropped from the outgoing payload
// when left at their zero value; the API treats a missing key and an absent
// option the same way, but rejects explicit nulls on some endpoints.
type (
	GetMessagesRequest struct {
		ChatID   ChatID `json:"chat_id"`
		Page     int    `json:"page"`
		PageSize int    `json:"page_size"`
	}

	SendMessageRequest struct {
		ChatID    ChatID `json:"chat_id"`
		Message   string `json:"message"`
		ReplyTo   int64  `json:"reply_to,omitempty"`
		ParseMode string `json:"parse_mode,omitempty"`
	}

	EditMessageRequest struct {
		ChatID    ChatID `json:"chat_id"`
		MessageID int64  `json:"message_id"`
		NewText   string `json:"new_text"`
	}

	DeleteMessageRequest struct {
		ChatID    ChatID `json:"chat_id"`
		MessageID int64  `json:"message_id"`
		// Revoke deletes the message for all participants. Defaults to true
		// when nil.
		Revoke *bool `json:"revoke,omitempty"`
	}

	ForwardMessageRequest struct {
		FromChatID ChatID `json:"from_chat_id"`
		ToChatID   ChatID `json:"to_chat_id"`
		MessageID  int64  `json:"message_id"`
	}

	SearchMessagesRequest struct {
		ChatID   ChatID `json:"chat_id"`
		Query    string `json:"query"`
		Limit    int    `json:"limit"`
		FromUser UserID `json:"from_user,omitempty"`
	}
)

// Contact operations.
type (
	SearchContactsRequest struct {
		Query string `json:"query"`
		Limit int    `json:"limit"`
	}

	AddContactRequest struct {
		Phone     string `json:"phone"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name,omitempty"`
	}

	DeleteContactRequest struct {
		UserID UserID `json:"user_id"`
	}
)

// User operations.
type (
	GetUserStatusRequest struct {
		UserID UserID `json:"user_id"`
	}

	ResolveUsernameRequest struct {
		Username string `json:"username"`
	}
)

// Group operations.
type (
	CreateGroupRequest struct {
		Title string   `json:"title"`
		Users []UserID `json:"users"`
	}

	InviteToGroupRequest struct {
		ChatID  ChatID   `json:"chat_id"`
		UserIDs []UserID `json:"user_ids"`
	}

	LeaveChatRequest struct {
		ChatID ChatID `json:"chat_id"`
	}

	GetParticipantsRequest struct {
		ChatID ChatID `json:"chat_id"`
		Limit  int    `json:"limit"`
		Offset int    `json:"offset"`
	}
)

// Admin operations.
type (
	GetAdminsRequest struct {
		ChatID ChatID `json:"chat_id"`
	}

	PromoteAdminRequest struct {
		ChatID ChatID `json:"chat_id"`
		UserID UserID `json:"user_id"`
		Title  string `json:"title,omitempty"`
	}

	BanUserRequest struct {
		ChatID ChatID `json:"chat_id"`
		UserID UserID `json:"user_id"`
		// UntilDate is a unix timestamp; zero bans indefinitely.
		UntilDate int64 `json:"until_date,omitempty"`
	}

	UnbanUserRequest struct {
		ChatID ChatID `json:"chat_id"`
		UserID UserID `json:"user_id"`
	}
)

// Channel, notification and archive operations.
type (
	GetInviteLinkRequest struct {
		ChatID ChatID `json:"chat_id"`
	}

	MuteChatRequest struct {
		ChatID ChatID `json:"chat_id"`
		// MuteUntil is a unix timestamp; zero mutes until unmuted.
		MuteUntil int64 `json:"mute_until,omitempty"`
	}

	UnmuteChatRequest struct {
		ChatID ChatID `json:"chat_id"`
	}

	ArchiveChatRequest struct {
		ChatID ChatID `json:"chat_id"`
	}

	UnarchiveChatRequest struct {
		ChatID ChatID `json:"chat_id"`
	}
)

// Draft operations.
type (
	SaveDraftRequest struct {
		ChatID  ChatID `json:"chat_id"`
		Message string `json:"message"`
		ReplyTo int64  `json:"reply_to,omitempty"`
	}

	ClearDraftRequest struct {
		ChatID ChatID `json:"chat_id"`
	}
)

func (r *GetChatRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ChatID, validation.Required),
	)
}

func (r *GetMessagesRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ChatID, validation.Required),
	)
}

func (r *SendMessageRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ChatID, validation.Required),
		validation.Field(&r.Message, validation.Required),
	)
}

func (r *EditMessageRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ChatID, validation.Required),
		validation.Field(&r.MessageID, validation.Required),
		validation.Field(&r.NewText, validation.Required),
	)
}

func (r *DeleteMessageRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ChatID, validation.Required),
		validation.Field(&r.MessageID, validation.Required),
	)
}

func (r *ForwardMessageRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.FromChatID, validation.Required),
		validation.Field(&r.ToChatID, validation.Required),
		validation.Field(&r.MessageID, validation.Required),
	)
}

func (r *SearchMessagesRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ChatID, validation.Required),
		validation.Field(&r.Query, validation.Required),
	)
}

func (r *SearchContactsRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Query, validation.Required),
	)
}

func (r *AddContactRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Phone, validation.Required),
		validation.Field(&r.FirstName, validation.Required),
	)
}

func (r *DeleteContactRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.UserID, validation.Required),
	)
}

func (r *GetUserStatusRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.UserID, validation.Required),
	)
}

func (r *ResolveUsernameRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Username, validation.Required),
	)
}

func (r *CreateGroupRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Users, validation.Required),
	)
}

func (r *InviteToGroupRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ChatID, validation.Required),
		validation.Field(&r.UserIDs, validation.Required),
	)
}

func (r *LeaveChatRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ChatID, validation.Required),
	)
}

func (r *GetParticipantsRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ChatID, validation.Required),
	)
}

func (r *GetAdminsRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ChatID, validation.Required),
	)
}

func (r *PromoteAdminRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ChatID, validation.Required),
		validation.Field(&r.UserID, validation.Required),
	)
}

func (r *BanUserRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ChatID, validation.Required),
		validation.Field(&r.UserID, validation.Required),
	)
}

func (r *UnbanUserRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ChatID, validation.Required),
		validation.Field(&r.UserID, validation.Required),
	)
}

func (r *GetInviteLinkRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ChatID, validation.Required),
	)
}

func (r *MuteChatRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ChatID, validation.Required),
	)
}

func (r *UnmuteChatRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ChatID, validation.Required),
	)
}

func (r *ArchiveChatRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ChatID, validation.Required),
	)
}

func (r *UnarchiveChatRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ChatID, validation.Required),
	)
}

func (r *SaveDraftRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ChatID, validation.Required),
		validation.Field(&r.Message, validation.Required),
	)
}

func (r *ClearDraftRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ChatID, validation.Required),
	)
}

package fakeapi_test

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unrolled/render"

	"github.com/vladislavprovich/telegram-integration/internal/fakeapi"
	"github.com/vladislavprovich/telegram-integration/pkg/client/telegram"
)

// newFixture starts a fake API server and returns a client bound to it.
// Every request below travels the full path: client encoding, chi routing,
// envelope wrapping and the client's double decode on the way back.
func newFixture(t *testing.T) *telegram.BasicClient {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	cfg := &fakeapi.Config{
		Port:         "0",
		Timeout:      5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  5 * time.Second,
		MaxAge:       300,
	}

	handler := fakeapi.NewServiceHandler(fakeapi.NewStore(), logger, cfg, render.New())
	server := httptest.NewServer(fakeapi.NewRouter(handler, logger, cfg))
	t.Cleanup(server.Close)

	client := telegram.NewBasicClient(server.Client(), &telegram.Config{BaseURL: server.URL}, logger)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestIntegration_HealthAndMe(t *testing.T) {
	client := newFixture(t)
	ctx := context.Background()

	health, err := client.Health(ctx)
	require.NoError(t, err)
	status, ok := health.(map[string]any)
	require.True(t, ok, "health should decode to an object, got %#v", health)
	assert.Equal(t, "ok", status["status"])

	me, err := client.GetMe(ctx)
	require.NoError(t, err)
	user, ok := me.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "local_user", user["username"])
}

func TestIntegration_ChatListing(t *testing.T) {
	client := newFixture(t)
	ctx := context.Background()

	chats, err := client.GetChats(ctx, &telegram.GetChatsRequest{Page: 1, PageSize: 2})
	require.NoError(t, err)
	page, ok := chats.([]any)
	require.True(t, ok)
	assert.Len(t, page, 2)

	archived, err := client.ListChats(ctx, &telegram.ListChatsRequest{Archived: true})
	require.NoError(t, err)
	list, ok := archived.([]any)
	require.True(t, ok)
	require.Len(t, list, 1)
	assert.Equal(t, "Old Project", list[0].(map[string]any)["name"])

	unread, err := client.ListChats(ctx, &telegram.ListChatsRequest{UnreadOnly: true})
	require.NoError(t, err)
	list, ok = unread.([]any)
	require.True(t, ok)
	require.Len(t, list, 1)
	assert.Equal(t, "Team Standup", list[0].(map[string]any)["name"])

	byUsername, err := client.GetChat(ctx, &telegram.GetChatRequest{
		ChatID: telegram.ChatID("@release_notes"),
	})
	require.NoError(t, err)
	chat, ok := byUsername.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(300), chat["id"])
}

func TestIntegration_MessageLifecycle(t *testing.T) {
	client := newFixture(t)
	ctx := context.Background()
	chatID := telegram.ChatID("200")

	sent, err := client.SendMessage(ctx, &telegram.SendMessageRequest{
		ChatID:  chatID,
		Message: "integration says hi",
	})
	require.NoError(t, err)
	msg, ok := sent.(map[string]any)
	require.True(t, ok, "sent message should survive the double decode, got %#v", sent)
	assert.Equal(t, "integration says hi", msg["text"])

	messageID := int64(msg["id"].(float64))

	edited, err := client.EditMessage(ctx, &telegram.EditMessageRequest{
		ChatID:    chatID,
		MessageID: messageID,
		NewText:   "integration says bye",
	})
	require.NoError(t, err)
	assert.Equal(t, "integration says bye", edited.(map[string]any)["text"])

	found, err := client.SearchMessages(ctx, &telegram.SearchMessagesRequest{
		ChatID: chatID,
		Query:  "standup",
	})
	require.NoError(t, err)
	hits, ok := found.([]any)
	require.True(t, ok)
	assert.Len(t, hits, 1)

	forwarded, err := client.ForwardMessage(ctx, &telegram.ForwardMessageRequest{
		FromChatID: chatID,
		ToChatID:   telegram.ChatID("100"),
		MessageID:  messageID,
	})
	require.NoError(t, err)
	fwd, ok := forwarded.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(100), fwd["chat_id"])

	deleted, err := client.DeleteMessage(ctx, &telegram.DeleteMessageRequest{
		ChatID:    chatID,
		MessageID: messageID,
	})
	require.NoError(t, err)
	assert.Equal(t, true, deleted.(map[string]any)["deleted"])

	history, err := client.GetMessages(ctx, &telegram.GetMessagesRequest{ChatID: chatID})
	require.NoError(t, err)
	// 3 seeded messages; the sent one was deleted again.
	assert.Len(t, history.([]any), 3)
}

func TestIntegration_UnknownChatSurfacesEnvelopeError(t *testing.T) {
	client := newFixture(t)

	_, err := client.SendMessage(context.Background(), &telegram.SendMessageRequest{
		ChatID:  telegram.ChatID("999999"),
		Message: "into the void",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat 999999 not found")
}

func TestIntegration_Contacts(t *testing.T) {
	client := newFixture(t)
	ctx := context.Background()

	contacts, err := client.ListContacts(ctx)
	require.NoError(t, err)
	assert.Len(t, contacts.([]any), 2)

	found, err := client.SearchContacts(ctx, &telegram.SearchContactsRequest{Query: "ali"})
	require.NoError(t, err)
	hits := found.([]any)
	require.Len(t, hits, 1)
	assert.Equal(t, "alice", hits[0].(map[string]any)["username"])

	added, err := client.AddContact(ctx, &telegram.AddContactRequest{
		Phone:     "+15550199",
		FirstName: "Carol",
	})
	require.NoError(t, err)
	contact, ok := added.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Carol", contact["first_name"])

	_, err = client.DeleteContact(ctx, &telegram.DeleteContactRequest{
		UserID: telegram.UserID("2002"),
	})
	require.NoError(t, err)

	contacts, err = client.ListContacts(ctx)
	require.NoError(t, err)
	assert.Len(t, contacts.([]any), 2, "Bob removed, Carol added")
}

func TestIntegration_UsersAndResolve(t *testing.T) {
	client := newFixture(t)
	ctx := context.Background()

	status, err := client.GetUserStatus(ctx, &telegram.GetUserStatusRequest{
		UserID: telegram.UserID("2001"),
	})
	require.NoError(t, err)
	assert.Equal(t, "online", status.(map[string]any)["status"])

	resolved, err := client.ResolveUsername(ctx, &telegram.ResolveUsernameRequest{
		Username: "alice",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(2001), resolved.(map[string]any)["id"])
}

func TestIntegration_GroupsAndAdmin(t *testing.T) {
	client := newFixture(t)
	ctx := context.Background()

	created, err := client.CreateGroup(ctx, &telegram.CreateGroupRequest{
		Title: "Incident Response",
		Users: []telegram.UserID{"2001", "2002"},
	})
	require.NoError(t, err)
	group, ok := created.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Incident Response", group["name"])

	groupID := telegram.ChatID("500")

	invited, err := client.InviteToGroup(ctx, &telegram.InviteToGroupRequest{
		ChatID:  groupID,
		UserIDs: []telegram.UserID{"1000"},
	})
	require.NoError(t, err)
	assert.Equal(t, float64(1), invited.(map[string]any)["invited"])

	participants, err := client.GetParticipants(ctx, &telegram.GetParticipantsRequest{
		ChatID: groupID,
	})
	require.NoError(t, err)
	assert.Len(t, participants.([]any), 4, "owner, two members, one invited")

	_, err = client.PromoteAdmin(ctx, &telegram.PromoteAdminRequest{
		ChatID: groupID,
		UserID: telegram.UserID("2001"),
		Title:  "moderator",
	})
	require.NoError(t, err)

	admins, err := client.GetAdmins(ctx, &telegram.GetAdminsRequest{ChatID: groupID})
	require.NoError(t, err)
	assert.Len(t, admins.([]any), 2)

	banned, err := client.BanUser(ctx, &telegram.BanUserRequest{
		ChatID: groupID,
		UserID: telegram.UserID("2002"),
	})
	require.NoError(t, err)
	assert.Equal(t, true, banned.(map[string]any)["banned"])

	unbanned, err := client.UnbanUser(ctx, &telegram.UnbanUserRequest{
		ChatID: groupID,
		UserID: telegram.UserID("2002"),
	})
	require.NoError(t, err)
	assert.Equal(t, false, unbanned.(map[string]any)["banned"])

	left, err := client.LeaveChat(ctx, &telegram.LeaveChatRequest{ChatID: groupID})
	require.NoError(t, err)
	assert.Equal(t, true, left.(map[string]any)["left"])
}

func TestIntegration_ChatStateAndDrafts(t *testing.T) {
	client := newFixture(t)
	ctx := context.Background()
	chatID := telegram.ChatID("200")

	link, err := client.GetInviteLink(ctx, &telegram.GetInviteLinkRequest{ChatID: chatID})
	require.NoError(t, err)
	assert.Equal(t, "https://t.me/+fake200", link)

	muted, err := client.MuteChat(ctx, &telegram.MuteChatRequest{ChatID: chatID})
	require.NoError(t, err)
	assert.Equal(t, true, muted.(map[string]any)["muted"])

	unmuted, err := client.UnmuteChat(ctx, &telegram.UnmuteChatRequest{ChatID: chatID})
	require.NoError(t, err)
	assert.Equal(t, false, unmuted.(map[string]any)["muted"])

	archived, err := client.ArchiveChat(ctx, &telegram.ArchiveChatRequest{ChatID: chatID})
	require.NoError(t, err)
	assert.Equal(t, true, archived.(map[string]any)["archived"])

	unarchived, err := client.UnarchiveChat(ctx, &telegram.UnarchiveChatRequest{ChatID: chatID})
	require.NoError(t, err)
	assert.Equal(t, false, unarchived.(map[string]any)["archived"])

	draft, err := client.SaveDraft(ctx, &telegram.SaveDraftRequest{
		ChatID:  chatID,
		Message: "wip reply",
		ReplyTo: 2,
	})
	require.NoError(t, err)
	saved, ok := draft.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "wip reply", saved["message"])

	cleared, err := client.ClearDraft(ctx, &telegram.ClearDraftRequest{ChatID: chatID})
	require.NoError(t, err)
	assert.Equal(t, true, cleared.(map[string]any)["cleared"])
}

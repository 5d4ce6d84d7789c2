package fakeapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *ServiceHandler) GetChats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "page_size", 20)

	h.ok(ctx, w, h.store.Chats(page, pageSize))
}

func (h *ServiceHandler) ListChats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := queryInt(r, "limit", 50)
	chatType := r.URL.Query().Get("chat_type")
	archived := queryBool(r, "archived")
	unreadOnly := queryBool(r, "unread_only")

	h.ok(ctx, w, h.store.FilterChats(limit, chatType, archived, unreadOnly))
}

func (h *ServiceHandler) GetChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	chat, err := h.store.ResolvePeer(chi.URLParam(r, "chatID"))
	if err != nil {
		h.fail(ctx, w, err.Error())
		return
	}

	h.ok(ctx, w, chat)
}

func (h *ServiceHandler) LeaveChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.store.LeaveChat(chi.URLParam(r, "chatID")); err != nil {
		h.fail(ctx, w, err.Error())
		return
	}

	h.okEncoded(ctx, w, map[string]any{"left": true})
}

func (h *ServiceHandler) MuteChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.store.SetMuted(chi.URLParam(r, "chatID"), true); err != nil {
		h.fail(ctx, w, err.Error())
		return
	}

	h.okEncoded(ctx, w, map[string]any{"muted": true})
}

func (h *ServiceHandler) UnmuteChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.store.SetMuted(chi.URLParam(r, "chatID"), false); err != nil {
		h.fail(ctx, w, err.Error())
		return
	}

	h.okEncoded(ctx, w, map[string]any{"muted": false})
}

func (h *ServiceHandler) ArchiveChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.store.SetArchived(chi.URLParam(r, "chatID"), true); err != nil {
		h.fail(ctx, w, err.Error())
		return
	}

	h.okEncoded(ctx, w, map[string]any{"archived": true})
}

func (h *ServiceHandler) UnarchiveChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.store.SetArchived(chi.URLParam(r, "chatID"), false); err != nil {
		h.fail(ctx, w, err.Error())
		return
	}

	h.okEncoded(ctx, w, map[string]any{"archived": false})
}

func (h *ServiceHandler) GetInviteLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	link, err := h.store.InviteLink(chi.URLParam(r, "chatID"))
	if err != nil {
		h.fail(ctx, w, err.Error())
		return
	}

	h.ok(ctx, w, link)
}

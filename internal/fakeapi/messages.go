package fakeapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *ServiceHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	chat, err := h.store.ResolvePeer(chi.URLParam(r, "chatID"))
	if err != nil {
		h.fail(ctx, w, err.Error())
		return
	}

	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "page_size", 20)

	h.ok(ctx, w, h.store.Messages(chat.ID, page, pageSize))
}

func (h *ServiceHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		ChatID  any    `json:"chat_id"`
		Message string `json:"message"`
		ReplyTo any    `json:"reply_to"`
	}
	if err := h.decode(r, &req); err != nil {
		h.badRequest(ctx, w, err)
		return
	}

	msg, err := h.store.SendMessage(peerParam(req.ChatID), req.Message, numberInt64(req.ReplyTo))
	if err != nil {
		h.fail(ctx, w, err.Error())
		return
	}

	h.okEncoded(ctx, w, msg)
}

func (h *ServiceHandler) EditMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		ChatID    any    `json:"chat_id"`
		MessageID any    `json:"message_id"`
		NewText   string `json:"new_text"`
	}
	if err := h.decode(r, &req); err != nil {
		h.badRequest(ctx, w, err)
		return
	}

	msg, err := h.store.EditMessage(peerParam(req.ChatID), numberInt64(req.MessageID), req.NewText)
	if err != nil {
		h.fail(ctx, w, err.Error())
		return
	}

	h.okEncoded(ctx, w, msg)
}

func (h *ServiceHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		ChatID    any  `json:"chat_id"`
		MessageID any  `json:"message_id"`
		Revoke    bool `json:"revoke"`
	}
	if err := h.decode(r, &req); err != nil {
		h.badRequest(ctx, w, err)
		return
	}

	if err := h.store.DeleteMessage(peerParam(req.ChatID), numberInt64(req.MessageID)); err != nil {
		h.fail(ctx, w, err.Error())
		return
	}

	h.okEncoded(ctx, w, map[string]any{"deleted": true, "revoked": req.Revoke})
}

func (h *ServiceHandler) ForwardMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		FromChatID any `json:"from_chat_id"`
		ToChatID   any `json:"to_chat_id"`
		MessageID  any `json:"message_id"`
	}
	if err := h.decode(r, &req); err != nil {
		h.badRequest(ctx, w, err)
		return
	}

	msg, err := h.store.ForwardMessage(
		peerParam(req.FromChatID),
		peerParam(req.ToChatID),
		numberInt64(req.MessageID),
	)
	if err != nil {
		h.fail(ctx, w, err.Error())
		return
	}

	h.okEncoded(ctx, w, msg)
}

func (h *ServiceHandler) SearchMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		ChatID   any    `json:"chat_id"`
		Query    string `json:"query"`
		Limit    any    `json:"limit"`
		FromUser any    `json:"from_user"`
	}
	if err := h.decode(r, &req); err != nil {
		h.badRequest(ctx, w, err)
		return
	}

	limit := int(numberInt64(req.Limit))
	if limit <= 0 {
		limit = 20
	}

	msgs, err := h.store.SearchMessages(peerParam(req.ChatID), req.Query, limit, peerParam(req.FromUser))
	if err != nil {
		h.fail(ctx, w, err.Error())
		return
	}

	h.ok(ctx, w, msgs)
}

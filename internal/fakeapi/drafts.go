package fakeapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *ServiceHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
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

	draft, err := h.store.SaveDraft(peerParam(req.ChatID), req.Message, numberInt64(req.ReplyTo))
	if err != nil {
		h.fail(ctx, w, err.Error())
		return
	}

	h.okEncoded(ctx, w, draft)
}

func (h *ServiceHandler) ClearDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.store.ClearDraft(chi.URLParam(r, "chatID")); err != nil {
		h.fail(ctx, w, err.Error())
		return
	}

	h.okEncoded(ctx, w, map[string]any{"cleared": true})
}

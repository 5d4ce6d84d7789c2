package fakeapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *ServiceHandler) GetAdmins(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	admins, err := h.store.Admins(chi.URLParam(r, "chatID"))
	if err != nil {
		h.fail(ctx, w, err.Error())
		return
	}

	h.ok(ctx, w, admins)
}

func (h *ServiceHandler) PromoteAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		ChatID any    `json:"chat_id"`
		UserID any    `json:"user_id"`
		Title  string `json:"title"`
	}
	if err := h.decode(r, &req); err != nil {
		h.badRequest(ctx, w, err)
		return
	}

	if err := h.store.PromoteAdmin(peerParam(req.ChatID), peerParam(req.UserID), req.Title); err != nil {
		h.fail(ctx, w, err.Error())
		return
	}

	h.okEncoded(ctx, w, map[string]any{"promoted": true})
}

func (h *ServiceHandler) BanUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		ChatID    any `json:"chat_id"`
		UserID    any `json:"user_id"`
		UntilDate any `json:"until_date"`
	}
	if err := h.decode(r, &req); err != nil {
		h.badRequest(ctx, w, err)
		return
	}

	if err := h.store.BanUser(peerParam(req.ChatID), peerParam(req.UserID)); err != nil {
		h.fail(ctx, w, err.Error())
		return
	}

	h.okEncoded(ctx, w, map[string]any{
		"banned":     true,
		"until_date": numberInt64(req.UntilDate),
	})
}

func (h *ServiceHandler) UnbanUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		ChatID any `json:"chat_id"`
		UserID any `json:"user_id"`
	}
	if err := h.decode(r, &req); err != nil {
		h.badRequest(ctx, w, err)
		return
	}

	if err := h.store.UnbanUser(peerParam(req.ChatID), peerParam(req.UserID)); err != nil {
		h.fail(ctx, w, err.Error())
		return
	}

	h.okEncoded(ctx, w, map[string]any{"banned": false})
}

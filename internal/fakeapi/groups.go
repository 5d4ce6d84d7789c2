package fakeapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func (h *ServiceHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Title string `json:"title"`
		Users []any  `json:"users"`
	}
	if err := h.decode(r, &req); err != nil {
		h.badRequest(ctx, w, err)
		return
	}

	if req.Title == "" {
		h.fail(ctx, w, "title is required")
		return
	}

	h.okEncoded(ctx, w, h.store.CreateGroup(req.Title, peerList(req.Users)))
}

func (h *ServiceHandler) InviteToGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		ChatID  any   `json:"chat_id"`
		UserIDs []any `json:"user_ids"`
	}
	if err := h.decode(r, &req); err != nil {
		h.badRequest(ctx, w, err)
		return
	}

	invited, err := h.store.InviteToGroup(peerParam(req.ChatID), peerList(req.UserIDs))
	if err != nil {
		h.fail(ctx, w, err.Error())
		return
	}

	h.okEncoded(ctx, w, map[string]any{"invited": invited})
}

func (h *ServiceHandler) GetParticipants(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := queryInt(r, "limit", 100)

	offset := 0
	if n, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && n > 0 {
		offset = n
	}

	participants, err := h.store.Participants(chi.URLParam(r, "chatID"), limit, offset)
	if err != nil {
		h.fail(ctx, w, err.Error())
		return
	}

	h.ok(ctx, w, participants)
}

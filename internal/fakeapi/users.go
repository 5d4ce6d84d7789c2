package fakeapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *ServiceHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	h.ok(r.Context(), w, h.store.Me())
}

func (h *ServiceHandler) GetUserStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status, err := h.store.UserStatus(chi.URLParam(r, "userID"))
	if err != nil {
		h.fail(ctx, w, err.Error())
		return
	}

	h.ok(ctx, w, status)
}

func (h *ServiceHandler) ResolveUsername(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entity, err := h.store.ResolveUsername(chi.URLParam(r, "username"))
	if err != nil {
		h.fail(ctx, w, err.Error())
		return
	}

	h.ok(ctx, w, entity)
}

package fakeapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *ServiceHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	h.ok(r.Context(), w, h.store.Contacts())
}

func (h *ServiceHandler) SearchContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query().Get("query")
	limit := queryInt(r, "limit", 10)

	h.ok(ctx, w, h.store.SearchContacts(query, limit))
}

func (h *ServiceHandler) AddContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Phone     string `json:"phone"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := h.decode(r, &req); err != nil {
		h.badRequest(ctx, w, err)
		return
	}

	if req.Phone == "" || req.FirstName == "" {
		h.fail(ctx, w, "phone and first_name are required")
		return
	}

	h.okEncoded(ctx, w, h.store.AddContact(req.Phone, req.FirstName, req.LastName))
}

func (h *ServiceHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.store.DeleteContact(chi.URLParam(r, "userID")); err != nil {
		h.fail(ctx, w, err.Error())
		return
	}

	h.okEncoded(ctx, w, map[string]any{"deleted": true})
}

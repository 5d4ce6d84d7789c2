package fakeapi

import "net/http"

// Health answers outside the envelope convention: a bare status document,
// exactly as the gateway's /health endpoint behaves.
func (h *ServiceHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.sendJSON(r.Context(), w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "telegram-fake-api",
	})
}

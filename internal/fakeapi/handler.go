package fakeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/unrolled/render"
)

// envelope is the response wrapper the fake API shares with the real
// gateway: every endpoint except /health answers {success,data,error}.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

type ServiceHandler struct {
	store  *Store
	logger *slog.Logger
	cfg    *Config
	render *render.Render
}

func NewServiceHandler(store *Store, logger *slog.Logger, cfg *Config, render *render.Render) *ServiceHandler {
	return &ServiceHandler{
		store:  store,
		logger: logger,
		cfg:    cfg,
		render: render,
	}
}

func (h *ServiceHandler) sendJSON(ctx context.Context, w io.Writer, status int, body any) {
	if err := h.render.JSON(w, status, body); err != nil {
		h.logger.ErrorContext(ctx, "render JSON error", slog.Any("error", err))
	}
}

// ok returns data structured directly inside the envelope.
func (h *ServiceHandler) ok(ctx context.Context, w http.ResponseWriter, data any) {
	h.sendJSON(ctx, w, http.StatusOK, envelope{Success: true, Data: data})
}

// okEncoded JSON-encodes data into a string before wrapping it, the way the
// gateway's mutating endpoints do. Clients apply a second decode pass.
func (h *ServiceHandler) okEncoded(ctx context.Context, w http.ResponseWriter, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		h.fail(ctx, w, fmt.Sprintf("encoding result: %s", err))
		return
	}
	h.sendJSON(ctx, w, http.StatusOK, envelope{Success: true, Data: string(raw)})
}

// fail reports an operation failure inside the envelope. The transport
// status stays 200; the envelope carries the error, as the gateway does.
func (h *ServiceHandler) fail(ctx context.Context, w http.ResponseWriter, msg string) {
	h.sendJSON(ctx, w, http.StatusOK, envelope{Success: false, Error: msg})
}

func (h *ServiceHandler) badRequest(ctx context.Context, w http.ResponseWriter, err error) {
	h.logger.ErrorContext(ctx, "failed to decode request body", slog.Any("error", err))
	h.sendJSON(ctx, w, http.StatusBadRequest, envelope{Success: false, Error: err.Error()})
}

func (h *ServiceHandler) decode(r *http.Request, into any) error {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	return dec.Decode(into)
}

// peerParam normalizes a chat/user reference from a decoded JSON body:
// numbers and strings are both accepted.
func peerParam(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatInt(int64(t), 10)
	default:
		return fmt.Sprint(t)
	}
}

func peerList(vs []any) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		if s := peerParam(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func queryBool(r *http.Request, key string) bool {
	return r.URL.Query().Get(key) == "true"
}

func numberInt64(v any) int64 {
	switch t := v.(type) {
	case json.Number:
		n, _ := t.Int64()
		return n
	case float64:
		return int64(t)
	default:
		return 0
	}
}

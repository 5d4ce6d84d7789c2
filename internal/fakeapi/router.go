package fakeapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	pkglogger "github.com/vladislavprovich/telegram-integration/pkg/logger"
)

// NewRouter wires the full endpoint catalog of the gateway onto a chi mux.
func NewRouter(h *ServiceHandler, logger *slog.Logger, cfg *Config) *chi.Mux {
	mux := chi.NewRouter()

	mux.Use(chiMiddleware.Recoverer)
	mux.Use(chiMiddleware.Timeout(cfg.Timeout))

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Accept", "Content-Type", "authorization"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           int(cfg.MaxAge),
	}))

	wrappedLogger := &pkglogger.Logger{Logger: logger}
	mux.Use(chiMiddleware.RequestID)
	mux.Use(chiMiddleware.RequestLogger(&chiMiddleware.DefaultLogFormatter{
		Logger:  wrappedLogger,
		NoColor: true,
	}))

	mux.Get("/health", h.Health)

	mux.Route("/chats", func(r chi.Router) {
		r.Get("/", h.GetChats)
		r.Get("/list", h.ListChats)
		r.Get("/{chatID}", h.GetChat)
		r.Get("/{chatID}/messages", h.GetMessages)
		r.Get("/{chatID}/participants", h.GetParticipants)
		r.Get("/{chatID}/admins", h.GetAdmins)
		r.Get("/{chatID}/invite-link", h.GetInviteLink)
		r.Post("/{chatID}/leave", h.LeaveChat)
		r.Post("/{chatID}/mute", h.MuteChat)
		r.Post("/{chatID}/unmute", h.UnmuteChat)
		r.Post("/{chatID}/archive", h.ArchiveChat)
		r.Post("/{chatID}/unarchive", h.UnarchiveChat)
	})

	mux.Route("/messages", func(r chi.Router) {
		r.Post("/send", h.SendMessage)
		r.Put("/edit", h.EditMessage)
		r.Delete("/delete", h.DeleteMessage)
		r.Post("/forward", h.ForwardMessage)
		r.Post("/search", h.SearchMessages)
	})

	mux.Route("/contacts", func(r chi.Router) {
		r.Get("/", h.ListContacts)
		r.Get("/search", h.SearchContacts)
		r.Post("/", h.AddContact)
		r.Delete("/{userID}", h.DeleteContact)
	})

	mux.Get("/me", h.GetMe)
	mux.Get("/users/{userID}/status", h.GetUserStatus)
	mux.Get("/resolve/{username}", h.ResolveUsername)

	mux.Route("/groups", func(r chi.Router) {
		r.Post("/", h.CreateGroup)
		r.Post("/invite", h.InviteToGroup)
	})

	mux.Route("/admin", func(r chi.Router) {
		r.Post("/promote", h.PromoteAdmin)
		r.Post("/ban", h.BanUser)
		r.Post("/unban", h.UnbanUser)
	})

	mux.Route("/drafts", func(r chi.Router) {
		r.Post("/save", h.SaveDraft)
		r.Delete("/{chatID}", h.ClearDraft)
	})

	return mux
}

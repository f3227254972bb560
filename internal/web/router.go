package web

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(h *Handler, log *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(log))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Post("/auth/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(h.Authenticate)

			r.Get("/sessions/today", h.TodaySessions)
			r.Get("/sessions/{id}", h.GetSession)
			r.Patch("/sessions/{id}/status", h.UpdateSessionStatus)
			r.Patch("/sessions/{id}/photo", h.UploadGroupPhoto)

			r.Post("/attendance", h.RecordAttendance)
			r.Get("/attendance/session/{sessionId}", h.SessionAttendance)

			r.Get("/players", h.ListPlayers)
			r.Get("/players/{id}", h.GetPlayer)
		})
	})

	return r
}

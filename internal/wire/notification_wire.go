package wire

import (
	"resort-booking/internal/adaptor"
	"resort-booking/internal/data/repository"
	"resort-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireNotification(r chi.Router, handler *adaptor.Handler, repo *repository.Repository, log *zap.Logger) {
	auth := middleware.AuthSession(repo.Session, repo.User, log)

	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Get("/api/notifications", handler.Notification.List)
		r.Post("/api/notifications/{id}/read", handler.Notification.MarkRead)
		r.Post("/api/notifications/read-all", handler.Notification.MarkAllRead)
	})
}

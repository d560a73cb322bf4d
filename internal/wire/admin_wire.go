package wire

import (
	"resort-booking/internal/adaptor"
	"resort-booking/internal/data/repository"
	"resort-booking/pkg/middleware"
	"resort-booking/pkg/roles"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(r chi.Router, handler *adaptor.Handler, repo *repository.Repository, log *zap.Logger) {
	auth := middleware.AuthSession(repo.Session, repo.User, log)
	admin := middleware.RequireRole(roles.Admin, log)

	r.Group(func(r chi.Router) {
		r.Use(auth, admin)
		r.Get("/api/admin/reports", handler.Report.Summary)
		r.Get("/api/admin/settings", handler.Setting.Get)
		r.Put("/api/admin/settings", handler.Setting.Update)
	})
}

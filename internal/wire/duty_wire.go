package wire

import (
	"resort-booking/internal/adaptor"
	"resort-booking/internal/data/repository"
	"resort-booking/pkg/middleware"
	"resort-booking/pkg/roles"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDuty(r chi.Router, handler *adaptor.Handler, repo *repository.Repository, log *zap.Logger) {
	auth := middleware.AuthSession(repo.Session, repo.User, log)
	staff := middleware.RequireRole(roles.Staff, log)
	admin := middleware.RequireRole(roles.Admin, log)

	r.Group(func(r chi.Router) {
		r.Use(auth, staff)
		r.Get("/api/duties", handler.Duty.List)
		r.Post("/api/duties/{id}/toggle", handler.Duty.Toggle)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth, admin)
		r.Post("/api/admin/duties", handler.Duty.Assign)
		r.Put("/api/admin/duties/{id}", handler.Duty.Update)
		r.Delete("/api/admin/duties/{id}", handler.Duty.Delete)
	})
}

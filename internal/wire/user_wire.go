package wire

import (
	"resort-booking/internal/adaptor"
	"resort-booking/internal/data/repository"
	"resort-booking/pkg/middleware"
	"resort-booking/pkg/roles"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(r chi.Router, handler *adaptor.Handler, repo *repository.Repository, log *zap.Logger) {
	auth := middleware.AuthSession(repo.Session, repo.User, log)
	admin := middleware.RequireRole(roles.Admin, log)

	r.With(auth).Get("/api/profile", handler.User.Profile)

	r.Route("/api/admin/users", func(r chi.Router) {
		r.Use(auth, admin)
		r.Get("/", handler.User.List)
		r.Get("/{id}", handler.User.Get)
		r.Put("/{id}", handler.User.Update)
		r.Delete("/{id}", handler.User.Delete)
	})
}

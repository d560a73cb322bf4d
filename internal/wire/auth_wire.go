package wire

import (
	"resort-booking/internal/adaptor"
	"resort-booking/internal/data/repository"
	"resort-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(r chi.Router, handler *adaptor.Handler, repo *repository.Repository, log *zap.Logger) {
	// Public
	r.Post("/api/auth/register", handler.Auth.Register)
	r.Post("/api/auth/login", handler.Auth.Login)

	// Protected
	auth := middleware.AuthSession(repo.Session, repo.User, log)
	r.With(auth).Post("/api/auth/logout", handler.Auth.Logout)
}

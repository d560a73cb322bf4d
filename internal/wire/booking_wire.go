package wire

import (
	"resort-booking/internal/adaptor"
	"resort-booking/internal/data/repository"
	"resort-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(r chi.Router, handler *adaptor.Handler, repo *repository.Repository, log *zap.Logger) {
	auth := middleware.AuthSession(repo.Session, repo.User, log)

	// The gateway callback arrives unauthenticated.
	r.Post("/api/payments/callback", handler.Payment.Callback)

	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Post("/api/bookings", handler.Booking.Create)
		r.Get("/api/bookings", handler.Booking.List)
		r.Get("/api/bookings/{id}", handler.Booking.Get)
		r.Put("/api/bookings/{id}", handler.Booking.Update)
		r.Delete("/api/bookings/{id}", handler.Booking.Delete)
		r.Get("/api/bookings/{id}/payments", handler.Payment.ListByBooking)

		r.Get("/api/availability", handler.Booking.CheckAvailability)
		r.Post("/api/payments", handler.Payment.Initiate)
	})
}

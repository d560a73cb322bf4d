package wire

import (
	"resort-booking/internal/adaptor"
	"resort-booking/internal/data/repository"
	"resort-booking/pkg/middleware"
	"resort-booking/pkg/roles"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireCatalog mounts the browse routes for authenticated users and the
// mutation routes for admins, one pair per catalog category.
func wireCatalog(r chi.Router, handler *adaptor.Handler, repo *repository.Repository, log *zap.Logger) {
	auth := middleware.AuthSession(repo.Session, repo.User, log)
	admin := middleware.RequireRole(roles.Admin, log)

	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Get("/api/activities", handler.Activity.List)
		r.Get("/api/activities/{id}", handler.Activity.Get)
		r.Get("/api/packages", handler.Package.List)
		r.Get("/api/packages/{id}", handler.Package.Get)
		r.Get("/api/room-types", handler.Room.ListTypes)
		r.Get("/api/room-types/{id}", handler.Room.GetType)
		r.Get("/api/rooms", handler.Room.ListRooms)
		r.Get("/api/food", handler.Food.List)
		r.Get("/api/food/{id}", handler.Food.Get)
		r.Get("/api/tours", handler.Tour.List)
		r.Get("/api/tours/{id}", handler.Tour.Get)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth, admin)

		r.Post("/api/admin/activities", handler.Activity.Create)
		r.Put("/api/admin/activities/{id}", handler.Activity.Update)
		r.Delete("/api/admin/activities/{id}", handler.Activity.Delete)

		r.Post("/api/admin/packages", handler.Package.Create)
		r.Put("/api/admin/packages/{id}", handler.Package.Update)
		r.Delete("/api/admin/packages/{id}", handler.Package.Delete)

		r.Post("/api/admin/room-types", handler.Room.CreateType)
		r.Put("/api/admin/room-types/{id}", handler.Room.UpdateType)
		r.Delete("/api/admin/room-types/{id}", handler.Room.DeleteType)

		r.Post("/api/admin/rooms", handler.Room.CreateRoom)
		r.Put("/api/admin/rooms/{id}", handler.Room.UpdateRoom)
		r.Delete("/api/admin/rooms/{id}", handler.Room.DeleteRoom)

		r.Post("/api/admin/food", handler.Food.Create)
		r.Put("/api/admin/food/{id}", handler.Food.Update)
		r.Delete("/api/admin/food/{id}", handler.Food.Delete)

		r.Post("/api/admin/tours", handler.Tour.Create)
		r.Put("/api/admin/tours/{id}", handler.Tour.Update)
		r.Delete("/api/admin/tours/{id}", handler.Tour.Delete)
	})
}

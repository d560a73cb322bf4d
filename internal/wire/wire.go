package wire

import (
	"net/http"

	"resort-booking/internal/adaptor"
	"resort-booking/internal/data/repository"
	"resort-booking/internal/usecase"
	"resort-booking/pkg/database"
	"resort-booking/pkg/middleware"
	"resort-booking/pkg/payment"
	"resort-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the full dependency graph: repositories feed services,
// services feed handlers, handlers hang off the router.
func Wiring(db database.PgxIface, repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	initiator := payment.NewSandboxInitiator(logger)
	service := usecase.NewService(db, repo, config, initiator, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, repo *repository.Repository, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler, repo, logger)
	wireUser(r, handler, repo, logger)
	wireCatalog(r, handler, repo, logger)
	wireBooking(r, handler, repo, logger)
	wireDuty(r, handler, repo, logger)
	wireNotification(r, handler, repo, logger)
	wireAdmin(r, handler, repo, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

package adaptor

import (
	"net/http"

	"resort-booking/internal/dto/request"
	"resort-booking/internal/usecase"
	"resort-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Activity     *ActivityHandler
	Package      *PackageHandler
	Room         *RoomHandler
	Food         *FoodHandler
	Tour         *TourHandler
	Booking      *BookingHandler
	Duty         *DutyHandler
	Notification *NotificationHandler
	Report       *ReportHandler
	Setting      *SettingHandler
	Payment      *PaymentHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, log),
		User:         NewUserHandler(service.User, log),
		Activity:     NewActivityHandler(service.Activity, log),
		Package:      NewPackageHandler(service.Package, log),
		Room:         NewRoomHandler(service.Room, log),
		Food:         NewFoodHandler(service.Food, log),
		Tour:         NewTourHandler(service.Tour, log),
		Booking:      NewBookingHandler(service.Booking, log),
		Duty:         NewDutyHandler(service.Duty, log),
		Notification: NewNotificationHandler(service.Notification, log),
		Report:       NewReportHandler(service.Report, log),
		Setting:      NewSettingHandler(service.Setting, log),
		Payment:      NewPaymentHandler(service.Payment, log),
	}
}

// idParam parses the {id} URL parameter; the second return is false when
// it is missing or malformed (the handler has already responded).
func idParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

// pageParams reads the pagination query parameters, defaulting to the
// first page of ten.
func pageParams(r *http.Request) request.PaginatedRequest {
	query := r.URL.Query()
	return request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}
}

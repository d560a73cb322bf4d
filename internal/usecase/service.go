package usecase

import (
	"resort-booking/internal/data/repository"
	"resort-booking/pkg/database"
	"resort-booking/pkg/payment"
	"resort-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	User         UserService
	Activity     ActivityService
	Package      PackageService
	Room         RoomService
	Food         FoodService
	Tour         TourService
	Booking      BookingService
	Duty         DutyService
	Notification NotificationService
	Report       ReportService
	Setting      SettingService
	Payment      PaymentService
}

func NewService(db database.PgxIface, repo *repository.Repository, config *utils.Config, initiator payment.Initiator, log *zap.Logger) *Service {
	return &Service{
		Auth:         NewAuthService(repo, config, log),
		User:         NewUserService(repo.User, log),
		Activity:     NewActivityService(repo.Activity, log),
		Package:      NewPackageService(repo.Package, repo.Activity, log),
		Room:         NewRoomService(db, repo.Room, repo.RoomType, repo.Booking, log),
		Food:         NewFoodService(repo.Food, log),
		Tour:         NewTourService(repo.Tour, log),
		Booking:      NewBookingService(db, repo, log),
		Duty:         NewDutyService(repo.Duty, repo.User, log),
		Notification: NewNotificationService(repo.Notification, log),
		Report:       NewReportService(repo, log),
		Setting:      NewSettingService(repo.Setting, log),
		Payment:      NewPaymentService(repo, initiator, log),
	}
}

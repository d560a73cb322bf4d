package repository

import (
	"resort-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Session      SessionRepository
	Activity     ActivityRepository
	Package      PackageRepository
	RoomType     RoomTypeRepository
	Room         RoomRepository
	Food         FoodRepository
	Tour         TourRepository
	Booking      BookingRepository
	Duty         DutyRepository
	Notification NotificationRepository
	Setting      SettingRepository
	Payment      PaymentRepository
	Report       ReportRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Session:      NewSessionRepository(db, log),
		Activity:     NewActivityRepository(db, log),
		Package:      NewPackageRepository(db, log),
		RoomType:     NewRoomTypeRepository(db, log),
		Room:         NewRoomRepository(db, log),
		Food:         NewFoodRepository(db, log),
		Tour:         NewTourRepository(db, log),
		Booking:      NewBookingRepository(db, log),
		Duty:         NewDutyRepository(db, log),
		Notification: NewNotificationRepository(db, log),
		Setting:      NewSettingRepository(db, log),
		Payment:      NewPaymentRepository(db, log),
		Report:       NewReportRepository(db, log),
	}
}

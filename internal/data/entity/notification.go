package entity

import "github.com/google/uuid"

type NotificationType string

const (
	NotificationBooking      NotificationType = "booking"
	NotificationRegistration NotificationType = "registration"
)

type Notification struct {
	BaseSimple
	UserID  uuid.UUID        `db:"user_id"`
	Message string           `db:"message"`
	Type    NotificationType `db:"type"`
	IsRead  bool             `db:"is_read"`
}

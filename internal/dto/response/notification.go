package response

import (
	"time"

	"resort-booking/internal/data/entity"
)

type NotificationResponse struct {
	ID        string                  `json:"id"`
	Message   string                  `json:"message"`
	Type      entity.NotificationType `json:"type"`
	IsRead    bool                    `json:"is_read"`
	CreatedAt time.Time               `json:"created_at"`
}

func NotificationToResponse(notification *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        notification.ID.String(),
		Message:   notification.Message,
		Type:      notification.Type,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}
}

type NotificationSummaryResponse struct {
	Unread        int64                  `json:"unread"`
	Notifications []NotificationResponse `json:"notifications"`
}

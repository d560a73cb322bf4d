package usecase

import (
	"context"

	"resort-booking/internal/data/repository"
	"resort-booking/internal/dto/request"
	"resort-booking/internal/dto/response"
	"resort-booking/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NotificationService interface {
	List(ctx context.Context, page request.PaginatedRequest) (*response.NotificationSummaryResponse, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context) error
}

type notificationService struct {
	notifications repository.NotificationRepository
	log           *zap.Logger
}

func NewNotificationService(notifications repository.NotificationRepository, log *zap.Logger) NotificationService {
	return &notificationService{
		notifications: notifications,
		log:           log.With(zap.String("service", "notification")),
	}
}

func (s *notificationService) List(ctx context.Context, page request.PaginatedRequest) (*response.NotificationSummaryResponse, error) {
	userID, _, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	notifications, err := s.notifications.FindByUserID(ctx, userID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	unread, err := s.notifications.CountUnreadByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &response.NotificationSummaryResponse{
		Unread:        unread,
		Notifications: make([]response.NotificationResponse, 0, len(notifications)),
	}
	for _, notification := range notifications {
		resp.Notifications = append(resp.Notifications, response.NotificationToResponse(notification))
	}

	return resp, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	userID, _, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	notification, err := s.notifications.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if notification == nil {
		return apperr.NotFound("notification %s not found", id.String())
	}
	if notification.UserID != userID {
		return apperr.Permission("notification belongs to someone else")
	}

	return s.notifications.MarkRead(ctx, id)
}

func (s *notificationService) MarkAllRead(ctx context.Context) error {
	userID, _, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	return s.notifications.MarkAllRead(ctx, userID)
}

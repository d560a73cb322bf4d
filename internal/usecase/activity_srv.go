package usecase

import (
	"context"
	"time"

	"resort-booking/internal/data/entity"
	"resort-booking/internal/data/repository"
	"resort-booking/internal/dto/request"
	"resort-booking/internal/dto/response"
	"resort-booking/pkg/apperr"
	"resort-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ActivityService interface {
	Create(ctx context.Context, req *request.ActivityRequest) (*response.ActivityResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*response.ActivityResponse, error)
	List(ctx context.Context, search string, page request.PaginatedRequest) (*response.PaginatedResponse[response.ActivityResponse], error)
	Update(ctx context.Context, id uuid.UUID, req *request.ActivityRequest) (*response.ActivityResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type activityService struct {
	activities repository.ActivityRepository
	log        *zap.Logger
}

func NewActivityService(activities repository.ActivityRepository, log *zap.Logger) ActivityService {
	return &activityService{
		activities: activities,
		log:        log.With(zap.String("service", "activity")),
	}
}

func (s *activityService) Create(ctx context.Context, req *request.ActivityRequest) (*response.ActivityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	price, err := parseAmount(req.PricePerPerson)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	activity := &entity.Activity{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:           req.Name,
		Description:    req.Description,
		PricePerPerson: price,
		ImageURL:       req.ImageURL,
	}

	if err := s.activities.Create(ctx, activity); err != nil {
		return nil, err
	}

	s.log.Info("Activity created", zap.String("activity_id", activity.ID.String()))

	resp := response.ActivityToResponse(activity)
	return &resp, nil
}

func (s *activityService) GetByID(ctx context.Context, id uuid.UUID) (*response.ActivityResponse, error) {
	activity, err := s.activities.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, apperr.NotFound("activity %s not found", id.String())
	}

	resp := response.ActivityToResponse(activity)
	return &resp, nil
}

func (s *activityService) List(ctx context.Context, search string, page request.PaginatedRequest) (*response.PaginatedResponse[response.ActivityResponse], error) {
	activities, err := s.activities.FindAll(ctx, search, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.activities.CountAll(ctx, search)
	if err != nil {
		return nil, err
	}

	items := make([]response.ActivityResponse, 0, len(activities))
	for _, activity := range activities {
		items = append(items, response.ActivityToResponse(activity))
	}

	return response.NewPaginatedResponse(items, page.Page, page.Limit(), total), nil
}

func (s *activityService) Update(ctx context.Context, id uuid.UUID, req *request.ActivityRequest) (*response.ActivityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	activity, err := s.activities.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, apperr.NotFound("activity %s not found", id.String())
	}

	price, err := parseAmount(req.PricePerPerson)
	if err != nil {
		return nil, err
	}

	activity.Name = req.Name
	activity.Description = req.Description
	activity.PricePerPerson = price
	activity.ImageURL = req.ImageURL
	activity.UpdatedAt = time.Now()

	if err := s.activities.Update(ctx, activity); err != nil {
		return nil, err
	}

	resp := response.ActivityToResponse(activity)
	return &resp, nil
}

func (s *activityService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.activities.Delete(ctx, id)
}

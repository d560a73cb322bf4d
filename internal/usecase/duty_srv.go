package usecase

import (
	"context"
	"time"

	"resort-booking/internal/data/entity"
	"resort-booking/internal/data/repository"
	"resort-booking/internal/dto/request"
	"resort-booking/internal/dto/response"
	"resort-booking/pkg/apperr"
	"resort-booking/pkg/roles"
	"resort-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DutyService interface {
	Assign(ctx context.Context, req *request.DutyRequest) (*response.DutyResponse, error)
	List(ctx context.Context, page request.PaginatedRequest) (*response.PaginatedResponse[response.DutyResponse], error)
	ToggleCompleted(ctx context.Context, id uuid.UUID) (*response.DutyResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *request.DutyUpdateRequest) (*response.DutyResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type dutyService struct {
	duties repository.DutyRepository
	users  repository.UserRepository
	log    *zap.Logger
}

func NewDutyService(duties repository.DutyRepository, users repository.UserRepository, log *zap.Logger) DutyService {
	return &dutyService{
		duties: duties,
		users:  users,
		log:    log.With(zap.String("service", "duty")),
	}
}

func (s *dutyService) Assign(ctx context.Context, req *request.DutyRequest) (*response.DutyResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	staffID, err := utils.ParseUUID(req.StaffID)
	if err != nil {
		return nil, apperr.Validation("invalid staff id")
	}

	staff, err := s.users.FindByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperr.NotFound("user %s not found", req.StaffID)
	}
	if staff.Role == entity.RoleCustomer {
		return nil, apperr.Validation("duties can only be assigned to staff")
	}

	dueDate, err := utils.ParseDate(req.DueDate)
	if err != nil {
		return nil, apperr.Validation("invalid due date")
	}

	now := time.Now()
	duty := &entity.Duty{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		StaffID:     staffID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		AssignedAt:  now,
	}

	if err := s.duties.Create(ctx, duty); err != nil {
		return nil, err
	}

	s.log.Info("Duty assigned",
		zap.String("duty_id", duty.ID.String()),
		zap.String("staff_id", staffID.String()),
	)

	resp := response.DutyToResponse(duty)
	return &resp, nil
}

func (s *dutyService) List(ctx context.Context, page request.PaginatedRequest) (*response.PaginatedResponse[response.DutyResponse], error) {
	userID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var (
		duties []*entity.Duty
		total  int64
	)

	if role.AtLeast(roles.Admin) {
		duties, err = s.duties.FindAll(ctx, page.Limit(), page.Offset())
		if err != nil {
			return nil, err
		}
		total, err = s.duties.CountAll(ctx)
	} else {
		duties, err = s.duties.FindByStaffID(ctx, userID, page.Limit(), page.Offset())
		if err != nil {
			return nil, err
		}
		total, err = s.duties.CountByStaffID(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	items := make([]response.DutyResponse, 0, len(duties))
	for _, duty := range duties {
		items = append(items, response.DutyToResponse(duty))
	}

	return response.NewPaginatedResponse(items, page.Page, page.Limit(), total), nil
}

func (s *dutyService) ToggleCompleted(ctx context.Context, id uuid.UUID) (*response.DutyResponse, error) {
	userID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	duty, err := s.duties.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if duty == nil {
		return nil, apperr.NotFound("duty %s not found", id.String())
	}

	// Only the assigned staff member or an admin may flip completion.
	if !role.AtLeast(roles.Admin) && duty.StaffID != userID {
		return nil, apperr.Permission("duty is assigned to someone else")
	}

	duty.Completed = !duty.Completed
	duty.UpdatedAt = time.Now()

	if err := s.duties.Update(ctx, duty); err != nil {
		return nil, err
	}

	resp := response.DutyToResponse(duty)
	return &resp, nil
}

func (s *dutyService) Update(ctx context.Context, id uuid.UUID, req *request.DutyUpdateRequest) (*response.DutyResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	duty, err := s.duties.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if duty == nil {
		return nil, apperr.NotFound("duty %s not found", id.String())
	}

	if req.Title != nil {
		duty.Title = *req.Title
	}
	if req.Description != nil {
		duty.Description = *req.Description
	}
	if req.DueDate != nil {
		dueDate, err := utils.ParseDate(*req.DueDate)
		if err != nil {
			return nil, apperr.Validation("invalid due date")
		}
		duty.DueDate = dueDate
	}
	if req.Completed != nil {
		duty.Completed = *req.Completed
	}
	duty.UpdatedAt = time.Now()

	if err := s.duties.Update(ctx, duty); err != nil {
		return nil, err
	}

	resp := response.DutyToResponse(duty)
	return &resp, nil
}

func (s *dutyService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.duties.Delete(ctx, id)
}

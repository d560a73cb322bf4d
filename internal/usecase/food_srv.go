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

type FoodService interface {
	Create(ctx context.Context, req *request.FoodRequest) (*response.FoodResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*response.FoodResponse, error)
	List(ctx context.Context, page request.PaginatedRequest) (*response.PaginatedResponse[response.FoodResponse], error)
	Update(ctx context.Context, id uuid.UUID, req *request.FoodRequest) (*response.FoodResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type foodService struct {
	food repository.FoodRepository
	log  *zap.Logger
}

func NewFoodService(food repository.FoodRepository, log *zap.Logger) FoodService {
	return &foodService{
		food: food,
		log:  log.With(zap.String("service", "food")),
	}
}

func (s *foodService) Create(ctx context.Context, req *request.FoodRequest) (*response.FoodResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	price, err := parseAmount(req.PricePerPerson)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	food := &entity.Food{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:           req.Name,
		PricePerPerson: price,
	}

	if err := s.food.Create(ctx, food); err != nil {
		return nil, err
	}

	resp := response.FoodToResponse(food)
	return &resp, nil
}

func (s *foodService) GetByID(ctx context.Context, id uuid.UUID) (*response.FoodResponse, error) {
	food, err := s.food.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if food == nil {
		return nil, apperr.NotFound("food item %s not found", id.String())
	}

	resp := response.FoodToResponse(food)
	return &resp, nil
}

func (s *foodService) List(ctx context.Context, page request.PaginatedRequest) (*response.PaginatedResponse[response.FoodResponse], error) {
	items, err := s.food.FindAll(ctx, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.food.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]response.FoodResponse, 0, len(items))
	for _, food := range items {
		responses = append(responses, response.FoodToResponse(food))
	}

	return response.NewPaginatedResponse(responses, page.Page, page.Limit(), total), nil
}

func (s *foodService) Update(ctx context.Context, id uuid.UUID, req *request.FoodRequest) (*response.FoodResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	food, err := s.food.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if food == nil {
		return nil, apperr.NotFound("food item %s not found", id.String())
	}

	price, err := parseAmount(req.PricePerPerson)
	if err != nil {
		return nil, err
	}

	food.Name = req.Name
	food.PricePerPerson = price
	food.UpdatedAt = time.Now()

	if err := s.food.Update(ctx, food); err != nil {
		return nil, err
	}

	resp := response.FoodToResponse(food)
	return &resp, nil
}

func (s *foodService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.food.Delete(ctx, id)
}

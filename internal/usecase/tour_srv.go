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

type TourService interface {
	Create(ctx context.Context, req *request.TourRequest) (*response.TourResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*response.TourResponse, error)
	List(ctx context.Context, search string, page request.PaginatedRequest) (*response.PaginatedResponse[response.TourResponse], error)
	Update(ctx context.Context, id uuid.UUID, req *request.TourRequest) (*response.TourResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type tourService struct {
	tours repository.TourRepository
	log   *zap.Logger
}

func NewTourService(tours repository.TourRepository, log *zap.Logger) TourService {
	return &tourService{
		tours: tours,
		log:   log.With(zap.String("service", "tour")),
	}
}

func (s *tourService) Create(ctx context.Context, req *request.TourRequest) (*response.TourResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	price, err := parseAmount(req.PricePerPerson)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	tour := &entity.Tour{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:           req.Name,
		Destination:    req.Destination,
		Description:    req.Description,
		PricePerPerson: price,
		ImageURL:       req.ImageURL,
	}

	if err := s.tours.Create(ctx, tour); err != nil {
		return nil, err
	}

	resp := response.TourToResponse(tour)
	return &resp, nil
}

func (s *tourService) GetByID(ctx context.Context, id uuid.UUID) (*response.TourResponse, error) {
	tour, err := s.tours.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tour == nil {
		return nil, apperr.NotFound("tour %s not found", id.String())
	}

	resp := response.TourToResponse(tour)
	return &resp, nil
}

func (s *tourService) List(ctx context.Context, search string, page request.PaginatedRequest) (*response.PaginatedResponse[response.TourResponse], error) {
	tours, err := s.tours.FindAll(ctx, search, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.tours.CountAll(ctx, search)
	if err != nil {
		return nil, err
	}

	items := make([]response.TourResponse, 0, len(tours))
	for _, tour := range tours {
		items = append(items, response.TourToResponse(tour))
	}

	return response.NewPaginatedResponse(items, page.Page, page.Limit(), total), nil
}

func (s *tourService) Update(ctx context.Context, id uuid.UUID, req *request.TourRequest) (*response.TourResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	tour, err := s.tours.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tour == nil {
		return nil, apperr.NotFound("tour %s not found", id.String())
	}

	price, err := parseAmount(req.PricePerPerson)
	if err != nil {
		return nil, err
	}

	tour.Name = req.Name
	tour.Destination = req.Destination
	tour.Description = req.Description
	tour.PricePerPerson = price
	tour.ImageURL = req.ImageURL
	tour.UpdatedAt = time.Now()

	if err := s.tours.Update(ctx, tour); err != nil {
		return nil, err
	}

	resp := response.TourToResponse(tour)
	return &resp, nil
}

func (s *tourService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.tours.Delete(ctx, id)
}

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
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type PackageService interface {
	Create(ctx context.Context, req *request.PackageRequest) (*response.PackageResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*response.PackageResponse, error)
	List(ctx context.Context, search string, page request.PaginatedRequest) (*response.PaginatedResponse[response.PackageResponse], error)
	Update(ctx context.Context, id uuid.UUID, req *request.PackageRequest) (*response.PackageResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type packageService struct {
	packages   repository.PackageRepository
	activities repository.ActivityRepository
	log        *zap.Logger
}

func NewPackageService(packages repository.PackageRepository, activities repository.ActivityRepository, log *zap.Logger) PackageService {
	return &packageService{
		packages:   packages,
		activities: activities,
		log:        log.With(zap.String("service", "package")),
	}
}

func (s *packageService) Create(ctx context.Context, req *request.PackageRequest) (*response.PackageResponse, error) {
	price, activityIDs, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	pkg := &entity.Package{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:           req.Name,
		Description:    req.Description,
		PricePerPerson: price,
		ActivityIDs:    activityIDs,
	}

	if err := s.packages.Create(ctx, pkg); err != nil {
		return nil, err
	}
	if err := s.packages.SetActivities(ctx, pkg.ID, activityIDs); err != nil {
		return nil, err
	}

	s.log.Info("Package created", zap.String("package_id", pkg.ID.String()))

	return s.toResponse(ctx, pkg)
}

func (s *packageService) GetByID(ctx context.Context, id uuid.UUID) (*response.PackageResponse, error) {
	pkg, err := s.packages.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, apperr.NotFound("package %s not found", id.String())
	}

	return s.toResponse(ctx, pkg)
}

func (s *packageService) List(ctx context.Context, search string, page request.PaginatedRequest) (*response.PaginatedResponse[response.PackageResponse], error) {
	packages, err := s.packages.FindAll(ctx, search, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.packages.CountAll(ctx, search)
	if err != nil {
		return nil, err
	}

	items := make([]response.PackageResponse, 0, len(packages))
	for _, pkg := range packages {
		resp, err := s.toResponse(ctx, pkg)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}

	return response.NewPaginatedResponse(items, page.Page, page.Limit(), total), nil
}

func (s *packageService) Update(ctx context.Context, id uuid.UUID, req *request.PackageRequest) (*response.PackageResponse, error) {
	pkg, err := s.packages.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, apperr.NotFound("package %s not found", id.String())
	}

	price, activityIDs, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	pkg.Name = req.Name
	pkg.Description = req.Description
	pkg.PricePerPerson = price
	pkg.UpdatedAt = time.Now()

	if err := s.packages.Update(ctx, pkg); err != nil {
		return nil, err
	}
	if err := s.packages.SetActivities(ctx, pkg.ID, activityIDs); err != nil {
		return nil, err
	}

	return s.toResponse(ctx, pkg)
}

func (s *packageService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.packages.Delete(ctx, id)
}

func (s *packageService) validate(ctx context.Context, req *request.PackageRequest) (price decimal.Decimal, activityIDs []uuid.UUID, err error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return price, nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	price, err = parseAmount(req.PricePerPerson)
	if err != nil {
		return price, nil, err
	}

	activityIDs, err = utils.ParseUUIDs(req.ActivityIDs)
	if err != nil {
		return price, nil, apperr.Validation("invalid activity id")
	}

	if len(activityIDs) > 0 {
		found, err := s.activities.FindByIDs(ctx, activityIDs)
		if err != nil {
			return price, nil, err
		}
		if len(found) != len(activityIDs) {
			return price, nil, apperr.NotFound("one or more activities do not exist")
		}
	}

	return price, activityIDs, nil
}

func (s *packageService) toResponse(ctx context.Context, pkg *entity.Package) (*response.PackageResponse, error) {
	activityIDs, err := s.packages.FindActivityIDs(ctx, pkg.ID)
	if err != nil {
		return nil, err
	}

	activities, err := s.activities.FindByIDs(ctx, activityIDs)
	if err != nil {
		return nil, err
	}

	resp := response.PackageToResponse(pkg, activities)
	return &resp, nil
}

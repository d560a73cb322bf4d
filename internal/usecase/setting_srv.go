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

type SettingService interface {
	Get(ctx context.Context) (*response.SettingsResponse, error)
	Update(ctx context.Context, req *request.SettingsRequest) (*response.SettingsResponse, error)
}

type settingService struct {
	settings repository.SettingRepository
	log      *zap.Logger
}

func NewSettingService(settings repository.SettingRepository, log *zap.Logger) SettingService {
	return &settingService{
		settings: settings,
		log:      log.With(zap.String("service", "setting")),
	}
}

// defaultSettings is what the platform runs with before an admin has
// saved anything.
func defaultSettings() *entity.SystemSetting {
	return &entity.SystemSetting{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SiteName:     "Resort Booking",
		DiscountRate: decimal.Zero,
	}
}

func (s *settingService) Get(ctx context.Context) (*response.SettingsResponse, error) {
	setting, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		setting = defaultSettings()
	}

	resp := response.SettingsToResponse(setting)
	return &resp, nil
}

func (s *settingService) Update(ctx context.Context, req *request.SettingsRequest) (*response.SettingsResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	rate, err := parseAmount(req.DiscountRate)
	if err != nil {
		return nil, err
	}
	if rate.GreaterThan(decimal.NewFromInt(100)) {
		return nil, apperr.Validation("discount rate cannot exceed 100 percent")
	}

	setting, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		setting = defaultSettings()
	}

	setting.SiteName = req.SiteName
	setting.SupportEmail = req.SupportEmail
	setting.MaintenanceMode = req.MaintenanceMode
	setting.EnableMpesa = req.EnableMpesa
	setting.EnableStripe = req.EnableStripe
	setting.MaxDailyBookings = req.MaxDailyBookings
	setting.DiscountRate = rate
	setting.UpdatedAt = time.Now()

	if err := s.settings.Upsert(ctx, setting); err != nil {
		return nil, err
	}

	s.log.Info("System settings updated")

	resp := response.SettingsToResponse(setting)
	return &resp, nil
}

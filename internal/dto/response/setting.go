package response

import (
	"resort-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

type SettingsResponse struct {
	SiteName         string          `json:"site_name"`
	SupportEmail     string          `json:"support_email"`
	MaintenanceMode  bool            `json:"maintenance_mode"`
	EnableMpesa      bool            `json:"enable_mpesa"`
	EnableStripe     bool            `json:"enable_stripe"`
	MaxDailyBookings int             `json:"max_daily_bookings"`
	DiscountRate     decimal.Decimal `json:"discount_rate"`
}

func SettingsToResponse(setting *entity.SystemSetting) SettingsResponse {
	return SettingsResponse{
		SiteName:         setting.SiteName,
		SupportEmail:     setting.SupportEmail,
		MaintenanceMode:  setting.MaintenanceMode,
		EnableMpesa:      setting.EnableMpesa,
		EnableStripe:     setting.EnableStripe,
		MaxDailyBookings: setting.MaxDailyBookings,
		DiscountRate:     setting.DiscountRate,
	}
}

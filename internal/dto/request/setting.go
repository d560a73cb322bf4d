package request

type SettingsRequest struct {
	SiteName         string `json:"site_name" validate:"required,min=1,max=120"`
	SupportEmail     string `json:"support_email" validate:"required,email"`
	MaintenanceMode  bool   `json:"maintenance_mode"`
	EnableMpesa      bool   `json:"enable_mpesa"`
	EnableStripe     bool   `json:"enable_stripe"`
	MaxDailyBookings int    `json:"max_daily_bookings" validate:"min=0"`
	DiscountRate     string `json:"discount_rate" validate:"required"`
}

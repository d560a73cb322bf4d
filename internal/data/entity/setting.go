package entity

import "github.com/shopspring/decimal"

// SystemSetting is the single process-wide configuration row. It is loaded
// explicitly by the services that need it, never cached globally.
type SystemSetting struct {
	Base
	SiteName         string          `db:"site_name"`
	SupportEmail     string          `db:"support_email"`
	MaintenanceMode  bool            `db:"maintenance_mode"`
	EnableMpesa      bool            `db:"enable_mpesa"`
	EnableStripe     bool            `db:"enable_stripe"`
	MaxDailyBookings int             `db:"max_daily_bookings"`
	DiscountRate     decimal.Decimal `db:"discount_rate"` // percent, e.g. 10.00
}

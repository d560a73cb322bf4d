package repository

import (
	"context"
	"fmt"

	"resort-booking/internal/data/entity"
	"resort-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SettingRepository interface {
	// Get returns the single settings row, or nil when none has been
	// created yet. Services fall back to defaults in that case.
	Get(ctx context.Context) (*entity.SystemSetting, error)
	Upsert(ctx context.Context, setting *entity.SystemSetting) error
}

type settingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSettingRepository(db database.PgxIface, log *zap.Logger) SettingRepository {
	return &settingRepository{
		db:  db,
		log: log.With(zap.String("repository", "setting")),
	}
}

func (r *settingRepository) Get(ctx context.Context) (*entity.SystemSetting, error) {
	query := `
		SELECT id, site_name, support_email, maintenance_mode, enable_mpesa, enable_stripe,
		       max_daily_bookings, discount_rate, created_at, updated_at
		FROM system_settings
		ORDER BY created_at
		LIMIT 1
	`

	var setting entity.SystemSetting
	err := r.db.QueryRow(ctx, query).Scan(
		&setting.ID,
		&setting.SiteName,
		&setting.SupportEmail,
		&setting.MaintenanceMode,
		&setting.EnableMpesa,
		&setting.EnableStripe,
		&setting.MaxDailyBookings,
		&setting.DiscountRate,
		&setting.CreatedAt,
		&setting.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to load system settings", zap.Error(err))
		return nil, fmt.Errorf("load system settings: %w", err)
	}

	return &setting, nil
}

func (r *settingRepository) Upsert(ctx context.Context, setting *entity.SystemSetting) error {
	query := `
		INSERT INTO system_settings (id, site_name, support_email, maintenance_mode, enable_mpesa, enable_stripe,
		                             max_daily_bookings, discount_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE
		SET site_name = EXCLUDED.site_name,
		    support_email = EXCLUDED.support_email,
		    maintenance_mode = EXCLUDED.maintenance_mode,
		    enable_mpesa = EXCLUDED.enable_mpesa,
		    enable_stripe = EXCLUDED.enable_stripe,
		    max_daily_bookings = EXCLUDED.max_daily_bookings,
		    discount_rate = EXCLUDED.discount_rate,
		    updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		setting.ID,
		setting.SiteName,
		setting.SupportEmail,
		setting.MaintenanceMode,
		setting.EnableMpesa,
		setting.EnableStripe,
		setting.MaxDailyBookings,
		setting.DiscountRate,
		setting.CreatedAt,
		setting.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to save system settings", zap.Error(err))
		return fmt.Errorf("save system settings: %w", err)
	}

	return nil
}

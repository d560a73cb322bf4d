package repository

import (
	"context"
	"fmt"

	"resort-booking/internal/data/entity"
	"resort-booking/pkg/database"

	"go.uber.org/zap"
)

type ReportRepository interface {
	// MonthlyBookings returns one bucket per calendar month that has at
	// least one booking, ordered oldest first.
	MonthlyBookings(ctx context.Context) ([]entity.MonthlyBucket, error)
	// PopularItems ranks a category's catalog items by the number of
	// bookings that selected them.
	PopularItems(ctx context.Context, category entity.Category, limit int) ([]entity.PopularItem, error)
}

type reportRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReportRepository(db database.PgxIface, log *zap.Logger) ReportRepository {
	return &reportRepository{
		db:  db,
		log: log.With(zap.String("repository", "report")),
	}
}

func (r *reportRepository) MonthlyBookings(ctx context.Context) ([]entity.MonthlyBucket, error) {
	query := `
		SELECT TO_CHAR(created_at, 'YYYY-MM') AS month, COUNT(*), COALESCE(SUM(paid), 0)
		FROM bookings
		GROUP BY month
		ORDER BY month
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to load monthly booking buckets", zap.Error(err))
		return nil, fmt.Errorf("load monthly booking buckets: %w", err)
	}
	defer rows.Close()

	var buckets []entity.MonthlyBucket
	for rows.Next() {
		var bucket entity.MonthlyBucket
		if err := rows.Scan(&bucket.Month, &bucket.Bookings, &bucket.Paid); err != nil {
			return nil, fmt.Errorf("scan monthly bucket row: %w", err)
		}
		buckets = append(buckets, bucket)
	}

	return buckets, nil
}

// popularityQueries joins each category's catalog table against its booking
// join table. The tables are fixed at compile time, never caller input.
var popularityQueries = map[entity.Category]string{
	entity.CategoryRooms: `
		SELECT rt.name, COUNT(DISTINCT br.booking_id) AS bookings
		FROM room_types rt
		JOIN rooms rm ON rm.room_type_id = rt.id
		JOIN booking_rooms br ON br.room_id = rm.id
		GROUP BY rt.name
		ORDER BY bookings DESC, rt.name
		LIMIT $1
	`,
	entity.CategoryActivities: `
		SELECT a.name, COUNT(ba.booking_id) AS bookings
		FROM activities a
		JOIN booking_activities ba ON ba.activity_id = a.id
		GROUP BY a.name
		ORDER BY bookings DESC, a.name
		LIMIT $1
	`,
	entity.CategoryPackages: `
		SELECT p.name, COUNT(bp.booking_id) AS bookings
		FROM packages p
		JOIN booking_packages bp ON bp.package_id = p.id
		GROUP BY p.name
		ORDER BY bookings DESC, p.name
		LIMIT $1
	`,
	entity.CategoryFood: `
		SELECT f.name, COUNT(bf.booking_id) AS bookings
		FROM food_items f
		JOIN booking_food bf ON bf.food_id = f.id
		GROUP BY f.name
		ORDER BY bookings DESC, f.name
		LIMIT $1
	`,
	entity.CategoryTours: `
		SELECT t.name, COUNT(bt.booking_id) AS bookings
		FROM tours t
		JOIN booking_tours bt ON bt.tour_id = t.id
		GROUP BY t.name
		ORDER BY bookings DESC, t.name
		LIMIT $1
	`,
}

func (r *reportRepository) PopularItems(ctx context.Context, category entity.Category, limit int) ([]entity.PopularItem, error) {
	query, ok := popularityQueries[category]
	if !ok {
		return nil, fmt.Errorf("unknown report category %q", category)
	}

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to load popular items", zap.Error(err), zap.String("category", string(category)))
		return nil, fmt.Errorf("load popular %s: %w", category, err)
	}
	defer rows.Close()

	var items []entity.PopularItem
	for rows.Next() {
		var item entity.PopularItem
		if err := rows.Scan(&item.Name, &item.Bookings); err != nil {
			return nil, fmt.Errorf("scan popular item row: %w", err)
		}
		items = append(items, item)
	}

	return items, nil
}

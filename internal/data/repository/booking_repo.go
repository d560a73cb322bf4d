package repository

import (
	"context"
	"fmt"
	"time"

	"resort-booking/internal/data/entity"
	"resort-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// Create and Update take a Querier so the booking service can run them
	// inside the same transaction as the availability check.
	Create(ctx context.Context, q database.Querier, booking *entity.Booking) error
	Update(ctx context.Context, q database.Querier, booking *entity.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error)
	CountAll(ctx context.Context) (int64, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	CountCreatedOn(ctx context.Context, day time.Time) (int64, error)

	// CountOverlapping counts distinct bookings holding any room of the
	// given room type whose stay overlaps [checkIn, checkOut), optionally
	// excluding one booking (edit flows). Zero-length stays occupy one
	// night on both sides of the comparison.
	CountOverlapping(ctx context.Context, q database.Querier, roomTypeID uuid.UUID, checkIn, checkOut time.Time, excludeID *uuid.UUID) (int, error)

	SetSelection(ctx context.Context, q database.Querier, bookingID uuid.UUID, category entity.Category, itemIDs []uuid.UUID) error
	ReplacePaxDetails(ctx context.Context, q database.Querier, bookingID uuid.UUID, details map[entity.Category]int) error

	FindDetail(ctx context.Context, id uuid.UUID) (*entity.BookingDetail, error)
	FindAllDetailed(ctx context.Context) ([]*entity.BookingDetail, error)

	AddPaid(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

// selectionTables maps each category to its join table and item column.
var selectionTables = map[entity.Category]struct {
	table  string
	column string
}{
	entity.CategoryRooms:      {"booking_rooms", "room_id"},
	entity.CategoryActivities: {"booking_activities", "activity_id"},
	entity.CategoryPackages:   {"booking_packages", "package_id"},
	entity.CategoryFood:       {"booking_food", "food_id"},
	entity.CategoryTours:      {"booking_tours", "tour_id"},
}

const bookingColumns = `id, user_id, customer_name, customer_email, check_in, check_out, pax, paid, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CheckIn,
		&booking.CheckOut,
		&booking.Pax,
		&booking.Paid,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, q database.Querier, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, user_id, customer_name, customer_email, check_in, check_out, pax, paid, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := q.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.CheckIn,
		booking.CheckOut,
		booking.Pax,
		booking.Paid,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking", zap.Error(err), zap.String("booking_id", booking.ID.String()))
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) Update(ctx context.Context, q database.Querier, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET customer_name = $2, customer_email = $3, check_in = $4, check_out = $5,
		    pax = $6, paid = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := q.Exec(ctx, query,
		booking.ID,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.CheckIn,
		booking.CheckOut,
		booking.Pax,
		booking.Paid,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update booking", zap.Error(err), zap.String("booking_id", booking.ID.String()))
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Join rows and pax details cascade at the schema level.
	result, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete booking", zap.Error(err), zap.String("booking_id", id.String()))
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID", zap.Error(err), zap.String("booking_id", id.String()))
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings", zap.Error(err))
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("find bookings by user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by user", zap.Error(err), zap.String("user_id", userID.String()))
		return 0, fmt.Errorf("count bookings by user %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) CountCreatedOn(ctx context.Context, day time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE created_at::date = $1::date`

	var count int64
	if err := r.db.QueryRow(ctx, query, day).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings for day", zap.Error(err), zap.Time("day", day))
		return 0, fmt.Errorf("count bookings for day %s: %w", day.Format("2006-01-02"), err)
	}

	return count, nil
}

func (r *bookingRepository) CountOverlapping(ctx context.Context, q database.Querier, roomTypeID uuid.UUID, checkIn, checkOut time.Time, excludeID *uuid.UUID) (int, error) {
	// A same-day stay still occupies its room for one night, so both the
	// requested and the stored interval are widened to at least one day.
	effectiveOut := checkOut
	if !checkOut.After(checkIn) {
		effectiveOut = checkIn.AddDate(0, 0, 1)
	}

	query := `
		SELECT COUNT(DISTINCT b.id)
		FROM bookings b
		JOIN booking_rooms br ON br.booking_id = b.id
		JOIN rooms rm ON rm.id = br.room_id
		WHERE rm.room_type_id = $1
		  AND b.check_in < $3
		  AND GREATEST(b.check_out, b.check_in + INTERVAL '1 day') > $2
		  AND ($4::uuid IS NULL OR b.id <> $4)
	`

	var count int
	err := q.QueryRow(ctx, query, roomTypeID, checkIn, effectiveOut, excludeID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count overlapping bookings",
			zap.Error(err),
			zap.String("room_type_id", roomTypeID.String()),
		)
		return 0, fmt.Errorf("count overlapping bookings for room type %s: %w", roomTypeID.String(), err)
	}

	return count, nil
}

// SetSelection replaces one category's selected item set for a booking.
func (r *bookingRepository) SetSelection(ctx context.Context, q database.Querier, bookingID uuid.UUID, category entity.Category, itemIDs []uuid.UUID) error {
	join, ok := selectionTables[category]
	if !ok {
		return fmt.Errorf("unknown booking category %q", category)
	}

	clear := fmt.Sprintf(`DELETE FROM %s WHERE booking_id = $1`, join.table)
	if _, err := q.Exec(ctx, clear, bookingID); err != nil {
		r.log.Error("Failed to clear booking selection",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("category", string(category)),
		)
		return fmt.Errorf("clear %s for booking %s: %w", category, bookingID.String(), err)
	}

	insert := fmt.Sprintf(`INSERT INTO %s (booking_id, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING`, join.table, join.column)
	for _, itemID := range itemIDs {
		if _, err := q.Exec(ctx, insert, bookingID, itemID); err != nil {
			r.log.Error("Failed to insert booking selection",
				zap.Error(err),
				zap.String("booking_id", bookingID.String()),
				zap.String("category", string(category)),
				zap.String("item_id", itemID.String()),
			)
			return fmt.Errorf("add %s item %s to booking %s: %w", category, itemID.String(), bookingID.String(), err)
		}
	}

	return nil
}

func (r *bookingRepository) ReplacePaxDetails(ctx context.Context, q database.Querier, bookingID uuid.UUID, details map[entity.Category]int) error {
	if _, err := q.Exec(ctx, `DELETE FROM booking_pax WHERE booking_id = $1`, bookingID); err != nil {
		r.log.Error("Failed to clear pax details", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return fmt.Errorf("clear pax details for booking %s: %w", bookingID.String(), err)
	}

	for _, category := range entity.Categories() {
		pax, ok := details[category]
		if !ok {
			continue
		}
		query := `INSERT INTO booking_pax (booking_id, category, pax) VALUES ($1, $2, $3)`
		if _, err := q.Exec(ctx, query, bookingID, category, pax); err != nil {
			r.log.Error("Failed to insert pax detail",
				zap.Error(err),
				zap.String("booking_id", bookingID.String()),
				zap.String("category", string(category)),
			)
			return fmt.Errorf("add pax detail %s for booking %s: %w", category, bookingID.String(), err)
		}
	}

	return nil
}

// FindDetail loads the full booking aggregate used by pricing and reporting.
func (r *bookingRepository) FindDetail(ctx context.Context, id uuid.UUID) (*entity.BookingDetail, error) {
	booking, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, nil
	}

	detail := &entity.BookingDetail{
		Booking:    *booking,
		PaxDetails: make(map[entity.Category]int),
	}

	if err := r.loadRooms(ctx, detail); err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, detail); err != nil {
		return nil, err
	}
	if err := r.loadPaxDetails(ctx, detail); err != nil {
		return nil, err
	}

	return detail, nil
}

func (r *bookingRepository) FindAllDetailed(ctx context.Context) ([]*entity.BookingDetail, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM bookings ORDER BY created_at DESC`)
	if err != nil {
		r.log.Error("Failed to list booking IDs", zap.Error(err))
		return nil, fmt.Errorf("list booking IDs: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan booking ID: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()

	details := make([]*entity.BookingDetail, 0, len(ids))
	for _, id := range ids {
		detail, err := r.FindDetail(ctx, id)
		if err != nil {
			return nil, err
		}
		if detail != nil {
			details = append(details, detail)
		}
	}

	return details, nil
}

func (r *bookingRepository) AddPaid(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	query := `UPDATE bookings SET paid = paid + $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, amount)
	if err != nil {
		r.log.Error("Failed to add payment to booking", zap.Error(err), zap.String("booking_id", id.String()))
		return fmt.Errorf("add paid to booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	return nil
}

func (r *bookingRepository) loadRooms(ctx context.Context, detail *entity.BookingDetail) error {
	query := `
		SELECT rm.id, rm.room_type_id, rm.name, rm.image_url, rm.created_at, rm.updated_at,
		       rt.id, rt.name, rt.description, rt.capacity, rt.price_per_night,
		       rt.total_rooms, rt.available, rt.created_at, rt.updated_at
		FROM booking_rooms br
		JOIN rooms rm ON rm.id = br.room_id
		JOIN room_types rt ON rt.id = rm.room_type_id
		WHERE br.booking_id = $1
	`

	rows, err := r.db.Query(ctx, query, detail.ID)
	if err != nil {
		return fmt.Errorf("load rooms for booking %s: %w", detail.ID.String(), err)
	}
	defer rows.Close()

	for rows.Next() {
		var rwt entity.RoomWithType
		err := rows.Scan(
			&rwt.Room.ID,
			&rwt.Room.RoomTypeID,
			&rwt.Room.Name,
			&rwt.Room.ImageURL,
			&rwt.Room.CreatedAt,
			&rwt.Room.UpdatedAt,
			&rwt.RoomType.ID,
			&rwt.RoomType.Name,
			&rwt.RoomType.Description,
			&rwt.RoomType.Capacity,
			&rwt.RoomType.PricePerNight,
			&rwt.RoomType.TotalRooms,
			&rwt.RoomType.Available,
			&rwt.RoomType.CreatedAt,
			&rwt.RoomType.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("scan booking room row: %w", err)
		}
		detail.Rooms = append(detail.Rooms, rwt)
	}

	return nil
}

func (r *bookingRepository) loadItems(ctx context.Context, detail *entity.BookingDetail) error {
	activityRows, err := r.db.Query(ctx, `
		SELECT a.id, a.name, a.description, a.price_per_person, a.image_url, a.created_at, a.updated_at
		FROM booking_activities ba
		JOIN activities a ON a.id = ba.activity_id
		WHERE ba.booking_id = $1
	`, detail.ID)
	if err != nil {
		return fmt.Errorf("load activities for booking %s: %w", detail.ID.String(), err)
	}
	defer activityRows.Close()

	for activityRows.Next() {
		activity, err := scanActivity(activityRows)
		if err != nil {
			return fmt.Errorf("scan booking activity row: %w", err)
		}
		detail.Activities = append(detail.Activities, *activity)
	}
	activityRows.Close()

	packageRows, err := r.db.Query(ctx, `
		SELECT p.id, p.name, p.description, p.price_per_person, p.created_at, p.updated_at
		FROM booking_packages bp
		JOIN packages p ON p.id = bp.package_id
		WHERE bp.booking_id = $1
	`, detail.ID)
	if err != nil {
		return fmt.Errorf("load packages for booking %s: %w", detail.ID.String(), err)
	}
	defer packageRows.Close()

	for packageRows.Next() {
		pkg, err := scanPackage(packageRows)
		if err != nil {
			return fmt.Errorf("scan booking package row: %w", err)
		}
		detail.Packages = append(detail.Packages, *pkg)
	}
	packageRows.Close()

	foodRows, err := r.db.Query(ctx, `
		SELECT f.id, f.name, f.price_per_person, f.created_at, f.updated_at
		FROM booking_food bf
		JOIN food_items f ON f.id = bf.food_id
		WHERE bf.booking_id = $1
	`, detail.ID)
	if err != nil {
		return fmt.Errorf("load food for booking %s: %w", detail.ID.String(), err)
	}
	defer foodRows.Close()

	for foodRows.Next() {
		food, err := scanFood(foodRows)
		if err != nil {
			return fmt.Errorf("scan booking food row: %w", err)
		}
		detail.Food = append(detail.Food, *food)
	}
	foodRows.Close()

	tourRows, err := r.db.Query(ctx, `
		SELECT t.id, t.name, t.destination, t.description, t.price_per_person, t.image_url, t.created_at, t.updated_at
		FROM booking_tours bt
		JOIN tours t ON t.id = bt.tour_id
		WHERE bt.booking_id = $1
	`, detail.ID)
	if err != nil {
		return fmt.Errorf("load tours for booking %s: %w", detail.ID.String(), err)
	}
	defer tourRows.Close()

	for tourRows.Next() {
		tour, err := scanTour(tourRows)
		if err != nil {
			return fmt.Errorf("scan booking tour row: %w", err)
		}
		detail.Tours = append(detail.Tours, *tour)
	}

	return nil
}

func (r *bookingRepository) loadPaxDetails(ctx context.Context, detail *entity.BookingDetail) error {
	rows, err := r.db.Query(ctx, `SELECT category, pax FROM booking_pax WHERE booking_id = $1`, detail.ID)
	if err != nil {
		return fmt.Errorf("load pax details for booking %s: %w", detail.ID.String(), err)
	}
	defer rows.Close()

	for rows.Next() {
		var category entity.Category
		var pax int
		if err := rows.Scan(&category, &pax); err != nil {
			return fmt.Errorf("scan pax detail row: %w", err)
		}
		detail.PaxDetails[category] = pax
	}

	return nil
}

func collectBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

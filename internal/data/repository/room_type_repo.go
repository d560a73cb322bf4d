package repository

import (
	"context"
	"fmt"

	"resort-booking/internal/data/entity"
	"resort-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoomTypeRepository interface {
	Create(ctx context.Context, roomType *entity.RoomType) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RoomType, error)
	FindByName(ctx context.Context, name string) (*entity.RoomType, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.RoomType, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, roomType *entity.RoomType) error
	Delete(ctx context.Context, id uuid.UUID) error

	// LockForUpdate takes a row lock on the room type inside the caller's
	// transaction so the availability count and the booking write are
	// serialized against concurrent bookings.
	LockForUpdate(ctx context.Context, q database.Querier, id uuid.UUID) (*entity.RoomType, error)
}

type roomTypeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomTypeRepository(db database.PgxIface, log *zap.Logger) RoomTypeRepository {
	return &roomTypeRepository{
		db:  db,
		log: log.With(zap.String("repository", "room_type")),
	}
}

const roomTypeColumns = `id, name, description, capacity, price_per_night, total_rooms, available, created_at, updated_at`

func scanRoomType(row pgx.Row) (*entity.RoomType, error) {
	var roomType entity.RoomType
	err := row.Scan(
		&roomType.ID,
		&roomType.Name,
		&roomType.Description,
		&roomType.Capacity,
		&roomType.PricePerNight,
		&roomType.TotalRooms,
		&roomType.Available,
		&roomType.CreatedAt,
		&roomType.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &roomType, nil
}

func (r *roomTypeRepository) Create(ctx context.Context, roomType *entity.RoomType) error {
	query := `
		INSERT INTO room_types (id, name, description, capacity, price_per_night, total_rooms, available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		roomType.ID,
		roomType.Name,
		roomType.Description,
		roomType.Capacity,
		roomType.PricePerNight,
		roomType.TotalRooms,
		roomType.Available,
		roomType.CreatedAt,
		roomType.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create room type", zap.Error(err), zap.String("name", roomType.Name))
		return fmt.Errorf("create room type %s: %w", roomType.Name, err)
	}

	return nil
}

func (r *roomTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RoomType, error) {
	query := `SELECT ` + roomTypeColumns + ` FROM room_types WHERE id = $1`

	roomType, err := scanRoomType(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room type by ID", zap.Error(err), zap.String("room_type_id", id.String()))
		return nil, fmt.Errorf("find room type by ID %s: %w", id.String(), err)
	}

	return roomType, nil
}

func (r *roomTypeRepository) FindByName(ctx context.Context, name string) (*entity.RoomType, error) {
	query := `SELECT ` + roomTypeColumns + ` FROM room_types WHERE name = $1`

	roomType, err := scanRoomType(r.db.QueryRow(ctx, query, name))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room type by name", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("find room type by name %s: %w", name, err)
	}

	return roomType, nil
}

func (r *roomTypeRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.RoomType, error) {
	query := `
		SELECT ` + roomTypeColumns + `
		FROM room_types
		ORDER BY price_per_night
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find room types", zap.Error(err))
		return nil, fmt.Errorf("find room types: %w", err)
	}
	defer rows.Close()

	var roomTypes []*entity.RoomType
	for rows.Next() {
		roomType, err := scanRoomType(rows)
		if err != nil {
			return nil, fmt.Errorf("scan room type row: %w", err)
		}
		roomTypes = append(roomTypes, roomType)
	}

	return roomTypes, nil
}

func (r *roomTypeRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM room_types`).Scan(&count); err != nil {
		r.log.Error("Failed to count room types", zap.Error(err))
		return 0, fmt.Errorf("count room types: %w", err)
	}

	return count, nil
}

func (r *roomTypeRepository) Update(ctx context.Context, roomType *entity.RoomType) error {
	query := `
		UPDATE room_types
		SET name = $2, description = $3, capacity = $4, price_per_night = $5,
		    total_rooms = $6, available = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		roomType.ID,
		roomType.Name,
		roomType.Description,
		roomType.Capacity,
		roomType.PricePerNight,
		roomType.TotalRooms,
		roomType.Available,
		roomType.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update room type", zap.Error(err), zap.String("room_type_id", roomType.ID.String()))
		return fmt.Errorf("update room type %s: %w", roomType.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room type %s not found", roomType.ID.String())
	}

	return nil
}

func (r *roomTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM room_types WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete room type", zap.Error(err), zap.String("room_type_id", id.String()))
		return fmt.Errorf("delete room type %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room type %s not found", id.String())
	}

	return nil
}

func (r *roomTypeRepository) LockForUpdate(ctx context.Context, q database.Querier, id uuid.UUID) (*entity.RoomType, error) {
	query := `SELECT ` + roomTypeColumns + ` FROM room_types WHERE id = $1 FOR UPDATE`

	roomType, err := scanRoomType(q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to lock room type", zap.Error(err), zap.String("room_type_id", id.String()))
		return nil, fmt.Errorf("lock room type %s: %w", id.String(), err)
	}

	return roomType, nil
}

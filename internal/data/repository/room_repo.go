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

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	FindWithTypeByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.RoomWithType, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Room, error)
	FindByRoomTypeID(ctx context.Context, roomTypeID uuid.UUID) ([]*entity.Room, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, room *entity.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (id, room_type_id, name, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		room.ID,
		room.RoomTypeID,
		room.Name,
		room.ImageURL,
		room.CreatedAt,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create room", zap.Error(err), zap.String("name", room.Name))
		return fmt.Errorf("create room %s: %w", room.Name, err)
	}

	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	query := `
		SELECT id, room_type_id, name, image_url, created_at, updated_at
		FROM rooms
		WHERE id = $1
	`

	var room entity.Room
	err := r.db.QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.RoomTypeID,
		&room.Name,
		&room.ImageURL,
		&room.CreatedAt,
		&room.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID", zap.Error(err), zap.String("room_id", id.String()))
		return nil, fmt.Errorf("find room by ID %s: %w", id.String(), err)
	}

	return &room, nil
}

// FindWithTypeByIDs loads the selected rooms together with their room types,
// which carry nightly price and inventory.
func (r *roomRepository) FindWithTypeByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.RoomWithType, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT r.id, r.room_type_id, r.name, r.image_url, r.created_at, r.updated_at,
		       rt.id, rt.name, rt.description, rt.capacity, rt.price_per_night,
		       rt.total_rooms, rt.available, rt.created_at, rt.updated_at
		FROM rooms r
		JOIN room_types rt ON rt.id = r.room_type_id
		WHERE r.id = ANY($1)
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to find rooms with types", zap.Error(err), zap.Int("count", len(ids)))
		return nil, fmt.Errorf("find rooms with types: %w", err)
	}
	defer rows.Close()

	var result []entity.RoomWithType
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
			return nil, fmt.Errorf("scan room with type row: %w", err)
		}
		result = append(result, rwt)
	}

	return result, nil
}

func (r *roomRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Room, error) {
	query := `
		SELECT id, room_type_id, name, image_url, created_at, updated_at
		FROM rooms
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find rooms", zap.Error(err))
		return nil, fmt.Errorf("find rooms: %w", err)
	}
	defer rows.Close()

	return scanRooms(rows)
}

func (r *roomRepository) FindByRoomTypeID(ctx context.Context, roomTypeID uuid.UUID) ([]*entity.Room, error) {
	query := `
		SELECT id, room_type_id, name, image_url, created_at, updated_at
		FROM rooms
		WHERE room_type_id = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, roomTypeID)
	if err != nil {
		r.log.Error("Failed to find rooms by room type", zap.Error(err), zap.String("room_type_id", roomTypeID.String()))
		return nil, fmt.Errorf("find rooms by room type %s: %w", roomTypeID.String(), err)
	}
	defer rows.Close()

	return scanRooms(rows)
}

func scanRooms(rows pgx.Rows) ([]*entity.Room, error) {
	var rooms []*entity.Room
	for rows.Next() {
		var room entity.Room
		err := rows.Scan(
			&room.ID,
			&room.RoomTypeID,
			&room.Name,
			&room.ImageURL,
			&room.CreatedAt,
			&room.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, &room)
	}
	return rooms, nil
}

func (r *roomRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM rooms`).Scan(&count); err != nil {
		r.log.Error("Failed to count rooms", zap.Error(err))
		return 0, fmt.Errorf("count rooms: %w", err)
	}

	return count, nil
}

func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	query := `
		UPDATE rooms
		SET room_type_id = $2, name = $3, image_url = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		room.ID,
		room.RoomTypeID,
		room.Name,
		room.ImageURL,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update room", zap.Error(err), zap.String("room_id", room.ID.String()))
		return fmt.Errorf("update room %s: %w", room.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", room.ID.String())
	}

	return nil
}

func (r *roomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM rooms WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete room", zap.Error(err), zap.String("room_id", id.String()))
		return fmt.Errorf("delete room %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", id.String())
	}

	return nil
}

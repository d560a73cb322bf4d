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

type FoodRepository interface {
	Create(ctx context.Context, food *entity.Food) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Food, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Food, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Food, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, food *entity.Food) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type foodRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFoodRepository(db database.PgxIface, log *zap.Logger) FoodRepository {
	return &foodRepository{
		db:  db,
		log: log.With(zap.String("repository", "food")),
	}
}

func scanFood(row pgx.Row) (*entity.Food, error) {
	var food entity.Food
	err := row.Scan(
		&food.ID,
		&food.Name,
		&food.PricePerPerson,
		&food.CreatedAt,
		&food.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) Create(ctx context.Context, food *entity.Food) error {
	query := `
		INSERT INTO food_items (id, name, price_per_person, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		food.ID,
		food.Name,
		food.PricePerPerson,
		food.CreatedAt,
		food.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create food item", zap.Error(err), zap.String("name", food.Name))
		return fmt.Errorf("create food item %s: %w", food.Name, err)
	}

	return nil
}

func (r *foodRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Food, error) {
	query := `SELECT id, name, price_per_person, created_at, updated_at FROM food_items WHERE id = $1`

	food, err := scanFood(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find food item by ID", zap.Error(err), zap.String("food_id", id.String()))
		return nil, fmt.Errorf("find food item by ID %s: %w", id.String(), err)
	}

	return food, nil
}

func (r *foodRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Food, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT id, name, price_per_person, created_at, updated_at FROM food_items WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to find food items by IDs", zap.Error(err), zap.Int("count", len(ids)))
		return nil, fmt.Errorf("find food items by IDs: %w", err)
	}
	defer rows.Close()

	var items []*entity.Food
	for rows.Next() {
		food, err := scanFood(rows)
		if err != nil {
			return nil, fmt.Errorf("scan food row: %w", err)
		}
		items = append(items, food)
	}

	return items, nil
}

func (r *foodRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Food, error) {
	query := `
		SELECT id, name, price_per_person, created_at, updated_at
		FROM food_items
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find food items", zap.Error(err))
		return nil, fmt.Errorf("find food items: %w", err)
	}
	defer rows.Close()

	var items []*entity.Food
	for rows.Next() {
		food, err := scanFood(rows)
		if err != nil {
			return nil, fmt.Errorf("scan food row: %w", err)
		}
		items = append(items, food)
	}

	return items, nil
}

func (r *foodRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM food_items`).Scan(&count); err != nil {
		r.log.Error("Failed to count food items", zap.Error(err))
		return 0, fmt.Errorf("count food items: %w", err)
	}

	return count, nil
}

func (r *foodRepository) Update(ctx context.Context, food *entity.Food) error {
	query := `
		UPDATE food_items
		SET name = $2, price_per_person = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		food.ID,
		food.Name,
		food.PricePerPerson,
		food.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update food item", zap.Error(err), zap.String("food_id", food.ID.String()))
		return fmt.Errorf("update food item %s: %w", food.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("food item %s not found", food.ID.String())
	}

	return nil
}

func (r *foodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM food_items WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete food item", zap.Error(err), zap.String("food_id", id.String()))
		return fmt.Errorf("delete food item %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("food item %s not found", id.String())
	}

	return nil
}

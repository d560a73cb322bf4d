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

type DutyRepository interface {
	Create(ctx context.Context, duty *entity.Duty) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Duty, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Duty, error)
	FindByStaffID(ctx context.Context, staffID uuid.UUID, limit, offset int) ([]*entity.Duty, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStaffID(ctx context.Context, staffID uuid.UUID) (int64, error)
	Update(ctx context.Context, duty *entity.Duty) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type dutyRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDutyRepository(db database.PgxIface, log *zap.Logger) DutyRepository {
	return &dutyRepository{
		db:  db,
		log: log.With(zap.String("repository", "duty")),
	}
}

const dutyColumns = `id, staff_id, title, description, due_date, completed, assigned_at, created_at, updated_at`

func scanDuty(row pgx.Row) (*entity.Duty, error) {
	var duty entity.Duty
	err := row.Scan(
		&duty.ID,
		&duty.StaffID,
		&duty.Title,
		&duty.Description,
		&duty.DueDate,
		&duty.Completed,
		&duty.AssignedAt,
		&duty.CreatedAt,
		&duty.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &duty, nil
}

func (r *dutyRepository) Create(ctx context.Context, duty *entity.Duty) error {
	query := `
		INSERT INTO duties (id, staff_id, title, description, due_date, completed, assigned_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		duty.ID,
		duty.StaffID,
		duty.Title,
		duty.Description,
		duty.DueDate,
		duty.Completed,
		duty.AssignedAt,
		duty.CreatedAt,
		duty.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create duty", zap.Error(err), zap.String("title", duty.Title))
		return fmt.Errorf("create duty %s: %w", duty.Title, err)
	}

	return nil
}

func (r *dutyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Duty, error) {
	query := `SELECT ` + dutyColumns + ` FROM duties WHERE id = $1`

	duty, err := scanDuty(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find duty by ID", zap.Error(err), zap.String("duty_id", id.String()))
		return nil, fmt.Errorf("find duty by ID %s: %w", id.String(), err)
	}

	return duty, nil
}

func (r *dutyRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Duty, error) {
	query := `
		SELECT ` + dutyColumns + `
		FROM duties
		ORDER BY due_date
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find duties", zap.Error(err))
		return nil, fmt.Errorf("find duties: %w", err)
	}
	defer rows.Close()

	return collectDuties(rows)
}

func (r *dutyRepository) FindByStaffID(ctx context.Context, staffID uuid.UUID, limit, offset int) ([]*entity.Duty, error) {
	query := `
		SELECT ` + dutyColumns + `
		FROM duties
		WHERE staff_id = $1
		ORDER BY due_date
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, staffID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find duties by staff", zap.Error(err), zap.String("staff_id", staffID.String()))
		return nil, fmt.Errorf("find duties by staff %s: %w", staffID.String(), err)
	}
	defer rows.Close()

	return collectDuties(rows)
}

func (r *dutyRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM duties`).Scan(&count); err != nil {
		r.log.Error("Failed to count duties", zap.Error(err))
		return 0, fmt.Errorf("count duties: %w", err)
	}

	return count, nil
}

func (r *dutyRepository) CountByStaffID(ctx context.Context, staffID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM duties WHERE staff_id = $1`, staffID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count duties by staff", zap.Error(err), zap.String("staff_id", staffID.String()))
		return 0, fmt.Errorf("count duties by staff %s: %w", staffID.String(), err)
	}

	return count, nil
}

func (r *dutyRepository) Update(ctx context.Context, duty *entity.Duty) error {
	query := `
		UPDATE duties
		SET staff_id = $2, title = $3, description = $4, due_date = $5, completed = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		duty.ID,
		duty.StaffID,
		duty.Title,
		duty.Description,
		duty.DueDate,
		duty.Completed,
		duty.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update duty", zap.Error(err), zap.String("duty_id", duty.ID.String()))
		return fmt.Errorf("update duty %s: %w", duty.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("duty %s not found", duty.ID.String())
	}

	return nil
}

func (r *dutyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM duties WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete duty", zap.Error(err), zap.String("duty_id", id.String()))
		return fmt.Errorf("delete duty %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("duty %s not found", id.String())
	}

	return nil
}

func collectDuties(rows pgx.Rows) ([]*entity.Duty, error) {
	var duties []*entity.Duty
	for rows.Next() {
		duty, err := scanDuty(rows)
		if err != nil {
			return nil, fmt.Errorf("scan duty row: %w", err)
		}
		duties = append(duties, duty)
	}
	return duties, nil
}

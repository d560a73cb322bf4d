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

type PackageRepository interface {
	Create(ctx context.Context, pkg *entity.Package) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Package, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Package, error)
	FindAll(ctx context.Context, search string, limit, offset int) ([]*entity.Package, error)
	CountAll(ctx context.Context, search string) (int64, error)
	Update(ctx context.Context, pkg *entity.Package) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetActivities(ctx context.Context, packageID uuid.UUID, activityIDs []uuid.UUID) error
	FindActivityIDs(ctx context.Context, packageID uuid.UUID) ([]uuid.UUID, error)
}

type packageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPackageRepository(db database.PgxIface, log *zap.Logger) PackageRepository {
	return &packageRepository{
		db:  db,
		log: log.With(zap.String("repository", "package")),
	}
}

func scanPackage(row pgx.Row) (*entity.Package, error) {
	var pkg entity.Package
	err := row.Scan(
		&pkg.ID,
		&pkg.Name,
		&pkg.Description,
		&pkg.PricePerPerson,
		&pkg.CreatedAt,
		&pkg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *packageRepository) Create(ctx context.Context, pkg *entity.Package) error {
	query := `
		INSERT INTO packages (id, name, description, price_per_person, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		pkg.ID,
		pkg.Name,
		pkg.Description,
		pkg.PricePerPerson,
		pkg.CreatedAt,
		pkg.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create package", zap.Error(err), zap.String("name", pkg.Name))
		return fmt.Errorf("create package %s: %w", pkg.Name, err)
	}

	return nil
}

func (r *packageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Package, error) {
	query := `
		SELECT id, name, description, price_per_person, created_at, updated_at
		FROM packages
		WHERE id = $1
	`

	pkg, err := scanPackage(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find package by ID", zap.Error(err), zap.String("package_id", id.String()))
		return nil, fmt.Errorf("find package by ID %s: %w", id.String(), err)
	}

	activityIDs, err := r.FindActivityIDs(ctx, pkg.ID)
	if err != nil {
		return nil, err
	}
	pkg.ActivityIDs = activityIDs

	return pkg, nil
}

func (r *packageRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Package, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, name, description, price_per_person, created_at, updated_at
		FROM packages
		WHERE id = ANY($1)
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to find packages by IDs", zap.Error(err), zap.Int("count", len(ids)))
		return nil, fmt.Errorf("find packages by IDs: %w", err)
	}
	defer rows.Close()

	var packages []*entity.Package
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan package row: %w", err)
		}
		packages = append(packages, pkg)
	}

	return packages, nil
}

func (r *packageRepository) FindAll(ctx context.Context, search string, limit, offset int) ([]*entity.Package, error) {
	query := `
		SELECT id, name, description, price_per_person, created_at, updated_at
		FROM packages
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, search, limit, offset)
	if err != nil {
		r.log.Error("Failed to find packages", zap.Error(err), zap.String("search", search))
		return nil, fmt.Errorf("find packages: %w", err)
	}
	defer rows.Close()

	var packages []*entity.Package
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan package row: %w", err)
		}
		packages = append(packages, pkg)
	}

	return packages, nil
}

func (r *packageRepository) CountAll(ctx context.Context, search string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM packages
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, search).Scan(&count); err != nil {
		r.log.Error("Failed to count packages", zap.Error(err))
		return 0, fmt.Errorf("count packages: %w", err)
	}

	return count, nil
}

func (r *packageRepository) Update(ctx context.Context, pkg *entity.Package) error {
	query := `
		UPDATE packages
		SET name = $2, description = $3, price_per_person = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		pkg.ID,
		pkg.Name,
		pkg.Description,
		pkg.PricePerPerson,
		pkg.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update package", zap.Error(err), zap.String("package_id", pkg.ID.String()))
		return fmt.Errorf("update package %s: %w", pkg.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("package %s not found", pkg.ID.String())
	}

	return nil
}

func (r *packageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM packages WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete package", zap.Error(err), zap.String("package_id", id.String()))
		return fmt.Errorf("delete package %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("package %s not found", id.String())
	}

	return nil
}

// SetActivities replaces the set of activities the package bundles.
func (r *packageRepository) SetActivities(ctx context.Context, packageID uuid.UUID, activityIDs []uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM package_activities WHERE package_id = $1`, packageID); err != nil {
		r.log.Error("Failed to clear package activities", zap.Error(err), zap.String("package_id", packageID.String()))
		return fmt.Errorf("clear activities for package %s: %w", packageID.String(), err)
	}

	for _, activityID := range activityIDs {
		query := `INSERT INTO package_activities (package_id, activity_id) VALUES ($1, $2)`
		if _, err := r.db.Exec(ctx, query, packageID, activityID); err != nil {
			r.log.Error("Failed to link package activity",
				zap.Error(err),
				zap.String("package_id", packageID.String()),
				zap.String("activity_id", activityID.String()),
			)
			return fmt.Errorf("link activity %s to package %s: %w", activityID.String(), packageID.String(), err)
		}
	}

	return nil
}

func (r *packageRepository) FindActivityIDs(ctx context.Context, packageID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT activity_id FROM package_activities WHERE package_id = $1`

	rows, err := r.db.Query(ctx, query, packageID)
	if err != nil {
		r.log.Error("Failed to find package activities", zap.Error(err), zap.String("package_id", packageID.String()))
		return nil, fmt.Errorf("find activities for package %s: %w", packageID.String(), err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan package activity row: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

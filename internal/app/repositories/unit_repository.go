package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/db"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/dberrors"
	"github.com/yigit/coursehub/internal/pkg/helpers"
)

var unitColumns = []string{"id", "course_id", "title", "content", "position", "created_at", "updated_at"}

// PgUnitRepository handles database operations for units
type PgUnitRepository struct {
	db *db.PostgresDB
}

// NewUnitRepository creates a new PgUnitRepository
func NewUnitRepository(database *db.PostgresDB) *PgUnitRepository {
	return &PgUnitRepository{db: database}
}

func selectUnits() squirrel.SelectBuilder {
	return psql.Select(unitColumns...).
		From("units").
		OrderBy("course_id", "position", "id")
}

func queryUnits(ctx context.Context, q db.Querier, query squirrel.SelectBuilder) ([]models.Unit, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing units: %w", err)
	}
	defer rows.Close()

	units := []models.Unit{}
	for rows.Next() {
		var u models.Unit
		if err := rows.Scan(&u.ID, &u.CourseID, &u.Title, &u.Content, &u.Position, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning unit: %w", err)
		}
		units = append(units, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return units, nil
}

func listCourseUnits(ctx context.Context, q db.Querier, courseID uuid.UUID) ([]models.Unit, error) {
	return queryUnits(ctx, q, selectUnits().Where(squirrel.Eq{"course_id": courseID}))
}

// ListByCourse retrieves the units of a course in position order
func (r *PgUnitRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]models.Unit, error) {
	return listCourseUnits(ctx, r.db.Pool, courseID)
}

// GetByID retrieves a unit by ID, owned or detached
func (r *PgUnitRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Unit, error) {
	units, err := queryUnits(ctx, r.db.Pool, psql.Select(unitColumns...).From("units").Where(squirrel.Eq{"id": id}))
	if err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return nil, apperrors.ErrUnitNotFound
	}
	return &units[0], nil
}

// nextPosition is a subquery yielding the position after the course's last unit
func nextPosition(courseID uuid.UUID) squirrel.Sqlizer {
	return squirrel.Expr("(SELECT COALESCE(MAX(position), -1) + 1 FROM units WHERE course_id = ?)", courseID)
}

// Create appends a unit to its course
func (r *PgUnitRepository) Create(ctx context.Context, unit *models.Unit) error {
	if unit.CourseID == nil {
		return apperrors.NewValidationError("courseId", "unit must belong to a course")
	}

	now := helpers.NowUTC()
	if unit.ID == uuid.Nil {
		unit.ID = uuid.New()
	}
	unit.CreatedAt = now
	unit.UpdatedAt = now

	sql, args, err := psql.Insert("units").
		Columns(unitColumns...).
		Values(unit.ID, unit.CourseID, unit.Title, unit.Content, nextPosition(*unit.CourseID), now, now).
		Suffix("RETURNING position").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&unit.Position); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error creating unit: %w", err)
	}
	return nil
}

// Update overwrites a unit's title and content
func (r *PgUnitRepository) Update(ctx context.Context, unit *models.Unit) error {
	now := helpers.NowUTC()

	sql, args, err := psql.Update("units").
		Set("title", unit.Title).
		Set("content", unit.Content).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": unit.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating unit: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUnitNotFound
	}
	unit.UpdatedAt = now
	return nil
}

// Delete deletes a unit by ID
func (r *PgUnitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := psql.Delete("units").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting unit: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUnitNotFound
	}
	return nil
}

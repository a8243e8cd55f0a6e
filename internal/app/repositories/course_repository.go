package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/db"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/dberrors"
	"github.com/yigit/coursehub/internal/pkg/helpers"
	"golang.org/x/sync/errgroup"
)

var courseColumns = []string{"id", "name", "description", "board", "medium", "grade", "subject", "created_at", "updated_at"}

// PgCourseRepository handles database operations for courses
type PgCourseRepository struct {
	db *db.PostgresDB
}

// NewCourseRepository creates a new PgCourseRepository
func NewCourseRepository(database *db.PostgresDB) *PgCourseRepository {
	return &PgCourseRepository{db: database}
}

func scanCourse(row pgx.Row, course *models.Course) error {
	return row.Scan(
		&course.ID,
		&course.Name,
		&course.Description,
		&course.Board,
		&course.Medium,
		&course.Grade,
		&course.Subject,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
}

func selectCourses() squirrel.SelectBuilder {
	return psql.Select(courseColumns...).
		From("courses").
		OrderBy("created_at", "id")
}

// List retrieves all courses and their units. The two queries run concurrently.
func (r *PgCourseRepository) List(ctx context.Context) ([]models.Course, error) {
	var (
		courses []models.Course
		units   []models.Unit
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sql, args, err := selectCourses().ToSql()
		if err != nil {
			return fmt.Errorf("error building SQL: %w", err)
		}
		rows, err := r.db.Pool.Query(gctx, sql, args...)
		if err != nil {
			return fmt.Errorf("error listing courses: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var course models.Course
			if err := scanCourse(rows, &course); err != nil {
				return fmt.Errorf("error scanning course: %w", err)
			}
			courses = append(courses, course)
		}
		return rows.Err()
	})

	g.Go(func() error {
		var err error
		units, err = queryUnits(gctx, r.db.Pool, selectUnits().Where(squirrel.NotEq{"course_id": nil}))
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	byCourse := make(map[uuid.UUID][]models.Unit, len(courses))
	for _, u := range units {
		byCourse[*u.CourseID] = append(byCourse[*u.CourseID], u)
	}

	for i := range courses {
		courses[i].Units = byCourse[courses[i].ID]
		if courses[i].Units == nil {
			courses[i].Units = []models.Unit{}
		}
	}

	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

// GetByID retrieves a course and its units
func (r *PgCourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	return getCourse(ctx, r.db.Pool, id)
}

func getCourse(ctx context.Context, q db.Querier, id uuid.UUID) (*models.Course, error) {
	sql, args, err := psql.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var course models.Course
	if err := scanCourse(q.QueryRow(ctx, sql, args...), &course); err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	course.Units, err = listCourseUnits(ctx, q, id)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// Exists reports whether a course with the given id is stored
func (r *PgCourseRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM courses WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}
	return exists, nil
}

// Count returns the number of stored courses
func (r *PgCourseRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}

// Create inserts the course and its units in one transaction
func (r *PgCourseRepository) Create(ctx context.Context, course *models.Course) error {
	stampNewCourse(course)

	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := psql.Insert("courses").
			Columns(courseColumns...).
			Values(course.ID, course.Name, course.Description, course.Board, course.Medium,
				course.Grade, course.Subject, course.CreatedAt, course.UpdatedAt).
			ToSql()
		if err != nil {
			return fmt.Errorf("error building SQL: %w", err)
		}

		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			if dberrors.IsDuplicateConstraintError(err, "courses_pkey") {
				return apperrors.NewValidationError("id", "course id already exists")
			}
			return fmt.Errorf("error creating course: %w", err)
		}

		if len(course.Units) == 0 {
			return nil
		}

		insert := psql.Insert("units").Columns(unitColumns...)
		for _, u := range course.Units {
			insert = insert.Values(u.ID, u.CourseID, u.Title, u.Content, u.Position, u.CreatedAt, u.UpdatedAt)
		}
		sql, args, err = insert.ToSql()
		if err != nil {
			return fmt.Errorf("error building SQL: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("error creating course units: %w", err)
		}
		return nil
	})
}

// Update stores the scalar fields and optionally replaces the owned units
func (r *PgCourseRepository) Update(ctx context.Context, course *models.Course, units []models.Unit) error {
	now := helpers.NowUTC()

	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := psql.Update("courses").
			Set("name", course.Name).
			Set("description", course.Description).
			Set("board", course.Board).
			Set("medium", course.Medium).
			Set("grade", course.Grade).
			Set("subject", course.Subject).
			Set("updated_at", now).
			Where(squirrel.Eq{"id": course.ID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("error building SQL: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return fmt.Errorf("error updating course: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrCourseNotFound
		}
		course.UpdatedAt = now

		if units != nil {
			if err := replaceUnits(ctx, tx, course.ID, units, now); err != nil {
				return err
			}
		}

		course.Units, err = listCourseUnits(ctx, tx, course.ID)
		return err
	})
}

// replaceUnits upserts units in order under courseID and detaches everything else it owned.
func replaceUnits(ctx context.Context, tx pgx.Tx, courseID uuid.UUID, units []models.Unit, now time.Time) error {
	keep := make([]uuid.UUID, 0, len(units))

	for i := range units {
		u := units[i]
		stampOwnedUnit(&u, courseID, i, now)
		keep = append(keep, u.ID)

		sql, args, err := upsertUnit(&u, now).ToSql()
		if err != nil {
			return fmt.Errorf("error building SQL: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("error upserting unit %s: %w", u.ID, err)
		}
	}

	sql, args, err := detachUnits(courseID, keep, now).ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error detaching units: %w", err)
	}
	return nil
}

// upsertUnit inserts the unit or, when the id exists, re-parents and overwrites it.
// created_at of an existing unit is preserved.
func upsertUnit(u *models.Unit, now time.Time) squirrel.InsertBuilder {
	return psql.Insert("units").
		Columns(unitColumns...).
		Values(u.ID, u.CourseID, u.Title, u.Content, u.Position, now, now).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			course_id = EXCLUDED.course_id,
			title = EXCLUDED.title,
			content = EXCLUDED.content,
			position = EXCLUDED.position,
			updated_at = EXCLUDED.updated_at`)
}

// detachUnits clears course_id on units owned by courseID whose id is not in keep.
// An empty keep detaches all of them.
func detachUnits(courseID uuid.UUID, keep []uuid.UUID, now time.Time) squirrel.UpdateBuilder {
	q := psql.Update("units").
		Set("course_id", nil).
		Set("updated_at", now).
		Where(squirrel.Eq{"course_id": courseID})
	if len(keep) > 0 {
		q = q.Where(squirrel.NotEq{"id": keep})
	}
	return q
}

// Delete detaches the course's units and deletes the course
func (r *PgCourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	now := helpers.NowUTC()

	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := detachUnits(id, nil, now).ToSql()
		if err != nil {
			return fmt.Errorf("error building SQL: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("error detaching units: %w", err)
		}

		sql, args, err = psql.Delete("courses").Where(squirrel.Eq{"id": id}).ToSql()
		if err != nil {
			return fmt.Errorf("error building SQL: %w", err)
		}
		cmdTag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return fmt.Errorf("error deleting course: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrCourseNotFound
		}
		return nil
	})
}

package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/db"
	"github.com/yigit/coursehub/internal/pkg/helpers"
)

// psql builds PostgreSQL statements with $n placeholders
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// CourseRepository persists courses together with the units they own.
// Lookups of a missing course return apperrors.ErrCourseNotFound.
type CourseRepository interface {
	// List returns every course with its units, ordered by (created_at, id).
	List(ctx context.Context) ([]models.Course, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Count(ctx context.Context) (int, error)
	// Create assigns ids and timestamps, then stores the course and its units atomically.
	Create(ctx context.Context, course *models.Course) error
	// Update stores the course's scalar fields. When units is non-nil it replaces the
	// owned units in the same transaction: listed units are upserted in order and
	// re-parented, the rest are detached. course.Units reflects the stored state on return.
	Update(ctx context.Context, course *models.Course, units []models.Unit) error
	// Delete detaches every owned unit and removes the course in one transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}

// UnitRepository persists units. Lookups of a missing unit return apperrors.ErrUnitNotFound.
type UnitRepository interface {
	// ListByCourse returns the units owned by courseID in position order.
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]models.Unit, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Unit, error)
	// Create appends the unit after the last unit of its course.
	Create(ctx context.Context, unit *models.Unit) error
	Update(ctx context.Context, unit *models.Unit) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository CourseRepository
	UnitRepository   UnitRepository
}

// NewRepositories initializes the PostgreSQL-backed repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		CourseRepository: NewCourseRepository(database),
		UnitRepository:   NewUnitRepository(database),
	}
}

// NewMemoryRepositories initializes repositories sharing one in-process store
func NewMemoryRepositories() *Repositories {
	store := newMemoryStore()
	return &Repositories{
		CourseRepository: &memoryCourseRepository{store: store},
		UnitRepository:   &memoryUnitRepository{store: store},
	}
}

// stampNewCourse assigns the course id and timestamps, then stamps its units in order.
func stampNewCourse(course *models.Course) {
	now := helpers.NowUTC()
	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}
	course.CreatedAt = now
	course.UpdatedAt = now
	if course.Units == nil {
		course.Units = []models.Unit{}
	}
	for i := range course.Units {
		stampOwnedUnit(&course.Units[i], course.ID, i, now)
		course.Units[i].CreatedAt = now
	}
}

// stampOwnedUnit attaches a unit to courseID at position; a missing id is generated.
func stampOwnedUnit(unit *models.Unit, courseID uuid.UUID, position int, now time.Time) {
	if unit.ID == uuid.Nil {
		unit.ID = uuid.New()
	}
	owner := courseID
	unit.CourseID = &owner
	unit.Position = position
	unit.UpdatedAt = now
}

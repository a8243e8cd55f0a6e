package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/helpers"
)

// memoryStore keeps courses and units in process. Stored records are never
// handed out; every read returns clones.
type memoryStore struct {
	mu      sync.RWMutex
	courses map[uuid.UUID]*models.Course // Units is always nil here
	order   []uuid.UUID                  // creation order
	units   map[uuid.UUID]*models.Unit
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		courses: make(map[uuid.UUID]*models.Course),
		units:   make(map[uuid.UUID]*models.Unit),
	}
}

// ownedUnits returns clones of courseID's units in position order. Caller holds mu.
func (s *memoryStore) ownedUnits(courseID uuid.UUID) []models.Unit {
	units := []models.Unit{}
	for _, u := range s.units {
		if u.BelongsTo(courseID) {
			units = append(units, *u.Clone())
		}
	}
	sort.Slice(units, func(i, j int) bool {
		if units[i].Position != units[j].Position {
			return units[i].Position < units[j].Position
		}
		return units[i].ID.String() < units[j].ID.String()
	})
	return units
}

// courseWithUnits returns a clone of a stored course with its units. Caller holds mu.
func (s *memoryStore) courseWithUnits(id uuid.UUID) (*models.Course, bool) {
	c, ok := s.courses[id]
	if !ok {
		return nil, false
	}
	out := c.Clone()
	out.Units = s.ownedUnits(id)
	return out, true
}

// detach clears ownership of courseID's units except those in keep. Caller holds mu.
func (s *memoryStore) detach(courseID uuid.UUID, keep map[uuid.UUID]bool) {
	now := helpers.NowUTC()
	for id, u := range s.units {
		if u.BelongsTo(courseID) && !keep[id] {
			u.CourseID = nil
			u.UpdatedAt = now
		}
	}
}

type memoryCourseRepository struct {
	store *memoryStore
}

func (r *memoryCourseRepository) List(_ context.Context) ([]models.Course, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	courses := make([]models.Course, 0, len(r.store.order))
	for _, id := range r.store.order {
		if c, ok := r.store.courseWithUnits(id); ok {
			courses = append(courses, *c)
		}
	}
	return courses, nil
}

func (r *memoryCourseRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Course, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.courseWithUnits(id)
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return c, nil
}

func (r *memoryCourseRepository) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	_, ok := r.store.courses[id]
	return ok, nil
}

func (r *memoryCourseRepository) Count(_ context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.store.courses), nil
}

func (r *memoryCourseRepository) Create(_ context.Context, course *models.Course) error {
	stampNewCourse(course)

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.courses[course.ID]; exists {
		return apperrors.NewValidationError("id", "course id already exists")
	}

	stored := course.Clone()
	stored.Units = nil
	r.store.courses[course.ID] = stored
	r.store.order = append(r.store.order, course.ID)

	for i := range course.Units {
		r.store.units[course.Units[i].ID] = course.Units[i].Clone()
	}
	return nil
}

func (r *memoryCourseRepository) Update(_ context.Context, course *models.Course, units []models.Unit) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.courses[course.ID]
	if !ok {
		return apperrors.ErrCourseNotFound
	}

	now := helpers.NowUTC()
	course.CreatedAt = stored.CreatedAt
	course.UpdatedAt = now

	updated := course.Clone()
	updated.Units = nil
	r.store.courses[course.ID] = updated

	if units != nil {
		keep := make(map[uuid.UUID]bool, len(units))
		for i := range units {
			u := *units[i].Clone()
			stampOwnedUnit(&u, course.ID, i, now)
			if existing, ok := r.store.units[u.ID]; ok {
				u.CreatedAt = existing.CreatedAt
			} else {
				u.CreatedAt = now
			}
			r.store.units[u.ID] = &u
			keep[u.ID] = true
		}
		r.store.detach(course.ID, keep)
	}

	course.Units = r.store.ownedUnits(course.ID)
	return nil
}

func (r *memoryCourseRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}

	r.store.detach(id, nil)
	delete(r.store.courses, id)
	for i, cid := range r.store.order {
		if cid == id {
			r.store.order = append(r.store.order[:i], r.store.order[i+1:]...)
			break
		}
	}
	return nil
}

type memoryUnitRepository struct {
	store *memoryStore
}

func (r *memoryUnitRepository) ListByCourse(_ context.Context, courseID uuid.UUID) ([]models.Unit, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.ownedUnits(courseID), nil
}

func (r *memoryUnitRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Unit, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.units[id]
	if !ok {
		return nil, apperrors.ErrUnitNotFound
	}
	return u.Clone(), nil
}

func (r *memoryUnitRepository) Create(_ context.Context, unit *models.Unit) error {
	if unit.CourseID == nil {
		return apperrors.NewValidationError("courseId", "unit must belong to a course")
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.courses[*unit.CourseID]; !ok {
		return apperrors.ErrCourseNotFound
	}

	position := 0
	for _, u := range r.store.units {
		if u.BelongsTo(*unit.CourseID) && u.Position >= position {
			position = u.Position + 1
		}
	}

	now := helpers.NowUTC()
	if unit.ID == uuid.Nil {
		unit.ID = uuid.New()
	}
	unit.Position = position
	unit.CreatedAt = now
	unit.UpdatedAt = now

	r.store.units[unit.ID] = unit.Clone()
	return nil
}

func (r *memoryUnitRepository) Update(_ context.Context, unit *models.Unit) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.units[unit.ID]
	if !ok {
		return apperrors.ErrUnitNotFound
	}

	stored.Title = unit.Title
	stored.Content = unit.Content
	stored.UpdatedAt = helpers.NowUTC()
	unit.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *memoryUnitRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.units[id]; !ok {
		return apperrors.ErrUnitNotFound
	}
	delete(r.store.units, id)
	return nil
}

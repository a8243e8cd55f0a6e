package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/query"
	"github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/pkg/logger"
	"github.com/yigit/coursehub/internal/pkg/validation"
)

// CourseService defines the interface for course operations
type CourseService interface {
	ListCourses(ctx context.Context, params query.Params) (query.Page[models.Course], error)
	GetCourse(ctx context.Context, id uuid.UUID) (*models.Course, error)
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	UpdateCourse(ctx context.Context, id uuid.UUID, req *dto.UpdateCourseRequest) (*models.Course, error)
	PatchCourse(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Course, error)
	DeleteCourse(ctx context.Context, id uuid.UUID) error
}

// courseServiceImpl implements CourseService
type courseServiceImpl struct {
	courseRepo repositories.CourseRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo repositories.CourseRepository) CourseService {
	return &courseServiceImpl{courseRepo: courseRepo}
}

// ListCourses filters, searches, sorts and paginates the full course list
func (s *courseServiceImpl) ListCourses(ctx context.Context, params query.Params) (query.Page[models.Course], error) {
	courses, err := s.courseRepo.List(ctx)
	if err != nil {
		return query.Page[models.Course]{}, fmt.Errorf("error listing courses: %w", err)
	}
	return query.Apply(courses, params), nil
}

// GetCourse retrieves a course with its units
func (s *courseServiceImpl) GetCourse(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course %s: %w", id, err)
	}
	return course, nil
}

// CreateCourse validates and stores a new course with its optional units
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	course := req.ToModel()
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	logger.Info().
		Str("courseId", course.ID.String()).
		Int("units", len(course.Units)).
		Msg("Course created")
	return course, nil
}

// UpdateCourse overwrites the supplied fields. A non-empty units list replaces
// the course's units; units left out are detached.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id uuid.UUID, req *dto.UpdateCourseRequest) (*models.Course, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course %s: %w", id, err)
	}

	req.ApplyTo(course)
	units := req.ReplacementUnits()

	if err := s.courseRepo.Update(ctx, course, units); err != nil {
		return nil, fmt.Errorf("error updating course %s: %w", id, err)
	}

	logger.Info().
		Str("courseId", id.String()).
		Bool("unitsReplaced", units != nil).
		Msg("Course updated")
	return course, nil
}

// PatchCourse applies a sparse field map. Nothing is stored if any field is invalid.
func (s *courseServiceImpl) PatchCourse(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course %s: %w", id, err)
	}

	changed, err := coursePatchFields.apply(course, fields)
	if err != nil {
		return nil, err
	}
	if !changed {
		return course, nil
	}

	if err := s.courseRepo.Update(ctx, course, nil); err != nil {
		return nil, fmt.Errorf("error patching course %s: %w", id, err)
	}

	logger.Info().Str("courseId", id.String()).Msg("Course patched")
	return course, nil
}

// DeleteCourse detaches the course's units and removes it
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting course %s: %w", id, err)
	}

	logger.Info().Str("courseId", id.String()).Msg("Course deleted")
	return nil
}
